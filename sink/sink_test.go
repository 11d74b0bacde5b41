//go:build unit

package sink_test

import (
	"bytes"
	"testing"

	"github.com/hugolhafner/go-eventlog/sink"
	"github.com/stretchr/testify/require"
)

func TestWriterSink_Channels(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	s := sink.NewWriterSink(&out, &errOut)

	s.Info("[info] loaded")
	s.Warn("[warning] degraded")
	s.Error("[error] boom")

	require.Equal(t, "[info] loaded\n[warning] degraded\n", out.String())
	require.Equal(t, "[error] boom\n", errOut.String())
}

func TestNoopSink(t *testing.T) {
	t.Parallel()

	s := sink.Noop()

	// Nothing to observe, nothing to panic.
	s.Info("a")
	s.Warn("b")
	s.Error("c")
}
