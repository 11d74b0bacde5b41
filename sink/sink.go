package sink

import (
	"fmt"
	"io"
	"os"
)

// Sink is the console abstraction: three logical channels selected by the
// kind of the log call.
type Sink interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type writerSink struct {
	out io.Writer
	err io.Writer
}

// Stdout returns a Sink printing info and warnings to stdout and errors
// to stderr.
func Stdout() Sink {
	return NewWriterSink(os.Stdout, os.Stderr)
}

// NewWriterSink returns a Sink printing info and warnings to out and
// errors to err.
func NewWriterSink(out, err io.Writer) Sink {
	return &writerSink{out: out, err: err}
}

func (s *writerSink) Info(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *writerSink) Warn(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *writerSink) Error(msg string) {
	fmt.Fprintln(s.err, msg)
}

type noopSink struct{}

// Noop returns a Sink that discards everything.
func Noop() Sink {
	return noopSink{}
}

func (noopSink) Info(msg string)  {}
func (noopSink) Warn(msg string)  {}
func (noopSink) Error(msg string) {}
