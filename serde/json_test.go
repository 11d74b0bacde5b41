//go:build unit

package serde_test

import (
	"testing"

	"github.com/hugolhafner/go-eventlog/serde"
	"github.com/stretchr/testify/require"
)

func TestJsonSerde_Serialise(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  any
		expect string
	}{
		{
			name: "simple struct",
			input: struct {
				Code  string `json:"code"`
				Value int    `json:"value"`
			}{Code: "load_time", Value: 250},
			expect: `{"code":"load_time","value":250}`,
		},
		{
			name:   "map",
			input:  map[string]int{"one": 1, "two": 2},
			expect: `{"one":1,"two":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				s := serde.JSON[any]()
				output, err := s.Serialise("/batch", tt.input)

				require.NoError(t, err)
				require.JSONEq(t, tt.expect, string(output))
			},
		)
	}
}

func TestJsonSerde_Deserialise(t *testing.T) {
	t.Parallel()

	type event struct {
		Code  string `json:"code"`
		Value int    `json:"value"`
	}

	s := serde.JSON[event]()
	result, err := s.Deserialise("/batch", []byte(`{"code":"load_time","value":250}`))

	require.NoError(t, err)
	require.Equal(t, event{Code: "load_time", Value: 250}, result)
}

func TestJsonSerde_DeserialiseInvalid(t *testing.T) {
	t.Parallel()

	s := serde.JSON[map[string]any]()
	_, err := s.Deserialise("/batch", []byte(`not json`))

	require.Error(t, err)
}
