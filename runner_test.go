package seqbench

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	return Config{InitialSize: 1000, PrependCount: 100, AccessCount: 100}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 1_000_000, cfg.InitialSize)
	require.Equal(t, 100_000, cfg.PrependCount)
	require.Equal(t, 100_000, cfg.AccessCount)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero", Config{}, false},
		{"small", smallConfig(), false},
		{"access equals length", Config{InitialSize: 10, PrependCount: 5, AccessCount: 15}, false},
		{"access past length", Config{InitialSize: 10, PrependCount: 5, AccessCount: 16}, true},
		{"negative initial", Config{InitialSize: -1}, true},
		{"negative prepend", Config{PrependCount: -1}, true},
		{"negative access", Config{AccessCount: -1}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	r, err := NewRunner(Config{InitialSize: 1, AccessCount: 2})
	require.Error(t, err)
	require.Nil(t, r)
}

func TestRunnerPrepend(t *testing.T) {
	cfg := smallConfig()
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	r.Prepend()

	a := r.Array()
	require.Equal(t, cfg.InitialSize+cfg.PrependCount, a.Len())
	require.Equal(t, cfg.PrependCount-1, a[0])
	require.Equal(t, 0, a[cfg.PrependCount-1])
	require.Equal(t, 0, a[cfg.PrependCount])

	l := r.Linked()
	require.Equal(t, cfg.InitialSize+cfg.PrependCount, l.Len())
	front := l.Values(cfg.PrependCount)
	for i, v := range front {
		require.Equal(t, cfg.PrependCount-1-i, v, "linked position %d", i)
	}
	require.Equal(t, []int(a[:cfg.PrependCount]), front)
}

func TestRunnerArrayWriteRead(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	r.Prepend()
	r.ArrayWrite()
	a := r.Array()
	for i := 0; i < 100; i++ {
		require.Equal(t, i, a[i])
	}
	// Positions past AccessCount keep their prepend/zero values.
	require.Equal(t, 0, a[100])
	r.ArrayRead()
	require.Equal(t, 99, a[99])
}

func TestRunnerLinkedWriteLeavesNodesUntouched(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	r.Prepend()
	before := r.Linked().Values(-1)

	r.LinkedWrite()
	after := r.Linked().Values(-1)
	require.Equal(t, before, after)
	require.Equal(t, 99, after[0])

	r.LinkedRead()
	require.Equal(t, before, r.Linked().Values(-1))
}

func TestRunnerRun(t *testing.T) {
	cfg := smallConfig()
	r, err := NewRunner(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	res, err := r.Run(context.Background(), &buf)
	require.NoError(t, err)

	require.Equal(t, cfg.InitialSize*intSize, res.ArrayFootprint)
	require.Equal(t, listHeader+cfg.InitialSize*intSize, res.LinkedFootprint)
	require.GreaterOrEqual(t, res.ArrayWrite, int64(0))
	require.GreaterOrEqual(t, res.ArrayRead, int64(0))
	require.GreaterOrEqual(t, res.LinkedWrite, int64(0))
	require.GreaterOrEqual(t, res.LinkedRead, int64(0))

	// ArrayWrite overwrites the prepended values with their own indexes.
	require.Equal(t, 0, r.Array()[0])
	require.Equal(t, cfg.PrependCount-1, r.Array()[cfg.PrependCount-1])
	require.Equal(t, cfg.InitialSize+cfg.PrependCount, r.Array().Len())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, fmt.Sprintf("Array memory footprint: %d bytes", res.ArrayFootprint), lines[0])
	require.Equal(t, fmt.Sprintf("Linked list memory footprint: %d bytes", res.LinkedFootprint), lines[1])
	require.Equal(t, fmt.Sprintf("Array write time: %d ns", res.ArrayWrite), lines[2])
	require.Equal(t, fmt.Sprintf("Array read time: %d ns", res.ArrayRead), lines[3])
	require.Equal(t, fmt.Sprintf("Linked list write time: %d ns", res.LinkedWrite), lines[4])
	require.Equal(t, fmt.Sprintf("Linked list read time: %d ns", res.LinkedRead), lines[5])
}

func TestRunnerRunTwiceFails(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = r.Run(context.Background(), &buf)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), &buf)
	require.Error(t, err)
}

func TestRunFootprintIsStable(t *testing.T) {
	run := func() Result {
		r, err := NewRunner(smallConfig())
		require.NoError(t, err)
		var buf bytes.Buffer
		res, err := r.Run(context.Background(), &buf)
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()
	require.Equal(t, first.ArrayFootprint, second.ArrayFootprint)
	require.Equal(t, first.LinkedFootprint, second.LinkedFootprint)
}

func TestRunCancelled(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	res, err := r.Run(ctx, &buf)
	require.Equal(t, context.Canceled, errors.Cause(err))
	// Footprints are reported before the first cancellation check.
	require.Equal(t, 2, strings.Count(buf.String(), "\n"))
	require.Equal(t, 1000*intSize, res.ArrayFootprint)
	require.Equal(t, 1000, r.Array().Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunWriterError(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	_, err = r.Run(context.Background(), failingWriter{})
	require.ErrorContains(t, err, "disk full")
}

func TestRunnerPrependDefaultSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full size prepend in short mode")
	}
	r, err := NewRunner(DefaultConfig())
	require.NoError(t, err)
	r.Prepend()

	a := r.Array()
	require.Equal(t, 1_100_000, a.Len())
	require.Equal(t, 99_999, a[0])
	require.Equal(t, 0, a[99_999])

	front := r.Linked().Values(DefaultPrependCount)
	require.Equal(t, 1_100_000, r.Linked().Len())
	require.Equal(t, 99_999, front[0])
	require.Equal(t, 0, front[99_999])
}
