package seqbench

import (
	"context"
	"io"
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	// DefaultInitialSize is the number of zero values both sequences start with.
	DefaultInitialSize = 1_000_000
	// DefaultPrependCount is the number of values pushed to the front of each sequence.
	DefaultPrependCount = 100_000
	// DefaultAccessCount is the number of array positions written and read.
	DefaultAccessCount = 100_000
)

// Config holds the sizes used by a Runner.
type Config struct {
	InitialSize  int
	PrependCount int
	AccessCount  int
}

// DefaultConfig returns the fixed sizes the seqbench binary runs with.
func DefaultConfig() Config {
	return Config{
		InitialSize:  DefaultInitialSize,
		PrependCount: DefaultPrependCount,
		AccessCount:  DefaultAccessCount,
	}
}

// Validate checks that every size is non-negative and that the array
// loops stay within the array after the prepend phase.
func (c Config) Validate() error {
	if c.InitialSize < 0 || c.PrependCount < 0 || c.AccessCount < 0 {
		return errors.Errorf("negative size in config: initial=%d prepend=%d access=%d",
			c.InitialSize, c.PrependCount, c.AccessCount)
	}
	if c.AccessCount > c.InitialSize+c.PrependCount {
		return errors.Errorf("access count %d exceeds sequence length %d",
			c.AccessCount, c.InitialSize+c.PrependCount)
	}
	return nil
}

// Result is a snapshot of one benchmark run.
type Result struct {
	ArrayFootprint  int   // bytes, payload only
	LinkedFootprint int   // bytes, list header plus payload
	ArrayWrite      int64 // nanoseconds
	ArrayRead       int64 // nanoseconds
	LinkedWrite     int64 // nanoseconds
	LinkedRead      int64 // nanoseconds
}

// Runner owns one ArraySequence and one LinkedSequence and drives the
// measurement procedure over them. A Runner is single use and not
// goroutine-safe.
type Runner struct {
	cfg    Config
	array  ArraySequence
	linked LinkedSequence
	ran    bool
}

// NewRunner validates cfg and allocates both sequences at cfg.InitialSize.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	r := &Runner{
		cfg:    cfg,
		array:  NewArraySequence(cfg.InitialSize),
		linked: NewLinkedSequence(cfg.InitialSize),
	}
	log.Debug("sequences allocated", zap.Int("size", cfg.InitialSize))
	return r, nil
}

// Array returns the runner's array sequence.
func (r *Runner) Array() ArraySequence { return r.array }

// Linked returns the runner's linked sequence.
func (r *Runner) Linked() LinkedSequence { return r.linked }

// Footprint measures both sequences in their current state.
func (r *Runner) Footprint() Footprint {
	return Measure(r.array, r.linked)
}

// Prepend pushes 0..PrependCount-1, in ascending order, to the front of
// both sequences. The array pays a full shift per value.
func (r *Runner) Prepend() {
	for i := 0; i < r.cfg.PrependCount; i++ {
		r.array = r.array.PushFront(i)
		r.linked.PushFront(i)
	}
	log.Debug("prepend finished",
		zap.Int("count", r.cfg.PrependCount),
		zap.Int("arrayLen", r.array.Len()),
		zap.Int("linkedLen", r.linked.Len()))
}

// ArrayWrite stores i at position i for the first AccessCount positions.
func (r *Runner) ArrayWrite() {
	s := r.array
	for i := 0; i < r.cfg.AccessCount; i++ {
		s[i] = i
	}
}

// ArrayRead loads and discards the first AccessCount positions.
func (r *Runner) ArrayRead() {
	s := r.array
	for i := 0; i < r.cfg.AccessCount; i++ {
		_ = s[i]
	}
}

// LinkedWrite walks the whole list and assigns a running counter to a copy
// of each value. The nodes are left untouched: only the traversal and the
// copy cost time.
func (r *Runner) LinkedWrite() {
	j := 0
	for e := r.linked.l.Front(); e != nil; e = e.Next() {
		x := e.Value.(int)
		x = j
		_ = x
		j++
	}
}

// LinkedRead walks the whole list and discards each value.
func (r *Runner) LinkedRead() {
	r.linked.Each(func(int) {})
}

// Run executes the full procedure and writes the report to w: footprints
// first, then the four timings in the order array write, array read, linked
// write, linked read. ctx is only checked between phases.
func (r *Runner) Run(ctx context.Context, w io.Writer) (Result, error) {
	var res Result
	if r.ran {
		return res, errors.New("runner has already been run")
	}
	r.ran = true

	fp := r.Footprint()
	res.ArrayFootprint = fp.Array
	res.LinkedFootprint = fp.Linked
	observeFootprint(fp)
	if err := WriteFootprint(w, fp); err != nil {
		return res, errors.Trace(err)
	}

	if err := ctx.Err(); err != nil {
		return res, errors.Annotate(err, "before prepend")
	}
	r.Prepend()

	if err := ctx.Err(); err != nil {
		return res, errors.Annotate(err, "before timed loops")
	}
	res.ArrayWrite = elapsed(r.ArrayWrite)
	res.ArrayRead = elapsed(r.ArrayRead)
	res.LinkedWrite = elapsed(r.LinkedWrite)
	res.LinkedRead = elapsed(r.LinkedRead)
	observeTimings(res)
	log.Debug("timed loops finished",
		zap.Int64("arrayWriteNs", res.ArrayWrite),
		zap.Int64("arrayReadNs", res.ArrayRead),
		zap.Int64("linkedWriteNs", res.LinkedWrite),
		zap.Int64("linkedReadNs", res.LinkedRead))

	if err := WriteTimings(w, res); err != nil {
		return res, errors.Trace(err)
	}
	return res, nil
}

// elapsed runs fn between two monotonic clock samples and returns the
// difference in nanoseconds.
func elapsed(fn func()) int64 {
	start := time.Now()
	fn()
	d := time.Since(start)
	if d < 0 {
		d = 0
	}
	return d.Nanoseconds()
}
