// Package seqbench compares a contiguous array sequence with a doubly
// linked node sequence on memory footprint and on timed access loops.
//
// # Overview
//
// The two containers behave very differently:
//
//   - ArraySequence ([]int) gives O(1) access by index and cheap appends, but
//     inserting at the front shifts every element, which is O(n) per insert.
//   - LinkedSequence (container/list) inserts at either end, or next to a known
//     node, in O(1), but reaching position i means walking i nodes, and each
//     node is a separate allocation carrying two pointers and a boxed value.
//
// # Basic Usage
//
//	r, err := seqbench.NewRunner(seqbench.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	res, err := r.Run(ctx, os.Stdout)
//
// Run prints the two footprint lines, prepends DefaultPrependCount values to
// both sequences, then times array write, array read, linked write and
// linked read, printing each in that order.
//
// # Footprint Accounting
//
// The footprint figures are estimates, not measurements:
//
//   - array: len * sizeof(int); the slice header is not counted
//   - linked: sizeof(list.List) + len * sizeof(int); node pointers,
//     interface boxing and allocator metadata are not counted
//
// The linked figure therefore understates real usage by a wide margin.
// The formulas are kept this way so results stay comparable with earlier
// published runs.
//
// # Known Quirk
//
// The linked write loop copies each value into a local and assigns the
// counter to the copy. The list is never modified; the loop measures a
// traversal plus a dead store.
//
// # Timings
//
// Each loop is timed once with the monotonic clock. There is no warm-up and
// no repetition, so numbers are illustrative only. Use the testing.B
// benchmarks in this package for repeatable figures.
package seqbench
