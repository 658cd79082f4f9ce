package seqbench

import (
	"fmt"
	"io"

	"github.com/pingcap/errors"
)

// WriteFootprint writes the two memory footprint lines.
func WriteFootprint(w io.Writer, fp Footprint) error {
	if _, err := fmt.Fprintf(w, "Array memory footprint: %d bytes\n", fp.Array); err != nil {
		return errors.Trace(err)
	}
	_, err := fmt.Fprintf(w, "Linked list memory footprint: %d bytes\n", fp.Linked)
	return errors.Trace(err)
}

// WriteTimings writes the four access timings in report order.
func WriteTimings(w io.Writer, res Result) error {
	lines := []struct {
		label string
		ns    int64
	}{
		{"Array write time", res.ArrayWrite},
		{"Array read time", res.ArrayRead},
		{"Linked list write time", res.LinkedWrite},
		{"Linked list read time", res.LinkedRead},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %d ns\n", l.label, l.ns); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
