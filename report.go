package gridastar

import (
	"fmt"
	"io"
	"strings"
)

// FormatPath renders a path as "[(r,c), (r,c), ...]".
func FormatPath(path []Coordinate) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteReport prints the human-readable report of a search result.
func WriteReport(w io.Writer, res Result) error {
	var err error
	switch res.Outcome {
	case OutcomeFound:
		_, err = fmt.Fprintf(w, "Path: %s\nNumber of steps taken: %d.\n", FormatPath(res.Path), res.Steps)
	case OutcomeBlocked:
		_, err = fmt.Fprintln(w, "Source or the destination is blocked")
	case OutcomeUnreachable:
		_, err = fmt.Fprintln(w, "Unable to reach the destination")
	default:
		err = fmt.Errorf("unknown outcome %d", res.Outcome)
	}
	return err
}
