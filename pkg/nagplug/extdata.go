package nagplug

import "strings"

// ExtData collects free-text lines shown after the summary line. Insertion
// order is preserved, duplicates and empty lines are kept. The zero value
// is ready to use.
type ExtData struct {
	lines []string
}

// Add appends one line.
func (e *ExtData) Add(line string) {
	e.lines = append(e.lines, line)
}

// Len returns the number of collected lines.
func (e *ExtData) Len() int {
	return len(e.lines)
}

// String joins all lines with newlines, empty when nothing was added.
func (e *ExtData) String() string {
	return strings.Join(e.lines, "\n")
}

// Writer returns an io.Writer that appends every written line to the
// collector, so any logging facility can be pointed at it. A trailing
// newline does not produce an empty line.
func (e *ExtData) Writer() *LineWriter {
	return &LineWriter{ext: e}
}

// LineWriter forwards written lines to an ExtData collector.
type LineWriter struct {
	ext *ExtData
}

func (w *LineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.ext.Add(line)
	}

	return len(p), nil
}
