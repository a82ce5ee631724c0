package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter writes every log line to all of its outputs. A failing output
// does not stop the others; its error is combined into the returned one.
type teeWriter struct {
	outputs []io.Writer
}

func newTeeWriter(outputs ...io.Writer) *teeWriter {
	return &teeWriter{outputs: outputs}
}

func (tw *teeWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, out := range tw.outputs {
		n, werr := out.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		written = true
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
