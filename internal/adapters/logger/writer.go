package logger

import (
	"io"
)

// FanoutWriter writes every record to a primary writer and copies it to any
// number of secondary sinks. Only the primary's errors are reported: a slow
// or broken log viewer must not take stdout logging down with it.
type FanoutWriter struct {
	primary     io.Writer
	secondaries []io.Writer
}

// NewFanoutWriter creates a new FanoutWriter.
func NewFanoutWriter(primary io.Writer, secondaries ...io.Writer) *FanoutWriter {
	return &FanoutWriter{primary: primary, secondaries: secondaries}
}

func (f *FanoutWriter) Write(p []byte) (int, error) {
	n, err := f.primary.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	for _, w := range f.secondaries {
		_, _ = w.Write(p)
	}
	return n, err
}
