package interp

import (
	"io"
	"strconv"
)

// Sink consumes the values of executed print statements, in program order.
type Sink interface {
	Emit(v int64) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(v int64) error

// Emit calls f(v).
func (f SinkFunc) Emit(v int64) error {
	return f(v)
}

// WriterSink writes each value in decimal followed by a newline. Writes are
// not buffered, so output printed before a fatal error is never lost.
type WriterSink struct {
	w   io.Writer
	buf []byte
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes v and a newline.
func (s *WriterSink) Emit(v int64) error {
	s.buf = strconv.AppendInt(s.buf[:0], v, 10)
	s.buf = append(s.buf, '\n')
	_, err := s.w.Write(s.buf)
	return err
}

// Collector records emitted values.
type Collector struct {
	Values []int64
}

// Emit appends v.
func (c *Collector) Emit(v int64) error {
	c.Values = append(c.Values, v)
	return nil
}

// Discard drops every value.
var Discard Sink = SinkFunc(func(int64) error { return nil })
