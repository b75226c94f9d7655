package svg2pts

import (
	"errors"
	"io"
	"strconv"
)

const (
	// maxCoordBytes is the worst-case width of one formatted coordinate:
	// shortest round-trip float64 text is at most 24 bytes, padded up for
	// safety.
	maxCoordBytes = 32

	// maxPointBytes is the worst-case width of one formatted point:
	// two coordinates, a separator and a newline.
	maxPointBytes = 2*maxCoordBytes + 2

	// sinkBufferSize is the capacity of the output buffer. Large enough
	// to amortize writes to the underlying sink, small enough to stay
	// cache friendly.
	sinkBufferSize = 8192
)

var errSinkClosed = errors.New("svg2pts: write on closed point sink")

// PointSink formats points as "<x> <y>\n" using the shortest decimal text
// that round-trips to the original float64, batching writes to the
// underlying io.Writer through a fixed-capacity buffer.
//
// The emitted Y coordinate is pageHeight - y, flipping the document's
// top-left-origin Y axis to a Cartesian bottom-left convention.
//
// A PointSink owns its writer for the duration of a run: no other
// component may write to it. Not safe for concurrent use.
type PointSink struct {
	w          io.Writer
	buf        []byte
	pageHeight float64
	err        error
	closed     bool
}

// NewPointSink creates a sink writing formatted points to w.
func NewPointSink(w io.Writer, pageHeight float64) *PointSink {
	return &PointSink{
		w:   w,
		buf: make([]byte, 0, sinkBufferSize),

		pageHeight: pageHeight,
	}
}

// WritePoint formats and buffers one point, flushing first if the buffer
// cannot hold a worst-case formatted point. Once a write to the
// underlying sink has failed, all further calls return that error.
func (s *PointSink) WritePoint(p Point) error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return errSinkClosed
	}
	if cap(s.buf)-len(s.buf) < maxPointBytes {
		if err := s.flush(); err != nil {
			return err
		}
	}
	s.buf = strconv.AppendFloat(s.buf, p.X, 'g', -1, 64)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendFloat(s.buf, s.pageHeight-p.Y, 'g', -1, 64)
	s.buf = append(s.buf, '\n')
	return nil
}

// Flush writes any buffered bytes to the underlying sink.
func (s *PointSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.flush()
}

// Close flushes any remaining buffered bytes and marks the sink closed.
// Close is idempotent: the first call performs the finalizing flush and
// reports its error; subsequent calls are no-ops returning nil.
func (s *PointSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.err != nil {
		return s.err
	}
	return s.flush()
}

func (s *PointSink) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	_, err := s.w.Write(s.buf)
	s.buf = s.buf[:0]
	if err != nil {
		s.err = err
	}
	return err
}
