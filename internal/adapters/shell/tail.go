package shell

import "strings"

// tailCap bounds how much trailing output a TailBuffer retains.
const tailCap = 2048

// TailBuffer is an io.Writer that keeps only the trailing bytes written to
// it. Installers stream full output elsewhere and keep a tail for error
// annotations.
type TailBuffer struct {
	buf []byte
}

// NewTailBuffer creates an empty TailBuffer.
func NewTailBuffer() *TailBuffer {
	return &TailBuffer{}
}

// Write appends p, discarding the oldest bytes beyond the cap.
func (t *TailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if len(t.buf) > tailCap {
		t.buf = t.buf[len(t.buf)-tailCap:]
	}
	return len(p), nil
}

// String returns the retained tail, trimmed of surrounding whitespace.
func (t *TailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}
