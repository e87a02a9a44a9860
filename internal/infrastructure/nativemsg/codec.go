// Package nativemsg implements the browser native messaging framing:
// a 4-byte little-endian length followed by a UTF-8 JSON body.
package nativemsg

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

const (
	headerSize = 4

	// MaxOutgoingSize is the largest message a host may send to the browser.
	MaxOutgoingSize = 1 << 20
	// MaxIncomingSize bounds messages read from the browser.
	MaxIncomingSize = 64 << 20
)

var (
	// ErrMessageTooLarge is returned when a message exceeds the size limits.
	ErrMessageTooLarge = errors.New("native message too large")
	// ErrShortHeader is returned when the stream ends inside a length header.
	ErrShortHeader = errors.New("native message header truncated")
)

// Encode marshals v and prepends the length header.
func Encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal native message: %w", err)
	}
	return Frame(body)
}

// Frame prepends the length header to an already encoded JSON body.
func Frame(body []byte) ([]byte, error) {
	if len(body) > MaxOutgoingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(body))
	}
	buf := make([]byte, headerSize+len(body))
	binary.LittleEndian.PutUint32(buf, uint32(len(body)))
	copy(buf[headerSize:], body)
	return buf, nil
}

// ReadRaw reads one framed body from r. io.EOF is returned untouched when the
// stream ends cleanly between messages.
func ReadRaw(r io.Reader) ([]byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > MaxIncomingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read native message body: %w", err)
	}
	return body, nil
}

// Read reads one message from r and unmarshals it into v.
func Read(r io.Reader, v any) error {
	body, err := ReadRaw(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode native message: %w", err)
	}
	return nil
}

// Writer serialises framed messages onto w. Safe for concurrent use.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a framed writer, typically around os.Stdout.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMessage implements port.MessageWriter.
func (w *Writer) WriteMessage(v any) error {
	frame, err := Encode(v)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.w.Write(frame); err != nil {
		return fmt.Errorf("failed to write native message: %w", err)
	}
	return nil
}

// Decoder reassembles frames from arbitrarily chunked input.
type Decoder struct {
	buf []byte
}

// Feed appends a chunk of raw bytes.
func (d *Decoder) Feed(chunk []byte) {
	d.buf = append(d.buf, chunk...)
}

// Next returns the next complete body, or ok=false until enough bytes have
// been fed.
func (d *Decoder) Next() (body []byte, ok bool, err error) {
	if len(d.buf) < headerSize {
		return nil, false, nil
	}
	size := binary.LittleEndian.Uint32(d.buf[:headerSize])
	if size > MaxIncomingSize {
		return nil, false, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}
	end := headerSize + int(size)
	if len(d.buf) < end {
		return nil, false, nil
	}

	body = make([]byte, size)
	copy(body, d.buf[headerSize:end])
	d.buf = d.buf[end:]
	return body, true, nil
}

// Buffered reports how many bytes are waiting for a complete frame.
func (d *Decoder) Buffered() int {
	return len(d.buf)
}
