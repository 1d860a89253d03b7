package messaging

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// MaxMessageSize is the maximum allowed message size (1MB)
	MaxMessageSize = 1024 * 1024
)

// Error codes carried in Response.Error.
const (
	ErrCodeUnknownMethod    = "unknown_method"
	ErrCodeInvalidArguments = "invalid_arguments"
	ErrCodeBadRequest       = "bad_request"
)

// Message is a request from the embedding caller.
type Message struct {
	ID     string `json:"id,omitempty"`
	Method string `json:"method"`
	Args   []any  `json:"args,omitempty"`
}

// Response is sent back for every Message. Result is always present on
// success, as null for operations without a value.
type Response struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Result  any    `json:"result"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ReadMessage reads a length-prefixed JSON message from the given reader.
// Chrome's native messaging protocol uses a 32-bit little-endian length prefix.
func ReadMessage(r io.Reader) (*Message, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read message length: %w", err)
	}

	if length == 0 {
		return nil, fmt.Errorf("invalid message length: 0")
	}
	if length > MaxMessageSize {
		return nil, fmt.Errorf("message too large: %d bytes (max %d)", length, MaxMessageSize)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}

	var msg Message
	if err := json.Unmarshal(buf, &msg); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &msg, nil
}

// DecodeError is returned when a frame was read completely but its body is
// not a valid Message. The stream is still in sync after it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to unmarshal message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteMessage writes a length-prefixed JSON response to the given writer.
func WriteMessage(w io.Writer, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if len(data) > MaxMessageSize {
		return fmt.Errorf("response too large: %d bytes (max %d)", len(data), MaxMessageSize)
	}

	length := uint32(len(data))
	if err := binary.Write(w, binary.LittleEndian, length); err != nil {
		return fmt.Errorf("failed to write message length: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}

	return nil
}
