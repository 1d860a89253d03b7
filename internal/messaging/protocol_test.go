package messaging

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMessageReader(t *testing.T, msg any) io.Reader {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return frame(data)
}

func frame(data []byte) io.Reader {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(data)))
	return bytes.NewReader(append(buf, data...))
}

func TestReadMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   func() io.Reader
		want    *Message
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message",
			input: func() io.Reader {
				return createMessageReader(t, Message{ID: "1", Method: "getName"})
			},
			want: &Message{ID: "1", Method: "getName"},
		},
		{
			name: "message with args",
			input: func() io.Reader {
				return createMessageReader(t, Message{Method: "openURL", Args: []any{"https://example.com"}})
			},
			want: &Message{Method: "openURL", Args: []any{"https://example.com"}},
		},
		{
			name: "empty reader (EOF)",
			input: func() io.Reader {
				return bytes.NewReader(nil)
			},
			wantErr: true,
		},
		{
			name: "zero length",
			input: func() io.Reader {
				buf := make([]byte, 4)
				binary.LittleEndian.PutUint32(buf, 0)
				return bytes.NewReader(buf)
			},
			wantErr: true,
			errMsg:  "invalid message length: 0",
		},
		{
			name: "message too large",
			input: func() io.Reader {
				buf := make([]byte, 4)
				binary.LittleEndian.PutUint32(buf, MaxMessageSize+1)
				return bytes.NewReader(buf)
			},
			wantErr: true,
			errMsg:  "message too large",
		},
		{
			name: "truncated body",
			input: func() io.Reader {
				buf := make([]byte, 4)
				binary.LittleEndian.PutUint32(buf, 100) // says 100 bytes
				buf = append(buf, []byte("short")...)   // only 5 bytes
				return bytes.NewReader(buf)
			},
			wantErr: true,
			errMsg:  "failed to read message body",
		},
		{
			name: "invalid JSON",
			input: func() io.Reader {
				return frame([]byte("not valid json"))
			},
			wantErr: true,
			errMsg:  "failed to unmarshal message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadMessage(tt.input())
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMessage_EOFIsBare(t *testing.T) {
	_, err := ReadMessage(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)
}

func TestReadMessage_DecodeErrorKeepsStreamInSync(t *testing.T) {
	var stream bytes.Buffer
	_, _ = io.Copy(&stream, frame([]byte("{broken")))
	_, _ = io.Copy(&stream, createMessageReader(t, Message{Method: "ping"}))

	_, err := ReadMessage(&stream)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))

	msg, err := ReadMessage(&stream)
	require.NoError(t, err)
	assert.Equal(t, "ping", msg.Method)
}

func TestWriteMessage(t *testing.T) {
	var buf bytes.Buffer
	resp := Response{ID: "7", Success: true, Result: "Linux"}
	require.NoError(t, WriteMessage(&buf, resp))

	var length uint32
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &length))
	assert.EqualValues(t, buf.Len(), length)
	assert.JSONEq(t, `{"id":"7","success":true,"result":"Linux"}`, buf.String())
}

func TestWriteMessage_VoidResultIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, Response{Success: true}))
	assert.JSONEq(t, `{"success":true,"result":null}`, buf.String()[4:])
}

func TestWriteMessage_Error(t *testing.T) {
	var buf bytes.Buffer
	resp := Response{Success: false, Error: ErrCodeUnknownMethod, Message: "Unknown method: x"}
	require.NoError(t, WriteMessage(&buf, resp))
	assert.JSONEq(t,
		`{"success":false,"result":null,"error":"unknown_method","message":"Unknown method: x"}`,
		buf.String()[4:])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteMessage_WriterError(t *testing.T) {
	err := WriteMessage(failingWriter{}, Response{Success: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write message length")
}
