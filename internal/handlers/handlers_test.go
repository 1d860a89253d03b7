package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclaim/platformhost/internal/facade"
	"github.com/reclaim/platformhost/internal/messaging"
	"github.com/reclaim/platformhost/internal/sysinfo"
)

// MockPlatform implements platform.Platform for testing
type MockPlatform struct {
	OpenErr     error
	OpenedFiles []string
	OpenedURLs  []string
}

func (m *MockPlatform) OpenApplication(path string) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.OpenedFiles = append(m.OpenedFiles, path)
	return nil
}

func (m *MockPlatform) OpenURL(rawURL string) error {
	m.OpenedURLs = append(m.OpenedURLs, rawURL)
	return nil
}

func (m *MockPlatform) TakeScreenshot(string) error { return nil }

func (m *MockPlatform) Version() (string, error) { return "13.1", nil }

type fixedIdentity struct{}

func (fixedIdentity) Username() string  { return "bob" }
func (fixedIdentity) MachineID() string { return "0b6e1c1e-6f0a-5d7c-8a55-5e2c1a9a0c11" }
func (fixedIdentity) NewUUID() string   { return "3f2504e0-4f89-41d3-9a0c-0305e82c3301" }

func newHandler(p *MockPlatform) *Handler {
	f := facade.New(facade.Deps{
		Platform: p,
		Query:    sysinfo.New(p, zerolog.Nop()),
		Identity: fixedIdentity{},
		Logger:   zerolog.Nop(),
		Observer: MetricsObserver(),
	})
	return New(f, zerolog.Nop())
}

func TestHandle_Ping(t *testing.T) {
	resp := newHandler(&MockPlatform{}).Handle(&messaging.Message{ID: "a", Method: MethodPing})

	assert.True(t, resp.Success)
	assert.Equal(t, "a", resp.ID)
	assert.Equal(t, "pong", resp.Result)
}

func TestHandle_ListMethods(t *testing.T) {
	resp := newHandler(&MockPlatform{}).Handle(&messaging.Message{Method: MethodListMethods})

	require.True(t, resp.Success)
	names, ok := resp.Result.([]string)
	require.True(t, ok)
	assert.Contains(t, names, facade.OpGetOSType)
	assert.Contains(t, names, facade.OpGetID)
	assert.Contains(t, names, MethodPing)
	assert.IsIncreasing(t, names)
}

func TestHandle_Query(t *testing.T) {
	h := newHandler(&MockPlatform{})

	resp := h.Handle(&messaging.Message{ID: "1", Method: facade.OpGetVersion})
	require.True(t, resp.Success)
	assert.Equal(t, "1", resp.ID)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","success":true,"result":"13.1"}`, string(data))
}

func TestHandle_AliasSameAsCanonical(t *testing.T) {
	h := newHandler(&MockPlatform{})

	a := h.Handle(&messaging.Message{Method: facade.OpGetID})
	b := h.Handle(&messaging.Message{Method: facade.OpGetMachineID})
	assert.Equal(t, b, a)
}

func TestHandle_UnknownMethod(t *testing.T) {
	resp := newHandler(&MockPlatform{}).Handle(&messaging.Message{ID: "x", Method: "format"})

	assert.False(t, resp.Success)
	assert.Equal(t, "x", resp.ID)
	assert.Equal(t, messaging.ErrCodeUnknownMethod, resp.Error)
	assert.Equal(t, "Unknown method: format", resp.Message)
}

func TestHandle_InvalidArgumentsNeverReachPlatform(t *testing.T) {
	p := &MockPlatform{}
	h := newHandler(p)

	tests := []struct {
		name string
		msg  messaging.Message
	}{
		{name: "missing", msg: messaging.Message{Method: facade.OpOpenApplication}},
		{name: "number", msg: messaging.Message{Method: facade.OpOpenURL, Args: []any{1.0}}},
		{name: "null", msg: messaging.Message{Method: facade.OpTakeScreenshot, Args: []any{nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Handle(&tt.msg)
			assert.False(t, resp.Success)
			assert.Equal(t, messaging.ErrCodeInvalidArguments, resp.Error)
			assert.Contains(t, resp.Message, tt.msg.Method)
		})
	}
	assert.Empty(t, p.OpenedFiles)
	assert.Empty(t, p.OpenedURLs)
}

func TestHandle_OpenApplication(t *testing.T) {
	p := &MockPlatform{}
	resp := newHandler(p).Handle(&messaging.Message{
		Method: facade.OpOpenApplication,
		Args:   []any{"/Applications/Numbers.app"},
	})

	assert.True(t, resp.Success)
	assert.Equal(t, facade.Bool(true), resp.Result)
	assert.Equal(t, []string{"/Applications/Numbers.app"}, p.OpenedFiles)
}

func TestHandle_OpenApplicationFailureIsFalseNotError(t *testing.T) {
	p := &MockPlatform{OpenErr: errors.New("no default app")}
	resp := newHandler(p).Handle(&messaging.Message{
		Method: facade.OpOpenApplication,
		Args:   []any{"/nonexistent/file.xyz"},
	})

	assert.True(t, resp.Success, "the call itself succeeded")
	assert.Empty(t, resp.Error)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"result":false}`, string(data))
}

func TestBadRequest(t *testing.T) {
	resp := BadRequest(errors.New("failed to unmarshal message"))
	assert.False(t, resp.Success)
	assert.Equal(t, messaging.ErrCodeBadRequest, resp.Error)
}
