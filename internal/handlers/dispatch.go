package handlers

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/reclaim/platformhost/internal/facade"
	xlog "github.com/reclaim/platformhost/internal/log"
	"github.com/reclaim/platformhost/internal/messaging"
	"github.com/reclaim/platformhost/internal/metrics"
)

// Methods answered by the host itself rather than the facade.
const (
	MethodPing        = "ping"
	MethodListMethods = "listMethods"
)

// Dispatcher is the facade surface the handlers need.
type Dispatcher interface {
	Resolve(name string) (string, bool)
	Signature(name string) (facade.Signature, bool)
	Invoke(name string, args []any) (facade.Result, error)
	Names() []string
}

// Handler turns messages into responses.
type Handler struct {
	d      Dispatcher
	logger zerolog.Logger
}

// New returns a Handler dispatching to d.
func New(d Dispatcher, logger zerolog.Logger) *Handler {
	return &Handler{d: d, logger: logger}
}

// Handle validates msg and invokes the named operation.
func (h *Handler) Handle(msg *messaging.Message) messaging.Response {
	switch msg.Method {
	case MethodPing:
		return ok(msg, "pong")
	case MethodListMethods:
		names := append(h.d.Names(), MethodListMethods, MethodPing)
		sort.Strings(names)
		return ok(msg, names)
	}

	canonical, found := h.d.Resolve(msg.Method)
	if !found {
		metrics.RecordUnknownMethod()
		return fail(msg, messaging.ErrCodeUnknownMethod, "Unknown method: "+msg.Method)
	}

	sig, _ := h.d.Signature(canonical)
	if err := sig.Check(msg.Method, msg.Args); err != nil {
		metrics.RecordInvocation(canonical, metrics.OutcomeRejected)
		h.logger.Debug().Err(err).
			Str(xlog.FieldRequestID, msg.ID).
			Str(xlog.FieldOperation, canonical).
			Msg("rejected arguments")
		return fail(msg, messaging.ErrCodeInvalidArguments, err.Error())
	}

	res, err := h.d.Invoke(msg.Method, msg.Args)
	if errors.Is(err, facade.ErrUnknownOperation) {
		metrics.RecordUnknownMethod()
		return fail(msg, messaging.ErrCodeUnknownMethod, "Unknown method: "+msg.Method)
	}
	return ok(msg, res)
}

// BadRequest answers a frame that could not be decoded.
func BadRequest(err error) messaging.Response {
	return messaging.Response{
		Success: false,
		Error:   messaging.ErrCodeBadRequest,
		Message: err.Error(),
	}
}

func ok(msg *messaging.Message, result any) messaging.Response {
	return messaging.Response{ID: msg.ID, Success: true, Result: result}
}

func fail(msg *messaging.Message, code, text string) messaging.Response {
	return messaging.Response{ID: msg.ID, Success: false, Error: code, Message: text}
}
