// Package facade is the name-addressed surface of the host: a fixed table of
// operation names bound to handlers over the query layer, the identity
// utility and the platform implementation.
package facade

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	xlog "github.com/reclaim/platformhost/internal/log"
	"github.com/reclaim/platformhost/internal/platform"
)

// ErrUnknownOperation is returned by Invoke for names that are not registered.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names.
const (
	OpGetType           = "getType"
	OpGetName           = "getName"
	OpGetVersion        = "getVersion"
	OpGetArchitecture   = "getArchitecture"
	OpGetProcessorCount = "getProcessorCount"
	OpGetUsername       = "getUsername"
	OpGetMachineID      = "getMachineId"
	OpCreateUUID        = "createUUID"
	OpOpenApplication   = "openApplication"
	OpOpenURL           = "openURL"
	OpTakeScreenshot    = "takeScreenshot"

	// Compatibility aliases.
	OpGetOSType = "getOSType"
	OpGetID     = "getId"
)

// aliases maps legacy names to the canonical operation they invoke.
var aliases = map[string]string{
	OpGetOSType: OpGetType,
	OpGetID:     OpGetMachineID,
}

// Outcome values passed to an Observer.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Querier answers the read-only host queries. *sysinfo.Info satisfies it.
type Querier interface {
	Type() string
	Name() string
	Version() string
	Architecture() string
	ProcessorCount() int
}

// Identity supplies user and installation identifiers. *identity.Provider
// satisfies it.
type Identity interface {
	Username() string
	MachineID() string
	NewUUID() string
}

// Observer is told about every completed invocation.
type Observer func(operation, outcome string)

// Deps are the collaborators a Facade dispatches to.
type Deps struct {
	Platform platform.Platform
	Query    Querier
	Identity Identity
	Logger   zerolog.Logger
	Observer Observer
}

// Handler runs one operation. A non-nil error is a normalized failure: the
// Result already carries what the caller sees and the error is only logged.
type Handler func(args Args) (Result, error)

type entry struct {
	handler   Handler
	signature Signature
}

// Facade maps operation names to handlers. The table is built by New and
// never modified, so a Facade is safe for concurrent use.
type Facade struct {
	table    map[string]entry
	logger   zerolog.Logger
	observer Observer
}

// New builds the dispatch table.
func New(deps Deps) *Facade {
	f := &Facade{
		logger:   deps.Logger,
		observer: deps.Observer,
	}
	q, id, p := deps.Query, deps.Identity, deps.Platform

	f.table = map[string]entry{
		OpGetType: {handler: func(Args) (Result, error) {
			return String(q.Type()), nil
		}},
		OpGetName: {handler: func(Args) (Result, error) {
			return String(q.Name()), nil
		}},
		OpGetVersion: {handler: func(Args) (Result, error) {
			return String(q.Version()), nil
		}},
		OpGetArchitecture: {handler: func(Args) (Result, error) {
			return String(q.Architecture()), nil
		}},
		OpGetProcessorCount: {handler: func(Args) (Result, error) {
			return Int(q.ProcessorCount()), nil
		}},
		OpGetUsername: {handler: func(Args) (Result, error) {
			return String(id.Username()), nil
		}},
		OpGetMachineID: {handler: func(Args) (Result, error) {
			return String(id.MachineID()), nil
		}},
		OpCreateUUID: {handler: func(Args) (Result, error) {
			return String(id.NewUUID()), nil
		}},
		OpOpenApplication: {signature: "s", handler: func(a Args) (Result, error) {
			return actionResult(p.OpenApplication(a.String(0)))
		}},
		OpOpenURL: {signature: "s", handler: func(a Args) (Result, error) {
			return actionResult(p.OpenURL(a.String(0)))
		}},
		OpTakeScreenshot: {signature: "s", handler: func(a Args) (Result, error) {
			return Void(), p.TakeScreenshot(a.String(0))
		}},
	}
	return f
}

// actionResult turns a platform error into the boolean the caller sees.
func actionResult(err error) (Result, error) {
	return Bool(err == nil), err
}

// Resolve returns the canonical operation for name, following aliases.
func (f *Facade) Resolve(name string) (string, bool) {
	if target, ok := aliases[name]; ok {
		name = target
	}
	_, ok := f.table[name]
	return name, ok
}

// Signature returns the argument signature of name.
func (f *Facade) Signature(name string) (Signature, bool) {
	canonical, ok := f.Resolve(name)
	if !ok {
		return "", false
	}
	return f.table[canonical].signature, true
}

// Names returns every accepted name, aliases included, sorted.
func (f *Facade) Names() []string {
	names := make([]string, 0, len(f.table)+len(aliases))
	for name := range f.table {
		names = append(names, name)
	}
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the operation registered under name. Arguments are expected to
// have been checked against Signature by the caller. The only error is
// ErrUnknownOperation; operation failures are reported through the Result.
func (f *Facade) Invoke(name string, args []any) (Result, error) {
	canonical, ok := f.Resolve(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	res, err := f.table[canonical].handler(Args(args))

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
		ev := f.logger.Warn()
		if errors.Is(err, platform.ErrUnsupported) {
			ev = f.logger.Info()
		}
		ev.Err(err).
			Str(xlog.FieldOperation, canonical).
			Str(xlog.FieldOutcome, outcome).
			Msg("operation failed")
	} else {
		f.logger.Debug().
			Str(xlog.FieldOperation, canonical).
			Str(xlog.FieldOutcome, outcome).
			Stringer("result", res).
			Msg("operation completed")
	}
	if canonical != name {
		f.logger.Debug().Str(xlog.FieldAlias, name).Str(xlog.FieldOperation, canonical).Msg("alias resolved")
	}
	if f.observer != nil {
		f.observer(canonical, outcome)
	}
	return res, nil
}
