// Package identity provides the user and installation identifiers the facade
// exposes: the current username, a stable machine id and fresh UUIDs.
package identity

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reclaim/platformhost/internal/fsutil"
	xlog "github.com/reclaim/platformhost/internal/log"
)

// Unknown is returned when the username cannot be determined.
const Unknown = "unknown"

// machineNamespace scopes the name-based UUIDs derived from OS installation ids.
var machineNamespace = uuid.MustParse("6f1c7a52-3d0e-4b8a-9c41-2e5d7b9f0a13")

// Options configures a Provider.
type Options struct {
	// MachineIDFile is where the machine id is persisted. Empty means
	// DefaultMachineIDFile().
	MachineIDFile string
	Logger        zerolog.Logger
}

// Provider answers identity queries. The machine id is resolved once per
// Provider and persisted so later processes see the same value.
type Provider struct {
	path      string
	logger    zerolog.Logger
	hostID    func() (string, error)
	lookupEnv func(string) (string, bool)

	once      sync.Once
	machineID string
}

// New returns a Provider.
func New(opts Options) *Provider {
	path := opts.MachineIDFile
	if path == "" {
		path = DefaultMachineIDFile()
	}
	return &Provider{
		path:      path,
		logger:    opts.Logger,
		hostID:    installationID,
		lookupEnv: os.LookupEnv,
	}
}

// DefaultMachineIDFile returns the per-user location of the machine id.
func DefaultMachineIDFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "reclaim-platform", "machine-id")
}

// Username returns the login name of the current user.
func (p *Provider) Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return stripDomain(u.Username)
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v, ok := p.lookupEnv(key); ok && v != "" {
			return v
		}
	}
	return Unknown
}

// stripDomain drops the "DOMAIN\" prefix Windows includes in account names.
func stripDomain(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}

// NewUUID returns a random (version 4) UUID string.
func (p *Provider) NewUUID() string {
	return uuid.NewString()
}

// MachineID returns an identifier that is stable for this user and OS
// installation.
func (p *Provider) MachineID() string {
	p.once.Do(func() {
		p.machineID = p.resolveMachineID()
	})
	return p.machineID
}

func (p *Provider) resolveMachineID() string {
	logger := p.logger.With().Str(xlog.FieldPath, p.path).Logger()

	id, err := readMachineID(p.path)
	if err == nil {
		return id
	}
	if !errors.Is(err, os.ErrNotExist) {
		logger.Warn().Err(err).Msg("stored machine id unusable, regenerating")
	}

	id = p.deriveMachineID()
	if err := writeMachineID(p.path, id); err != nil {
		logger.Warn().Err(err).Msg("persist machine id")
	} else {
		logger.Info().Msg("machine id created")
	}
	return id
}

// deriveMachineID hashes the OS installation id with the username, falling
// back to a random id when the OS has none.
func (p *Provider) deriveMachineID() string {
	host, err := p.hostID()
	if err != nil || host == "" {
		p.logger.Debug().Err(err).Msg("no os installation id, using random machine id")
		return uuid.NewString()
	}
	return uuid.NewSHA1(machineNamespace, []byte(host+"\x00"+p.Username())).String()
}

func readMachineID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(string(data))
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("parse machine id: %w", err)
	}
	return id, nil
}

func writeMachineID(path, id string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create machine id dir: %w", err)
	}
	return fsutil.WriteFileAtomic(path, []byte(id+"\n"), 0o600)
}
