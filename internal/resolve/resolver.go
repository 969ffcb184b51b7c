package resolve

import (
	"context"

	"github.com/systmms/summon-keepass/internal/config"
	dserrors "github.com/systmms/summon-keepass/internal/errors"
	"github.com/systmms/summon-keepass/internal/logging"
	"github.com/systmms/summon-keepass/pkg/secretstore"
)

// State is a step of a single resolution.
type State int

const (
	StateStart State = iota
	StateParsedInputs
	StateConfigResolved
	StateStoreOpened
	StateEntryLocated
	StateFieldExtracted
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateParsedInputs:
		return "ParsedInputs"
	case StateConfigResolved:
		return "ConfigResolved"
	case StateStoreOpened:
		return "StoreOpened"
	case StateEntryLocated:
		return "EntryLocated"
	case StateFieldExtracted:
		return "FieldExtracted"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// StoreOpener opens and decrypts a store, returning its root group.
type StoreOpener interface {
	Open(path string, passphrase []byte) (secretstore.Group, error)
}

// Outcome is the terminal result of Resolve. Exactly one of Value and Err
// is meaningful, depending on State.
type Outcome struct {
	State State
	Value string
	Err   error
}

// ExitCode returns the process exit code for the outcome.
func (o Outcome) ExitCode() int {
	return dserrors.ExitCode(o.Err)
}

// Resolver drives one secret through parse, configure, open, locate and
// extract. Every step either advances the state or fails the resolution.
type Resolver struct {
	sources config.Sources
	opener  StoreOpener
	logger  *logging.Logger
}

// New creates a resolver.
func New(sources config.Sources, opener StoreOpener, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewWithWriter(nil, false, true)
	}
	if sources.Logger == nil {
		sources.Logger = logger
	}
	return &Resolver{
		sources: sources,
		opener:  opener,
		logger:  logger,
	}
}

// run carries data between steps.
type run struct {
	raw   string
	ref   secretstore.SecretRef
	cfg   *config.Config
	root  secretstore.Group
	entry secretstore.Entry
	value string
}

type step struct {
	next State
	fn   func(ctx context.Context, r *run) error
}

// Resolve summons the secret addressed by raw. The reference is parsed
// before configuration is read, so a malformed reference is reported even
// when the store settings are missing too.
func (r *Resolver) Resolve(ctx context.Context, raw string) Outcome {
	steps := []step{
		{StateParsedInputs, r.parse},
		{StateConfigResolved, r.configure},
		{StateStoreOpened, r.open},
		{StateEntryLocated, r.locate},
		{StateFieldExtracted, r.extract},
	}

	cur := &run{raw: raw}
	defer func() { cur.cfg.Destroy() }()

	state := StateStart
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return r.fail(state, err)
		}
		if err := s.fn(ctx, cur); err != nil {
			return r.fail(state, err)
		}
		state = s.next
		r.logger.Debug("Resolution reached %s", state)
	}

	return Outcome{State: StateDone, Value: cur.value}
}

func (r *Resolver) fail(from State, err error) Outcome {
	kind, _ := dserrors.KindOf(err)
	r.logger.Debug("Resolution failed after %s: %s", from, kind)
	return Outcome{State: StateFailed, Err: err}
}

func (r *Resolver) parse(_ context.Context, cur *run) error {
	ref, err := secretstore.ParseSecretRef(cur.raw)
	if err != nil {
		return dserrors.InvalidAddress(err)
	}
	cur.ref = ref
	r.logger.Debug("Parsed %q into path %v, field %q", cur.raw, ref.Path, ref.Field)
	return nil
}

func (r *Resolver) configure(_ context.Context, cur *run) error {
	cfg, err := config.Resolve(r.sources)
	if err != nil {
		return err
	}
	cur.cfg = cfg
	return nil
}

func (r *Resolver) open(_ context.Context, cur *run) error {
	r.logger.Debug("Opening store %s", cur.cfg.StorePath)
	err := cur.cfg.Passphrase.Use(func(passphrase []byte) error {
		root, err := r.opener.Open(cur.cfg.StorePath, passphrase)
		if err != nil {
			return err
		}
		cur.root = root
		return nil
	})
	if err != nil {
		return dserrors.StoreOpen(err)
	}
	return nil
}

func (r *Resolver) locate(_ context.Context, cur *run) error {
	entry, ok := secretstore.Locate(cur.root, cur.ref.Path)
	if !ok {
		return dserrors.NotRetrievable(secretstore.NotFoundError{Ref: cur.raw})
	}
	cur.entry = entry
	return nil
}

func (r *Resolver) extract(_ context.Context, cur *run) error {
	value, ok := secretstore.ReadField(cur.entry, cur.ref.Field)
	if !ok {
		return dserrors.NotRetrievable(secretstore.NotFoundError{Ref: cur.raw})
	}
	cur.value = value
	r.logger.Debug("Read field %q: %s", cur.ref.Field, logging.Secret(value))
	return nil
}
