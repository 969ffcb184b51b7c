package fakes

import (
	"sync"

	"github.com/systmms/summon-keepass/pkg/secretstore"
)

// FakeGroup is an in-memory secretstore.Group.
type FakeGroup struct {
	name    string
	groups  []secretstore.Group
	entries []secretstore.Entry
}

// NewGroup creates an empty group with the given name.
func NewGroup(name string) *FakeGroup {
	return &FakeGroup{name: name}
}

// WithGroup appends a child group and returns the receiver for chaining.
func (g *FakeGroup) WithGroup(child *FakeGroup) *FakeGroup {
	g.groups = append(g.groups, child)
	return g
}

// WithEntry appends a child entry and returns the receiver for chaining.
func (g *FakeGroup) WithEntry(child *FakeEntry) *FakeGroup {
	g.entries = append(g.entries, child)
	return g
}

// Name implements secretstore.Group.
func (g *FakeGroup) Name() string { return g.name }

// Groups implements secretstore.Group.
func (g *FakeGroup) Groups() []secretstore.Group { return g.groups }

// Entries implements secretstore.Group.
func (g *FakeGroup) Entries() []secretstore.Entry { return g.entries }

// FakeEntry is an in-memory secretstore.Entry that records field reads.
type FakeEntry struct {
	name   string
	fields map[string]string

	mu    sync.Mutex
	reads []string
}

// NewEntry creates an entry with no fields.
func NewEntry(name string) *FakeEntry {
	return &FakeEntry{
		name:   name,
		fields: make(map[string]string),
	}
}

// WithField sets a field value and returns the receiver for chaining.
func (e *FakeEntry) WithField(name, value string) *FakeEntry {
	e.fields[name] = value
	return e
}

// Name implements secretstore.Entry.
func (e *FakeEntry) Name() string { return e.name }

// Field implements secretstore.Entry.
func (e *FakeEntry) Field(name string) (string, bool) {
	e.mu.Lock()
	e.reads = append(e.reads, name)
	e.mu.Unlock()

	v, ok := e.fields[name]
	return v, ok
}

// Reads returns the field names requested so far, in order.
func (e *FakeEntry) Reads() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.reads))
	copy(out, e.reads)
	return out
}

// FakeOpener hands out a fixed tree, or a fixed error, and records the
// credentials it was called with.
type FakeOpener struct {
	Root secretstore.Group
	Err  error

	mu         sync.Mutex
	calls      int
	path       string
	passphrase string
}

// Open matches the resolver's StoreOpener signature.
func (o *FakeOpener) Open(path string, passphrase []byte) (secretstore.Group, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls++
	o.path = path
	o.passphrase = string(passphrase)

	if o.Err != nil {
		return nil, o.Err
	}
	return o.Root, nil
}

// Calls returns how many times Open was invoked.
func (o *FakeOpener) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// LastCredentials returns the path and passphrase of the last Open call.
func (o *FakeOpener) LastCredentials() (path, passphrase string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.path, o.passphrase
}
