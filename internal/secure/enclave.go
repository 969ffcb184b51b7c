package secure

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"
)

// ErrDestroyed is returned when a destroyed buffer is used.
var ErrDestroyed = errors.New("secure buffer has been destroyed")

// SecureBuffer provides memory-safe storage for sensitive data.
// It wraps memguard.Enclave to encrypt secrets at rest in memory.
type SecureBuffer struct {
	enclave *memguard.Enclave
	size    int
	mu      sync.RWMutex
	// destroyed allows idempotent Destroy() calls and rejects use after destroy
	destroyed bool
}

// NewSecureBuffer seals data into an enclave. memguard wipes data once it
// has been copied, so callers must pass a slice they no longer need.
func NewSecureBuffer(data []byte) *SecureBuffer {
	return &SecureBuffer{
		enclave: memguard.NewEnclave(data),
		size:    len(data),
	}
}

// NewSecureString seals a copy of s.
func NewSecureString(s string) *SecureBuffer {
	return NewSecureBuffer([]byte(s))
}

// Len returns the length of the sealed plaintext.
func (s *SecureBuffer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Empty reports whether the buffer holds no data.
func (s *SecureBuffer) Empty() bool {
	return s == nil || s.Len() == 0
}

// Open decrypts the protected data into a locked buffer. The caller MUST
// call Destroy() on the returned LockedBuffer when done.
//
// memguard refuses to seal zero-length data, so an empty buffer opens as an
// empty LockedBuffer.
func (s *SecureBuffer) Open() (*memguard.LockedBuffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed {
		return nil, ErrDestroyed
	}
	if s.enclave == nil {
		return memguard.NewBuffer(0), nil
	}
	return s.enclave.Open()
}

// Use opens the buffer, passes the plaintext to fn and wipes it afterwards.
func (s *SecureBuffer) Use(fn func(plaintext []byte) error) error {
	locked, err := s.Open()
	if err != nil {
		return err
	}
	defer locked.Destroy()

	return fn(locked.Bytes())
}

// Destroy marks the buffer as destroyed and drops the enclave. It is safe to
// call more than once.
func (s *SecureBuffer) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}
	s.enclave = nil
	s.destroyed = true
}
