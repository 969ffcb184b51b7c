// Package secure keeps sensitive bytes out of ordinary Go memory.
//
// It wraps the memguard library. Data handed to NewSecureBuffer is sealed in
// an encrypted enclave (XSalsa20Poly1305) and only decrypted into a locked,
// guard-paged buffer while it is actually needed:
//
//	buf := secure.NewSecureBuffer([]byte(passphrase))
//	defer buf.Destroy()
//
//	err := buf.Use(func(plaintext []byte) error {
//	    return openStore(path, plaintext)
//	})
//
// The plaintext slice passed to Use is wiped as soon as the callback
// returns, so callers must not retain it.
//
// Call memguard.Purge before the process exits to wipe every remaining
// enclave key and buffer.
//
// # Platform Behavior
//
// Memory locking needs RLIMIT_MEMLOCK headroom on Linux. The buffers used
// here are a few bytes long and fit in the default limit.
//
// This package does NOT protect against an attacker with access to the
// running process or against hardware-level attacks.
package secure
