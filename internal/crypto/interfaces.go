package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. The plaintext is never stored.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Compare(hash, password string) error
}
