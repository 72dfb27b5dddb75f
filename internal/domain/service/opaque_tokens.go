package service

// OpaqueTokens issues and verifies the one-time tokens mailed for email
// confirmation and password reset. Only the storage hash is persisted; the
// raw token travels in the email link and is compared by hashing again.
type OpaqueTokens interface {
	// Issue returns a fresh raw token and the hash to store for it.
	Issue() (raw string, hash string, err error)

	// Matches reports whether the raw token corresponds to the stored hash.
	Matches(raw, hash string) bool
}
