package constants

// Cache key prefixes.
const (
	// SessionTokenPrefix maps an opaque token id to its owning user id.
	SessionTokenPrefix = "session:token:"
)

// AdminUsername owns the official (SRD) spells.
const AdminUsername = "Admin"

// TokenIDBytes is the entropy of a token identifier in bytes.
const TokenIDBytes = 32
