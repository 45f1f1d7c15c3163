package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/constants"
)

// GenerateTokenID creates an unguessable opaque token identifier from
// 256 bits of CSPRNG output, encoded as URL-safe base64.
func GenerateTokenID() (string, error) {
	buf := make([]byte, constants.TokenIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
