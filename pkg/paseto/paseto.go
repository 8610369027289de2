package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"event-checkin-backend/models"
)

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

// Init decodes the configured secret and arms the package. Must be
// called once at startup before any token is issued or checked.
func Init(secretBase64 string) error {
	// Accept the usual base64 variants, deployments keep getting the
	// padding wrong.
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decodedKey, err = base64.URLEncoding.WithPadding(base64.StdPadding).DecodeString(secretBase64)
		if err != nil {
			decodedKey, err = base64.StdEncoding.DecodeString(secretBase64)
			if err != nil {
				return fmt.Errorf("failed to decode PASETO_SECRET: %w", err)
			}
		}
	}

	if len(decodedKey) != 32 {
		return fmt.Errorf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey))
	}

	symmetricKey = decodedKey
	return nil
}

// GenerateOperatorToken issues a gate session token for a volunteer.
// The token is the whole "session": losing it is logging out.
func GenerateOperatorToken(operatorName string) (string, error) {
	if symmetricKey == nil {
		return "", fmt.Errorf("paseto package is not initialized")
	}

	now := time.Now()
	exp := now.Add(12 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("operator_name", operatorName)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*models.OperatorClaims, error) {
	if symmetricKey == nil {
		return nil, fmt.Errorf("paseto package is not initialized")
	}

	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims := &models.OperatorClaims{
		OperatorName: token.Get("operator_name"),
	}
	if claims.OperatorName == "" {
		return nil, fmt.Errorf("token carries no operator name")
	}

	return claims, nil
}
