package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// SearchKeySigner derives cache keys for search criteria. The key is the
// HS256 signature over the serialized criteria, so equal criteria always map
// to the same key. It is an identifier, not a security boundary.
type SearchKeySigner struct {
	secret []byte
}

// NewSearchKeySigner creates a signer with the given HMAC secret.
func NewSearchKeySigner(secret string) *SearchKeySigner {
	return &SearchKeySigner{secret: []byte(secret)}
}

// Key returns the signature for c. Callers pass normalized criteria.
func (s *SearchKeySigner) Key(c domain.SearchCriteria) (string, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("serialize search criteria: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"requestPayload": string(payload),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign search criteria: %w", err)
	}

	return signed[strings.LastIndexByte(signed, '.')+1:], nil
}
