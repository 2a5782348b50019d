package credential

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Token header constants required by RFC 7519.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type tokenHeader struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Claims is the claim set carried by tokens the Service issues. Subject
// holds the principal id; Extra carries provider-specific claims.
type Claims struct {
	Subject   string            `json:"sub"`
	Issuer    string            `json:"iss,omitempty"`
	ExpiresAt int64             `json:"exp,omitempty"`
	NotBefore int64             `json:"nbf,omitempty"`
	IssuedAt  int64             `json:"iat,omitempty"`
	Extra     map[string]string `json:"ext,omitempty"`
}

// valid checks temporal claims against now. Zero values are treated as
// unset per RFC 7519.
func (c Claims) valid(now time.Time) error {
	ts := now.Unix()
	if c.ExpiresAt > 0 && ts > c.ExpiresAt {
		return ErrExpiredCredential
	}
	if c.NotBefore > 0 && ts < c.NotBefore {
		return ErrInvalidCredential
	}
	return nil
}

// Service issues and verifies HS256 bearer tokens. The signing key lives
// in memory only and should be at least 32 bytes.
type Service struct {
	signingKey []byte
	clock      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceClock injects a time source for temporal claim checks.
func WithServiceClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService creates a token service with the provided signing key.
func NewService(signingKey []byte, opts ...ServiceOption) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	s := &Service{signingKey: signingKey, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue creates a signed token for the given claims.
func (s *Service) Issue(claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", ErrInvalidCredential
	}

	headerJSON, err := json.Marshal(tokenHeader{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", errors.Join(ErrInvalidCredential, err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", errors.Join(ErrInvalidCredential, err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Verify implements the Verifier interface. It checks the signature with
// a constant-time comparison, rejects unexpected algorithms, validates
// temporal claims, and requires a non-empty subject.
func (s *Service) Verify(ctx context.Context, bearer string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, errors.Join(ErrInvalidCredential, err)
	}

	parts := strings.Split(bearer, ".")
	if len(parts) != 3 {
		return Identity{}, ErrInvalidCredential
	}

	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return Identity{}, ErrInvalidCredential
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidCredential, err)
	}
	var header tokenHeader
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return Identity{}, errors.Join(ErrInvalidCredential, err)
	}
	// Reject unexpected algorithms to prevent algorithm confusion.
	if header.Algorithm != headerAlgorithm {
		return Identity{}, ErrInvalidCredential
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidCredential, err)
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Identity{}, errors.Join(ErrInvalidCredential, err)
	}

	if err := claims.valid(s.clock()); err != nil {
		return Identity{}, err
	}
	if claims.Subject == "" {
		return Identity{}, ErrInvalidCredential
	}

	identity := Identity{PrincipalID: claims.Subject}
	if len(claims.Extra) > 0 {
		identity.Claims = make(map[string]any, len(claims.Extra))
		for k, v := range claims.Extra {
			identity.Claims[k] = v
		}
	}
	return identity, nil
}

// sign creates a base64url-encoded HMAC-SHA256 signature.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
