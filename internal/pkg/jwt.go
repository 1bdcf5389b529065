package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
	ErrMissingSecret     = errors.New("signing secret not configured")
)

// TokenTTL is the absolute lifetime of an issued credential.
const TokenTTL = 6 * time.Hour

var signingSecret []byte

// SetSecret installs the signing secret. It must be called once at
// startup; an empty secret is a fatal configuration error.
func SetSecret(secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	signingSecret = []byte(secret)
	return nil
}

// Claims carries the verified identity: subject user id and whether
// the subject holds the admin tier.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed credential for the subject.
func GenerateToken(subject string, admin bool) (string, error) {
	if len(signingSecret) == 0 {
		return "", ErrMissingSecret
	}
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})
	return token.SignedString(signingSecret)
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	if len(signingSecret) == 0 {
		return nil, ErrMissingSecret
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return signingSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenInvalid
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenParseFailure
	}
	return token.Claims.(*Claims), nil
}
