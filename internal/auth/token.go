package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"reviewboard/internal/domain"
)

// Claims are the stateless session claims. There is no server-side session
// store and no revocation list; a token stays valid until it expires.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// DefaultTokenTTL is the token lifetime when none is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Issuer signs and verifies HS256 bearer tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) Issue(id domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   id.UserID,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Any parse, signature or expiry failure
// comes back as domain.ErrInvalidToken; callers never learn which.
func (i *Issuer) Verify(tokenStr string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return domain.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
