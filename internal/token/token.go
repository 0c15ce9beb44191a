// Package token issues, validates, and revokes the signed bearer tokens used
// for API authentication. Tokens are self-contained HS256 JWTs; revocation is
// handled by a denylist of token IDs kept until the token would have expired
// anyway.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "campusgate"
	audience = "campusgate-api"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Claims represents the JWT claims carried by a CampusGate token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// Service issues and verifies bearer tokens for a single signing key. Safe
// for concurrent use.
type Service struct {
	secret   []byte
	ttl      time.Duration
	denylist *denylist
}

// NewService creates a token Service signing with secret and issuing tokens
// valid for ttl.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: newDenylist(),
	}
}

// Issue creates a signed token bound to the given user ID.
func (s *Service) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Validate verifies the token's signature and expiry, then checks the
// revocation denylist. On success it returns the user ID the token is bound
// to.
func (s *Service) Validate(tokenString string) (int64, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}

	if s.denylist.contains(claims.ID) {
		return 0, ErrTokenRevoked
	}

	return claims.UserID, nil
}

// Invalidate marks the token non-reusable for its remaining lifetime. The
// token must still be valid: expired or malformed tokens cannot be revoked.
func (s *Service) Invalidate(tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}

	if claims.ID == "" {
		return ErrTokenInvalid
	}

	s.denylist.add(claims.ID, claims.ExpiresAt.Time)
	return nil
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
