package service

//go:generate mockgen -destination=../../../mocks/mock_token_verifier.go -package=mocks github.com/Nikhar-savaliya/blogsite-api/internal/user/service TokenVerifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
)

type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// TokenService issues and verifies stateless HS256 access tokens. The secret
// is injected once at construction and shared read-only by all calls.
type TokenService struct {
	secret []byte
	expiry time.Duration

	now func() time.Time
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Issue signs a token asserting the given user id, valid from now until the
// configured expiry elapses.
func (ts *TokenService) Issue(userID string) (string, error) {
	now := ts.now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, nil
}

// Verify validates signature and expiry and returns the embedded user id.
// Expired tokens surface as ErrTokenExpired; anything else wrong with the
// token (tampering, wrong secret, malformed structure) as ErrTokenInvalid.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherror.ErrTokenExpired
		}
		return "", autherror.ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return "", autherror.ErrTokenInvalid
	}

	return claims.Subject, nil
}
