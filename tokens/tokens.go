package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour // 7 days

var ErrInvalid = errors.New("invalid token")

// Claims carried inside an issued token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a single server-wide
// HS256 secret. There is no revocation: a leaked token stays valid until
// its natural expiry. The secret is injected here instead of living in a
// package global so tests can run with a fixed key.
type Service struct {
	secret []byte
}

func New(secret []byte) *Service {
	return &Service{secret: secret}
}

func (s *Service) Issue(userID, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and checks a token string. Bad signature, malformed
// payload and expiry all come back as ErrInvalid; callers must not
// surface the difference to clients.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
