package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"safeindiatransport/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("insufficient permissions")
)

// Claims carried in a session token.
type Claims struct {
	Role    string `json:"role"`
	PartyID string `json:"partyId,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and validates session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// IssueToken creates a signed token for a logged-in user.
func (s *JWTService) IssueToken(user *models.AppUser) (string, error) {
	partyID := ""
	if user.PartyID != nil {
		partyID = *user.PartyID
	}

	now := time.Now()
	claims := Claims{
		Role:    user.Role,
		PartyID: partyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a token string and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
