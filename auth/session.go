package auth

import (
	"context"
	"net/http"
	"strings"

	"safeindiatransport/models"
)

// Session is the explicit, resolved identity of a caller. Handlers and
// repositories take it as a value; there is no ambient auth state.
type Session struct {
	UserID  string
	Role    string
	PartyID string
}

// IsAdmin reports whether the session may perform writes.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// RequireAdmin is the write-boundary check: every mutating data access
// must pass it before touching a repository.
func RequireAdmin(s *Session) error {
	if !s.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// ResolveSession turns a bearer token into a Session. A missing or invalid
// token is an error, never a nil-role session.
func (s *JWTService) ResolveSession(tokenString string) (*Session, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return &Session{
		UserID:  claims.Subject,
		Role:    claims.Role,
		PartyID: claims.PartyID,
	}, nil
}

type sessionKey struct{}

// WithSession stores a resolved session on a request context.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFrom returns the session resolved by the auth middleware, or nil.
func SessionFrom(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey{}).(*Session)
	return sess
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(h)
}
