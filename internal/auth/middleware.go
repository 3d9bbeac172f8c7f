package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
)

var (
	// ErrUnauthorized means no usable bearer token was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the token is valid but lacks the editor role.
	ErrForbidden = errors.New("forbidden")
)

// EditorGuard authorizes question mutations with editor bearer tokens.
type EditorGuard struct {
	tokens *jwt.Manager
}

func NewEditorGuard(tokens *jwt.Manager) *EditorGuard {
	return &EditorGuard{tokens: tokens}
}

// Authorize checks the Authorization header of r.
func (g *EditorGuard) Authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ErrUnauthorized
	}

	// Parse "Bearer <token>"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return ErrUnauthorized
	}

	claims, err := g.tokens.Validate(parts[1])
	if err != nil {
		return errors.Join(ErrUnauthorized, err)
	}
	if claims.Role != jwt.RoleEditor {
		return ErrForbidden
	}
	return nil
}
