package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestTokenIssue(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "trivia-api")
	t.Setenv("EDITOR_JWT_SECRET", "s3cret")

	token, err := runCLI(t, "token", "issue", "--subject", "ops")
	require.NoError(t, err)

	claims, err := jwt.NewManager(jwt.TokenConfig{Secret: []byte("s3cret")}).Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, jwt.RoleEditor, claims.Role)
}

func TestTokenIssueWithoutSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("EDITOR_JWT_SECRET", "")

	_, err := runCLI(t, "token", "issue")
	assert.ErrorContains(t, err, "EDITOR_JWT_SECRET")
}
