package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "manage editor bearer tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "mint an editor token signed with EDITOR_JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE:  issueToken,
}

func issueToken(cmd *cobra.Command, args []string) error {
	signing, err := config.LoadSigning()
	if err != nil {
		return err
	}
	if signing.Security.EditorJWTSecret == "" {
		return errors.New("EDITOR_JWT_SECRET is not set")
	}

	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if ttl <= 0 {
		ttl = signing.Security.EditorTokenTTL
	}

	tokens := jwt.NewManager(jwt.TokenConfig{
		Secret: []byte(signing.Security.EditorJWTSecret),
		TTL:    ttl,
		Issuer: signing.Name,
	})
	token, err := tokens.Generate(subject, jwt.RoleEditor)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func init() {
	tokenIssueCmd.Flags().String("subject", "editor", "token subject")
	tokenIssueCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to EDITOR_TOKEN_TTL)")
	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
