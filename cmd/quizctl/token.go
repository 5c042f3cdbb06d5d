package main

import (
	"github.com/lshigami/QuizHub/internal/auth"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetUint("user-id")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, _, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		token, err := auth.IssueToken(cfg.Auth.JWTSecret, userID, ttl)
		if err != nil {
			return err
		}
		cmd.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Uint("user-id", 0, "User ID to embed in the token")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime, e.g. 24h (0 means no expiry)")
	_ = tokenCmd.MarkFlagRequired("user-id")
}
