package main

import (
	"fmt"

	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <email>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		if role != model.RoleParticipant && role != model.RoleAdmin {
			return fmt.Errorf("invalid role %q: must be %q or %q", role, model.RoleParticipant, model.RoleAdmin)
		}

		_, db, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		user := &model.User{Username: args[0], Email: args[1], Role: role}
		if err := repository.NewUserRepository(db).Create(cmd.Context(), user); err != nil {
			return err
		}
		cmd.Printf("Created user %d (%s, %s)\n", user.ID, user.Username, user.Role)
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("role", model.RoleParticipant, "Role: participant or admin")
	userCmd.AddCommand(userAddCmd)
}
