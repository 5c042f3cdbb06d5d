package main

import (
	"github.com/lshigami/QuizHub/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		cmd.Println("Database schema is up to date.")
		return nil
	},
}
