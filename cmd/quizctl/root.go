package main

import (
	"context"

	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/database"
	"github.com/lshigami/QuizHub/internal/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:          "quizctl",
	Short:        "QuizHub administration tool",
	Long:         "quizctl manages the QuizHub database: migrations, question imports, users and access tokens.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("sqlite", "", "Path to a SQLite database file (overrides DATABASE_DRIVER)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(userCmd)
}

// loadEnv reads the server configuration and opens its database. The
// --sqlite flag switches to a local file.
func loadEnv(cmd *cobra.Command) (*config.Config, *gorm.DB, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel)

	if path, _ := cmd.Flags().GetString("sqlite"); path != "" {
		cfg.Database.Driver = database.DriverSQLite
		cfg.Database.SQLitePath = path
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
