package main

import (
	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question pool statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		bank := service.NewQuestionBankService(repository.NewQuestionRepository(db))
		stats, err := bank.GetPoolStats(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("easy:     %d\n", stats.ByComplexity[model.ComplexityEasy])
		cmd.Printf("moderate: %d\n", stats.ByComplexity[model.ComplexityModerate])
		cmd.Printf("complex:  %d\n", stats.ByComplexity[model.ComplexityComplex])
		cmd.Printf("total:    %d (can serve a quiz: %t)\n", stats.Total, stats.CanServeQuiz)
		return nil
	},
}
