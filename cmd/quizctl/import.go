package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Import questions from a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		bank := service.NewQuestionBankService(repository.NewQuestionRepository(db))
		resp, err := bank.ImportFile(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			var validation *service.QuestionValidationError
			if errors.As(err, &validation) {
				for _, msg := range validation.Errors {
					cmd.PrintErrln(msg)
				}
			}
			return err
		}
		cmd.Printf("Imported %d questions.\n", resp.Count)
		return nil
	},
}
