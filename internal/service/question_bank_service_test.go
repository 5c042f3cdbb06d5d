package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/lshigami/QuizHub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvHeader = "Question Text,Question Type,Options,Correct Answer,Complexity Level,Subject\n"

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []model.Option
		wantErr bool
	}{
		{
			name:  "colon separated",
			input: "A: Paris, B: London, C: Rome",
			want:  []model.Option{{Letter: "A", Text: "Paris"}, {Letter: "B", Text: "London"}, {Letter: "C", Text: "Rome"}},
		},
		{
			name:  "dot separated",
			input: "A. 3, B. 4",
			want:  []model.Option{{Letter: "A", Text: "3"}, {Letter: "B", Text: "4"}},
		},
		{
			name:  "no options",
			input: "just text",
			want:  []model.Option{},
		},
		{
			name:    "duplicate letter",
			input:   "A: one, A: two",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestionRow(t *testing.T) {
	row := func(text, typ, options, correct, complexity string) map[string]string {
		return map[string]string{
			ColumnQuestionText: text,
			ColumnQuestionType: typ,
			ColumnOptions:      options,
			ColumnCorrect:      correct,
			ColumnComplexity:   complexity,
		}
	}

	t.Run("objective", func(t *testing.T) {
		q, err := parseQuestionRow(row("Capital of France?", "Objective", "A: Paris, B: London", "a", "EASY"))
		require.NoError(t, err)
		assert.Equal(t, model.QuestionTypeObjective, q.Type)
		assert.Equal(t, model.ComplexityEasy, q.Complexity)
		assert.Equal(t, "A", q.CorrectAnswer)
		assert.Len(t, q.Options, 2)
		assert.Nil(t, q.Subject)
	})

	t.Run("fill in the blanks alias", func(t *testing.T) {
		q, err := parseQuestionRow(row("The sky is ___", "fill in the blanks", "", "blue", "moderate"))
		require.NoError(t, err)
		assert.Equal(t, model.QuestionTypeFillBlank, q.Type)
		assert.Equal(t, "blue", q.CorrectAnswer)
		assert.Empty(t, q.Options)
	})

	failures := []struct {
		name string
		row  map[string]string
		msg  string
	}{
		{"missing text", row("", "objective", "A: x, B: y", "A", "easy"), "missing required fields"},
		{"bad type", row("Q", "essay", "", "x", "easy"), "invalid question type"},
		{"bad complexity", row("Q", "fill_blank", "", "x", "hard"), "invalid complexity"},
		{"no options", row("Q", "objective", "", "A", "easy"), "options required"},
		{"one option", row("Q", "objective", "A: only", "A", "easy"), "at least 2 options"},
		{"answer not an option", row("Q", "objective", "A: x, B: y", "C", "easy"), "does not match any option"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuestionRow(tt.row)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestQuestionBank_ImportCSV(t *testing.T) {
	db := testutil.NewDB(t)
	bank := NewQuestionBankService(repository.NewQuestionRepository(db))
	ctx := context.Background()

	csv := csvHeader +
		`"Capital of France?",objective,"A: Paris, B: London, C: Rome",A,easy,Geography` + "\n" +
		`"The sky is ___",fill in the blanks,,blue,moderate,` + "\n" +
		"\n"

	resp, err := bank.ImportFile(ctx, "questions.CSV", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Questions, 2)
	assert.NotZero(t, resp.Questions[0].ID)
	assert.Equal(t, model.QuestionTypeFillBlank, resp.Questions[1].Type)

	detail, err := bank.GetQuestion(ctx, resp.Questions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "A", detail.CorrectAnswer)
	require.NotNil(t, detail.Subject)
	assert.Equal(t, "Geography", *detail.Subject)
	assert.Len(t, detail.Options, 3)

	stats, err := bank.GetPoolStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.ByComplexity[model.ComplexityEasy])
	assert.EqualValues(t, 0, stats.ByComplexity[model.ComplexityComplex])
	assert.False(t, stats.CanServeQuiz)
}

func TestQuestionBank_ImportRejectsWholeFile(t *testing.T) {
	db := testutil.NewDB(t)
	bank := NewQuestionBankService(repository.NewQuestionRepository(db))
	ctx := context.Background()

	csv := csvHeader +
		`"Good question",objective,"A: x, B: y",A,easy,` + "\n" +
		`"Bad type",essay,,x,easy,` + "\n" +
		`"Bad answer",objective,"A: x, B: y",D,complex,` + "\n"

	_, err := bank.ImportFile(ctx, "questions.csv", strings.NewReader(csv))
	var validation *QuestionValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 1, validation.ValidQuestions)
	require.Len(t, validation.Errors, 2)
	assert.True(t, strings.HasPrefix(validation.Errors[0], "Row 3:"), validation.Errors[0])
	assert.True(t, strings.HasPrefix(validation.Errors[1], "Row 4:"), validation.Errors[1])

	stats, err := bank.GetPoolStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestQuestionBank_ImportXLSX(t *testing.T) {
	db := testutil.NewDB(t)
	bank := NewQuestionBankService(repository.NewQuestionRepository(db))

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{ColumnQuestionText, ColumnQuestionType, ColumnOptions, ColumnCorrect, ColumnComplexity, ColumnSubject},
		{"Largest planet?", "objective", "A. Mars, B. Jupiter", "B", "complex", "Astronomy"},
		{"H2O is ___", "fill_blank", "", "water", "easy", ""},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	resp, err := bank.ImportFile(context.Background(), "bank.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, model.ComplexityComplex, resp.Questions[0].Complexity)
}

func TestQuestionBank_ImportErrors(t *testing.T) {
	db := testutil.NewDB(t)
	bank := NewQuestionBankService(repository.NewQuestionRepository(db))
	ctx := context.Background()

	_, err := bank.ImportFile(ctx, "questions.txt", strings.NewReader(csvHeader))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = bank.ImportFile(ctx, "questions.csv", strings.NewReader(csvHeader))
	assert.ErrorIs(t, err, ErrNoQuestionsFound)

	_, err = bank.ImportFile(ctx, "questions.xlsx", strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrFileParse)

	_, err = bank.ImportFile(ctx, "questions.csv", strings.NewReader(csvHeader+`"Unterminated,objective,"A: x, B: y",A,easy,`+"\n"))
	assert.ErrorIs(t, err, ErrFileParse)

	_, err = bank.GetQuestion(ctx, 12345)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionBank_ImportCSVWithByteOrderMark(t *testing.T) {
	db := testutil.NewDB(t)
	bank := NewQuestionBankService(repository.NewQuestionRepository(db))

	csv := "\uFEFF" + csvHeader +
		`"Capital of France?",objective,"A: Paris, B: London",A,easy,Geography` + "\n"

	resp, err := bank.ImportFile(context.Background(), "excel-export.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Capital of France?", resp.Questions[0].Text)
	assert.Equal(t, model.QuestionTypeObjective, resp.Questions[0].Type)
	assert.Equal(t, model.ComplexityEasy, resp.Questions[0].Complexity)
}
