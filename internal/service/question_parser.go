package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lshigami/QuizHub/internal/model"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet column headers of a question upload.
const (
	ColumnQuestionText = "Question Text"
	ColumnQuestionType = "Question Type"
	ColumnOptions      = "Options"
	ColumnCorrect      = "Correct Answer"
	ColumnComplexity   = "Complexity Level"
	ColumnSubject      = "Subject"
)

var (
	ErrUnsupportedFileType = errors.New("only CSV and XLSX files are allowed")
	ErrFileParse           = errors.New("file parsing error")
)

// optionPattern matches "A: text" and "A. text" entries of the Options column.
var optionPattern = regexp.MustCompile(`([A-Z])[:.]\s*([^,]+)`)

// readSheetRows reads the first sheet of an upload into header-keyed rows.
func readSheetRows(filename string, r io.Reader) ([]map[string]string, error) {
	var records [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		all, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
		}
		records = all
	case ".xlsx":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrFileParse)
		}
		all, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
		}
		records = all
	default:
		return nil, ErrUnsupportedFileType
	}

	if len(records) == 0 {
		return nil, nil
	}
	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseQuestionRows validates upload rows. Row numbers in the returned
// messages count the header as row 1.
func parseQuestionRows(rows []map[string]string) ([]model.Question, []string) {
	var questions []model.Question
	var rowErrors []string

	for i, row := range rows {
		rowNum := i + 2
		question, err := parseQuestionRow(row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		questions = append(questions, question)
	}
	return questions, rowErrors
}

func parseQuestionRow(row map[string]string) (model.Question, error) {
	text := strings.TrimSpace(row[ColumnQuestionText])
	rawType := strings.TrimSpace(row[ColumnQuestionType])
	correct := strings.TrimSpace(row[ColumnCorrect])
	rawComplexity := strings.TrimSpace(row[ColumnComplexity])
	if text == "" || rawType == "" || correct == "" || rawComplexity == "" {
		return model.Question{}, errors.New("missing required fields")
	}

	var questionType string
	switch strings.ToLower(rawType) {
	case model.QuestionTypeObjective:
		questionType = model.QuestionTypeObjective
	case model.QuestionTypeFillBlank, "fill in the blanks":
		questionType = model.QuestionTypeFillBlank
	default:
		return model.Question{}, errors.New("invalid question type. Must be 'objective' or 'fill_blank'")
	}

	complexity := strings.ToLower(rawComplexity)
	switch complexity {
	case model.ComplexityEasy, model.ComplexityModerate, model.ComplexityComplex:
	default:
		return model.Question{}, errors.New("invalid complexity. Must be 'easy', 'moderate', or 'complex'")
	}

	question := model.Question{
		Text:          text,
		Type:          questionType,
		Complexity:    complexity,
		CorrectAnswer: correct,
	}
	if subject := strings.TrimSpace(row[ColumnSubject]); subject != "" {
		question.Subject = &subject
	}

	if questionType == model.QuestionTypeObjective {
		optionsText := strings.TrimSpace(row[ColumnOptions])
		if optionsText == "" {
			return model.Question{}, errors.New("options required for objective questions")
		}
		options, err := parseOptions(optionsText)
		if err != nil {
			return model.Question{}, err
		}
		if len(options) < 2 {
			return model.Question{}, errors.New("at least 2 options required")
		}
		letter := strings.ToUpper(correct)
		found := false
		for _, opt := range options {
			if opt.Letter == letter {
				found = true
				break
			}
		}
		if !found {
			return model.Question{}, fmt.Errorf("correct answer %q does not match any option letter", correct)
		}
		question.CorrectAnswer = letter
		question.Options = options
	}
	return question, nil
}

// parseOptions parses "A: first, B: second" (or "A. first, B. second").
func parseOptions(optionsText string) ([]model.Option, error) {
	matches := optionPattern.FindAllStringSubmatch(optionsText, -1)
	options := make([]model.Option, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		letter := m[1]
		if _, dup := seen[letter]; dup {
			return nil, fmt.Errorf("duplicate option letter %s", letter)
		}
		seen[letter] = struct{}{}
		options = append(options, model.Option{Letter: letter, Text: strings.TrimSpace(m[2])})
	}
	return options, nil
}
