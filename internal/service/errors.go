package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientQuestionPool means the bank cannot supply a full quiz
	// for this user. It is not retried.
	ErrInsufficientQuestionPool = errors.New("not enough questions available, please contact an administrator")
	ErrAttemptNotFound          = errors.New("quiz attempt not found")
	ErrAlreadySubmitted         = errors.New("quiz already submitted")
	ErrQuestionNotFound         = errors.New("question not found")
)

// InvalidQuestionIDsError lists answer question ids that are not members of
// the attempt, or that were sent more than once.
type InvalidQuestionIDsError struct {
	IDs []uint
}

func (e *InvalidQuestionIDsError) Error() string {
	return fmt.Sprintf("invalid question ids submitted, all questions must be from the original quiz attempt: %v", e.IDs)
}

// AnswerCountMismatchError reports a submit whose answer count differs from
// the attempt's question count.
type AnswerCountMismatchError struct {
	Expected int
	Got      int
}

func (e *AnswerCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d answers, but received %d", e.Expected, e.Got)
}
