// Package quiz implements the pop quiz as a pure state machine over a fixed
// question bank. A Session is a plain value: every transition returns a new
// Session and leaves its input untouched, so callers replace state wholesale.
package quiz

import (
	"errors"
	"fmt"

	"lightwork-server/models"
)

const (
	// QuestionCount is the fixed size of the bank.
	QuestionCount = 5
	// OptionCount is the number of options every question offers.
	OptionCount = 4
	// NoSelection marks an unset selection or an unanswered question.
	NoSelection = -1
)

var (
	ErrCompleted        = errors.New("quiz already completed")
	ErrAlreadyRevealed  = errors.New("answer already revealed for this question")
	ErrNotRevealed      = errors.New("current question has not been answered")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrInvalidSession   = errors.New("session does not match question bank")
)

// Bank is the read-only, ordered question set.
type Bank struct {
	questions []models.QuizQuestion
}

// NewBank validates the question set and takes a private copy of it.
func NewBank(questions []models.QuizQuestion) (*Bank, error) {
	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("question bank must hold %d questions, got %d", QuestionCount, len(questions))
	}
	seen := make(map[int]bool, len(questions))
	copied := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		if len(q.Options) != OptionCount {
			return nil, fmt.Errorf("question %d: expected %d options, got %d", q.ID, OptionCount, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct index %d out of range", q.ID, q.Correct)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		q.Options = append([]string(nil), q.Options...)
		copied[i] = q
	}
	return &Bank{questions: copied}, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns a copy of the question at index i.
func (b *Bank) Question(i int) (models.QuizQuestion, bool) {
	if i < 0 || i >= len(b.questions) {
		return models.QuizQuestion{}, false
	}
	q := b.questions[i]
	q.Options = append([]string(nil), q.Options...)
	return q, true
}

// Session is one run through the bank.
type Session struct {
	Index     int   `json:"index"`
	Selection int   `json:"selection"`
	Revealed  bool  `json:"revealed"`
	Score     int   `json:"score"`
	Answers   []int `json:"answers"`
	Completed bool  `json:"completed"`
}

// NewSession returns a session positioned on the first question.
func (b *Bank) NewSession() Session {
	answers := make([]int, len(b.questions))
	for i := range answers {
		answers[i] = NoSelection
	}
	return Session{Selection: NoSelection, Answers: answers}
}

// SelectAnswer records option for the current question and reveals the
// result. A second answer to the same question is rejected.
func (b *Bank) SelectAnswer(s Session, option int) (Session, error) {
	if s.Completed {
		return s, ErrCompleted
	}
	if s.Revealed {
		return s, ErrAlreadyRevealed
	}
	if !b.inBounds(s) {
		return s, ErrInvalidSession
	}
	q := b.questions[s.Index]
	if option < 0 || option >= len(q.Options) {
		return s, ErrOptionOutOfRange
	}

	next := s.clone()
	next.Selection = option
	next.Revealed = true
	next.Answers[s.Index] = option
	if option == q.Correct {
		next.Score++
	}
	return next, nil
}

// Advance moves past a revealed question, completing the session after the
// last one.
func (b *Bank) Advance(s Session) (Session, error) {
	if s.Completed {
		return s, ErrCompleted
	}
	if !s.Revealed {
		return s, ErrNotRevealed
	}
	if !b.inBounds(s) {
		return s, ErrInvalidSession
	}

	next := s.clone()
	if s.Index < len(b.questions)-1 {
		next.Index++
		next.Selection = NoSelection
		next.Revealed = false
		return next, nil
	}
	next.Completed = true
	return next, nil
}

// Reset discards s and starts over. Valid from any state.
func (b *Bank) Reset(Session) Session {
	return b.NewSession()
}

// Progress is the percentage shown on the progress bar.
func (b *Bank) Progress(s Session) float64 {
	if s.Completed {
		return 100
	}
	done := s.Index
	if s.Revealed {
		done++
	}
	return float64(done*100) / float64(len(b.questions))
}

// Validate reports whether s could have been produced by this bank's
// transitions. Sessions arriving from clients are checked before use.
func (b *Bank) Validate(s Session) error {
	n := len(b.questions)
	if s.Index < 0 || s.Index >= n {
		return fmt.Errorf("%w: index %d", ErrInvalidSession, s.Index)
	}
	if len(s.Answers) != n {
		return fmt.Errorf("%w: %d answers recorded", ErrInvalidSession, len(s.Answers))
	}
	if s.Completed && (!s.Revealed || s.Index != n-1) {
		return fmt.Errorf("%w: completed before the last question", ErrInvalidSession)
	}
	if s.Revealed != (s.Selection != NoSelection) {
		return fmt.Errorf("%w: selection and reveal disagree", ErrInvalidSession)
	}
	if s.Revealed && s.Answers[s.Index] != s.Selection {
		return fmt.Errorf("%w: selection not recorded", ErrInvalidSession)
	}

	correct := 0
	for i, a := range s.Answers {
		answered := i < s.Index || (i == s.Index && s.Revealed)
		switch {
		case !answered && a != NoSelection:
			return fmt.Errorf("%w: answer recorded ahead of question %d", ErrInvalidSession, i)
		case answered && (a < 0 || a >= len(b.questions[i].Options)):
			return fmt.Errorf("%w: answer %d for question %d", ErrInvalidSession, a, i)
		case answered && a == b.questions[i].Correct:
			correct++
		}
	}
	if s.Score != correct {
		return fmt.Errorf("%w: score %d, answers give %d", ErrInvalidSession, s.Score, correct)
	}
	return nil
}

func (b *Bank) inBounds(s Session) bool {
	return s.Index >= 0 && s.Index < len(b.questions) && len(s.Answers) == len(b.questions)
}

func (s Session) clone() Session {
	s.Answers = append([]int(nil), s.Answers...)
	return s
}
