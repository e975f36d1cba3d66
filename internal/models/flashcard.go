package models

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

type Topic struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SubjectID uuid.UUID `db:"subject_id" json:"subject_id"`
	Name      string    `db:"name" json:"name"`
}

type Answer struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FlashcardID uuid.UUID `db:"flashcard_id" json:"flashcard_id"`
	Text        string    `db:"text" json:"text"`
	IsCorrect   bool      `db:"is_correct" json:"is_correct"`
}

type Flashcard struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TopicID   uuid.UUID `db:"topic_id" json:"topic_id"`
	SubjectID uuid.UUID `db:"subject_id" json:"subject_id"`
	Question  string    `db:"question" json:"question"`
	Answers   []Answer  `db:"-" json:"answers"`
}

// DueFlashcard is a flashcard merged with the caller's review state for it.
type DueFlashcard struct {
	Flashcard
	Interval   int       `db:"interval" json:"interval"`
	Repetition int       `db:"repetition" json:"repetition"`
	EF         float64   `db:"ef" json:"ef"`
	NextReview time.Time `db:"next_review" json:"nextReview"`
}

// AnswerWithTopic is an answer joined to the topic of its flashcard.
type AnswerWithTopic struct {
	ID        uuid.UUID `db:"id"`
	IsCorrect bool      `db:"is_correct"`
	TopicID   uuid.UUID `db:"topic_id"`
	TopicName string    `db:"topic_name"`
}

type SubmitAnswerRequest struct {
	UserID      int64  `json:"-" validate:"required,gt=0"`
	FlashcardID string `json:"flashcardId" validate:"required,uuid"`
	IsCorrect   bool   `json:"isCorrect"`
	TimeSpent   int64  `json:"timeSpent" validate:"min=0"`
}

type DueFlashcardsRequest struct {
	UserID  int64  `validate:"required,gt=0"`
	TopicID string `validate:"omitempty,uuid"`
	Skip    int    `validate:"min=0"`
	Take    int    `validate:"min=0"`
}

type Page struct {
	Skip int `validate:"min=0"`
	Take int `validate:"min=0"`
}
