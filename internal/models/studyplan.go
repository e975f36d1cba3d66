package models

import (
	"time"

	"github.com/google/uuid"
)

type TopicStatus string

const (
	TopicPending    TopicStatus = "PENDING"
	TopicInProgress TopicStatus = "IN_PROGRESS"
	TopicCompleted  TopicStatus = "COMPLETED"
)

type StudyPlan struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UserID    int64       `db:"user_id" json:"user_id"`
	SubjectID uuid.UUID   `db:"subject_id" json:"subject_id"`
	Message   string      `db:"message" json:"message"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	Topics    []PlanTopic `db:"-" json:"topics,omitempty"`
}

type PlanTopic struct {
	ID       uuid.UUID   `db:"id" json:"id"`
	PlanID   uuid.UUID   `db:"plan_id" json:"plan_id"`
	TopicID  uuid.UUID   `db:"topic_id" json:"topic_id"`
	Name     string      `db:"name" json:"name"`
	Position int         `db:"position" json:"position"`
	Status   TopicStatus `db:"status" json:"status"`
}

// PlanTopicOwner is a plan topic together with the user owning its plan.
type PlanTopicOwner struct {
	PlanTopic
	UserID int64 `db:"user_id"`
}

// TopicRef identifies a topic by id and name, the shape exchanged with the AI planner.
type TopicRef struct {
	TopicID string `json:"topicId"`
	Topic   string `json:"topic"`
}

type PlanResult struct {
	TopicID     string `json:"topicId" validate:"omitempty,uuid"`
	FlashcardID string `json:"flashcardId" validate:"omitempty,uuid"`
	AnswerID    string `json:"answerId" validate:"required,uuid"`
}

type CreatePlanRequest struct {
	UserID    int64        `json:"-" validate:"required,gt=0"`
	SubjectID string       `json:"subjectId" validate:"required,uuid"`
	Results   []PlanResult `json:"results" validate:"required,min=1,dive"`
}

type UpdateTopicStatusRequest struct {
	Status TopicStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}
