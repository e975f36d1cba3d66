package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogRI interface {
	Flashcard(ctx context.Context, id uuid.UUID) (models.Flashcard, error)
	FlashcardsByTopic(ctx context.Context, topicID uuid.UUID, skip, take int) ([]models.Flashcard, error)
	EntryTestCandidates(ctx context.Context, subjectID *uuid.UUID) ([]models.Flashcard, error)
	DueFlashcards(ctx context.Context, userID int64, topicID *uuid.UUID, now time.Time, skip, take int) ([]models.DueFlashcard, error)
	AttachAnswers(ctx context.Context, cards []models.Flashcard) error
	AnswersWithTopics(ctx context.Context, answerIDs []uuid.UUID) ([]models.AnswerWithTopic, error)
}

type ReviewRI interface {
	ReviewState(ctx context.Context, userID int64, flashcardID uuid.UUID) (models.ReviewState, error)
	UpsertReviewState(ctx context.Context, state models.ReviewState, expectedVersion int64, now time.Time) (models.ReviewState, error)
	DueCounts(ctx context.Context, now time.Time) ([]models.DueCount, error)
}

type ProgressRI interface {
	SubjectProgress(ctx context.Context, userID int64, subjectID uuid.UUID) (models.SubjectProgress, error)
	SubjectProgresses(ctx context.Context, userID int64) ([]models.SubjectProgress, error)
	UpsertSubjectProgress(ctx context.Context, progress models.SubjectProgress, expectedVersion int64, now time.Time) (models.SubjectProgress, error)
	CreateSubjectProgress(ctx context.Context, progress models.SubjectProgress, now time.Time) (models.SubjectProgress, error)
	SaveSubjectProgress(ctx context.Context, progress models.SubjectProgress, now time.Time) (models.SubjectProgress, error)
	DeleteSubjectProgress(ctx context.Context, userID int64, subjectID uuid.UUID) (models.Metric, error)
}

type StudyPlanRI interface {
	CreatePlan(ctx context.Context, plan models.StudyPlan) error
	Plans(ctx context.Context, userID int64) ([]models.StudyPlan, error)
	LatestPlan(ctx context.Context, userID int64, subjectID uuid.UUID) (models.StudyPlan, error)
	PlanTopics(ctx context.Context, planID uuid.UUID) ([]models.PlanTopic, error)
	PlanTopic(ctx context.Context, id uuid.UUID) (models.PlanTopicOwner, error)
	UpdatePlanTopicStatus(ctx context.Context, id uuid.UUID, status models.TopicStatus) (models.PlanTopic, error)
}

type RepositoryI interface {
	CatalogRI
	ReviewRI
	ProgressRI
	StudyPlanRI
	UserRI
}

type AII interface {
	SupportMessage(ctx context.Context, taskNum, correct int) (string, error)
	OrderTopics(ctx context.Context, topics []models.TopicRef) ([]string, error)
}

type Service struct {
	*FlashcardS
	*ProgressS
	*StudyPlanS
	*ReminderS
	*AuthS
}

func InitServices(ai AII, repo RepositoryI, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		FlashcardS: NewFlashcardService(repo, repo, repo, cfg.Review, log),
		ProgressS:  NewProgressService(repo, log),
		StudyPlanS: NewStudyPlanService(ai, repo, repo, log),
		ReminderS:  NewReminderService(repo, log),
		AuthS:      NewAuthService(repo, cfg.Auth, log),
	}
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", models.ErrValidation, field, err)
	}
	return id, nil
}
