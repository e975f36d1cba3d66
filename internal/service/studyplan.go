package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const fallbackSupportMessage = "Good effort! Work through the topics below and take the test again."

type StudyPlanS struct {
	ai      AII
	catalog CatalogRI
	repo    StudyPlanRI
	now     func() time.Time
	log     *zap.Logger
}

func NewStudyPlanService(ai AII, catalog CatalogRI, repo StudyPlanRI, log *zap.Logger) *StudyPlanS {
	return &StudyPlanS{
		ai:      ai,
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
		log:     log,
	}
}

// CreatePlan turns entry test results into a study plan over the topics that
// had wrong answers. The AI only words the message and orders the topics; when
// it fails the plan is still created with a fixed message and first-seen order.
func (s *StudyPlanS) CreatePlan(ctx context.Context, req models.CreatePlanRequest) (models.StudyPlan, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.StudyPlan{}, err
	}

	subjectID, err := parseID("subjectId", req.SubjectID)
	if err != nil {
		return models.StudyPlan{}, err
	}

	answerIDs := make([]uuid.UUID, 0, len(req.Results))
	for _, r := range req.Results {
		id, err := parseID("answerId", r.AnswerID)
		if err != nil {
			return models.StudyPlan{}, err
		}
		answerIDs = append(answerIDs, id)
	}

	answers, err := s.catalog.AnswersWithTopics(ctx, answerIDs)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("load answers: %w", err)
	}

	byID := make(map[uuid.UUID]models.AnswerWithTopic, len(answers))
	for _, a := range answers {
		byID[a.ID] = a
	}

	var (
		wrongTopics []models.TopicRef
		seen        = make(map[uuid.UUID]bool)
		wrong       int
	)
	for _, id := range answerIDs {
		a, ok := byID[id]
		if !ok || a.IsCorrect {
			continue
		}
		wrong++
		if !seen[a.TopicID] {
			seen[a.TopicID] = true
			wrongTopics = append(wrongTopics, models.TopicRef{TopicID: a.TopicID.String(), Topic: a.TopicName})
		}
	}

	taskNum := len(req.Results)
	message := s.supportMessage(ctx, req.UserID, taskNum, taskNum-wrong)
	ordered := s.orderTopics(ctx, req.UserID, wrongTopics)

	plan := models.StudyPlan{
		ID:        uuid.New(),
		UserID:    req.UserID,
		SubjectID: subjectID,
		Message:   message,
		CreatedAt: s.now().UTC(),
		Topics:    make([]models.PlanTopic, 0, len(ordered)),
	}
	for i, t := range ordered {
		topicID, err := uuid.Parse(t.TopicID)
		if err != nil {
			continue
		}
		plan.Topics = append(plan.Topics, models.PlanTopic{
			ID:       uuid.New(),
			PlanID:   plan.ID,
			TopicID:  topicID,
			Name:     t.Topic,
			Position: i + 1,
			Status:   models.TopicPending,
		})
	}

	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		s.log.Warn("failed to save study plan", zap.Int64("user_id", req.UserID), zap.Error(err))
		return models.StudyPlan{}, err
	}

	return plan, nil
}

func (s *StudyPlanS) supportMessage(ctx context.Context, userID int64, taskNum, correct int) string {
	message, err := s.ai.SupportMessage(ctx, taskNum, correct)
	if err != nil {
		s.log.Warn("ai support message failed, using fallback", zap.Int64("user_id", userID), zap.Error(err))
		return fallbackSupportMessage
	}
	return message
}

// orderTopics keeps only ids the AI was given, each once. Topics the AI left
// out go last in their original order.
func (s *StudyPlanS) orderTopics(ctx context.Context, userID int64, topics []models.TopicRef) []models.TopicRef {
	if len(topics) == 0 {
		return topics
	}

	ids, err := s.ai.OrderTopics(ctx, topics)
	if err != nil {
		s.log.Warn("ai topic ordering failed, keeping answer order", zap.Int64("user_id", userID), zap.Error(err))
		return topics
	}

	byID := make(map[string]models.TopicRef, len(topics))
	for _, t := range topics {
		byID[t.TopicID] = t
	}

	ordered := make([]models.TopicRef, 0, len(topics))
	used := make(map[string]bool, len(topics))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		ordered = append(ordered, t)
	}
	for _, t := range topics {
		if !used[t.TopicID] {
			ordered = append(ordered, t)
		}
	}

	return ordered
}

func (s *StudyPlanS) Plans(ctx context.Context, userID int64) ([]models.StudyPlan, error) {
	return s.repo.Plans(ctx, userID)
}

func (s *StudyPlanS) PlanBySubject(ctx context.Context, userID int64, subjectID string) (models.StudyPlan, error) {
	id, err := parseID("subjectId", subjectID)
	if err != nil {
		return models.StudyPlan{}, err
	}

	plan, err := s.repo.LatestPlan(ctx, userID, id)
	if err != nil {
		return models.StudyPlan{}, err
	}

	topics, err := s.repo.PlanTopics(ctx, plan.ID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	plan.Topics = topics

	return plan, nil
}

func (s *StudyPlanS) UpdateTopicStatus(ctx context.Context, userID int64, planTopicID string, req models.UpdateTopicStatusRequest) (models.PlanTopic, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.PlanTopic{}, err
	}

	id, err := parseID("topicId", planTopicID)
	if err != nil {
		return models.PlanTopic{}, err
	}

	topic, err := s.repo.PlanTopic(ctx, id)
	if err != nil {
		return models.PlanTopic{}, err
	}

	if topic.UserID != userID {
		return models.PlanTopic{}, fmt.Errorf("plan topic %s: %w", id, models.ErrForbidden)
	}

	return s.repo.UpdatePlanTopicStatus(ctx, id, req.Status)
}
