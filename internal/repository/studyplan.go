package repository

import (
	"context"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
)

type StudyPlanR struct {
	db QueryI
	tx TxBeginner
}

func NewStudyPlanRepository(db DBI) *StudyPlanR {
	return &StudyPlanR{db: db, tx: db}
}

// CreatePlan stores the plan and its topics atomically.
func (s *StudyPlanR) CreatePlan(ctx context.Context, plan models.StudyPlan) error {
	return withTx(ctx, s.tx, func(q QueryI) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO study_plans (id, user_id, subject_id, message, created_at) VALUES ($1, $2, $3, $4, $5)`,
			plan.ID, plan.UserID, plan.SubjectID, plan.Message, plan.CreatedAt.UTC())
		if err != nil {
			return storageErr("insert study plan", err)
		}

		for _, t := range plan.Topics {
			_, err := q.ExecContext(ctx,
				`INSERT INTO plan_topics (id, plan_id, topic_id, name, position, status) VALUES ($1, $2, $3, $4, $5, $6)`,
				t.ID, plan.ID, t.TopicID, t.Name, t.Position, t.Status)
			if err != nil {
				return storageErr("insert plan topic", err)
			}
		}

		return nil
	})
}

func (s *StudyPlanR) Plans(ctx context.Context, userID int64) ([]models.StudyPlan, error) {
	query := `
		SELECT id, user_id, subject_id, message, created_at
		FROM study_plans
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	plans := make([]models.StudyPlan, 0)
	if err := s.db.SelectContext(ctx, &plans, query, userID); err != nil {
		return nil, storageErr("list study plans", err)
	}

	return plans, nil
}

func (s *StudyPlanR) LatestPlan(ctx context.Context, userID int64, subjectID uuid.UUID) (models.StudyPlan, error) {
	query := `
		SELECT id, user_id, subject_id, message, created_at
		FROM study_plans
		WHERE user_id = $1 AND subject_id = $2
		ORDER BY created_at DESC, id
		LIMIT 1`

	var plan models.StudyPlan
	if err := s.db.GetContext(ctx, &plan, query, userID, subjectID); err != nil {
		return models.StudyPlan{}, storageErr("get study plan", err)
	}

	return plan, nil
}

func (s *StudyPlanR) PlanTopics(ctx context.Context, planID uuid.UUID) ([]models.PlanTopic, error) {
	query := `
		SELECT id, plan_id, topic_id, name, position, status
		FROM plan_topics
		WHERE plan_id = $1
		ORDER BY position`

	topics := make([]models.PlanTopic, 0)
	if err := s.db.SelectContext(ctx, &topics, query, planID); err != nil {
		return nil, storageErr("list plan topics", err)
	}

	return topics, nil
}

func (s *StudyPlanR) PlanTopic(ctx context.Context, id uuid.UUID) (models.PlanTopicOwner, error) {
	query := `
		SELECT pt.id, pt.plan_id, pt.topic_id, pt.name, pt.position, pt.status, sp.user_id
		FROM plan_topics pt
		JOIN study_plans sp ON sp.id = pt.plan_id
		WHERE pt.id = $1`

	var topic models.PlanTopicOwner
	if err := s.db.GetContext(ctx, &topic, query, id); err != nil {
		return models.PlanTopicOwner{}, storageErr("get plan topic", err)
	}

	return topic, nil
}

func (s *StudyPlanR) UpdatePlanTopicStatus(ctx context.Context, id uuid.UUID, status models.TopicStatus) (models.PlanTopic, error) {
	query := `
		UPDATE plan_topics SET status = $1
		WHERE id = $2
		RETURNING id, plan_id, topic_id, name, position, status`

	var topic models.PlanTopic
	if err := s.db.GetContext(ctx, &topic, query, status, id); err != nil {
		return models.PlanTopic{}, storageErr("update plan topic", err)
	}

	return topic, nil
}
