package service

import (
	"context"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/pkg/validator"
	"go.uber.org/zap"
)

// ProgressS exposes the per subject metrics directly. Writes here are
// administrative and skip the running aggregate.
type ProgressS struct {
	repo ProgressRI
	now  func() time.Time
	log  *zap.Logger
}

func NewProgressService(repo ProgressRI, log *zap.Logger) *ProgressS {
	return &ProgressS{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

func (p *ProgressS) Metric(ctx context.Context, userID int64, subjectID string) (models.SubjectProgress, error) {
	id, err := parseID("subjectId", subjectID)
	if err != nil {
		return models.SubjectProgress{}, err
	}

	return p.repo.SubjectProgress(ctx, userID, id)
}

func (p *ProgressS) Metrics(ctx context.Context, userID int64) ([]models.SubjectProgress, error) {
	metrics, err := p.repo.SubjectProgresses(ctx, userID)
	if err != nil {
		p.log.Warn("failed to list subject progress", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return metrics, nil
}

func (p *ProgressS) AddMetric(ctx context.Context, userID int64, req models.MetricRequest) (models.SubjectProgress, error) {
	progress, err := p.fromRequest(userID, req)
	if err != nil {
		return models.SubjectProgress{}, err
	}

	return p.repo.CreateSubjectProgress(ctx, progress, p.now())
}

func (p *ProgressS) UpdateMetric(ctx context.Context, userID int64, subjectID string, req models.MetricRequest) (models.SubjectProgress, error) {
	req.SubjectID = subjectID

	progress, err := p.fromRequest(userID, req)
	if err != nil {
		return models.SubjectProgress{}, err
	}

	saved, err := p.repo.SaveSubjectProgress(ctx, progress, p.now())
	if err != nil {
		p.log.Warn("failed to overwrite subject progress",
			zap.Int64("user_id", userID),
			zap.String("subject_id", subjectID),
			zap.Error(err),
		)
		return models.SubjectProgress{}, err
	}

	return saved, nil
}

func (p *ProgressS) DeleteMetric(ctx context.Context, userID int64, subjectID string) (models.Metric, error) {
	id, err := parseID("subjectId", subjectID)
	if err != nil {
		return models.Metric{}, err
	}

	return p.repo.DeleteSubjectProgress(ctx, userID, id)
}

func (p *ProgressS) fromRequest(userID int64, req models.MetricRequest) (models.SubjectProgress, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.SubjectProgress{}, err
	}

	id, err := parseID("subjectId", req.SubjectID)
	if err != nil {
		return models.SubjectProgress{}, err
	}

	return models.SubjectProgress{
		UserID:    userID,
		SubjectID: id,
		Metric: models.Metric{
			CompletedTopics: req.CompletedTopics,
			AccuracyRate:    req.AccuracyRate,
			TimeSpent:       req.TimeSpent,
		},
	}, nil
}
