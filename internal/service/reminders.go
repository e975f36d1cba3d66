package service

import (
	"context"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"go.uber.org/zap"
)

type ReminderS struct {
	repo ReviewRI
	now  func() time.Time
	log  *zap.Logger
}

func NewReminderService(repo ReviewRI, log *zap.Logger) *ReminderS {
	return &ReminderS{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// DueReminders lists every user with at least one card due now.
func (r *ReminderS) DueReminders(ctx context.Context) ([]models.DueCount, error) {
	counts, err := r.repo.DueCounts(ctx, r.now())
	if err != nil {
		r.log.Warn("failed to count due cards", zap.Error(err))
		return nil, err
	}

	return counts, nil
}
