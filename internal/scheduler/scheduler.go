package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier delivers one reminder to a user.
type Notifier interface {
	SendReminder(ctx context.Context, userID int64, due int) error
}

type RemindersI interface {
	DueReminders(ctx context.Context) ([]models.DueCount, error)
}

// Scheduler periodically reminds users who have cards due.
type Scheduler struct {
	cron      *gocron.Scheduler
	reminders RemindersI
	notifier  Notifier
	cfg       config.ReminderConfig
	timeout   time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func New(reminders RemindersI, notifier Notifier, cfg config.ReminderConfig, log *zap.Logger) *Scheduler {
	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()

	return &Scheduler{
		cron:      cron,
		reminders: reminders,
		notifier:  notifier,
		cfg:       cfg,
		timeout:   time.Minute,
		now:       time.Now,
		log:       log,
	}
}

// Start schedules the reminder job without blocking. A zero interval disables it.
func (s *Scheduler) Start() error {
	if s.cfg.Every <= 0 {
		s.log.Info("reminders disabled")
		return nil
	}

	if _, err := s.cron.Every(s.cfg.Every).Do(s.sendReminders); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	s.cron.StartAsync()

	s.log.Info("reminders scheduled",
		zap.Duration("every", s.cfg.Every),
		zap.Int("start_hour", s.cfg.StartHour),
		zap.Int("end_hour", s.cfg.EndHour),
	)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.log.Warn("reminder run failed", zap.Error(err))
	}
}

// RunOnce sends one reminder to every user with due cards and reports how many
// were delivered. Outside the configured UTC hours it does nothing.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	hour := s.now().UTC().Hour()
	if hour < s.cfg.StartHour || hour > s.cfg.EndHour {
		s.log.Debug("outside reminder hours, skipping", zap.Int("hour", hour))
		return 0, nil
	}

	counts, err := s.reminders.DueReminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, c := range counts {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		if err := s.notifier.SendReminder(ctx, c.UserID, c.Count); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return sent, err
			}
			s.log.Warn("failed to send reminder", zap.Int64("user_id", c.UserID), zap.Error(err))
			continue
		}
		sent++
	}

	s.log.Info("reminders sent", zap.Int("sent", sent), zap.Int("users", len(counts)))

	return sent, nil
}
