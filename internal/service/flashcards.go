package service

import (
	"context"
	crypto "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/internal/srs"
	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlashcardS struct {
	catalog   CatalogRI
	reviews   ReviewRI
	progress  ProgressRI
	scheduler *srs.Scheduler
	now       func() time.Time
	cfg       config.ReviewConfig
	log       *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewFlashcardService(catalog CatalogRI, reviews ReviewRI, progress ProgressRI, cfg config.ReviewConfig, log *zap.Logger) *FlashcardS {
	return newFlashcardService(catalog, reviews, progress, cfg, log, time.Now, rand.New(rand.NewSource(seed(log))))
}

func newFlashcardService(catalog CatalogRI, reviews ReviewRI, progress ProgressRI, cfg config.ReviewConfig, log *zap.Logger, now func() time.Time, rnd *rand.Rand) *FlashcardS {
	return &FlashcardS{
		catalog:   catalog,
		reviews:   reviews,
		progress:  progress,
		scheduler: srs.NewSchedulerWithClock(now),
		now:       now,
		cfg:       cfg,
		log:       log,
		rnd:       rnd,
	}
}

// SubmitAnswer schedules the card from the answer and folds the answer into the
// subject metric. The two rows are written one after the other; if the second
// write fails the returned error wraps models.ErrStaleProgress.
func (f *FlashcardS) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (models.ReviewState, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.ReviewState{}, err
	}

	cardID, err := parseID("flashcardId", req.FlashcardID)
	if err != nil {
		return models.ReviewState{}, err
	}

	card, err := f.catalog.Flashcard(ctx, cardID)
	if err != nil {
		return models.ReviewState{}, fmt.Errorf("resolve flashcard: %w", err)
	}

	prior, err := f.reviews.ReviewState(ctx, req.UserID, cardID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		prior = models.ReviewState{ReviewParams: srs.NewCardParams()}
	case err != nil:
		return models.ReviewState{}, fmt.Errorf("load review state: %w", err)
	}

	state := models.ReviewState{
		UserID:       req.UserID,
		FlashcardID:  cardID,
		ReviewParams: f.scheduler.ComputeNext(prior.ReviewParams, req.IsCorrect),
		TimeSpent:    prior.TimeSpent + req.TimeSpent,
	}

	saved, err := f.reviews.UpsertReviewState(ctx, state, prior.Version, f.now())
	if err != nil {
		f.log.Warn("failed to save review state",
			zap.Int64("user_id", req.UserID),
			zap.String("flashcard_id", cardID.String()),
			zap.Error(err),
		)
		return models.ReviewState{}, fmt.Errorf("save review state: %w", err)
	}

	if err := f.addToProgress(ctx, req.UserID, card.SubjectID, req.IsCorrect, req.TimeSpent); err != nil {
		f.log.Error("review state saved but subject progress was not",
			zap.Int64("user_id", req.UserID),
			zap.String("flashcard_id", cardID.String()),
			zap.String("subject_id", card.SubjectID.String()),
			zap.Error(err),
		)
		return saved, fmt.Errorf("%w: %w", models.ErrStaleProgress, err)
	}

	return saved, nil
}

func (f *FlashcardS) addToProgress(ctx context.Context, userID int64, subjectID uuid.UUID, isCorrect bool, timeSpent int64) error {
	var (
		prior   *models.Metric
		version int64
	)

	current, err := f.progress.SubjectProgress(ctx, userID, subjectID)
	switch {
	case err == nil:
		prior = &current.Metric
		version = current.Version
	case !errors.Is(err, models.ErrNotFound):
		return fmt.Errorf("load subject progress: %w", err)
	}

	next := models.SubjectProgress{
		UserID:    userID,
		SubjectID: subjectID,
		Metric:    srs.NextMetric(prior, isCorrect, timeSpent),
	}

	if _, err := f.progress.UpsertSubjectProgress(ctx, next, version, f.now()); err != nil {
		return fmt.Errorf("save subject progress: %w", err)
	}

	return nil
}

// FlashcardsToRepeat lists the user's due cards, most overdue first.
func (f *FlashcardS) FlashcardsToRepeat(ctx context.Context, req models.DueFlashcardsRequest) ([]models.DueFlashcard, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	var topicID *uuid.UUID
	if req.TopicID != "" {
		id, err := parseID("topicId", req.TopicID)
		if err != nil {
			return nil, err
		}
		topicID = &id
	}

	cards, err := f.catalog.DueFlashcards(ctx, req.UserID, topicID, f.now(), req.Skip, f.take(req.Take, f.cfg.DefaultTake))
	if err != nil {
		f.log.Warn("failed to list due flashcards", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	return cards, nil
}

func (f *FlashcardS) FlashcardsByTopic(ctx context.Context, topicID string, page models.Page) ([]models.Flashcard, error) {
	if err := validator.ValidateStruct(page); err != nil {
		return nil, err
	}

	id, err := parseID("topicId", topicID)
	if err != nil {
		return nil, err
	}

	return f.catalog.FlashcardsByTopic(ctx, id, page.Skip, f.take(page.Take, f.cfg.DefaultTake))
}

// EntryTestFlashcards draws a random sample of the subject's cards, or of the
// whole catalog when subjectID is empty. A card appears at most once.
func (f *FlashcardS) EntryTestFlashcards(ctx context.Context, subjectID string, page models.Page) ([]models.Flashcard, error) {
	if err := validator.ValidateStruct(page); err != nil {
		return nil, err
	}

	var filter *uuid.UUID
	if subjectID != "" {
		id, err := parseID("subjectId", subjectID)
		if err != nil {
			return nil, err
		}
		filter = &id
	}

	candidates, err := f.catalog.EntryTestCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	sample := srs.Sample(f.rnd, candidates, page.Skip, f.take(page.Take, f.cfg.EntryTestTake))
	f.mu.Unlock()

	if err := f.catalog.AttachAnswers(ctx, sample); err != nil {
		return nil, err
	}

	return sample, nil
}

func (f *FlashcardS) take(requested, fallback int) int {
	if requested <= 0 {
		requested = fallback
	}
	if f.cfg.MaxTake > 0 && requested > f.cfg.MaxTake {
		requested = f.cfg.MaxTake
	}
	return requested
}

func seed(log *zap.Logger) int64 {
	var b [8]byte
	if _, err := crypto.Read(b[:]); err != nil {
		log.Warn("crypto/rand failed, seeding sampler from clock", zap.Error(err))
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
