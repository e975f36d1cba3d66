// Package srs holds the spaced-repetition math: the SM-2 update, the running
// subject metric and sampling without replacement. Nothing here does I/O.
package srs

import (
	"math"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
)

const (
	CorrectQuality   = 5
	IncorrectQuality = 0
	PassQuality      = 3

	MinEasinessFactor     = 1.3
	InitialEasinessFactor = 2.5

	Day = 24 * time.Hour
)

// NewCardParams is the state a card is scheduled from before its first answer.
func NewCardParams() models.ReviewParams {
	return models.ReviewParams{
		Interval:   0,
		Repetition: 0,
		EF:         InitialEasinessFactor,
	}
}

type Scheduler struct {
	now func() time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewSchedulerWithClock is used where the current time has to be pinned.
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// ComputeNext applies one pass/fail answer to the state. The next review date is
// counted from the clock, not from the previous due date.
func (s *Scheduler) ComputeNext(state models.ReviewParams, isCorrect bool) models.ReviewParams {
	q := IncorrectQuality
	if isCorrect {
		q = CorrectQuality
	}
	diff := float64(CorrectQuality - q)

	ef := state.EF
	if math.IsNaN(ef) || math.IsInf(ef, 0) {
		ef = InitialEasinessFactor
	}
	newEF := math.Max(MinEasinessFactor, ef+(0.1-diff*(0.08+diff*0.02)))

	newRepetition := 0
	if q >= PassQuality {
		newRepetition = max(state.Repetition, 0) + 1
	}

	var newInterval int
	switch newRepetition {
	case 0, 1:
		newInterval = 1
	case 2:
		newInterval = 6
	default:
		// math.Round rounds half away from zero; intervals are never negative.
		newInterval = int(math.Round(float64(max(state.Interval, 0)) * newEF))
	}

	return models.ReviewParams{
		Interval:   newInterval,
		Repetition: newRepetition,
		EF:         newEF,
		NextReview: s.now().UTC().Add(time.Duration(newInterval) * Day),
	}
}
