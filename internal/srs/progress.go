package srs

import "github.com/DanRulev/uniprep.git/internal/models"

// NextMetric folds one answer into the running subject metric. A nil prior is the
// zero baseline.
func NextMetric(prior *models.Metric, isCorrect bool, timeSpentDelta int64) models.Metric {
	var base models.Metric
	if prior != nil {
		base = *prior
	}

	completed := base.CompletedTopics + 1

	outcome := 0.0
	if isCorrect {
		outcome = 1.0
	}

	return models.Metric{
		CompletedTopics: completed,
		AccuracyRate:    (base.AccuracyRate*float64(completed-1) + outcome) / float64(completed),
		TimeSpent:       base.TimeSpent + timeSpentDelta,
	}
}
