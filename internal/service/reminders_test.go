package service

import (
	"context"
	"testing"

	"github.com/DanRulev/uniprep.git/internal/models"
	mock_service "github.com/DanRulev/uniprep.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReminderS_DueReminders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockRepositoryI(ctrl)
	counts := []models.DueCount{{UserID: 1, Count: 3}}
	repo.EXPECT().DueCounts(gomock.Any(), t0).Return(counts, nil)
	repo.EXPECT().DueCounts(gomock.Any(), t0).Return(nil, models.ErrStorage)

	s := &ReminderS{repo: repo, now: clock, log: zap.NewNop()}

	got, err := s.DueReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, counts, got)

	_, err = s.DueReminders(context.Background())
	require.ErrorIs(t, err, models.ErrStorage)
}
