package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/uniprep.git/internal/models"
	mock_service "github.com/DanRulev/uniprep.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStudyPlanServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI, *mock_service.MockAII)) *StudyPlanS {
	ai := mock_service.NewMockAII(ctrl)
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo, ai)
	}

	return &StudyPlanS{ai: ai, catalog: repo, repo: repo, now: clock, log: zap.NewNop()}
}

func TestStudyPlanS_CreatePlan(t *testing.T) {
	t.Parallel()

	subjectID := uuid.New()
	algebra, geometry := uuid.New(), uuid.New()
	right, wrongA, wrongA2, wrongG := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	answers := []models.AnswerWithTopic{
		{ID: right, IsCorrect: true, TopicID: algebra, TopicName: "Algebra"},
		{ID: wrongA, TopicID: algebra, TopicName: "Algebra"},
		{ID: wrongG, TopicID: geometry, TopicName: "Geometry"},
		{ID: wrongA2, TopicID: algebra, TopicName: "Algebra"},
	}
	req := models.CreatePlanRequest{
		UserID:    7,
		SubjectID: subjectID.String(),
		Results: []models.PlanResult{
			{AnswerID: right.String()},
			{AnswerID: wrongA.String()},
			{AnswerID: wrongG.String()},
			{AnswerID: wrongA2.String()},
		},
	}
	wrongTopics := []models.TopicRef{
		{TopicID: algebra.String(), Topic: "Algebra"},
		{TopicID: geometry.String(), Topic: "Geometry"},
	}

	tests := []struct {
		name        string
		req         models.CreatePlanRequest
		f           func(*mock_service.MockRepositoryI, *mock_service.MockAII)
		wantMessage string
		wantTopics  []string
		wantErr     error
	}{
		{
			name: "ai orders topics",
			req:  req,
			f: func(m *mock_service.MockRepositoryI, ai *mock_service.MockAII) {
				m.EXPECT().AnswersWithTopics(gomock.Any(), []uuid.UUID{right, wrongA, wrongG, wrongA2}).Return(answers, nil)
				ai.EXPECT().SupportMessage(gomock.Any(), 4, 1).Return("Keep it up", nil)
				ai.EXPECT().OrderTopics(gomock.Any(), wrongTopics).Return([]string{geometry.String(), "made-up", algebra.String()}, nil)
				m.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantMessage: "Keep it up",
			wantTopics:  []string{"Geometry", "Algebra"},
		},
		{
			name: "ai fails",
			req:  req,
			f: func(m *mock_service.MockRepositoryI, ai *mock_service.MockAII) {
				m.EXPECT().AnswersWithTopics(gomock.Any(), gomock.Any()).Return(answers, nil)
				ai.EXPECT().SupportMessage(gomock.Any(), 4, 1).Return("", errors.New("timeout"))
				ai.EXPECT().OrderTopics(gomock.Any(), gomock.Any()).Return(nil, errors.New("unparsable output"))
				m.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantMessage: fallbackSupportMessage,
			wantTopics:  []string{"Algebra", "Geometry"},
		},
		{
			name: "ai drops a topic",
			req:  req,
			f: func(m *mock_service.MockRepositoryI, ai *mock_service.MockAII) {
				m.EXPECT().AnswersWithTopics(gomock.Any(), gomock.Any()).Return(answers, nil)
				ai.EXPECT().SupportMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return("ok", nil)
				ai.EXPECT().OrderTopics(gomock.Any(), gomock.Any()).Return([]string{geometry.String(), geometry.String()}, nil)
				m.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantMessage: "ok",
			wantTopics:  []string{"Geometry", "Algebra"},
		},
		{
			name: "all correct skips ordering",
			req: models.CreatePlanRequest{
				UserID:    7,
				SubjectID: subjectID.String(),
				Results:   []models.PlanResult{{AnswerID: right.String()}},
			},
			f: func(m *mock_service.MockRepositoryI, ai *mock_service.MockAII) {
				m.EXPECT().AnswersWithTopics(gomock.Any(), gomock.Any()).Return(answers[:1], nil)
				ai.EXPECT().SupportMessage(gomock.Any(), 1, 1).Return("Perfect", nil)
				m.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantMessage: "Perfect",
			wantTopics:  []string{},
		},
		{
			name:    "no results",
			req:     models.CreatePlanRequest{UserID: 7, SubjectID: subjectID.String()},
			wantErr: models.ErrValidation,
		},
		{
			name: "bad answer id",
			req: models.CreatePlanRequest{
				UserID:    7,
				SubjectID: subjectID.String(),
				Results:   []models.PlanResult{{AnswerID: "nope"}},
			},
			wantErr: models.ErrValidation,
		},
		{
			name: "store fails",
			req:  req,
			f: func(m *mock_service.MockRepositoryI, ai *mock_service.MockAII) {
				m.EXPECT().AnswersWithTopics(gomock.Any(), gomock.Any()).Return(answers, nil)
				ai.EXPECT().SupportMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return("ok", nil)
				ai.EXPECT().OrderTopics(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(models.ErrStorage)
			},
			wantErr: models.ErrStorage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStudyPlanServiceMock(t, ctrl, tt.f)

			got, err := s.CreatePlan(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, subjectID, got.SubjectID)
			assert.Equal(t, t0, got.CreatedAt)

			names := make([]string, 0, len(got.Topics))
			for i, topic := range got.Topics {
				names = append(names, topic.Name)
				assert.Equal(t, i+1, topic.Position)
				assert.Equal(t, models.TopicPending, topic.Status)
				assert.Equal(t, got.ID, topic.PlanID)
			}
			assert.Equal(t, tt.wantTopics, names)
		})
	}
}

func TestStudyPlanS_PlanBySubject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subjectID := uuid.New()
	plan := models.StudyPlan{ID: uuid.New(), UserID: 7, SubjectID: subjectID}
	topics := []models.PlanTopic{{ID: uuid.New(), PlanID: plan.ID, Position: 1}}

	s := newStudyPlanServiceMock(t, ctrl, func(m *mock_service.MockRepositoryI, _ *mock_service.MockAII) {
		m.EXPECT().LatestPlan(gomock.Any(), int64(7), subjectID).Return(plan, nil)
		m.EXPECT().PlanTopics(gomock.Any(), plan.ID).Return(topics, nil)
		m.EXPECT().LatestPlan(gomock.Any(), int64(8), subjectID).Return(models.StudyPlan{}, models.ErrNotFound)
	})

	got, err := s.PlanBySubject(context.Background(), 7, subjectID.String())
	require.NoError(t, err)
	assert.Equal(t, topics, got.Topics)

	_, err = s.PlanBySubject(context.Background(), 8, subjectID.String())
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStudyPlanS_UpdateTopicStatus(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	owned := models.PlanTopicOwner{PlanTopic: models.PlanTopic{ID: topicID, Status: models.TopicPending}, UserID: 7}

	tests := []struct {
		name    string
		userID  int64
		status  models.TopicStatus
		f       func(*mock_service.MockRepositoryI, *mock_service.MockAII)
		wantErr error
	}{
		{
			name:   "owner updates",
			userID: 7,
			status: models.TopicInProgress,
			f: func(m *mock_service.MockRepositoryI, _ *mock_service.MockAII) {
				m.EXPECT().PlanTopic(gomock.Any(), topicID).Return(owned, nil)
				m.EXPECT().UpdatePlanTopicStatus(gomock.Any(), topicID, models.TopicInProgress).
					Return(models.PlanTopic{ID: topicID, Status: models.TopicInProgress}, nil)
			},
		},
		{
			name:   "another user",
			userID: 8,
			status: models.TopicCompleted,
			f: func(m *mock_service.MockRepositoryI, _ *mock_service.MockAII) {
				m.EXPECT().PlanTopic(gomock.Any(), topicID).Return(owned, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:   "unknown topic",
			userID: 7,
			status: models.TopicCompleted,
			f: func(m *mock_service.MockRepositoryI, _ *mock_service.MockAII) {
				m.EXPECT().PlanTopic(gomock.Any(), topicID).Return(models.PlanTopicOwner{}, models.ErrNotFound)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name:    "unknown status",
			userID:  7,
			status:  "DONE",
			wantErr: models.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStudyPlanServiceMock(t, ctrl, tt.f)

			got, err := s.UpdateTopicStatus(context.Background(), tt.userID, topicID.String(), models.UpdateTopicStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}
