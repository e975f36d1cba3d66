package bot

import (
	"context"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/uniprep.git/internal/bot/mock"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var shownAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testCard() models.Flashcard {
	id := uuid.New()
	return models.Flashcard{
		ID:       id,
		Question: "2 + 2 = ?",
		Answers: []models.Answer{
			{ID: uuid.New(), FlashcardID: id, Text: "3"},
			{ID: uuid.New(), FlashcardID: id, Text: "4", IsCorrect: true},
		},
	}
}

func newReviewTMock(t *testing.T, ctrl *gomock.Controller, now time.Time, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*ReviewT, *mock_bot.MockBot, *cache.Cache) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	c := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	r := NewReviewTAPI(mockBot, c, mockService, zap.NewNop())
	r.now = func() time.Time { return now }

	return r, mockBot, c
}

func TestReviewT_sendDueCard(t *testing.T) {
	t.Parallel()

	card := testCard()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "success: shows the most overdue card",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().FlashcardsToRepeat(gomock.Any(), models.DueFlashcardsRequest{UserID: 456, Take: 1}).
					Return([]models.DueFlashcard{{Flashcard: card}}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "🔁 2 + 2 = ?", msg.Text)

				keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, keyboard.InlineKeyboard, 2)
				assert.Equal(t, "ans_"+card.ID.String()+"_1", *keyboard.InlineKeyboard[1][0].CallbackData)

				session, ok := c.Session(456)
				require.True(t, ok)
				assert.Equal(t, card.ID, session.Card.ID)
				assert.Equal(t, shownAt, session.ShownAt)
			},
		},
		{
			name: "nothing due offers a new card",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().FlashcardsToRepeat(gomock.Any(), gomock.Any()).Return([]models.DueFlashcard{}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				keyboard := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				assert.Equal(t, callbackNewCard, *keyboard.InlineKeyboard[0][0].CallbackData)

				_, ok := c.Session(456)
				assert.False(t, ok)
			},
		},
		{
			name: "error: service fails",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().FlashcardsToRepeat(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Ошибка")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, mb, c := newReviewTMock(t, ctrl, shownAt, tt.f)
			r.sendDueCard(123, 456)

			tt.assertFunc(t, mb, c)
		})
	}
}

func TestReviewT_sendNewCard(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	card := testCard()
	r, mb, c := newReviewTMock(t, ctrl, shownAt, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().EntryTestFlashcards(gomock.Any(), "", models.Page{Take: 1}).Return([]models.Flashcard{card}, nil)
		ms.EXPECT().EntryTestFlashcards(gomock.Any(), "", models.Page{Take: 1}).Return([]models.Flashcard{}, nil)
	})

	r.sendNewCard(123, 456)
	r.sendNewCard(123, 456)

	require.Len(t, mb.SentMessages, 2)
	assert.Equal(t, "❓ 2 + 2 = ?", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
	assert.Equal(t, "📭 Каталог пока пуст.", mb.SentMessages[1].(tgbotapi.MessageConfig).Text)

	_, ok := c.Session(456)
	assert.True(t, ok)
}

func TestReviewT_processAnswer(t *testing.T) {
	t.Parallel()

	card := testCard()
	answeredAt := shownAt.Add(12 * time.Second)

	query := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			ID:      "q",
			From:    &tgbotapi.User{ID: 456},
			Data:    data,
			Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 123}, Text: "🔁 2 + 2 = ?"},
		}
	}

	other := testCard()

	tests := []struct {
		name        string
		session     bool
		data        string
		keepSession bool
		f           func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantEdit    bool
		wantContain string
	}{
		{
			name:    "correct answer",
			session: true,
			data:    answerData(card.ID, 1),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), models.SubmitAnswerRequest{
					UserID:      456,
					FlashcardID: card.ID.String(),
					IsCorrect:   true,
					TimeSpent:   12,
				}).Return(models.ReviewState{ReviewParams: models.ReviewParams{NextReview: answeredAt.Add(24 * time.Hour)}}, nil)
			},
			wantEdit:    true,
			wantContain: "✅ Правильно!",
		},
		{
			name:    "wrong answer shows the right one",
			session: true,
			data:    answerData(card.ID, 0),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any()).Return(models.ReviewState{}, nil)
			},
			wantEdit:    true,
			wantContain: "Верный ответ: 4",
		},
		{
			name:    "stale progress still counts as saved",
			session: true,
			data:    answerData(card.ID, 1),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any()).Return(models.ReviewState{ReviewParams: models.ReviewParams{NextReview: answeredAt.Add(24 * time.Hour)}}, models.ErrStaleProgress)
			},
			wantEdit:    true,
			wantContain: "16.06.2025",
		},
		{
			name:        "no session",
			data:        answerData(card.ID, 1),
			wantContain: "карточка уже неактуальна",
		},
		{
			name:        "answer for a card no longer shown",
			session:     true,
			data:        answerData(other.ID, 1),
			keepSession: true,
			wantContain: "карточка уже неактуальна",
		},
		{
			name:        "answer index out of range",
			session:     true,
			data:        answerData(card.ID, 7),
			wantContain: "Неизвестный ответ",
		},
		{
			name:        "malformed callback data",
			session:     true,
			data:        "ans_1",
			keepSession: true,
			wantContain: "Неизвестный ответ",
		},
		{
			name:    "submit fails",
			session: true,
			data:    answerData(card.ID, 1),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any()).Return(models.ReviewState{}, models.ErrStorage)
			},
			wantContain: "Не удалось сохранить ответ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, mb, c := newReviewTMock(t, ctrl, answeredAt, tt.f)
			if tt.session {
				c.SetSession(456, cache.ReviewSession{Card: card, ShownAt: shownAt})
			}

			r.processAnswer(query(tt.data))

			require.Len(t, mb.SentMessages, 1)
			if tt.wantEdit {
				edit, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, 9, edit.MessageID)
				assert.Contains(t, edit.Text, tt.wantContain)
			} else {
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, tt.wantContain)
			}

			_, ok := c.Session(456)
			assert.Equal(t, tt.keepSession, ok)
		})
	}
}

func TestReviewT_processAnswerAfterNewerCard(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	older, newer := testCard(), testCard()
	r, mb, c := newReviewTMock(t, ctrl, shownAt, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().SubmitAnswer(gomock.Any(), models.SubmitAnswerRequest{
			UserID:      456,
			FlashcardID: newer.ID.String(),
			IsCorrect:   true,
		}).Return(models.ReviewState{}, nil)
	})

	r.showCard(123, 456, older, "❓ ")
	r.showCard(123, 456, newer, "❓ ")
	olderData := *mb.SentMessages[0].(tgbotapi.MessageConfig).ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup).InlineKeyboard[1][0].CallbackData
	newerData := *mb.SentMessages[1].(tgbotapi.MessageConfig).ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup).InlineKeyboard[1][0].CallbackData

	tap := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			ID:      "q",
			From:    &tgbotapi.User{ID: 456},
			Data:    data,
			Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 123}, Text: "❓ 2 + 2 = ?"},
		}
	}

	r.processAnswer(tap(olderData))
	require.Len(t, mb.SentMessages, 3)
	assert.Contains(t, mb.SentMessages[2].(tgbotapi.MessageConfig).Text, "карточка уже неактуальна")

	session, ok := c.Session(456)
	require.True(t, ok)
	assert.Equal(t, newer.ID, session.Card.ID)

	r.processAnswer(tap(newerData))
	require.Len(t, mb.SentMessages, 4)
	_, ok = mb.SentMessages[3].(tgbotapi.EditMessageTextConfig)
	assert.True(t, ok)
}

func TestParseAnswerData(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	data := answerData(id, 3)
	assert.LessOrEqual(t, len(data), 64)

	gotID, idx, err := parseAnswerData(data)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, 3, idx)

	for _, bad := range []string{"ans_1", "ans_not-a-uuid_1", "ans_" + id.String() + "_x", "ans_" + id.String() + "_-1", "new_card"} {
		_, _, err := parseAnswerData(bad)
		assert.Error(t, err, bad)
	}
}

func TestSendReminder(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{}
	require.NoError(t, sendReminder(context.Background(), mb, 456, 3))

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(456), msg.ChatID)
	assert.Contains(t, msg.Text, "3")

	failing := &mock_bot.MockBot{Err: assert.AnError}
	require.ErrorIs(t, sendReminder(context.Background(), failing, 456, 3), assert.AnError)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sendReminder(ctx, mb, 456, 3), context.Canceled)
}
