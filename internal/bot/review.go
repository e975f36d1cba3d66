package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewSI interface {
	FlashcardsToRepeat(ctx context.Context, req models.DueFlashcardsRequest) ([]models.DueFlashcard, error)
	EntryTestFlashcards(ctx context.Context, subjectID string, page models.Page) ([]models.Flashcard, error)
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (models.ReviewState, error)
}

type ReviewT struct {
	bot     BotSender
	cache   *cache.Cache
	service ReviewSI
	now     func() time.Time
	log     *zap.Logger
}

func NewReviewTAPI(bot BotSender, cache *cache.Cache, service ReviewSI, log *zap.Logger) *ReviewT {
	return &ReviewT{
		bot:     bot,
		cache:   cache,
		service: service,
		now:     time.Now,
		log:     log,
	}
}

func (t *ReviewT) sendDueCard(chatID, userID int64) {
	ctx, cancel := requestContext(10 * time.Second)
	defer cancel()

	due, err := t.service.FlashcardsToRepeat(ctx, models.DueFlashcardsRequest{UserID: userID, Take: 1})
	if err != nil {
		t.log.Warn("failed to get due cards", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка при получении карточек. Попробуй позже."))
		return
	}

	if len(due) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🎉 Сейчас нечего повторять. Возьми новую карточку!")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🆕 Новая карточка", callbackNewCard)),
		)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, t.log, msg)
		return
	}

	t.showCard(chatID, userID, due[0].Flashcard, "🔁 ")
}

func (t *ReviewT) sendNewCard(chatID, userID int64) {
	ctx, cancel := requestContext(10 * time.Second)
	defer cancel()

	cards, err := t.service.EntryTestFlashcards(ctx, "", models.Page{Take: 1})
	if err != nil {
		t.log.Warn("failed to get new card", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка при получении карточки. Попробуй позже."))
		return
	}

	if len(cards) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "📭 Каталог пока пуст."))
		return
	}

	t.showCard(chatID, userID, cards[0], "❓ ")
}

func (t *ReviewT) showCard(chatID, userID int64, card models.Flashcard, prefix string) {
	if len(card.Answers) == 0 {
		t.log.Warn("flashcard without answers", zap.String("flashcard_id", card.ID.String()))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ У карточки нет вариантов ответа."))
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(card.Answers))
	for i, a := range card.Answers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.Text, answerData(card.ID, i)),
		))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, prefix+card.Question)
	msg.ReplyMarkup = &keyboard

	t.cache.SetSession(userID, cache.ReviewSession{Card: card, ShownAt: t.now()})

	sendMessage(t.bot, t.log, msg)
}

func (t *ReviewT) processAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	cardID, idx, err := parseAnswerData(query.Data)
	if err != nil {
		t.log.Warn("bad answer callback", zap.String("data", query.Data), zap.Int64("user_id", userID))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Неизвестный ответ."))
		return
	}

	session, exists := t.cache.TakeSession(userID, cardID)
	if !exists {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Эта карточка уже неактуальна. Открой новую."))
		return
	}

	if idx >= len(session.Card.Answers) {
		t.log.Warn("answer index out of range", zap.String("data", query.Data), zap.Int64("user_id", userID))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Неизвестный ответ."))
		return
	}
	chosen := session.Card.Answers[idx]

	timeSpent := int64(t.now().Sub(session.ShownAt) / time.Second)
	if timeSpent < 0 {
		timeSpent = 0
	}

	ctx, cancel := requestContext(5 * time.Second)
	defer cancel()

	state, err := t.service.SubmitAnswer(ctx, models.SubmitAnswerRequest{
		UserID:      userID,
		FlashcardID: session.Card.ID.String(),
		IsCorrect:   chosen.IsCorrect,
		TimeSpent:   timeSpent,
	})
	if err != nil && !errors.Is(err, models.ErrStaleProgress) {
		t.log.Warn("failed to submit answer",
			zap.Int64("user_id", userID),
			zap.String("flashcard_id", session.Card.ID.String()),
			zap.Error(err),
		)
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Не удалось сохранить ответ. Попробуй ещё раз."))
		return
	}

	var sb strings.Builder
	sb.WriteString(query.Message.Text)
	sb.WriteString("\n\n")
	if chosen.IsCorrect {
		sb.WriteString("✅ Правильно!")
	} else {
		sb.WriteString("❌ Неправильно. Верный ответ: ")
		sb.WriteString(correctText(session.Card.Answers))
	}
	sb.WriteString(fmt.Sprintf("\n📅 Следующее повторение: %s", state.NextReview.Format("02.01.2006")))

	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, sb.String())
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Дальше", callbackReviewNext),
			tgbotapi.NewInlineKeyboardButtonData("🆕 Новая", callbackNewCard),
		),
	)
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, editMsg)
}

// answerData encodes the card and the answer index, e.g. "ans_<uuid>_1".
func answerData(cardID uuid.UUID, idx int) string {
	return callbackAnswer + cardID.String() + "_" + strconv.Itoa(idx)
}

func parseAnswerData(data string) (uuid.UUID, int, error) {
	rest, ok := strings.CutPrefix(data, callbackAnswer)
	if !ok {
		return uuid.Nil, 0, fmt.Errorf("missing %q prefix", callbackAnswer)
	}

	rawID, rawIdx, ok := strings.Cut(rest, "_")
	if !ok {
		return uuid.Nil, 0, fmt.Errorf("missing answer index")
	}

	cardID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("parse card id: %w", err)
	}

	idx, err := strconv.Atoi(rawIdx)
	if err != nil || idx < 0 {
		return uuid.Nil, 0, fmt.Errorf("bad answer index %q", rawIdx)
	}

	return cardID, idx, nil
}

func correctText(answers []models.Answer) string {
	var correct []string
	for _, a := range answers {
		if a.IsCorrect {
			correct = append(correct, a.Text)
		}
	}
	return strings.Join(correct, ", ")
}
