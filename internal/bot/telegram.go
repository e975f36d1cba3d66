package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	ReviewSI
	ProgressSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotClient is the part of the Bot API the handlers use.
type BotClient interface {
	BotSender
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotClient
	review   *ReviewT
	progress *ProgressT
	log      *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return &TelegramAPI{
		api:      bot,
		bot:      bot,
		review:   NewReviewTAPI(bot, cache, service, log),
		progress: NewProgressTAPI(bot, service, log),
		log:      log,
	}, nil
}

// Start reads updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// SendReminder tells the user how many cards are waiting. Private chats share
// the user's id.
func (t *TelegramAPI) SendReminder(ctx context.Context, userID int64, due int) error {
	return sendReminder(ctx, t.bot, userID, due)
}

func sendReminder(ctx context.Context, bot BotSender, userID int64, due int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(userID, fmt.Sprintf("🔔 Пора повторить! Карточек к повторению: %d", due))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔁 Повторить", callbackReviewNext)),
	)
	msg.ReplyMarkup = &keyboard

	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("send reminder to %d: %w", userID, err)
	}

	return nil
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}

	chatID := int64(0)
	if sentMsg.Chat != nil {
		chatID = sentMsg.Chat.ID
	}
	log.Debug("sent message", zap.Int64("chat_id", chatID))
}

func requestContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
