package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ProgressSI interface {
	Metrics(ctx context.Context, userID int64) ([]models.SubjectProgress, error)
}

type ProgressT struct {
	bot     BotSender
	service ProgressSI
	log     *zap.Logger
}

func NewProgressTAPI(bot BotSender, service ProgressSI, log *zap.Logger) *ProgressT {
	return &ProgressT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *ProgressT) sendProgress(chatID, userID int64) {
	ctx, cancel := requestContext(5 * time.Second)
	defer cancel()

	metrics, err := t.service.Metrics(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get progress", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка получения статистики"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, progressFormat(metrics))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, msg)
}

func progressFormat(metrics []models.SubjectProgress) string {
	if len(metrics) == 0 {
		return "📊 Пока нет ответов. Начни с новой карточки!"
	}

	var sb strings.Builder
	sb.WriteString("📊 *Прогресс по предметам*\n")
	for _, m := range metrics {
		sb.WriteString(fmt.Sprintf("\n📚 Предмет `%s`\n", m.SubjectID.String()[:8]))
		sb.WriteString(fmt.Sprintf("• Ответов: %d\n", m.CompletedTopics))
		sb.WriteString(fmt.Sprintf("• Точность: %.0f%%\n", m.AccuracyRate*100))
		sb.WriteString(fmt.Sprintf("• Время: %s\n", (time.Duration(m.TimeSpent) * time.Second).String()))
	}

	return sb.String()
}
