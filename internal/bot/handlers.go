package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonReview   = "🔁 Повторение"
	ButtonNewCard  = "🆕 Новая карточка"
	ButtonProgress = "📊 Мой прогресс"
	ButtonMainMenu = "🏠 Главное меню"
	ButtonHelp     = "ℹ️ Помощь"
)

const (
	callbackAnswer     = "ans_"
	callbackReviewNext = "review_next"
	callbackNewCard    = "new_card"
	callbackMenu       = "main_menu"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Привет! Я помогу готовиться к экзаменам по карточкам.\n\n" +
		"✨ Что я умею:\n" +
		"• 🆕 Показывать новые карточки\n" +
		"• 🔁 Напоминать повторить то, что пора повторить\n" +
		"• 📊 Показывать прогресс по предметам\n\n" +
		"Нажми кнопку ниже, чтобы начать!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Главное меню:")
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonReview),
			tgbotapi.NewKeyboardButton(ButtonNewCard),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Доступные команды:
/start — запустить бота
/help — это сообщение

🎯 Используй кнопки:
• "Повторение" — карточки, которые пора повторить
• "Новая карточка" — случайный вопрос из каталога
• "Мой прогресс" — точность и время по предметам
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonReview:
		t.review.sendDueCard(message.Chat.ID, userID)
	case ButtonNewCard:
		t.review.sendNewCard(message.Chat.ID, userID)
	case ButtonProgress:
		t.progress.sendProgress(message.Chat.ID, userID)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Я не понял. Используй кнопки ниже.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackAnswer):
		t.review.processAnswer(query)
	case data == callbackReviewNext:
		t.review.sendDueCard(query.Message.Chat.ID, query.From.ID)
	case data == callbackNewCard:
		t.review.sendNewCard(query.Message.Chat.ID, query.From.ID)
	case data == callbackMenu:
		t.showMainMenu(query.Message)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
