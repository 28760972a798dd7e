package bot

import (
	"context"
	"log"

	"kurator/config"
	"kurator/internal/catalog"
	"kurator/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the Telegram front end. It turns user gestures into registry and
// tracker calls and renders the results as messages and menus.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.TelegramConfig
	registry *service.RegistryService
	tracker  *service.TrackerService
	catalog  *catalog.Catalog
	admins   map[int64]struct{}
}

func New(cfg *config.TelegramConfig, registry *service.RegistryService, tracker *service.TrackerService, cat *catalog.Catalog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}
	log.Printf("[bot] authorized as @%s", api.Self.UserName)
	return &Bot{
		api:      api,
		cfg:      cfg,
		registry: registry,
		tracker:  tracker,
		catalog:  cat,
		admins:   admins,
	}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) isAdmin(telegramID int64) bool {
	_, ok := b.admins[telegramID]
	return ok
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("[bot] send: %v", err)
	}
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	b.send(msg)
}

// edit rewrites the callback's message in place, falling back to a fresh
// message when Telegram refuses the edit (e.g. identical content).
func (b *Bot) edit(cb *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = &markup
	if _, err := b.api.Send(edit); err != nil {
		msg := tgbotapi.NewMessage(cb.Message.Chat.ID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = markup
		b.send(msg)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	answer := tgbotapi.NewCallback(cb.ID, text)
	answer.ShowAlert = alert
	if _, err := b.api.Request(answer); err != nil {
		log.Printf("[bot] callback answer: %v", err)
	}
}
