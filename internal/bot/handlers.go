package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"kurator/internal/domain"
	"kurator/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Main menu button labels.
const (
	btnProgramming = "💻 Программирование"
	btnDesign      = "🎨 Дизайн"
	btnMarketing   = "📈 Маркетинг"
	btnAnalytics   = "📊 Аналитика"
	btnFinder      = "🔍 Подобрать курс"
	btnMyStats     = "📊 Моя статистика"
	btnAbout       = "ℹ️ О боте"
	btnPartner     = "🤝 Партнерка"
)

var categoryButtons = map[string]string{
	btnProgramming: domain.CategoryProgramming,
	btnDesign:      domain.CategoryDesign,
	btnMarketing:   domain.CategoryMarketing,
	btnAnalytics:   domain.CategoryAnalytics,
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "help":
			b.registry.TouchActivity(msg.From.ID)
			b.reply(msg.Chat.ID, helpText, nil)
		case "courses":
			b.registry.TouchActivity(msg.From.ID)
			b.reply(msg.Chat.ID, "👇 <b>Выберите категорию курсов:</b>", categoriesKeyboard())
		case "stats":
			b.showMyStats(msg.Chat.ID, msg.From.ID)
		case "admin":
			b.handleAdmin(msg)
		default:
			b.handleUnknown(msg)
		}
		return
	}

	if category, ok := categoryButtons[msg.Text]; ok {
		b.showCategory(msg.Chat.ID, msg.From.ID, category, msg.Text)
		return
	}
	switch msg.Text {
	case btnFinder:
		b.registry.TouchActivity(msg.From.ID)
		b.reply(msg.Chat.ID, finderText, finderKeyboard())
	case btnMyStats:
		b.showMyStats(msg.Chat.ID, msg.From.ID)
	case btnAbout:
		b.registry.TouchActivity(msg.From.ID)
		b.reply(msg.Chat.ID, aboutText(), aboutKeyboard())
	case btnPartner:
		b.showPartnerProgram(msg.Chat.ID, msg.From.ID)
	default:
		b.handleUnknown(msg)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	from := msg.From
	referrer := parseReferralArg(msg.CommandArguments())
	if referrer != nil {
		log.Printf("[bot] referral visit: %d from %d", from.ID, *referrer)
	}
	if _, outcome := b.registry.Register(from.ID, from.UserName, from.FirstName, from.LastName, referrer); outcome != service.OutcomeOK {
		log.Printf("[bot] register %d: %s", from.ID, outcome)
	}
	b.registry.TouchActivity(from.ID)

	name := from.FirstName
	if name == "" {
		name = "Пользователь"
	}
	b.reply(msg.Chat.ID, welcomeText(name), mainMenuKeyboard())
}

// parseReferralArg extracts the referrer's telegram id from a /start
// deep-link argument of the form "ref<id>".
func parseReferralArg(args string) *int64 {
	if !strings.HasPrefix(args, "ref") {
		return nil
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args, "ref"), 10, 64)
	if err != nil {
		log.Printf("[bot] malformed referral argument %q", args)
		return nil
	}
	return &id
}

func (b *Bot) showCategory(chatID, telegramID int64, category, title string) {
	b.registry.TouchActivity(telegramID)
	courses := b.catalog.ByCategory(category)
	if len(courses) == 0 {
		b.reply(chatID, "😔 Курсы в этой категории временно недоступны.", nil)
		return
	}
	text := fmt.Sprintf("<b>%s</b>\n\n<i>Выберите курс для подробной информации:</i>", title)
	b.reply(chatID, text, courseListKeyboard(courses))
}

func (b *Bot) showMyStats(chatID, telegramID int64) {
	b.registry.TouchActivity(telegramID)
	stats, outcome := b.tracker.UserStats(telegramID)
	text := "📊 <b>Ваша статистика</b>\n\nВы еще не совершали активных действий."
	if outcome == service.OutcomeOK {
		text = userStatsText(stats)
	}
	b.reply(chatID, text, statsKeyboard())
}

func (b *Bot) showPartnerProgram(chatID, telegramID int64) {
	b.registry.TouchActivity(telegramID)
	refCode := "—"
	if u, outcome := b.registry.Profile(telegramID); outcome == service.OutcomeOK {
		refCode = u.RefCode
	}
	link := b.referralLink(telegramID)
	b.reply(chatID, partnerText(link, refCode), partnerKeyboard())
}

func (b *Bot) referralLink(telegramID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=ref%d", b.api.Self.UserName, telegramID)
}

func (b *Bot) handleAdmin(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ Доступ запрещен", nil)
		return
	}
	stats, outcome := b.tracker.GlobalStats()
	if outcome != service.OutcomeOK {
		b.reply(msg.Chat.ID, "😔 Статистика временно недоступна.", nil)
		return
	}
	b.reply(msg.Chat.ID, adminStatsText(stats), nil)
}

func (b *Bot) handleUnknown(msg *tgbotapi.Message) {
	b.registry.TouchActivity(msg.From.ID)
	b.reply(msg.Chat.ID, unknownText, nil)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	data := cb.Data
	switch {
	case strings.HasPrefix(data, "course_"):
		b.showCourseDetail(cb)
	case strings.HasPrefix(data, "similar_"):
		b.showSimilarCourses(cb)
	case strings.HasPrefix(data, "finder_"):
		b.handleFinder(cb)
	case data == "menu_back":
		b.registry.TouchActivity(cb.From.ID)
		b.reply(cb.Message.Chat.ID, "👇 <b>Выберите действие:</b>", mainMenuKeyboard())
		b.answerCallback(cb, "", false)
	case data == "category_back":
		b.registry.TouchActivity(cb.From.ID)
		b.reply(cb.Message.Chat.ID, "👇 <b>Выберите категорию курсов:</b>", categoriesKeyboard())
		b.answerCallback(cb, "", false)
	case data == "my_ref_link":
		b.showRefLink(cb)
	case data == "refresh_stats":
		b.showMyStats(cb.Message.Chat.ID, cb.From.ID)
		b.answerCallback(cb, "✅ Статистика обновлена", false)
	default:
		b.answerCallback(cb, "", false)
	}
}

func (b *Bot) showCourseDetail(cb *tgbotapi.CallbackQuery) {
	id, err := strconv.Atoi(strings.TrimPrefix(cb.Data, "course_"))
	if err != nil {
		b.answerCallback(cb, "❌ Ошибка загрузки курса", true)
		return
	}
	course, ok := b.catalog.ByID(id)
	if !ok {
		b.answerCallback(cb, "❌ Курс не найден", true)
		return
	}
	b.registry.TouchActivity(cb.From.ID)

	// The click is best-effort: the course view is shown either way.
	courseID := course.ID
	if outcome := b.tracker.RecordClick(cb.From.ID, course.Platform, &courseID); outcome != service.OutcomeOK {
		log.Printf("[bot] click not recorded for %d: %s", cb.From.ID, outcome)
	}

	b.edit(cb, courseDetailText(course), courseDetailKeyboard(course))
	b.answerCallback(cb, "", false)
}

func (b *Bot) showSimilarCourses(cb *tgbotapi.CallbackQuery) {
	platform := strings.TrimPrefix(cb.Data, "similar_")
	if !domain.ValidPlatform(platform) {
		b.answerCallback(cb, "❌ Платформа не найдена", true)
		return
	}
	courses := b.catalog.ByPlatform(platform)
	if len(courses) == 0 {
		b.answerCallback(cb, "😔 Похожие курсы не найдены", true)
		return
	}
	if len(courses) > 5 {
		courses = courses[:5]
	}
	text := fmt.Sprintf("<b>Другие курсы на %s:</b>", domain.PlatformName(platform))
	b.edit(cb, text, courseListKeyboard(courses))
	b.answerCallback(cb, "", false)
}

var finderCategories = map[string]string{
	"finder_prog":      domain.CategoryProgramming,
	"finder_design":    domain.CategoryDesign,
	"finder_marketing": domain.CategoryMarketing,
	"finder_analytics": domain.CategoryAnalytics,
}

func (b *Bot) handleFinder(cb *tgbotapi.CallbackQuery) {
	if cb.Data == "finder_help" {
		b.reply(cb.Message.Chat.ID, finderHelpText, nil)
		b.answerCallback(cb, "", false)
		return
	}
	category, ok := finderCategories[cb.Data]
	if !ok {
		b.answerCallback(cb, "", false)
		return
	}
	b.registry.TouchActivity(cb.From.ID)
	courses := b.catalog.ByCategory(category)
	b.edit(cb, "<i>Выберите курс для подробной информации:</i>", courseListKeyboard(courses))
	b.answerCallback(cb, "", false)
}

func (b *Bot) showRefLink(cb *tgbotapi.CallbackQuery) {
	link := b.referralLink(cb.From.ID)
	text := fmt.Sprintf("<b>Ваша реферальная ссылка:</b>\n\n<code>%s</code>\n\n👇 Нажмите, чтобы скопировать:", link)
	b.edit(cb, text, refLinkKeyboard(link))
	b.answerCallback(cb, "Ссылка готова!", false)
}
