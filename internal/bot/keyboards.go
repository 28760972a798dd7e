package bot

import (
	"fmt"
	"net/url"

	"kurator/internal/catalog"
	"kurator/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProgramming),
			tgbotapi.NewKeyboardButton(btnDesign),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMarketing),
			tgbotapi.NewKeyboardButton(btnAnalytics),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnFinder),
			tgbotapi.NewKeyboardButton(btnMyStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAbout),
			tgbotapi.NewKeyboardButton(btnPartner),
		),
	)
	kb.ResizeKeyboard = true
	kb.InputFieldPlaceholder = "Выберите действие..."
	return kb
}

func categoriesKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProgramming),
			tgbotapi.NewKeyboardButton(btnDesign),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMarketing),
			tgbotapi.NewKeyboardButton(btnAnalytics),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func courseListKeyboard(courses []catalog.Course) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, course := range courses {
		label := fmt.Sprintf("%s (%s)", course.Title, domain.PlatformName(course.Platform))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("course_%d", course.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Назад в меню", "menu_back"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func courseDetailKeyboard(course catalog.Course) tgbotapi.InlineKeyboardMarkup {
	partnerLink := domain.PartnerLinks[course.Platform]
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌐 Перейти на сайт курса", partnerLink),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Похожие курсы", "similar_"+course.Platform),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад к категориям", "category_back"),
			tgbotapi.NewInlineKeyboardButtonData("🏠 В меню", "menu_back"),
		),
	)
}

func statsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Моя реф-ссылка", "my_ref_link"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", "refresh_stats"),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "menu_back"),
		),
	)
}

func partnerKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Моя реф-ссылка", "my_ref_link"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Моя статистика", "refresh_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "menu_back"),
		),
	)
}

func aboutKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "menu_back"),
		),
	)
}

func finderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💻 Программирование", "finder_prog"),
			tgbotapi.NewInlineKeyboardButtonData("🎨 Дизайн", "finder_design"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Маркетинг", "finder_marketing"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Аналитика", "finder_analytics"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Не знаю, помогите", "finder_help"),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "menu_back"),
		),
	)
}

func refLinkKeyboard(link string) tgbotapi.InlineKeyboardMarkup {
	shareURL := fmt.Sprintf(
		"https://t.me/share/url?url=%s&text=%s",
		url.QueryEscape(link),
		url.QueryEscape("Привет! Нашел классного бота с курсами по IT!"),
	)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📋 Поделиться ссылкой", shareURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "menu_back"),
		),
	)
}
