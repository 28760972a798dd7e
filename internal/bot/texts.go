package bot

import (
	"fmt"
	"strings"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/domain"
	"kurator/internal/service"
)

func welcomeText(firstName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎓 <b>Привет, %s!</b>\n\n", firstName)
	sb.WriteString("Я — бот-куратор курсов по IT и digital.\n")
	sb.WriteString("Помогу выбрать лучшие курсы с проверенными отзывами.\n\n")
	sb.WriteString("<b>Доступные платформы:</b>\n")
	fmt.Fprintf(&sb, "• Skillbox — %s комиссия\n", domain.Commissions[domain.PlatformSkillbox])
	fmt.Fprintf(&sb, "• SkillFactory — %s комиссия\n", domain.Commissions[domain.PlatformSkillFactory])
	fmt.Fprintf(&sb, "• GeekBrains — %s комиссия\n\n", domain.Commissions[domain.PlatformGeekBrains])
	sb.WriteString("<blockquote>💡 <i>Для вас цена не меняется!\nКомиссия идет на развитие бота.</i></blockquote>\n\n")
	sb.WriteString("👇 <b>Выберите категорию:</b>")
	return sb.String()
}

const helpText = `<b>📚 Доступные команды:</b>

/start — Главное меню
/help — Эта справка
/courses — Все категории курсов
/stats — Ваша статистика (только для вас)

<b>🏷️ Категории курсов:</b>
💻 <b>Программирование</b> — Python, JavaScript, Java, C#
🎨 <b>Дизайн</b> — UX/UI, Графический дизайн
📈 <b>Маркетинг</b> — Digital, SMM, SEO
📊 <b>Аналитика</b> — Data Science, Анализ данных

<b>🔄 Навигация:</b>
• Используйте кнопки меню
• Нажмите на курс для подробной информации
• Переходите по ссылкам для оформления

<b>💼 Партнерская программа:</b>
Приглашайте друзей и получайте 10% от нашей комиссии!

<i>Есть вопросы? Напишите нам!</i>`

const unknownText = `🤔 Я не понимаю это сообщение.

Используйте кнопки меню или команды:
/start — Главное меню
/help — Помощь по боту
/stats — Ваша статистика`

const finderText = `🎯 <b>Подбор идеального курса</b>

Ответьте на 3 вопроса, и я подберу курсы именно для вас:

<b>1. Какое направление вас интересует?</b>`

const finderHelpText = `💡 Начните с категории <b>💻 Программирование</b> — там самые востребованные профессии, а порог входа ниже, чем кажется.

Если сомневаетесь, посмотрите курсы по аналитике: они подходят и гуманитариям.`

func courseDetailText(course catalog.Course) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎓 <b>%s</b>\n", course.Title)
	fmt.Fprintf(&sb, "🏢 <i>Платформа: %s</i>\n", domain.PlatformName(course.Platform))
	fmt.Fprintf(&sb, "⭐ <b>Рейтинг: %s</b>\n\n", course.Rating)
	fmt.Fprintf(&sb, "📝 <b>Описание:</b>\n%s\n\n", course.Description)
	fmt.Fprintf(&sb, "⏱ <b>Длительность:</b> %s\n", course.Duration)
	fmt.Fprintf(&sb, "💰 <b>Стоимость:</b> %s\n\n", course.Price)
	sb.WriteString("🛠 <b>Освоите навыки:</b>\n")
	for _, skill := range course.Skills {
		fmt.Fprintf(&sb, "• %s\n", skill)
	}
	fmt.Fprintf(&sb, "\n💬 <b>Наш отзыв:</b>\n<blockquote>%s</blockquote>\n\n", course.Comment)
	fmt.Fprintf(&sb, "💼 <b>Партнерская комиссия:</b> %s", domain.Commissions[course.Platform])
	return sb.String()
}

func userStatsText(stats *service.UserStats) string {
	u := stats.User
	var sb strings.Builder
	sb.WriteString("📊 <b>Ваша статистика</b>\n\n")
	fmt.Fprintf(&sb, "👤 <b>Пользователь:</b> %s\n", u.FirstName)
	fmt.Fprintf(&sb, "📅 <b>Зарегистрирован:</b> %s\n", u.RegisteredAt.Format("2006-01-02"))
	fmt.Fprintf(&sb, "🔗 <b>Ваш реф-код:</b> <code>%s</code>\n\n", u.RefCode)
	sb.WriteString("📈 <b>Активность:</b>\n")
	fmt.Fprintf(&sb, "• Всего переходов: <b>%d</b>\n", stats.TotalClicks)
	fmt.Fprintf(&sb, "• Активных платформ: <b>%d</b>\n\n", stats.PlatformsCount)
	sb.WriteString("<b>Переходы по платформам:</b>\n")
	for _, row := range stats.ByPlatform {
		fmt.Fprintf(&sb, "• %s: %d переходов\n", domain.PlatformName(row.Platform), row.Clicks)
	}
	if len(stats.Recent) > 0 {
		sb.WriteString("\n<b>Последние переходы:</b>\n")
		for _, click := range stats.Recent {
			fmt.Fprintf(&sb, "• %s — %s\n", domain.PlatformName(click.Platform), click.ClickedAt.Format("02.01.2006 15:04"))
		}
	}
	if u.ReferrerID != nil {
		fmt.Fprintf(&sb, "\n🤝 <b>Вас пригласил:</b> пользователь #%d\n", *u.ReferrerID)
	}
	sb.WriteString("\n💼 <b>Ваш заработок:</b>\n")
	sb.WriteString("Приглашено друзей: <b>0</b>\n")
	sb.WriteString("Доступно к выводу: <b>0 ₽</b>\n\n")
	sb.WriteString("<i>Приглашайте друзей по реферальной ссылке!</i>")
	return sb.String()
}

func adminStatsText(stats *service.GlobalStats) string {
	var sb strings.Builder
	sb.WriteString("<b>📊 АДМИН-ПАНЕЛЬ</b>\n\n")
	fmt.Fprintf(&sb, "👥 <b>Пользователи:</b> %d\n", stats.TotalUsers)
	fmt.Fprintf(&sb, "📈 <b>Активные (7 дней):</b> %d\n", stats.ActiveUsers7d)
	fmt.Fprintf(&sb, "🖱️ <b>Всего кликов:</b> %d\n\n", stats.TotalClicks)
	sb.WriteString("<b>Клики по платформам:</b>\n")
	for _, row := range stats.ByPlatform {
		fmt.Fprintf(&sb, "• %s: %d\n", domain.PlatformName(row.Platform), row.Clicks)
	}
	sb.WriteString("\n<b>Клики за 7 дней:</b>\n")
	for _, day := range stats.Daily {
		fmt.Fprintf(&sb, "• %s: %d\n", day.Date, day.Clicks)
	}
	fmt.Fprintf(&sb, "\n<i>Обновлено: %s</i>", time.Now().Format("02.01.2006 15:04"))
	return sb.String()
}

func aboutText() string {
	var sb strings.Builder
	sb.WriteString("🤖 <b>О боте-кураторе</b>\n\n")
	sb.WriteString("<b>Наша миссия:</b>\nПомогать находить качественные IT-курсы и начинать карьеру в digital.\n\n")
	sb.WriteString("<b>Как мы работаем:</b>\n1. Тщательно отбираем курсы\n2. Даем честные отзывы\n3. Используем партнерские ссылки\n4. Развиваем бота на комиссию\n\n")
	sb.WriteString("<b>Партнерские платформы:</b>\n")
	sb.WriteString("• Skillbox — курсы с практикой\n")
	sb.WriteString("• SkillFactory — обучение с менторами\n")
	sb.WriteString("• GeekBrains — гарантия трудоустройства\n\n")
	sb.WriteString("<b>Партнерские комиссии:</b>\n")
	for _, platform := range []string{domain.PlatformSkillbox, domain.PlatformSkillFactory, domain.PlatformGeekBrains} {
		fmt.Fprintf(&sb, "• %s: %s\n", domain.PlatformName(platform), domain.Commissions[platform])
	}
	sb.WriteString("\n<blockquote>💡 <i>Для вас цена не меняется!\nМы получаем комиссию только при успешной покупке.</i></blockquote>\n\n")
	sb.WriteString("<i>Бот работает на энтузиазме и партнерских комиссиях ❤️</i>")
	return sb.String()
}

func partnerText(link, refCode string) string {
	var sb strings.Builder
	sb.WriteString("🤝 <b>Партнерская программа</b>\n\n")
	sb.WriteString("Приглашайте друзей и получайте <b>10% от нашей комиссии</b> с их покупок!\n\n")
	fmt.Fprintf(&sb, "<b>Ваша реферальная ссылка:</b>\n<code>%s</code>\n\n", link)
	fmt.Fprintf(&sb, "<b>Или код для ручного ввода:</b>\n<code>%s</code>\n\n", refCode)
	sb.WriteString("<b>Как это работает:</b>\n")
	sb.WriteString("1. Друг переходит по вашей ссылке\n")
	sb.WriteString("2. Регистрируется через бота\n")
	sb.WriteString("3. Совершает покупку любого курса\n")
	sb.WriteString("4. Вы получаете 10% от нашей комиссии\n\n")
	sb.WriteString("<b>Условия выплат:</b>\n")
	sb.WriteString("• Минимальная сумма вывода: 500 ₽\n")
	sb.WriteString("• Статистика обновляется ежедневно\n")
	sb.WriteString("• Выплаты раз в месяц\n\n")
	sb.WriteString("<i>Начните приглашать друзей уже сегодня!</i>")
	return sb.String()
}
