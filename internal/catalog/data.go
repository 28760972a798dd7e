package catalog

import "kurator/internal/domain"

// seedCourses is the curated course list, keyed by category.
var seedCourses = map[string][]Course{
	domain.CategoryProgramming: {
		{
			ID:          1,
			Title:       "Python-разработчик с нуля",
			Platform:    domain.PlatformSkillFactory,
			Description: "Освойте Python, Django, PostgreSQL и Docker. Станьте junior-разработчиком за 12 месяцев.",
			Duration:    "12 месяцев",
			Price:       "от 5,900 ₽/мес",
			Skills:      []string{"Python", "Django", "PostgreSQL", "Docker", "REST API"},
			Rating:      "4.8/5",
			Comment:     "Самый популярный курс по Python. Отличная поддержка и реальные проекты.",
		},
		{
			ID:          2,
			Title:       "Fullstack-разработчик на JavaScript",
			Platform:    domain.PlatformSkillbox,
			Description: "Научитесь создавать веб-приложения с нуля. React, Node.js, MongoDB и облачные технологии.",
			Duration:    "18 месяцев",
			Price:       "от 6,500 ₽/мес",
			Skills:      []string{"JavaScript", "React", "Node.js", "MongoDB", "Docker"},
			Rating:      "4.7/5",
			Comment:     "Идеально для карьеры fullstack-разработчика. Современный стек технологий.",
		},
		{
			ID:          3,
			Title:       "Java-разработчик PRO",
			Platform:    domain.PlatformGeekBrains,
			Description: "Профессия Java-разработчик с гарантией трудоустройства. Spring, Hibernate, микросервисы.",
			Duration:    "14 месяцев",
			Price:       "от 7,000 ₽/мес",
			Skills:      []string{"Java", "Spring Boot", "Hibernate", "Kafka", "Docker"},
			Rating:      "4.6/5",
			Comment:     "Лучший выбор для enterprise-разработки. Сильное комьюнити.",
		},
		{
			ID:          4,
			Title:       "Разработчик на C# и .NET",
			Platform:    domain.PlatformSkillbox,
			Description: "Освойте разработку на C# для Windows, веба и игр. Unity, ASP.NET Core, Entity Framework.",
			Duration:    "10 месяцев",
			Price:       "от 5,500 ₽/мес",
			Skills:      []string{"C#", ".NET Core", "ASP.NET", "SQL Server", "Unity"},
			Rating:      "4.5/5",
			Comment:     "Отличный курс для разработки под экосистему Microsoft.",
		},
	},
	domain.CategoryDesign: {
		{
			ID:          5,
			Title:       "UX/UI-дизайнер с нуля до PRO",
			Platform:    domain.PlatformSkillbox,
			Description: "Научитесь создавать современные интерфейсы для сайтов и приложений. Figma, Adobe XD, Tilda.",
			Duration:    "12 месяцев",
			Price:       "от 5,000 ₽/мес",
			Skills:      []string{"Figma", "UI/UX", "Прототипирование", "User Research", "Design Systems"},
			Rating:      "4.9/5",
			Comment:     "Лучший курс по дизайну интерфейсов. Много реальных кейсов.",
		},
		{
			ID:          6,
			Title:       "Графический дизайн и брендинг",
			Platform:    domain.PlatformSkillFactory,
			Description: "Освойте Adobe Photoshop, Illustrator и создавайте профессиональный дизайн для брендов.",
			Duration:    "8 месяцев",
			Price:       "от 4,500 ₽/мес",
			Skills:      []string{"Photoshop", "Illustrator", "Брендинг", "Верстка", "Typography"},
			Rating:      "4.7/5",
			Comment:     "Практический курс с фокусом на коммерческий дизайн.",
		},
	},
	domain.CategoryMarketing: {
		{
			ID:          7,
			Title:       "Digital-маркетолог от А до Я",
			Platform:    domain.PlatformGeekBrains,
			Description: "Полный курс по интернет-маркетингу: SMM, SEO, контекстная реклама, аналитика и стратегия.",
			Duration:    "10 месяцев",
			Price:       "от 5,800 ₽/мес",
			Skills:      []string{"SMM", "SEO", "Google Ads", "Analytics", "Content Marketing"},
			Rating:      "4.8/5",
			Comment:     "Комплексный подход к digital-маркетингу. Актуальные инструменты 2024.",
		},
		{
			ID:          8,
			Title:       "SMM-специалист PRO",
			Platform:    domain.PlatformSkillbox,
			Description: "Научитесь продвигать бренды в соцсетях. Instagram, VK, YouTube, Telegram, TikTok.",
			Duration:    "7 месяцев",
			Price:       "от 4,800 ₽/мес",
			Skills:      []string{"Instagram", "TikTok", "YouTube", "Таргетинг", "Content Plan"},
			Rating:      "4.6/5",
			Comment:     "Практический курс с упором на монетизацию.",
		},
	},
	domain.CategoryAnalytics: {
		{
			ID:          9,
			Title:       "Data Science и Machine Learning",
			Platform:    domain.PlatformSkillFactory,
			Description: "Станьте data scientist. Python для анализа данных, машинное обучение, нейросети и SQL.",
			Duration:    "16 месяцев",
			Price:       "от 7,200 ₽/мес",
			Skills:      []string{"Python", "Pandas", "ML", "SQL", "Tableau", "Deep Learning"},
			Rating:      "4.9/5",
			Comment:     "Самый глубокий курс по Data Science на русском языке.",
		},
		{
			ID:          10,
			Title:       "Аналитик данных с нуля",
			Platform:    domain.PlatformGeekBrains,
			Description: "Освойте SQL, Excel, Python и BI-системы. Научитесь принимать решения на основе данных.",
			Duration:    "9 месяцев",
			Price:       "от 5,500 ₽/мес",
			Skills:      []string{"SQL", "Excel", "Python", "Tableau", "Statistics", "Power BI"},
			Rating:      "4.7/5",
			Comment:     "Отличный старт в аналитике. Много практических заданий.",
		},
	},
}
