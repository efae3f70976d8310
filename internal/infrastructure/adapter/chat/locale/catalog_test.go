package locale

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCatalogText(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, "Оплатите по ссылке: https://t.me/pay", c.Text(entity.LanguageRussian, KeyPayLink, "https://t.me/pay"))
	assert.Equal(t, "Pay using the link: https://t.me/pay", c.Text(entity.LanguageEnglish, KeyPayLink, "https://t.me/pay"))
	assert.Equal(t, "Something went wrong. Try again later.", c.Text("de", KeySomethingWrong))
}

func TestCatalogKeysCoverEveryLanguage(t *testing.T) {
	for _, lang := range entity.SupportedLanguages {
		assert.Len(t, messages[lang], len(messages[entity.DefaultLanguage]), "language %s", lang)
		_, ok := profiles[lang]
		assert.True(t, ok, "profile labels for %s", lang)
	}
}

func TestCatalogProfile(t *testing.T) {
	c := NewCatalog()
	registered := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("english", func(t *testing.T) {
		got := c.Profile(&entity.Account{
			UserID:       42,
			DisplayName:  "alice",
			Language:     entity.LanguageEnglish,
			RegisteredAt: registered,
			Balance:      3,
			IsAdmin:      true,
		})

		assert.Equal(t, "👤 <b>Name:</b> alice\n"+
			"🆔 <b>ID:</b> 42\n"+
			"📅 <b>Registration date:</b> 2025-03-01 12:30:00\n"+
			"💰 <b>Balance:</b> 3$\n"+
			"⚡ <b>Administrator:</b> Yes", got)
	})

	t.Run("russian without name", func(t *testing.T) {
		got := c.Profile(&entity.Account{
			UserID:       99,
			Language:     entity.LanguageRussian,
			RegisteredAt: registered,
		})

		assert.Contains(t, got, "👤 <b>Имя:</b> Не указано\n")
		assert.Contains(t, got, "📅 <b>Дата регистрации:</b> 2025-03-01 12:30:00\n")
		assert.Contains(t, got, "⚡ <b>Администратор:</b> Нет")
	})

	t.Run("name is escaped", func(t *testing.T) {
		got := c.Profile(&entity.Account{UserID: 1, DisplayName: "<b>x</b>&", Language: entity.LanguageEnglish})

		assert.Contains(t, got, "&lt;b&gt;x&lt;/b&gt;&amp;")
	})
}

func TestCatalogPaidMessages(t *testing.T) {
	got := NewCatalog().PaidMessages()

	assert.Equal(t, map[entity.Language]string{
		entity.LanguageEnglish: "Your payment has been received. Thank you!",
		entity.LanguageRussian: "Ваш платеж успешно принят! Спасибо!",
	}, got)
}
