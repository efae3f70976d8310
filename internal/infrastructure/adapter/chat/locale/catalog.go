package locale

import (
	"fmt"
	"html"
	"strings"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// Key identifies a localized message
type Key string

const (
	KeyGreeting           Key = "greeting"
	KeyWelcomeBack        Key = "welcome_back"
	KeySomethingWrong     Key = "something_wrong"
	KeyProfileCreated     Key = "profile_created"
	KeyLanguageUpdated    Key = "language_updated"
	KeyRegisterFirst      Key = "register_first"
	KeyPayLink            Key = "pay_link"
	KeyInvoiceFailed      Key = "invoice_failed"
	KeyPaymentAccepted    Key = "payment_accepted"
	KeyPaymentPending     Key = "payment_pending"
	KeyNoPayment          Key = "no_payment"
	KeyPaymentUnmatched   Key = "payment_unmatched"
	KeyPaymentCheckFailed Key = "payment_check_failed"
	KeyPaidNotification   Key = "paid_notification"
)

// RegisteredAtLayout is how registration dates appear in the profile
const RegisteredAtLayout = "2006-01-02 15:04:05"

type profileLabels struct {
	name, id, registered, balance, admin string
	yes, no, unset                       string
}

var messages = map[entity.Language]map[Key]string{
	entity.LanguageEnglish: {
		KeyGreeting:           "Hello, %s! Before we start, please select a language. You can edit this later.",
		KeyWelcomeBack:        "You're already registered, use /profile to start using bot",
		KeySomethingWrong:     "Something went wrong. Try again later.",
		KeyProfileCreated:     "Profile created successfully.",
		KeyLanguageUpdated:    "Language updated successfully.",
		KeyRegisterFirst:      "You're not registered yet, use /start first",
		KeyPayLink:            "Pay using the link: %s",
		KeyInvoiceFailed:      "Could not create an invoice. Try again later.",
		KeyPaymentAccepted:    "Your payment has been accepted!",
		KeyPaymentPending:     "Payment is not confirmed yet. Try again later.",
		KeyNoPayment:          "No payments found to check.",
		KeyPaymentUnmatched:   "This payment is already settled or was not issued here. Check your balance with /profile.",
		KeyPaymentCheckFailed: "Failed to fetch payment data. Try again later.",
		KeyPaidNotification:   "Your payment has been received. Thank you!",
	},
	entity.LanguageRussian: {
		KeyGreeting:           "Привет, %s! Прежде чем начать, выберите язык. Его можно изменить позже.",
		KeyWelcomeBack:        "Вы уже зарегистрированы, используйте /profile, чтобы начать использовать бота",
		KeySomethingWrong:     "Что-то пошло не так. Попробуйте позже.",
		KeyProfileCreated:     "Профиль успешно создан.",
		KeyLanguageUpdated:    "Язык успешно обновлен.",
		KeyRegisterFirst:      "Вы еще не зарегистрированы, сначала используйте /start",
		KeyPayLink:            "Оплатите по ссылке: %s",
		KeyInvoiceFailed:      "Не удалось создать счет. Попробуйте позже.",
		KeyPaymentAccepted:    "Ваш платеж успешно принят!",
		KeyPaymentPending:     "Платеж еще не подтвержден. Попробуйте позже.",
		KeyNoPayment:          "Не найдено ни одного платежа для проверки.",
		KeyPaymentUnmatched:   "Этот платеж уже обработан или выставлен не здесь. Проверьте баланс через /profile.",
		KeyPaymentCheckFailed: "Ошибка при получении данных о платежах. Попробуйте позже.",
		KeyPaidNotification:   "Ваш платеж успешно принят! Спасибо!",
	},
}

var profiles = map[entity.Language]profileLabels{
	entity.LanguageEnglish: {
		name: "Name", id: "ID", registered: "Registration date", balance: "Balance", admin: "Administrator",
		yes: "Yes", no: "No", unset: "Not specified",
	},
	entity.LanguageRussian: {
		name: "Имя", id: "ID", registered: "Дата регистрации", balance: "Баланс", admin: "Администратор",
		yes: "Да", no: "Нет", unset: "Не указано",
	},
}

// Catalog renders bot messages in the user's language.
// Unknown languages and missing keys fall back to English.
type Catalog struct{}

// NewCatalog creates a new message catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Text returns the message for key, formatting args into it when given
func (c *Catalog) Text(lang entity.Language, key Key, args ...any) string {
	msg, ok := messages[lang][key]
	if !ok {
		msg = messages[entity.DefaultLanguage][key]
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Profile renders the account card as HTML
func (c *Catalog) Profile(account *entity.Account) string {
	labels, ok := profiles[account.Language]
	if !ok {
		labels = profiles[entity.DefaultLanguage]
	}

	name := labels.unset
	if account.DisplayName != "" {
		name = html.EscapeString(account.DisplayName)
	}
	admin := labels.no
	if account.IsAdmin {
		admin = labels.yes
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 <b>%s:</b> %s\n", labels.name, name)
	fmt.Fprintf(&b, "🆔 <b>%s:</b> %d\n", labels.id, account.UserID)
	fmt.Fprintf(&b, "📅 <b>%s:</b> %s\n", labels.registered, account.RegisteredAt.UTC().Format(RegisteredAtLayout))
	fmt.Fprintf(&b, "💰 <b>%s:</b> %d$\n", labels.balance, account.Balance)
	fmt.Fprintf(&b, "⚡ <b>%s:</b> %s", labels.admin, admin)
	return b.String()
}

// PaidMessages returns the payment confirmation text for every supported language
func (c *Catalog) PaidMessages() map[entity.Language]string {
	out := make(map[entity.Language]string, len(entity.SupportedLanguages))
	for _, lang := range entity.SupportedLanguages {
		out[lang] = c.Text(lang, KeyPaidNotification)
	}
	return out
}
