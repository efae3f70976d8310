package chat

import "strings"

// Commands and callback data the router understands
const (
	CommandStart        = "start"
	CommandProfile      = "profile"
	CommandPay          = "pay"
	CommandCheckPayment = "check_payment"

	CallbackProfile = "profile"
)

// Update is one inbound chat event, either a text message or a button press
type Update struct {
	UpdateID  int64
	ChatID    int64
	UserID    int64
	Username  string
	Text      string
	MessageID int64

	CallbackID   string
	CallbackData string
}

// IsCallback reports whether the update is an inline button press
func (u Update) IsCallback() bool {
	return u.CallbackID != ""
}

// Command extracts the bot command from the message text.
// "/start@paybot arg" yields "start"; plain text yields "".
func (u Update) Command() string {
	text := strings.TrimSpace(u.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0][1:]
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd)
}
