package chat

import (
	"context"
	"errors"
	"html"
	"strconv"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat/locale"
	"github.com/google/uuid"
)

// Router dispatches chat updates to account and payment operations
type Router struct {
	accounts  usecase.AccountUseCase
	payments  usecase.ReconciliationUseCase
	responder gateway.Responder
	catalog   *locale.Catalog
	logger    coreport.Logger
}

// NewRouter creates a new chat router
func NewRouter(
	accounts usecase.AccountUseCase,
	payments usecase.ReconciliationUseCase,
	responder gateway.Responder,
	catalog *locale.Catalog,
	logger coreport.Logger,
) *Router {
	return &Router{
		accounts:  accounts,
		payments:  payments,
		responder: responder,
		catalog:   catalog,
		logger:    logger,
	}
}

// LanguageKeyboard lets a new user pick a language
func LanguageKeyboard() [][]gateway.Button {
	return [][]gateway.Button{
		{{Text: "🇷🇺 Russian", Data: string(entity.LanguageRussian)}},
		{{Text: "🇺🇸 English", Data: string(entity.LanguageEnglish)}},
	}
}

// Handle processes one update. The returned error is a delivery failure of the reply;
// domain failures are answered to the user and logged here.
func (r *Router) Handle(ctx context.Context, upd Update) error {
	if coreport.RequestIDFromContext(ctx) == "" {
		ctx = coreport.WithRequestID(ctx, uuid.NewString())
	}

	if upd.IsCallback() {
		return r.handleCallback(ctx, upd)
	}

	switch upd.Command() {
	case CommandStart:
		return r.start(ctx, upd)
	case CommandProfile:
		return r.profile(ctx, upd)
	case CommandPay:
		return r.pay(ctx, upd)
	case CommandCheckPayment:
		return r.checkPayment(ctx, upd)
	default:
		r.logger.Debug("Ignoring unsupported message", map[string]any{
			"user_id":    upd.UserID,
			"request_id": coreport.RequestIDFromContext(ctx),
		})
		return nil
	}
}

func (r *Router) handleCallback(ctx context.Context, upd Update) error {
	if upd.CallbackData == CallbackProfile {
		return r.profileCallback(ctx, upd)
	}
	if lang, err := entity.ParseLanguage(upd.CallbackData); err == nil {
		return r.selectLanguage(ctx, upd, lang)
	}

	r.logger.Debug("Ignoring unknown callback", map[string]any{
		"user_id": upd.UserID,
		"data":    upd.CallbackData,
	})
	return r.responder.AnswerCallback(ctx, upd.CallbackID, "", false)
}

func (r *Router) start(ctx context.Context, upd Update) error {
	account, err := r.accounts.GetProfile(ctx, upd.UserID)
	switch {
	case err == nil:
		return r.send(ctx, upd, r.catalog.Text(account.Language, locale.KeyWelcomeBack))
	case errors.Is(err, errs.ErrAccountNotFound):
		r.logger.Info("New user started the bot", map[string]any{
			"user_id":  upd.UserID,
			"username": upd.Username,
		})
		return r.responder.Send(ctx, upd.ChatID, gateway.Reply{
			Text:     r.catalog.Text(entity.DefaultLanguage, locale.KeyGreeting, displayName(upd)),
			Keyboard: LanguageKeyboard(),
		})
	default:
		r.logFailure(ctx, "Failed to load account on start", upd, err)
		return r.send(ctx, upd, r.catalog.Text(entity.DefaultLanguage, locale.KeySomethingWrong))
	}
}

func (r *Router) profile(ctx context.Context, upd Update) error {
	account, err := r.accounts.GetProfile(ctx, upd.UserID)
	switch {
	case err == nil:
		return r.send(ctx, upd, r.catalog.Profile(account))
	case errors.Is(err, errs.ErrAccountNotFound):
		return r.send(ctx, upd, r.catalog.Text(entity.DefaultLanguage, locale.KeyRegisterFirst))
	default:
		r.logFailure(ctx, "Failed to load profile", upd, err)
		return r.send(ctx, upd, r.catalog.Text(entity.DefaultLanguage, locale.KeySomethingWrong))
	}
}

func (r *Router) profileCallback(ctx context.Context, upd Update) error {
	account, err := r.accounts.GetProfile(ctx, upd.UserID)
	switch {
	case err == nil:
		if err := r.responder.AnswerCallback(ctx, upd.CallbackID, "", false); err != nil {
			return err
		}
		return r.editProfile(ctx, upd, account)
	case errors.Is(err, errs.ErrAccountNotFound):
		return r.responder.AnswerCallback(ctx, upd.CallbackID,
			r.catalog.Text(entity.DefaultLanguage, locale.KeyRegisterFirst), true)
	default:
		r.logFailure(ctx, "Failed to load profile", upd, err)
		return r.responder.AnswerCallback(ctx, upd.CallbackID,
			r.catalog.Text(entity.DefaultLanguage, locale.KeySomethingWrong), true)
	}
}

func (r *Router) selectLanguage(ctx context.Context, upd Update, lang entity.Language) error {
	created, err := r.accounts.SetLanguage(ctx, upd.UserID, upd.Username, lang)
	if err != nil {
		r.logFailure(ctx, "Failed to set language", upd, err)
		return r.responder.AnswerCallback(ctx, upd.CallbackID,
			r.catalog.Text(entity.DefaultLanguage, locale.KeySomethingWrong), true)
	}

	ack := locale.KeyLanguageUpdated
	if created {
		ack = locale.KeyProfileCreated
	}
	if err := r.responder.AnswerCallback(ctx, upd.CallbackID, r.catalog.Text(lang, ack), false); err != nil {
		return err
	}

	account, err := r.accounts.GetProfile(ctx, upd.UserID)
	if err != nil {
		r.logFailure(ctx, "Failed to load profile after language change", upd, err)
		return nil
	}
	return r.editProfile(ctx, upd, account)
}

func (r *Router) pay(ctx context.Context, upd Update) error {
	lang := r.language(ctx, upd.UserID)

	link, err := r.payments.RequestInvoice(ctx, upd.UserID)
	switch {
	case err == nil:
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyPayLink, link.PayURL))
	case errors.Is(err, errs.ErrAccountNotFound):
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyRegisterFirst))
	default:
		r.logFailure(ctx, "Failed to issue invoice", upd, err)
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyInvoiceFailed))
	}
}

func (r *Router) checkPayment(ctx context.Context, upd Update) error {
	lang := r.language(ctx, upd.UserID)

	result, err := r.payments.HandleManualCheck(ctx, upd.UserID)
	if err != nil {
		r.logFailure(ctx, "Manual payment check failed", upd, err)
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyPaymentCheckFailed))
	}

	switch result {
	case entity.CheckPaid:
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyPaymentAccepted))
	case entity.CheckNoInvoice:
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyNoPayment))
	case entity.CheckUnmatched:
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyPaymentUnmatched))
	default:
		return r.send(ctx, upd, r.catalog.Text(lang, locale.KeyPaymentPending))
	}
}

// language is the user's stored language, or the default when it cannot be read
func (r *Router) language(ctx context.Context, userID int64) entity.Language {
	account, err := r.accounts.GetProfile(ctx, userID)
	if err != nil {
		return entity.DefaultLanguage
	}
	return account.Language
}

func (r *Router) send(ctx context.Context, upd Update, text string) error {
	return r.responder.Send(ctx, upd.ChatID, gateway.Reply{Text: text})
}

func (r *Router) editProfile(ctx context.Context, upd Update, account *entity.Account) error {
	reply := gateway.Reply{Text: r.catalog.Profile(account)}
	if upd.MessageID == 0 {
		return r.responder.Send(ctx, upd.ChatID, reply)
	}
	return r.responder.Edit(ctx, upd.ChatID, upd.MessageID, reply)
}

func (r *Router) logFailure(ctx context.Context, msg string, upd Update, err error) {
	fields := errs.LogFields(err)
	fields["user_id"] = upd.UserID
	fields["request_id"] = coreport.RequestIDFromContext(ctx)

	if errs.IsTransient(err) || errs.IsExpectedBranch(err) {
		r.logger.Warn(msg, fields)
		return
	}
	r.logger.Error(msg, fields)
}

// displayName is safe to embed in an HTML reply
func displayName(upd Update) string {
	if upd.Username != "" {
		return html.EscapeString(upd.Username)
	}
	return strconv.FormatInt(upd.UserID, 10)
}
