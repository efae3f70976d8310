package entity

import (
	"sort"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
)

// Language is a locale tag the bot can talk in
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"

	// DefaultLanguage is used until the user picks one
	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists every language with a locale bundle
var SupportedLanguages = []Language{LanguageRussian, LanguageEnglish}

// ParseLanguage validates a two-letter locale tag
func ParseLanguage(tag string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(tag)))
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return lang, nil
		}
	}
	return "", errs.ErrInvalidLanguage
}

// AccountField names a field that can be updated independently of the rest of the record
type AccountField string

const (
	FieldLanguage     AccountField = "language"
	FieldDisplayName  AccountField = "display_name"
	FieldBalance      AccountField = "balance"
	FieldEntitlements AccountField = "entitlements"
	FieldIsAdmin      AccountField = "is_admin"
)

// Account is the per-user registration record
type Account struct {
	UserID       int64
	DisplayName  string // empty when the transport did not supply one
	Language     Language
	RegisteredAt time.Time
	Balance      int64
	Entitlements []string // sorted, unique
	IsAdmin      bool
}

// NewAccount creates a fresh account with zero balance and no entitlements
func NewAccount(userID int64, displayName string, lang Language, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	if _, err := ParseLanguage(string(lang)); err != nil {
		return nil, err
	}

	return &Account{
		UserID:       userID,
		DisplayName:  strings.TrimSpace(displayName),
		Language:     lang,
		RegisteredAt: timeProvider.Now().UTC(),
		Entitlements: []string{},
	}, nil
}

// NormalizeEntitlements sorts and deduplicates a set of entitlement identifiers
func NormalizeEntitlements(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
