package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	mcore "github.com/amirhossein-jamali/paybot/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage(" RU ")
	require.NoError(t, err)
	assert.Equal(t, LanguageRussian, lang)

	lang, err = ParseLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, lang)

	_, err = ParseLanguage("de")
	assert.ErrorIs(t, err, errs.ErrInvalidLanguage)
}

func TestNewAccount(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now).Maybe()

	account, err := NewAccount(42, "  alice ", "", timeProvider)
	require.NoError(t, err)
	assert.Equal(t, int64(42), account.UserID)
	assert.Equal(t, "alice", account.DisplayName)
	assert.Equal(t, DefaultLanguage, account.Language)
	assert.Equal(t, now, account.RegisteredAt)
	assert.Zero(t, account.Balance)
	assert.Empty(t, account.Entitlements)
	assert.False(t, account.IsAdmin)

	_, err = NewAccount(0, "x", LanguageEnglish, timeProvider)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)

	_, err = NewAccount(1, "x", Language("fr"), timeProvider)
	assert.ErrorIs(t, err, errs.ErrInvalidLanguage)
}

func TestEntitlements(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeEntitlements([]string{"b", " a", "", "b"}))
	assert.Equal(t, []string{"basic", "vip"}, NormalizeEntitlements([]string{"vip", "basic", "vip"}))
	assert.Empty(t, NormalizeEntitlements(nil))
}
