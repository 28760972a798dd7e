package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	assert.Nil(t, parseIDList(""))
	assert.Equal(t, []int64{42}, parseIDList("42"))
	assert.Equal(t, []int64{1, 2, 3}, parseIDList("1, 2,3"))
	assert.Equal(t, []int64{7}, parseIDList("7,abc,"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("ADMIN_PORT", "")

	cfg := Load()
	assert.Equal(t, "courses_bot.db", cfg.Database.Path)
	assert.Equal(t, "8099", cfg.Admin.Port)
	assert.Equal(t, 30, cfg.Telegram.PollTimeout)
	assert.Equal(t, "kurator", cfg.JWT.Issuer)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/override.db")
	t.Setenv("ADMIN_PORT", "9000")
	t.Setenv("ADMIN_IDS", "11,22")

	cfg := Load()
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, "9000", cfg.Admin.Port)
	assert.Equal(t, []int64{11, 22}, cfg.Telegram.AdminIDs)
}
