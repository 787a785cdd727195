package config_test

import (
	"testing"
	"time"

	"github.com/JuliPapp/Redimfinal-sub000/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	cfg := config.New()
	t.Setenv("API_ADDRESS", ":9000")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("BROKEN_TTL", "soon")

	assert.Equal(t, ":9000", cfg.GetString("API_ADDRESS"))
	assert.Equal(t, ":9000", cfg.GetStringOr("API_ADDRESS", ":8080"))
	assert.Equal(t, "info", cfg.GetStringOr("UNSET_LOG_LEVEL", "info"))
	assert.Equal(t, 90*time.Minute, cfg.GetDuration("TOKEN_TTL", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("BROKEN_TTL", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("UNSET_TTL", time.Hour))
}
