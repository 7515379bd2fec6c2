package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()

	assert.Equal(t, ":3000", c.HTTPAddr)
	assert.Equal(t, "mongodb://localhost:27017", c.MongoURI)
	assert.Equal(t, "prame", c.MongoDB)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, 5*time.Minute, c.OTP_TTL)
	assert.Equal(t, "https://api.twilio.com", c.TwilioBaseURL)
	assert.Equal(t, "uploads", c.UploadDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("OTP_TTL", "90s")
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxxx")

	c := Load()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "mongodb://db:27017", c.MongoURI)
	assert.Equal(t, 90*time.Second, c.OTP_TTL)
	assert.Equal(t, "ACxxxx", c.TwilioAccountSID)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("OTP_TTL", "not-a-duration")

	c := Load()
	assert.Equal(t, 5*time.Minute, c.OTP_TTL)
}
