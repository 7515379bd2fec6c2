package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient("ACxxxx", "token", "+15550000", srv.URL)
	err := c.Send(context.Background(), "+15550101", "Your OTP code is: 123456")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/ACxxxx/Messages.json", gotPath)
	assert.Equal(t, "ACxxxx", gotUser)
	assert.Equal(t, "token", gotPass)
	assert.Equal(t, "+15550101", gotTo)
	assert.Equal(t, "+15550000", gotFrom)
	assert.Equal(t, "Your OTP code is: 123456", gotBody)
}

func TestSend_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code": 20003, "message": "Authenticate"}`))
	}))
	defer srv.Close()

	c := NewClient("ACxxxx", "bad-token", "+15550000", srv.URL)
	err := c.Send(context.Background(), "+15550101", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sms api error")
}

func TestSend_MissingConfig(t *testing.T) {
	c := NewClient("", "", "", "https://api.twilio.com")
	err := c.Send(context.Background(), "+15550101", "hello")
	assert.Error(t, err)
}
