package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleFormWithoutFlash(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/contact/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), contactSuccessMessage)
	assert.NotContains(t, rec.Body.String(), contactEmptyMessage)
}

func TestHandleFormFlashMessages(t *testing.T) {
	tests := []struct {
		name string
		sent string
		want string
	}{
		{"success", "1", contactSuccessMessage},
		{"empty message", "0", contactEmptyMessage},
		{"send failure", "err", contactFailedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.get(t, "/contact/?sent="+tt.sent)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestHandleSubmitSendsOneEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := postForm(t, env, "/contact/", url.Values{
		"name":    {"A juggling fan"},
		"email":   {"fan@example.com"},
		"message": {"Love the five ball video!"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact/?sent=1", rec.Header().Get("Location"))

	if assert.Len(t, env.mailer.sends, 1) {
		sent := env.mailer.sends[0]
		assert.Equal(t, "A juggling fan", sent.name)
		assert.Equal(t, "fan@example.com", sent.replyTo)
		assert.Equal(t, "Love the five ball video!", sent.message)
	}
}

func TestHandleSubmitEmptyMessageSendsNothing(t *testing.T) {
	env := newTestEnv(t)

	rec := postForm(t, env, "/contact/", url.Values{
		"name":    {"A juggling fan"},
		"message": {"   "},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact/?sent=0", rec.Header().Get("Location"))
	assert.Empty(t, env.mailer.sends)
}

func TestHandleSubmitMailerFailureRedirectsWithError(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errSMTPDown

	rec := postForm(t, env, "/contact/", url.Values{
		"message": {"Is anyone there?"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact/?sent=err", rec.Header().Get("Location"))
}
