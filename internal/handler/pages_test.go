package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticLearnPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/learn/")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "This part of the site is still under construction.")
	// The nav highlights the page's own section.
	assert.Contains(t, body, `class="navlink selected"`)
}

func TestHandleThanksListsAcknowledgements(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.acks.Create(context.Background(), "Mr Juggles", "https://example.com/juggles", "Taught me the cascade")
	if err != nil {
		t.Fatalf("failed to seed acknowledgement: %v", err)
	}

	rec := env.get(t, "/about/thanks/")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Mr Juggles")
	assert.Contains(t, body, "https://example.com/juggles")
	assert.Contains(t, body, "Taught me the cascade")
}

func TestHandleThanksWithNoEntries(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/about/thanks/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "thanks_list")
}
