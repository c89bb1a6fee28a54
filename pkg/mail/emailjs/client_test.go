package emailjs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/mail"
)

func TestSendPostsTemplate(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := New("svc", "tpl", "pub", srv.URL)
	err := c.Send(context.Background(), mail.Message{Params: map[string]string{"subject": "Hi"}})
	require.NoError(t, err)
	assert.Equal(t, "svc", got.ServiceID)
	assert.Equal(t, "tpl", got.TemplateID)
	assert.Equal(t, "pub", got.UserID)
	assert.Equal(t, "Hi", got.TemplateParams["subject"])
}

func TestSendReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	err := New("svc", "tpl", "pub", srv.URL).Send(context.Background(), mail.Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template ID is invalid")
}

func TestSendNotConfigured(t *testing.T) {
	err := New("", "", "", "").Send(context.Background(), mail.Message{})
	assert.ErrorIs(t, err, mail.ErrNotConfigured)
}
