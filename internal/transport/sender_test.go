package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSenderSetsBearerAndJSONHeaders(t *testing.T) {

	Assert := assert.New(t)

	var gotAuthorization, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	sender := NewSender(server.URL)

	r, err := sender.Send(Request{
		Method:   "POST",
		Endpoint: "/terminal_groups",
		Token:    "token-1",
		Body:     map[string]string{"key": "value"},
		Timeout:  2 * time.Second,
	})
	Assert.NoError(err)
	Assert.Equal(200, r.StatusCode)

	Assert.Equal("Bearer token-1", gotAuthorization)
	Assert.Contains(gotContentType, "application/json")
	Assert.Equal(map[string]string{"key": "value"}, gotBody)
}

func TestSenderWithoutToken(t *testing.T) {

	Assert := assert.New(t)

	var gotAuthorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	sender := NewSender(server.URL)

	// запрос токена идет без заголовка Authorization
	_, err := sender.Send(Request{
		Method:   "POST",
		Endpoint: "/access_token",
		Body:     map[string]string{"apiLogin": "login"},
		Timeout:  2 * time.Second,
	})
	Assert.NoError(err)
	Assert.Empty(gotAuthorization)
}

func TestSenderIncorrectMethod(t *testing.T) {

	Assert := assert.New(t)

	sender := NewSender("http://localhost")

	_, err := sender.Send(Request{Method: "PATCH", Endpoint: "/organizations"})
	Assert.Error(err)
	Assert.Contains(err.Error(), "incorrect request method")
}
