package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientDelegatesToSender(t *testing.T) {

	Assert := assert.New(t)

	sender := &SenderMock{
		Response: Response{StatusCode: 200, Body: []byte(`{"ok":true}`)},
	}
	client := NewClient(sender)

	r, err := client.Get("/organizations", "token-1", 10*time.Second)
	Assert.NoError(err)
	Assert.Equal(200, r.StatusCode)
	Assert.Equal(`{"ok":true}`, string(r.Body))

	body := map[string]interface{}{"apiLogin": "login"}
	r, err = client.Post("/access_token", "", body, 15*time.Second)
	Assert.NoError(err)
	Assert.Equal(200, r.StatusCode)

	Assert.Len(sender.Requests, 2)

	get := sender.Requests[0]
	Assert.Equal("GET", get.Method)
	Assert.Equal("/organizations", get.Endpoint)
	Assert.Equal("token-1", get.Token)
	Assert.Nil(get.Body)
	Assert.Equal(10*time.Second, get.Timeout)

	post := sender.Requests[1]
	Assert.Equal("POST", post.Method)
	Assert.Equal("/access_token", post.Endpoint)
	Assert.Equal("", post.Token)
	Assert.Equal(body, post.Body)
	Assert.Equal(15*time.Second, post.Timeout)
}
