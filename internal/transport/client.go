package transport

import (
	"time"
)

// Client is upper level class which delegate all work to Sender
type Client struct {
	sender Sender
}

func NewClient(sender Sender) *Client {
	return &Client{sender: sender}
}

// Get Method loads data from Endpoint
func (c *Client) Get(endpoint string, token string, timeout time.Duration) (*Response, error) {
	return c.sender.Send(Request{
		Method:   "GET",
		Endpoint: endpoint,
		Token:    token,
		Timeout:  timeout,
	})
}

// Post Method sends jsonBody to Endpoint
func (c *Client) Post(endpoint string, token string, body interface{}, timeout time.Duration) (*Response, error) {
	return c.sender.Send(Request{
		Method:   "POST",
		Endpoint: endpoint,
		Token:    token,
		Body:     body,
		Timeout:  timeout,
	})
}
