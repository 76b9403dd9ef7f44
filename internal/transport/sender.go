package transport

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Sender provides HTTP Requests
type Sender interface {
	Send(req Request) (*Response, error)
}

type restySender struct {
	baseURL string
	client  *resty.Client
}

func NewSender(baseURL string) Sender {
	return &restySender{
		baseURL: baseURL,
		client:  resty.New(),
	}
}

// Send method sends requests to Syrve Cloud API
func (s *restySender) Send(req Request) (*Response, error) {

	r := s.client.R()
	r.SetHeader("Content-Type", "application/json")
	if req.Token != "" {
		r.SetAuthToken(req.Token)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	if req.Timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), req.Timeout)
		defer cancel()
		r.SetContext(ctx)
	}

	url := fmt.Sprintf("%s%s", s.baseURL, req.Endpoint)

	var resp *resty.Response
	var err error
	switch req.Method {
	case "GET":
		resp, err = r.Get(url)
	case "POST":
		resp, err = r.Post(url)
	default:
		return nil, errors.Errorf("incorrect request method: %s", req.Method)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed request %s %s", req.Method, req.Endpoint)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
