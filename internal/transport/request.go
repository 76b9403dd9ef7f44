package transport

import (
	"time"
)

// Request ...
type Request struct {
	Method   string
	Endpoint string
	Token    string
	Body     interface{}
	Timeout  time.Duration
}

// Response содержит статус и сырое тело ответа; интерпретация статуса - дело вызывающего
type Response struct {
	StatusCode int
	Body       []byte
}
