package transport

// SenderMock imitates sending requests and receiving responses
type SenderMock struct {
	Response Response
	Requests []Request
}

// Send ...
func (m *SenderMock) Send(req Request) (*Response, error) {
	m.Requests = append(m.Requests, req)
	return &m.Response, nil
}
