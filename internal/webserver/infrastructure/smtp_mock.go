package infrastructure

import "sync"

type SMTPMock struct {
	calledSend bool
	bodies     []string
	addresses  []string
	mu         sync.Mutex
	Wg         sync.WaitGroup
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.calledSend = true
	s.addresses = append(s.addresses, address)
	s.bodies = append(s.bodies, body)
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) SendCC(address, cc, subject, body string) error {
	return s.Send(address, subject, body)
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

// LastBody returns the body of the most recently sent message.
func (s *SMTPMock) LastBody() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return ""
	}
	return s.bodies[len(s.bodies)-1]
}

// LastAddress returns the recipient of the most recently sent message.
func (s *SMTPMock) LastAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.addresses) == 0 {
		return ""
	}
	return s.addresses[len(s.addresses)-1]
}
