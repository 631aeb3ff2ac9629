package infrastructure

type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	return nil
}

func (s *NoEmail) SendCC(address, cc, subject, body string) error {
	return nil
}
