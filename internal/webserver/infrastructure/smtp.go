package infrastructure

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/gomail.v2"
)

type SMTP struct {
	Server   string
	Port     int
	User     string
	Password string
}

func (s *SMTP) Send(address, subject, body string) error {
	m := s.compose(address, subject, body)

	return s.send(m)
}

// SendCC sends an email with a carbon copy to a second address, used for
// invitation forwards where the forwarder is kept in the loop.
func (s *SMTP) SendCC(address, cc, subject, body string) error {
	m := s.compose(address, subject, body)
	if cc != "" {
		m.SetHeader("Cc", cc)
	}

	return s.send(m)
}

func (s *SMTP) compose(address, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", "Guestpass", s.User))
	m.SetHeader("To", address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return m
}

func (s *SMTP) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return nil
}
