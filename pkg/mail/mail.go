package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock github.com/savioruz/bookease/pkg/mail Service

//go:embed template/*.html
var templates embed.FS

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// BookingConfirmationData represents the data for booking confirmation email
type BookingConfirmationData struct {
	CustomerName    string
	BookingID       string
	BookingDate     string
	TimeSlot        string
	DurationMinutes int
	ServiceID       string
}

type Service interface {
	SendBookingConfirmationEmail(to string, data BookingConfirmationData) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type service struct {
	config                      Config
	dialer                      sender
	bookingConfirmationTemplate *template.Template
}

func New(config Config) Service {
	return newService(config, gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword))
}

func newService(config Config, dialer sender) *service {
	bookingConfirmationTemplate := template.Must(template.ParseFS(templates, "template/booking_confirmation.html"))

	return &service{
		config:                      config,
		dialer:                      dialer,
		bookingConfirmationTemplate: bookingConfirmationTemplate,
	}
}

func (s *service) SendBookingConfirmationEmail(to string, data BookingConfirmationData) error {
	subject := "Booking Confirmation - " + data.BookingDate + " " + data.TimeSlot

	var body bytes.Buffer
	if err := s.bookingConfirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute booking confirmation template: %w", err)
	}

	return s.sendEmail(to, subject, body.String())
}

func (s *service) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
