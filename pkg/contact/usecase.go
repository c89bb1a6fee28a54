package contact

import (
	"context"
	"strings"
	"time"

	"github.com/artem13815/portfolio/pkg/mail"
	"github.com/artem13815/portfolio/pkg/validate"
)

// Message: сообщение посетителя из формы обратной связи.
type Message struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (m Message) FromName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// UseCase relays contact messages to the owner. There is no retry: the
// visitor sees either success or an error.
type UseCase interface {
	Send(ctx context.Context, m Message) error
}

// OwnerName resolves the addressee shown in the e-mail template.
type OwnerName func(ctx context.Context) string

type service struct {
	sender mail.Sender
	owner  OwnerName
	now    func() time.Time
}

func NewService(sender mail.Sender, owner OwnerName) UseCase {
	return &service{sender: sender, owner: owner, now: time.Now}
}

func (s *service) Send(ctx context.Context, m Message) error {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	if err := Validate(m).Err(); err != nil {
		return err
	}
	to := ""
	if s.owner != nil {
		to = s.owner(ctx)
	}
	return s.sender.Send(ctx, mail.Message{Params: map[string]string{
		"from_name":  m.FromName(),
		"from_email": m.Email,
		"subject":    m.Subject,
		"message":    m.Message,
		"time":       s.now().Format("2006-01-02 15:04:05"),
		"to_name":    to,
	}})
}

func Validate(m Message) validate.Errors {
	errs := validate.Errors{}
	errs.Required("first_name", m.FirstName, "First name is required")
	errs.Required("last_name", m.LastName, "Last name is required")
	if strings.TrimSpace(m.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !validate.IsEmail(m.Email) {
		errs.Add("email", "Please enter a valid email")
	}
	errs.Required("subject", m.Subject, "Subject is required")
	errs.Required("message", m.Message, "Message is required")
	return errs
}
