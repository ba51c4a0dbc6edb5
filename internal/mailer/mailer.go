// Package mailer delivers contact form submissions. Production uses
// Postmark; development writes messages to disk so the form can be exercised
// without credentials.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidConfig indicates missing or malformed mailer configuration.
	ErrInvalidConfig = errors.New("mailer: invalid config")
	// ErrInvalidMessage indicates a message failing validation.
	ErrInvalidMessage = errors.New("mailer: invalid message")
	// ErrSendFailed indicates the provider rejected or failed the send.
	ErrSendFailed = errors.New("mailer: send failed")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Config holds mailer configuration. Tokens are optional so development
// setups can run with the file-based sender.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@pascalkoehler.ch"`
	RecipientEmail       string `env:"CONTACT_RECIPIENT_EMAIL" envDefault:"mail@pascalkoehler.ch"`
	DevOutputDir         string `env:"MAILER_DEV_DIR" envDefault:"./tmp/mail"`
}

// Message is one contact form submission on its way to the site owner.
type Message struct {
	SubmissionID string // used as the provider tag and in logs
	ReplyTo      string // visitor's address
	Subject      string
	BodyHTML     string
}

// Validate checks the fields every sender depends on.
func (m Message) Validate() error {
	if m.ReplyTo == "" || !emailRegex.MatchString(m.ReplyTo) {
		return fmt.Errorf("%w: reply-to address %q", ErrInvalidMessage, m.ReplyTo)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.BodyHTML) == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	return nil
}

// Sender delivers a submission. Implementations must be safe for concurrent
// use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the sender for the given config: Postmark when a server token is
// configured, otherwise the file-based dev sender.
func New(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken != "" {
		return NewPostmarkSender(cfg)
	}
	return NewDevSender(cfg.DevOutputDir), nil
}
