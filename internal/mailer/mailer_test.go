package mailer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehler/cvsite/internal/mailer"
)

func validMessage() mailer.Message {
	return mailer.Message{
		SubmissionID: "f3b2c6a0-0000-0000-0000-000000000000",
		ReplyTo:      "visitor@example.com",
		Subject:      "Contact from the site",
		BodyHTML:     "<p>Hello</p>",
	}
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*mailer.Message)
		valid  bool
	}{
		{name: "valid", mutate: func(m *mailer.Message) {}, valid: true},
		{name: "missing reply-to", mutate: func(m *mailer.Message) { m.ReplyTo = "" }},
		{name: "malformed reply-to", mutate: func(m *mailer.Message) { m.ReplyTo = "not-an-address" }},
		{name: "blank subject", mutate: func(m *mailer.Message) { m.Subject = "   " }},
		{name: "blank body", mutate: func(m *mailer.Message) { m.BodyHTML = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
			}
		})
	}
}

func TestDevSenderWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := mailer.NewDevSender(filepath.Join(dir, "mail"))

	msg := validMessage()
	require.NoError(t, sender.Send(context.Background(), msg))

	entries, err := os.ReadDir(filepath.Join(dir, "mail"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var sawHTML, sawJSON bool
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".html"):
			sawHTML = true
			data, err := os.ReadFile(filepath.Join(dir, "mail", e.Name()))
			require.NoError(t, err)
			assert.Equal(t, msg.BodyHTML, string(data))
		case strings.HasSuffix(e.Name(), ".json"):
			sawJSON = true
			data, err := os.ReadFile(filepath.Join(dir, "mail", e.Name()))
			require.NoError(t, err)
			var meta map[string]string
			require.NoError(t, json.Unmarshal(data, &meta))
			assert.Equal(t, msg.SubmissionID, meta["submission_id"])
			assert.Equal(t, msg.ReplyTo, meta["reply_to"])
		}
	}
	assert.True(t, sawHTML)
	assert.True(t, sawJSON)
}

func TestDevSenderRejectsInvalidMessage(t *testing.T) {
	t.Parallel()

	sender := mailer.NewDevSender(t.TempDir())
	msg := validMessage()
	msg.ReplyTo = "nope"
	assert.ErrorIs(t, sender.Send(context.Background(), msg), mailer.ErrInvalidMessage)
}

func TestNewPostmarkSenderConfigValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  mailer.Config
	}{
		{
			name: "missing server token",
			cfg:  mailer.Config{SenderEmail: "a@b.ch", RecipientEmail: "c@d.ch"},
		},
		{
			name: "bad sender address",
			cfg:  mailer.Config{PostmarkServerToken: "t", SenderEmail: "bad", RecipientEmail: "c@d.ch"},
		},
		{
			name: "bad recipient address",
			cfg:  mailer.Config{PostmarkServerToken: "t", SenderEmail: "a@b.ch", RecipientEmail: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := mailer.NewPostmarkSender(tt.cfg)
			assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
		})
	}
}

func TestNewPicksSenderByConfig(t *testing.T) {
	t.Parallel()

	dev, err := mailer.New(mailer.Config{DevOutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &mailer.DevSender{}, dev)

	pm, err := mailer.New(mailer.Config{
		PostmarkServerToken: "token",
		SenderEmail:         "a@b.ch",
		RecipientEmail:      "c@d.ch",
	})
	require.NoError(t, err)
	assert.NotNil(t, pm)
	assert.NotSame(t, dev, pm)
}
