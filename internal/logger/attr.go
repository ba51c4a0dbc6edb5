package logger

import "log/slog"

// Error records a single error under the key "error". Nil errors produce an
// empty attribute that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Lang records a language code under the key "lang".
func Lang(code string) slog.Attr {
	return slog.String("lang", code)
}

// SubmissionID records a contact form submission identifier.
func SubmissionID(id string) slog.Attr {
	return slog.String("submission_id", id)
}
