package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a form field id under the key "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Kind records a validation failure kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Checked records how many field checks ran under the key "checked".
func Checked(n int) slog.Attr {
	return slog.Int("checked", n)
}

// Panel records a modal panel name under the key "panel".
func Panel(name string) slog.Attr {
	return slog.String("panel", name)
}

// StatusCode records an HTTP status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
