package log

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// appendError attaches err to event along with the stack trace recorded by
// cockroachdb/errors and, when the error (or one of its causes) knows how to
// marshal itself, its structured fields.
func appendError(event *zerolog.Event, err error) {
	event.Err(err)
	if stacktrace := extractStacktrace(err); stacktrace != "" {
		event.Str(StacktraceKey, stacktrace)
	}
	var detail zerolog.LogObjectMarshaler
	if errors.As(err, &detail) {
		event.Object(ErrorDetailKey, detail)
	}
}

// extractStacktrace returns the first safe detail found along the cause
// chain. Typed errors are wrapped in marks, so the stack is rarely on top.
func extractStacktrace(err error) string {
	for _, payload := range errors.GetAllSafeDetails(err) {
		if len(payload.SafeDetails) > 0 && payload.SafeDetails[0] != "" {
			return payload.SafeDetails[0]
		}
	}
	return ""
}
