package errutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var kinds = []struct {
	name string
	err  error
}{
	{"invalid_option", types.ErrInvalidOption},
	{"missing_credential", types.ErrMissingCredential},
	{"missing_owner", types.ErrMissingOwner},
	{"unsupported_granularity", types.ErrUnsupportedGranularity},
	{"remote_listing", types.ErrRemoteListing},
	{"git_operation", types.ErrGitOperation},
	{"search", types.ErrSearch},
	{"inconsistent_state", types.ErrInconsistentState},
}

// Kind returns short name of the sentinel error wrapped by err, or "unknown".
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

// FlushTimeout bounds how long HandleError waits for Sentry delivery before returning.
var FlushTimeout = 2 * time.Second

// HandleError reports err to Sentry and logs it. It blocks until the event is delivered or
// FlushTimeout passes, so the process may exit right after it returns.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	// Sending error to Sentry
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error.kind", Kind(err))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)
	if evID != nil && !hub.Flush(FlushTimeout) {
		logging.From(ctx).Warn("failed to flush sentry events", "timeout", FlushTimeout)
	}

	logging.From(ctx).Error(msg,
		"error", err,
		"error.kind", Kind(err),
		"sentry.EventID", evID,
	)
}
