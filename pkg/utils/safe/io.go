package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/githuber/pkg/utils/logging"
)

// Close closes the resource and logs failure with the context logger. Nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("Fail to close resource", slog.Any("error", err))
	}
}
