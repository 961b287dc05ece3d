package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra/workspace"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SearchCode runs recursive regex search over input.Dir and prints its stderr and stdout.
func (x *UseCase) SearchCode(ctx context.Context, input *model.SearchCodeInput) error {
	if input.Pattern == "" {
		return goerr.Wrap(types.ErrInvalidOption, "search pattern is empty")
	}
	if !workspace.IsDir(input.Dir) {
		return goerr.Wrap(types.ErrSearch, "search directory does not exist", goerr.V("dir", input.Dir))
	}

	logging.From(ctx).Info("searching code",
		slog.String("pattern", input.Pattern),
		slog.String("dir", input.Dir),
	)

	output, err := x.clients.Searcher().Search(ctx, input.Pattern, input.Dir)
	if output != nil {
		if s := strings.TrimRight(output.Stderr, "\n"); s != "" {
			x.printf("%s", s)
		}
		if s := strings.TrimRight(output.Stdout, "\n"); s != "" {
			x.printf("%s", s)
		}
	}
	if err != nil {
		return err
	}

	return nil
}
