package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/infra/workspace"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
)

// CountCommits sums non-merge commits in period over local clones of the owner's repositories.
// Repositories without a local clone count as zero.
func (x *UseCase) CountCommits(ctx context.Context, owner model.Owner, root string, period model.CommitPeriod) (*model.CommitCount, error) {
	since, until, err := period.Range()
	if err != nil {
		return nil, err
	}

	repos, err := x.listRepositories(ctx, owner)
	if err != nil {
		return nil, err
	}

	x.printf("Get commit count...")
	logger := logging.From(ctx)

	result := &model.CommitCount{Period: period}
	for _, name := range repos.Names() {
		dir := filepath.Join(root, name)
		if !workspace.IsDir(dir) {
			continue
		}
		if !x.clients.Git().IsRepository(dir) {
			logger.Debug("skip directory that is not a git repository", slog.String("dir", dir))
			continue
		}

		n, err := x.clients.Git().CountCommits(ctx, dir, since, until)
		if err != nil {
			result.Errors = append(result.Errors, operationError(ctx, name, err))
			continue
		}

		logger.Debug("counted commits", slog.String("repo", name), slog.Int("count", n))
		result.Total += n
	}

	for _, e := range result.Errors {
		x.printf("ERROR: %s", e.String())
	}
	x.printf("Number of commits: %d", result.Total)

	return result, nil
}
