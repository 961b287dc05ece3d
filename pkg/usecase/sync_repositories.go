package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra/git"
	"github.com/m-mizutani/githuber/pkg/infra/workspace"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SyncRepositories pulls repositories that already exist under root, clones missing ones and
// reports directories that have no remote repository. A failure of a single repository is
// collected into the result and does not stop the others.
func (x *UseCase) SyncRepositories(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
	repos, err := x.listRepositories(ctx, owner)
	if err != nil {
		return nil, err
	}

	local, err := workspace.ListDirectories(root)
	if err != nil {
		return nil, err
	}

	plan := model.Reconcile(repos.Names(), local)
	index := repos.Index()

	logging.From(ctx).Info("reconciled repositories",
		slog.String("root", root),
		slog.Int("update", len(plan.ToUpdate)),
		slog.Int("clone", len(plan.ToClone)),
		slog.Int("orphaned", len(plan.Orphaned)),
	)

	result := &model.SyncResult{
		Updated:  []string{},
		Cloned:   []string{},
		Orphaned: plan.Orphaned,
	}

	if len(plan.ToUpdate) > 0 {
		x.printf("Update existing repos:")
		for i, name := range plan.ToUpdate {
			x.progress(ctx, i, len(plan.ToUpdate), name)

			if err := x.clients.Git().Pull(ctx, filepath.Join(root, name), index[name].DefaultBranch); err != nil {
				result.Errors = append(result.Errors, operationError(ctx, name, err))
				continue
			}
			result.Updated = append(result.Updated, name)
		}
	}

	if len(plan.ToClone) > 0 {
		x.printf("Retrieve new repos:")
		for i, name := range plan.ToClone {
			x.progress(ctx, i, len(plan.ToClone), name)

			repo, ok := index[name]
			if !ok {
				err := goerr.Wrap(types.ErrInconsistentState, "no remote repository for name", goerr.V("name", name))
				result.Errors = append(result.Errors, operationError(ctx, name, err))
				continue
			}

			if err := x.clients.Git().Clone(ctx, repo.CloneSource(), root); err != nil {
				result.Errors = append(result.Errors, operationError(ctx, repo.CloneSource(), err))
				continue
			}
			result.Cloned = append(result.Cloned, name)
		}
	}

	for _, e := range result.Errors {
		x.printf("ERROR: %s", e.String())
	}
	for _, name := range result.Orphaned {
		x.printf("Directory is not in the list of repos: %s", name)
	}

	logging.From(ctx).Info("synchronized repositories",
		slog.String("owner", owner.Name),
		slog.Int("updated", len(result.Updated)),
		slog.Int("cloned", len(result.Cloned)),
		slog.Int("orphaned", len(result.Orphaned)),
		slog.Int("failure", len(result.Errors)),
	)

	return result, nil
}

func (x *UseCase) progress(ctx context.Context, i, total int, name string) {
	x.printf("  [%d/%d] %s", i+1, total, name)
	logging.From(ctx).Debug("processing repository",
		slog.Int("progress", i+1),
		slog.Int("total", total),
		slog.String("repo", name),
	)
}

func operationError(ctx context.Context, subject string, err error) model.OperationError {
	logging.From(ctx).Warn("repository operation failed",
		slog.String("subject", subject),
		slog.Any("error", err),
	)
	return model.OperationError{
		Subject: subject,
		Message: git.Stderr(err),
	}
}
