package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// authenticate verifies the credential once per UseCase.
func (x *UseCase) authenticate(ctx context.Context) error {
	if x.loggedIn {
		return nil
	}
	if x.clients.GitHub() == nil {
		return goerr.Wrap(types.ErrMissingCredential, "GitHub client is not configured")
	}

	x.printf("Authenticating with token...")
	login, err := x.clients.GitHub().Authenticate(ctx)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("authenticated", slog.String("login", login))
	x.login = login
	x.loggedIn = true
	return nil
}

// listRepositories returns all remote repositories of owner. The result is cached per owner.
func (x *UseCase) listRepositories(ctx context.Context, owner model.Owner) (model.RemoteRepositories, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if repos, ok := x.repoCache[owner]; ok {
		return repos, nil
	}

	if err := x.authenticate(ctx); err != nil {
		return nil, err
	}

	if owner.IsOrganization() {
		x.printf("Get the %s organization...", owner.Name)
		x.printf("Get repositories for the %q organization...", owner.Name)
	} else {
		x.printf("Get repositories for the %q user...", owner.Name)
	}

	repos, err := x.clients.GitHub().ListRepositories(ctx, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", owner.Name))
	}

	logging.From(ctx).Info("retrieved repositories",
		slog.String("owner", owner.Name),
		slog.String("type", string(owner.Type)),
		slog.Int("total_repos", len(repos)),
	)

	x.repoCache[owner] = repos
	return repos, nil
}

// CountRepositories prints and returns number of remote repositories of owner.
func (x *UseCase) CountRepositories(ctx context.Context, owner model.Owner) (int, error) {
	repos, err := x.listRepositories(ctx, owner)
	if err != nil {
		return 0, err
	}

	x.printf("Number of repos: %d", len(repos))
	return len(repos), nil
}
