package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra"
	"github.com/m-mizutani/githuber/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

var myOrg = model.NewOwner("my-org", "")

func TestSyncRepositories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.RemoteRepositories{
		newRepo("my-org", "api"),
		newRepo("my-org", "web"),
		newRepo("my-org", "docs"),
	})
	f.mkdir(t, "api", "legacy", ".idea")

	result := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)

	gt.V(t, result.Updated).Equal([]string{"api"})
	gt.V(t, result.Cloned).Equal([]string{"docs", "web"})
	gt.V(t, result.Orphaned).Equal([]string{"legacy"})
	gt.V(t, len(result.Errors)).Equal(0)

	pulls := f.git.PullCalls()
	gt.V(t, len(pulls)).Equal(1)
	gt.V(t, pulls[0].Dir).Equal(filepath.Join(f.root, "api"))
	gt.V(t, pulls[0].Branch).Equal("main")

	clones := f.git.CloneCalls()
	gt.V(t, len(clones)).Equal(2)
	gt.V(t, clones[0].URL).Equal("git@github.com:my-org/docs.git")
	gt.V(t, clones[0].ParentDir).Equal(f.root)
	gt.V(t, clones[1].URL).Equal("git@github.com:my-org/web.git")

	for _, call := range pulls {
		gt.S(t, call.Dir).NotContains("legacy")
	}
	for _, call := range clones {
		gt.S(t, call.URL).NotContains("legacy")
	}

	output := f.out.String()
	gt.S(t, output).Contains("Authenticating with token...")
	gt.S(t, output).Contains("Get the my-org organization...")
	gt.S(t, output).Contains("Update existing repos:")
	gt.S(t, output).Contains("Retrieve new repos:")
	gt.V(t, strings.Count(output, "Directory is not in the list of repos: legacy")).Equal(1)
	gt.S(t, output).NotContains(".idea")
}

func TestSyncRepositories_CreateRoot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.RemoteRepositories{newRepo("my-org", "api")})

	result := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)
	gt.V(t, result.Cloned).Equal([]string{"api"})
	gt.V(t, len(f.git.PullCalls())).Equal(0)
}

func TestSyncRepositories_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.RemoteRepositories{
		newRepo("my-org", "api"),
		newRepo("my-org", "web"),
	})

	first := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)
	gt.V(t, first.Cloned).Equal([]string{"api", "web"})
	gt.V(t, len(f.git.CloneCalls())).Equal(2)

	second := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)
	gt.V(t, len(second.Cloned)).Equal(0)
	gt.V(t, second.Updated).Equal([]string{"api", "web"})
	gt.V(t, len(f.git.CloneCalls())).Equal(2)
	gt.V(t, len(f.git.PullCalls())).Equal(2)

	// listing and login are memoized
	gt.V(t, len(f.gh.ListRepositoriesCalls())).Equal(1)
	gt.V(t, len(f.gh.AuthenticateCalls())).Equal(1)
}

func TestSyncRepositories_CloneFailureContinues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.RemoteRepositories{
		newRepo("my-org", "a"),
		newRepo("my-org", "b"),
		newRepo("my-org", "c"),
	})

	clone := f.git.CloneFunc
	f.git.CloneFunc = func(ctx context.Context, url, parentDir string) error {
		if strings.HasSuffix(url, "/b.git") {
			return goerr.Wrap(types.ErrGitOperation, "git command failed",
				goerr.V("stderr", "fatal: repository not found"),
			)
		}
		return clone(ctx, url, parentDir)
	}

	result := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)
	gt.V(t, len(f.git.CloneCalls())).Equal(3)
	gt.V(t, result.Cloned).Equal([]string{"a", "c"})
	gt.V(t, len(result.Errors)).Equal(1)
	gt.V(t, result.Errors[0].Subject).Equal("git@github.com:my-org/b.git")
	gt.V(t, result.Errors[0].Message).Equal("fatal: repository not found")

	gt.S(t, f.out.String()).Contains("ERROR: git@github.com:my-org/b.git: fatal: repository not found")
}

func TestSyncRepositories_PullFailureContinues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.RemoteRepositories{
		newRepo("my-org", "a"),
		newRepo("my-org", "b"),
	})
	f.mkdir(t, "a", "b")

	f.git.PullFunc = func(ctx context.Context, dir, branch string) error {
		if filepath.Base(dir) == "a" {
			return errors.New("CONFLICT (content): Merge conflict in main.go")
		}
		return nil
	}

	result := gt.R1(f.uc.SyncRepositories(ctx, myOrg, f.root)).NoError(t)
	gt.V(t, len(f.git.PullCalls())).Equal(2)
	gt.V(t, result.Updated).Equal([]string{"b"})
	gt.V(t, len(result.Errors)).Equal(1)
	gt.V(t, result.Errors[0].Subject).Equal("a")
}

func TestSyncRepositories_ListingFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.gh.ListRepositoriesFunc = func(ctx context.Context, owner model.Owner) (model.RemoteRepositories, error) {
		return nil, goerr.Wrap(types.ErrRemoteListing, "failed to list repositories")
	}

	_, err := f.uc.SyncRepositories(ctx, myOrg, f.root)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrRemoteListing))
	gt.V(t, len(f.git.PullCalls())).Equal(0)
	gt.V(t, len(f.git.CloneCalls())).Equal(0)
}

func TestSyncRepositories_MissingOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	_, err := f.uc.SyncRepositories(ctx, model.NewOwner("", ""), f.root)
	gt.True(t, errors.Is(err, types.ErrMissingOwner))
	gt.V(t, len(f.gh.AuthenticateCalls())).Equal(0)
}

func TestSyncRepositories_MissingCredential(t *testing.T) {
	uc := usecase.New(infra.New())

	_, err := uc.SyncRepositories(context.Background(), myOrg, t.TempDir())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrMissingCredential))
}
