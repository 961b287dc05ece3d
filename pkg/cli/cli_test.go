package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/m-mizutani/githuber/pkg/cli"
	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/domain/mock"
	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fixture struct {
	out      *bytes.Buffer
	uc       *mock.UseCaseMock
	built    int
	calls    []string
	tokenArg []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	for _, key := range []string{
		"GITHUBER_TOKEN",
		"GITHUB_TOKEN",
		"GITHUBER_ORGANIZATION",
		"GITHUBER_USER",
		"GITHUBER_ROOT",
		"GITHUBER_SENTRY_DSN",
	} {
		t.Setenv(key, "")
	}

	f := &fixture{
		out:      &bytes.Buffer{},
		tokenArg: []string{"--token-file", filepath.Join(t.TempDir(), "no_such_token")},
	}
	f.uc = &mock.UseCaseMock{
		SyncRepositoriesFunc: func(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
			f.calls = append(f.calls, "sync")
			return &model.SyncResult{}, nil
		},
		CountRepositoriesFunc: func(ctx context.Context, owner model.Owner) (int, error) {
			f.calls = append(f.calls, "count")
			return 0, nil
		},
		CountCommitsFunc: func(ctx context.Context, owner model.Owner, root string, period model.CommitPeriod) (*model.CommitCount, error) {
			f.calls = append(f.calls, "commits")
			return &model.CommitCount{Period: period}, nil
		},
		SearchCodeFunc: func(ctx context.Context, input *model.SearchCodeInput) error {
			f.calls = append(f.calls, "search")
			return nil
		},
	}
	return f
}

func (f *fixture) run(args ...string) error {
	c := cli.New(
		cli.WithOutput(f.out),
		cli.WithPrompt(func() (string, error) { return "", nil }),
		cli.WithUseCaseFactory(func(clients *infra.Clients, out io.Writer) interfaces.UseCase {
			f.built++
			return f.uc
		}),
	)
	argv := append([]string{"githuber"}, f.tokenArg...)
	return c.Run(append(argv, args...))
}

func TestRunMissingToken(t *testing.T) {
	f := newFixture(t)

	gt.NoError(t, f.run("--org", "blue", "--get-repos"))
	gt.S(t, f.out.String()).Contains("ERROR: Please provide a token")
	gt.V(t, f.built).Equal(0)
	gt.V(t, len(f.calls)).Equal(0)
}

func TestRunMissingOwner(t *testing.T) {
	f := newFixture(t)

	gt.NoError(t, f.run("--token", "xxx", "--get-repos"))
	gt.S(t, f.out.String()).Contains("ERROR: Please provide an organization or user")
	gt.V(t, f.built).Equal(0)
}

func TestRunPromptedToken(t *testing.T) {
	f := newFixture(t)
	c := cli.New(
		cli.WithOutput(f.out),
		cli.WithPrompt(func() (string, error) { return "prompted-token", nil }),
		cli.WithUseCaseFactory(func(clients *infra.Clients, out io.Writer) interfaces.UseCase {
			f.built++
			return f.uc
		}),
	)

	argv := append([]string{"githuber"}, f.tokenArg...)
	gt.NoError(t, c.Run(append(argv, "--user", "orange", "--count")))
	gt.S(t, f.out.String()).NotContains("ERROR")
	gt.V(t, f.built).Equal(1)
	gt.V(t, f.calls).Equal([]string{"count"})
}

func TestRunStageOrder(t *testing.T) {
	f := newFixture(t)

	var syncRoot, searchDir string
	var period model.CommitPeriod
	var owners []model.Owner
	f.uc.SyncRepositoriesFunc = func(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
		f.calls = append(f.calls, "sync")
		owners = append(owners, owner)
		syncRoot = root
		return &model.SyncResult{}, nil
	}
	f.uc.CountCommitsFunc = func(ctx context.Context, owner model.Owner, root string, p model.CommitPeriod) (*model.CommitCount, error) {
		f.calls = append(f.calls, "commits")
		owners = append(owners, owner)
		period = p
		return &model.CommitCount{Period: p}, nil
	}
	f.uc.SearchCodeFunc = func(ctx context.Context, input *model.SearchCodeInput) error {
		f.calls = append(f.calls, "search")
		searchDir = input.Dir
		gt.V(t, input.Pattern).Equal("password")
		return nil
	}

	gt.NoError(t, f.run(
		"--token", "xxx",
		"--org", "blue",
		"--search", "password",
		"--commits-year", "2020",
		"--count",
		"--update",
	))

	gt.V(t, f.calls).Equal([]string{"sync", "count", "commits", "search"})
	gt.V(t, syncRoot).Equal("blue")
	gt.V(t, searchDir).Equal("blue")
	gt.V(t, period).Equal(model.CommitPeriod{Year: 2020})
	for _, owner := range owners {
		gt.V(t, owner).Equal(model.Owner{Name: "blue", Type: types.OwnerOrganization})
	}
}

func TestRunOrganizationHasPriority(t *testing.T) {
	f := newFixture(t)

	var got model.Owner
	var gotRoot string
	f.uc.SyncRepositoriesFunc = func(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
		got = owner
		gotRoot = root
		return &model.SyncResult{}, nil
	}

	gt.NoError(t, f.run("--token", "xxx", "--org", "blue", "--user", "orange", "--root", "/tmp/work", "--get-repos"))
	gt.V(t, got.Name).Equal("blue")
	gt.True(t, got.IsOrganization())
	gt.V(t, gotRoot).Equal("/tmp/work")
}

func TestRunUnsupportedGranularity(t *testing.T) {
	f := newFixture(t)
	f.uc.CountCommitsFunc = func(ctx context.Context, owner model.Owner, root string, p model.CommitPeriod) (*model.CommitCount, error) {
		f.calls = append(f.calls, "commits")
		_, _, err := p.Range()
		return nil, err
	}

	gt.NoError(t, f.run("--token", "xxx", "--user", "orange", "--commits-month", "3", "--search", "TODO"))
	gt.S(t, f.out.String()).Contains("ERROR:")
	gt.S(t, f.out.String()).Contains("not implemented")
	gt.V(t, f.calls).Equal([]string{"commits", "search"})
}

func TestRunListingFailure(t *testing.T) {
	f := newFixture(t)
	f.uc.SyncRepositoriesFunc = func(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
		f.calls = append(f.calls, "sync")
		return nil, goerr.Wrap(types.ErrRemoteListing, "failed to list repositories")
	}

	err := f.run("--token", "xxx", "--org", "blue", "--get-repos", "--count")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrRemoteListing))
	gt.V(t, f.calls).Equal([]string{"sync"})
}

func TestRunSearchFailure(t *testing.T) {
	f := newFixture(t)
	f.uc.SearchCodeFunc = func(ctx context.Context, input *model.SearchCodeInput) error {
		return goerr.Wrap(types.ErrSearch, "search command failed")
	}

	gt.NoError(t, f.run("--token", "xxx", "--org", "blue", "--search", "x"))
	gt.S(t, f.out.String()).Contains("ERROR: search command failed")
}

func TestRunNothingToDo(t *testing.T) {
	f := newFixture(t)

	gt.NoError(t, f.run("--token", "xxx", "--org", "blue"))
	gt.S(t, f.out.String()).Contains("Nothing to do")
	gt.V(t, f.built).Equal(0)
}

func TestRunReportsFatalErrorToSentry(t *testing.T) {
	var received atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/envelope/") || strings.HasSuffix(r.URL.Path, "/store/") {
			received.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	t.Cleanup(func() {
		_ = sentry.Init(sentry.ClientOptions{})
	})

	f := newFixture(t)
	f.uc.SyncRepositoriesFunc = func(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error) {
		return nil, goerr.Wrap(types.ErrRemoteListing, "failed to list repositories")
	}

	dsn := strings.Replace(srv.URL, "http://", "http://public@", 1) + "/1"
	gt.Error(t, f.run("--sentry-dsn", dsn, "--token", "xxx", "--org", "blue", "--get-repos"))
	gt.True(t, received.Load() >= 1)
}

func TestRunClosesLogFile(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "githuber.log")

	gt.NoError(t, f.run("--log-output", path, "--log-level", "debug", "--token", "xxx", "--org", "blue", "--count"))
	t.Cleanup(func() {
		_ = logging.Configure("text", "warn", "stderr")
	})

	gt.False(t, logging.HasOpenFile())
}
