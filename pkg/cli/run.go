package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/githuber/pkg/cli/config"
	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra"
	"github.com/m-mizutani/githuber/pkg/infra/git"
	"github.com/m-mizutani/githuber/pkg/infra/search"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type runOptions struct {
	github config.GitHub

	organization string
	user         string
	root         string

	getRepos  bool
	repoCount bool
	year      int64
	month     int64
	day       int64
	search    string

	gitPath    string
	searchPath string
}

func (x *runOptions) Flags() []cli.Flag {
	return slice.Flatten(x.github.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "organization",
			Aliases:     []string{"org"},
			Usage:       "Organization name",
			Category:    "Owner",
			Destination: &x.organization,
			Sources:     cli.EnvVars("GITHUBER_ORGANIZATION"),
		},
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User name",
			Category:    "Owner",
			Destination: &x.user,
			Sources:     cli.EnvVars("GITHUBER_USER"),
		},
		&cli.StringFlag{
			Name:        "root",
			Aliases:     []string{"r"},
			Usage:       "Directory to keep clones in (default: organization or user name)",
			Destination: &x.root,
			Sources:     cli.EnvVars("GITHUBER_ROOT"),
		},
		&cli.BoolFlag{
			Name:        "get-repos",
			Aliases:     []string{"update"},
			Usage:       "Get any new repos and update existing repos",
			Category:    "Action",
			Destination: &x.getRepos,
		},
		&cli.BoolFlag{
			Name:        "repo-count",
			Aliases:     []string{"count"},
			Usage:       "Show the count of repos for the organization/user",
			Category:    "Action",
			Destination: &x.repoCount,
		},
		&cli.Int64Flag{
			Name:        "commits-year",
			Usage:       "Year to count commits for",
			Category:    "Action",
			Destination: &x.year,
		},
		&cli.Int64Flag{
			Name:        "commits-month",
			Usage:       "Month to count commits for (not implemented)",
			Category:    "Action",
			Destination: &x.month,
		},
		&cli.Int64Flag{
			Name:        "commits-day",
			Usage:       "Day to count commits for (not implemented)",
			Category:    "Action",
			Destination: &x.day,
		},
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "Regex pattern to search for in the code",
			Category:    "Action",
			Destination: &x.search,
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Value:       "git",
			Sources:     cli.EnvVars("GITHUBER_GIT_PATH"),
			Destination: &x.gitPath,
		},
		&cli.StringFlag{
			Name:        "search-path",
			Usage:       "Path to grep compatible search binary (grep or rg)",
			Value:       "grep",
			Sources:     cli.EnvVars("GITHUBER_SEARCH_PATH"),
			Destination: &x.searchPath,
		},
	})
}

func (x *runOptions) period() model.CommitPeriod {
	return model.CommitPeriod{
		Year:  int(x.year),
		Month: int(x.month),
		Day:   int(x.day),
	}
}

func (x *runOptions) hasAction() bool {
	return x.getRepos || x.repoCount || x.period().IsSet() || x.search != ""
}

func (x *CLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(x.out, format+"\n", args...)
}

// run executes stages in fixed order: sync, repository count, commit count and code search.
// Missing credential and missing owner are reported without error.
func (x *CLI) run(ctx context.Context, opt *runOptions) error {
	ghClient, err := opt.github.NewClient(ctx, x.prompt)
	if err != nil {
		if errors.Is(err, types.ErrMissingCredential) {
			x.printf("ERROR: Please provide a token")
			return nil
		}
		return err
	}

	owner := model.NewOwner(opt.organization, opt.user)
	if err := owner.Validate(); err != nil {
		x.printf("ERROR: Please provide an organization or user")
		return nil
	}

	root := opt.root
	if root == "" {
		root = owner.Name
	}

	logging.From(ctx).Info("Starting githuber",
		slog.Any("github", opt.github),
		slog.String("owner", owner.Name),
		slog.String("owner_type", string(owner.Type)),
		slog.String("root", root),
		slog.Bool("get_repos", opt.getRepos),
		slog.Bool("repo_count", opt.repoCount),
		slog.Any("period", opt.period()),
		slog.String("search", opt.search),
	)

	if !opt.hasAction() {
		x.printf("Nothing to do. Use --get-repos, --repo-count, --commits-year or --search")
		return nil
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithGit(git.New(opt.gitPath)),
		infra.WithSearcher(search.New(opt.searchPath)),
	)
	uc := x.newUseCase(clients, x.out)

	if opt.getRepos {
		if _, err := uc.SyncRepositories(ctx, owner, root); err != nil {
			return err
		}
	}

	if opt.repoCount {
		if _, err := uc.CountRepositories(ctx, owner); err != nil {
			return err
		}
	}

	if period := opt.period(); period.IsSet() {
		if _, err := uc.CountCommits(ctx, owner, root, period); err != nil {
			if !errors.Is(err, types.ErrUnsupportedGranularity) && !errors.Is(err, types.ErrInvalidOption) {
				return err
			}
			x.printf("ERROR: %s", err.Error())
		}
	}

	if opt.search != "" {
		input := &model.SearchCodeInput{Pattern: opt.search, Dir: root}
		if err := uc.SearchCode(ctx, input); err != nil {
			logging.From(ctx).Warn("search failed", slog.Any("error", err))
			x.printf("ERROR: %s", err.Error())
		}
	}

	return nil
}
