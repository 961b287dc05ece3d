package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const perPage = 100

type Client struct {
	client  *github.Client
	appID   types.GitHubAppID
	baseURL string
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL sets API root URL, e.g. https://ghe.example.com/api/v3/
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

// New creates a GitHub API client authenticated by a personal access token.
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrMissingCredential, "token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(context.Background(), ts)

	return newClient(httpClient, 0, options...)
}

// NewWithApp creates a GitHub API client authenticated as a GitHub App installation.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrMissingCredential, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrMissingCredential, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrMissingCredential, "private key is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github app transport", goerr.V("appID", appID))
	}

	return newClient(&http.Client{Transport: itr}, appID, options...)
}

func newClient(httpClient *http.Client, appID types.GitHubAppID, options ...Option) (*Client, error) {
	client := &Client{
		client: github.NewClient(httpClient),
		appID:  appID,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.baseURL != "" {
		base := client.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", client.baseURL))
		}
		client.client.BaseURL = u
	}

	return client, nil
}

// Authenticate returns login name of the token owner. GitHub App installation tokens can not
// access the user endpoint, so the installation is verified by listing one repository instead.
func (x *Client) Authenticate(ctx context.Context) (string, error) {
	if x.appID != 0 {
		if _, _, err := x.client.Apps.ListRepos(ctx, &github.ListOptions{PerPage: 1}); err != nil {
			return "", goerr.Wrap(types.ErrRemoteListing, "failed to authenticate as GitHub App installation",
				goerr.V("appID", x.appID),
				goerr.V("error", err.Error()),
			)
		}
		return fmt.Sprintf("app:%d", x.appID), nil
	}

	user, _, err := x.client.Users.Get(ctx, "")
	if err != nil {
		return "", goerr.Wrap(types.ErrRemoteListing, "failed to authenticate with token", goerr.V("error", err.Error()))
	}

	logging.From(ctx).Debug("authenticated", slog.String("login", user.GetLogin()))
	return user.GetLogin(), nil
}

// ListRepositories returns all repositories of the owner, following pagination to the last page.
func (x *Client) ListRepositories(ctx context.Context, owner model.Owner) (model.RemoteRepositories, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var repos model.RemoteRepositories
	page := 1
	for {
		result, resp, err := x.listPage(ctx, owner, page)
		if err != nil {
			return nil, goerr.Wrap(types.ErrRemoteListing, "failed to list repositories",
				goerr.V("owner", owner.Name),
				goerr.V("type", owner.Type),
				goerr.V("page", page),
				goerr.V("error", err.Error()),
			)
		}

		for _, repo := range result {
			repos = append(repos, toRemoteRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	logging.From(ctx).Debug("listed repositories",
		slog.String("owner", owner.Name),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

func (x *Client) listPage(ctx context.Context, owner model.Owner, page int) ([]*github.Repository, *github.Response, error) {
	opts := github.ListOptions{PerPage: perPage, Page: page}

	if owner.IsOrganization() {
		return x.client.Repositories.ListByOrg(ctx, owner.Name, &github.RepositoryListByOrgOptions{
			Type:        "all",
			ListOptions: opts,
		})
	}

	return x.client.Repositories.List(ctx, owner.Name, &github.RepositoryListOptions{
		Type:        "owner",
		ListOptions: opts,
	})
}

func toRemoteRepository(repo *github.Repository) *model.RemoteRepository {
	return &model.RemoteRepository{
		Name:          repo.GetName(),
		GitURL:        repo.GetGitURL(),
		SSHURL:        repo.GetSSHURL(),
		CloneURL:      repo.GetCloneURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Archived:      repo.GetArchived(),
		Fork:          repo.GetFork(),
	}
}
