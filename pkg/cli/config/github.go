package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/infra/github"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/githuber/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const DefaultTokenFile = ".githuber_token"

// PromptFunc asks the operator for a token. It returns empty string if prompting is not possible.
type PromptFunc func() (string, error)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	tokenFile  string
	apiURL     string
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Aliases:     []string{"t"},
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITHUBER_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "File to read GitHub API token from when --token is not set",
			Category:    "GitHub",
			Value:       DefaultTokenFile,
			Destination: &x.tokenFile,
			Sources:     cli.EnvVars("GITHUBER_TOKEN_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API root URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("GITHUBER_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when no token is available",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GITHUBER_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GITHUBER_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GITHUBER_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) appConfigured() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

// Token resolves API token in order of flag (or environment variable), token file and prompt.
// Prompt is skipped when GitHub App is configured. Empty token without error means no
// credential is available.
func (x *GitHub) Token(ctx context.Context, prompt PromptFunc) (types.GitHubToken, error) {
	if x.token != "" {
		return x.token, nil
	}

	token, err := readTokenFile(ctx, x.tokenFile)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	if x.appConfigured() || prompt == nil {
		return "", nil
	}

	input, err := prompt()
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token from prompt")
	}
	return types.GitHubToken(strings.TrimSpace(input)), nil
}

// NewClient creates GitHub API client. types.ErrMissingCredential is returned when neither
// token nor GitHub App is available.
func (x *GitHub) NewClient(ctx context.Context, prompt PromptFunc) (*github.Client, error) {
	var options []github.Option
	if x.apiURL != "" {
		options = append(options, github.WithBaseURL(x.apiURL))
	}

	token, err := x.Token(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if token != "" {
		return github.New(token, options...)
	}

	if x.appConfigured() {
		return github.NewWithApp(x.appID, x.installID, x.privateKey, options...)
	}

	return nil, goerr.Wrap(types.ErrMissingCredential, "no GitHub token or GitHub App")
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("tokenFile", x.tokenFile),
		slog.String("apiURL", x.apiURL),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

// readTokenFile returns the first non-empty line of path. Missing file is not an error.
func readTokenFile(ctx context.Context, path string) (types.GitHubToken, error) {
	if path == "" {
		return "", nil
	}

	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.From(ctx).Debug("token file not found", slog.String("path", path))
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to open token file", goerr.V("path", path))
	}
	defer safe.Close(ctx, fd)

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return types.GitHubToken(line), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", goerr.Wrap(err, "failed to read token file", goerr.V("path", path))
	}

	return "", nil
}

// TerminalPrompt reads a token from the terminal without echo. It returns empty string when
// stdin is not a terminal.
func TerminalPrompt() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Token: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read password from terminal")
	}
	return string(b), nil
}
