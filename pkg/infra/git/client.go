package git

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client runs git as a subprocess. Subprocesses are not bounded by timeout; they run until exit
// or until ctx is canceled.
type Client struct {
	path string
}

var _ interfaces.Git = (*Client)(nil)

func New(path string) *Client {
	return &Client{path: path}
}

// Pull updates an existing clone. A conflict is returned as error and never resolved.
func (x *Client) Pull(ctx context.Context, dir, branch string) error {
	args := []string{"pull"}
	if branch != "" {
		args = append(args, "origin", branch)
	}
	_, err := x.run(ctx, dir, args...)
	return err
}

// Clone clones url into parentDir. The destination directory name is chosen by git.
func (x *Client) Clone(ctx context.Context, url, parentDir string) error {
	_, err := x.run(ctx, parentDir, "clone", url)
	return err
}

// CountCommits returns number of non-merge commits reachable from any ref in [since, until].
func (x *Client) CountCommits(ctx context.Context, dir, since, until string) (int, error) {
	out, err := x.run(ctx, dir,
		"rev-list", "--count", "--all", "--no-merges",
		"--since="+since,
		"--until="+until,
	)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, goerr.Wrap(types.ErrGitOperation, "unexpected rev-list output",
			goerr.V("dir", dir),
			goerr.V("output", out),
		)
	}
	return n, nil
}

// IsRepository returns true if dir is a root of git working tree.
func (x *Client) IsRepository(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

func (x *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	logging.From(ctx).Debug("run git", slog.String("dir", dir), slog.Any("args", args))

	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(types.ErrGitOperation, "git command failed",
			goerr.V("args", args),
			goerr.V("dir", dir),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
			goerr.V("error", err.Error()),
		)
	}

	return stdout.String(), nil
}

// Stderr extracts captured stderr of a failed git command from err. If err was not
// returned by Client, err.Error() is returned.
func Stderr(err error) string {
	if goErr := goerr.Unwrap(err); goErr != nil {
		if v, ok := goErr.Values()["stderr"].(string); ok && v != "" {
			return v
		}
	}
	return err.Error()
}
