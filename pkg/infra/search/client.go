package search

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client runs a grep compatible executable. ripgrep is detected by executable name.
type Client struct {
	path string
}

var _ interfaces.Searcher = (*Client)(nil)

func New(path string) *Client {
	return &Client{path: path}
}

// exit status of grep and ripgrep when nothing matched
const exitNoMatch = 1

func (x *Client) Search(ctx context.Context, pattern, dir string) (*interfaces.SearchOutput, error) {
	args := x.args(pattern, dir)
	logging.From(ctx).Debug("run search", slog.String("path", x.path), slog.Any("args", args))

	cmd := exec.CommandContext(ctx, x.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	output := &interfaces.SearchOutput{}
	err := cmd.Run()
	output.Stdout = stdout.String()
	output.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == exitNoMatch {
			return output, nil
		}
		return output, goerr.Wrap(types.ErrSearch, "search command failed",
			goerr.V("path", x.path),
			goerr.V("pattern", pattern),
			goerr.V("dir", dir),
			goerr.V("stderr", output.Stderr),
			goerr.V("error", err.Error()),
		)
	}

	return output, nil
}

func (x *Client) args(pattern, dir string) []string {
	switch filepath.Base(x.path) {
	case "rg", "rg.exe":
		return []string{"--line-number", "--ignore-case", "--regexp", pattern, dir}
	default:
		return []string{
			"--recursive",
			"--line-number",
			"--ignore-case",
			"--extended-regexp",
			"--binary-files=without-match",
			"--exclude-dir=.git",
			"--regexp", pattern,
			dir,
		}
	}
}
