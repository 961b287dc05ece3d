package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Git Searcher

import (
	"context"

	"github.com/m-mizutani/githuber/pkg/domain/model"
)

// GitHub lists repositories of an owner on the hosting API.
type GitHub interface {
	// Authenticate verifies the credential and returns the login name of the authenticated account.
	Authenticate(ctx context.Context) (string, error)
	ListRepositories(ctx context.Context, owner model.Owner) (model.RemoteRepositories, error)
}

// Git runs the git command line tool.
type Git interface {
	Pull(ctx context.Context, dir, branch string) error
	Clone(ctx context.Context, url, parentDir string) error
	CountCommits(ctx context.Context, dir, since, until string) (int, error)
	IsRepository(dir string) bool
}

// Searcher runs a recursive text search over a directory.
type Searcher interface {
	Search(ctx context.Context, pattern, dir string) (*SearchOutput, error)
}

type SearchOutput struct {
	Stdout string
	Stderr string
}
