package infra

import (
	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/infra/git"
	"github.com/m-mizutani/githuber/pkg/infra/search"
)

type Clients struct {
	github   interfaces.GitHub
	git      interfaces.Git
	searcher interfaces.Searcher
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:      git.New("git"),
		searcher: search.New("grep"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) Searcher() interfaces.Searcher {
	return x.searcher
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithSearcher(client interfaces.Searcher) Option {
	return func(x *Clients) {
		x.searcher = client
	}
}
