package usecase

import (
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/domain/model"
	"github.com/m-mizutani/githuber/pkg/infra"
)

// UseCase runs every stage sequentially. Caches below are not guarded by locks because a
// UseCase must not be shared between goroutines.
type UseCase struct {
	clients *infra.Clients
	out     io.Writer

	login     string
	loggedIn  bool
	repoCache map[model.Owner]model.RemoteRepositories
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOutput sets writer for human readable progress and results. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(x *UseCase) {
		x.out = w
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:   clients,
		out:       os.Stdout,
		repoCache: make(map[model.Owner]model.RemoteRepositories),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func (x *UseCase) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(x.out, format+"\n", args...)
}
