package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/githuber/pkg/domain/model"
)

type UseCase interface {
	SyncRepositories(ctx context.Context, owner model.Owner, root string) (*model.SyncResult, error)
	CountRepositories(ctx context.Context, owner model.Owner) (int, error)
	CountCommits(ctx context.Context, owner model.Owner, root string, period model.CommitPeriod) (*model.CommitCount, error)
	SearchCode(ctx context.Context, input *model.SearchCodeInput) error
}
