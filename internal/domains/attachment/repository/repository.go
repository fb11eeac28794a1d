package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adbook/infras/otel"
	"adbook/internal/domains/attachment/model"
	"adbook/internal/record"
	"adbook/shared/constant"
	gRepo "adbook/shared/repository"
)

type Attachment interface {
	GetByPlacement(ctx context.Context, placementID string) ([]model.Attachment, error)
	Get(ctx context.Context, id string) (model.Attachment, error)
	Upsert(ctx context.Context, attachment model.Attachment) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	coll *gRepo.Collection[model.Attachment]
	otel otel.Otel
}

func New(store record.Store, otel otel.Otel) Attachment {
	return &repositoryImpl{
		coll: gRepo.NewCollection[model.Attachment](constant.RecordKeyAttachments, store),
		otel: otel,
	}
}

func (r *repositoryImpl) GetByPlacement(ctx context.Context, placementID string) (res []model.Attachment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attachment.GetByPlacement")
	defer scope.End()
	defer scope.TraceIfError(err)

	all, err := r.coll.All(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]model.Attachment, 0, len(all))
	for _, attachment := range all {
		if attachment.PlacementID == placementID {
			res = append(res, attachment)
		}
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Attachment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attachment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ResolveByID(ctx, id)
}

func (r *repositoryImpl) Upsert(ctx context.Context, attachment model.Attachment) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attachment.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Upsert(ctx, attachment)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attachment.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Delete(ctx, id)
}
