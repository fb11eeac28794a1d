package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adbook/infras/otel"
	"adbook/internal/domains/placement/model"
	"adbook/internal/record"
	"adbook/shared/constant"
	gRepo "adbook/shared/repository"
)

type Placement interface {
	GetAll(ctx context.Context) ([]model.Placement, error)
	GetByDeal(ctx context.Context, dealID string) ([]model.Placement, error)
	Get(ctx context.Context, id string) (model.Placement, error)
	Exist(ctx context.Context, id string) (bool, error)
	Upsert(ctx context.Context, placement model.Placement) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	coll *gRepo.Collection[model.Placement]
	otel otel.Otel
}

func New(store record.Store, otel otel.Otel) Placement {
	return &repositoryImpl{
		coll: gRepo.NewCollection[model.Placement](constant.RecordKeyPlacements, store),
		otel: otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Placement, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.All(ctx)
}

func (r *repositoryImpl) GetByDeal(ctx context.Context, dealID string) (res []model.Placement, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.GetByDeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	all, err := r.coll.All(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]model.Placement, 0, len(all))
	for _, placement := range all {
		if placement.DealID == dealID {
			res = append(res, placement)
		}
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Placement, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ResolveByID(ctx, id)
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (res bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.Exist")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ExistsByID(ctx, id)
}

func (r *repositoryImpl) Upsert(ctx context.Context, placement model.Placement) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Upsert(ctx, placement)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".placement.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Delete(ctx, id)
}
