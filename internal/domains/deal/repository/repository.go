package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adbook/infras/otel"
	"adbook/internal/domains/deal/model"
	"adbook/internal/record"
	"adbook/shared/constant"
	gRepo "adbook/shared/repository"
)

type Deal interface {
	GetAll(ctx context.Context) ([]model.Deal, error)
	Get(ctx context.Context, id string) (model.Deal, error)
	Exist(ctx context.Context, id string) (bool, error)
	Upsert(ctx context.Context, deal model.Deal) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	coll *gRepo.Collection[model.Deal]
	otel otel.Otel
}

func New(store record.Store, otel otel.Otel) Deal {
	return &repositoryImpl{
		coll: gRepo.NewCollection[model.Deal](constant.RecordKeyDeals, store),
		otel: otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Deal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deal.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.All(ctx)
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Deal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deal.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ResolveByID(ctx, id)
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (res bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deal.Exist")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ExistsByID(ctx, id)
}

func (r *repositoryImpl) Upsert(ctx context.Context, deal model.Deal) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deal.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Upsert(ctx, deal)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deal.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Delete(ctx, id)
}
