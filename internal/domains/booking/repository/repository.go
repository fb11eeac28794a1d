package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adbook/infras/otel"
	"adbook/internal/domains/booking/model"
	"adbook/internal/record"
	"adbook/shared/constant"
	gRepo "adbook/shared/repository"
)

type Booking interface {
	GetByDeal(ctx context.Context, dealID string) (model.BookingSet, error)
	Upsert(ctx context.Context, set model.BookingSet) error
	Delete(ctx context.Context, dealID string) error
}

type repositoryImpl struct {
	coll *gRepo.Collection[model.BookingSet]
	otel otel.Otel
}

func New(store record.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		coll: gRepo.NewCollection[model.BookingSet](constant.RecordKeyBookings, store),
		otel: otel,
	}
}

func (r *repositoryImpl) GetByDeal(ctx context.Context, dealID string) (res model.BookingSet, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByDeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.ResolveByID(ctx, dealID)
}

func (r *repositoryImpl) Upsert(ctx context.Context, set model.BookingSet) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Upsert(ctx, set)
}

func (r *repositoryImpl) Delete(ctx context.Context, dealID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.coll.Delete(ctx, dealID)
}
