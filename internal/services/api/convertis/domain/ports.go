package domain

import "context"

// ServicePort defines the service contract for convertis
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (CreateResult, error)
	List(ctx context.Context, f Filter) ([]Convert, error)
	Get(ctx context.Context, id int64) (Convert, error)
	Delete(ctx context.Context, id int64) (MessageResult, error)
	UniqueValues(ctx context.Context) (UniqueValues, error)
}
