package users

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) error
}
