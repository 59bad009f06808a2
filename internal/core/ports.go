package core

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store is a parameterized-statement handle to the table(s) a method touches.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
}
