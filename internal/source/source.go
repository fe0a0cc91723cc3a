// Package source reads publication and client records from the outside
// world: text data files or a Postgres database.
package source

import (
	"context"

	"shelf/internal/client"
	"shelf/internal/publication"
)

// Batch holds what a source produced: the records it could build and one
// error per input it had to skip.
type Batch[T any] struct {
	Items   []T
	Skipped []error
}

// Source loads the initial library contents.
type Source interface {
	Publications(ctx context.Context) (Batch[*publication.Record], error)
	Clients(ctx context.Context) (Batch[*client.Client], error)
}
