// Package docstore is the thin client for the site's document storage. Each
// record kind lives in its own collection (table); documents are addressed by
// a store-wide int64 id. The production implementation sits on GORM; the
// action layer only sees the Store interface.
package docstore

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get, Update and Delete when no document with the
// given id exists in the collection.
var ErrNotFound = errors.New("document not found")

// Store is a remote document collection client. List fills dest (a pointer to
// a model slice) newest-first and returns the collection total; Update applies
// a merge patch, leaving fields absent from the patch untouched.
type Store interface {
	Create(ctx context.Context, doc interface{}) error
	List(ctx context.Context, dest interface{}, limit int) (int64, error)
	Get(ctx context.Context, id int64, dest interface{}) error
	Update(ctx context.Context, model interface{}, id int64, patch map[string]interface{}) error
	Delete(ctx context.Context, model interface{}, id int64) error
}
