// Package actions is the entity action layer: a uniform remote-CRUD contract
// over each document collection, with the per-call authorization rule for the
// mutating public variants. Handlers never touch the store directly; they go
// through these modules.
package actions

import (
	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
)

// DefaultListLimit bounds list queries when the caller does not ask for a
// specific limit.
const DefaultListLimit = 10000

// ErrNotAuthorized is returned by mutating operations invoked without an
// authenticated session. No store call is made in that case.
var ErrNotAuthorized = errors.New("Not authorized")

// Session is the caller's identity, threaded explicitly into every protected
// operation. A nil session or a session without an operator is anonymous.
type Session struct {
	Operator *domain.SysOpr
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Operator != nil
}

func requireSession(sess *Session) error {
	if !sess.Authenticated() {
		return ErrNotAuthorized
	}
	return nil
}

// Registry bundles the per-entity action modules around one store handle.
type Registry struct {
	Products     *ProductActions
	Clients      *ClientActions
	Testimonials *TestimonialActions
	Contacts     *ContactActions
	Summary      *SummaryActions
}

func NewRegistry(store docstore.Store, bus EventBus.Bus) *Registry {
	r := &Registry{
		Products:     NewProductActions(store),
		Clients:      NewClientActions(store),
		Testimonials: NewTestimonialActions(store),
		Contacts:     NewContactActions(store, bus),
	}
	r.Summary = NewSummaryActions(r.Products, r.Clients, r.Testimonials, r.Contacts)
	return r
}
