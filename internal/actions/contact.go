package actions

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

// ContactCreatedTopic is published on the process event bus whenever a
// contact inquiry is stored, with the new record as payload.
const ContactCreatedTopic = "contact.created"

// ContactActions exposes CRUD over the Contacts collection plus the
// unauthenticated Submit entry point used by the public contact form.
type ContactActions struct {
	store docstore.Store
	bus   EventBus.Bus
}

func NewContactActions(store docstore.Store, bus EventBus.Bus) *ContactActions {
	return &ContactActions{store: store, bus: bus}
}

type ContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Messages string `json:"messages"`
}

// ContactPatch is a merge patch; nil fields are left untouched.
type ContactPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Messages *string `json:"messages"`
}

func (p ContactPatch) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Messages != nil {
		updates["messages"] = *p.Messages
	}
	return updates
}

func (a *ContactActions) Create(ctx context.Context, sess *Session, in ContactInput) (*domain.Contact, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return a.insert(ctx, in)
}

// Submit stores a visitor inquiry from the public contact form. It is the one
// unauthenticated write in the system and notifies subscribers on the bus.
func (a *ContactActions) Submit(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, errors.New("email is required")
	}
	if strings.TrimSpace(in.Messages) == "" {
		return nil, errors.New("message is required")
	}
	rec, err := a.insert(ctx, in)
	if err != nil {
		return nil, err
	}
	if a.bus != nil {
		a.bus.Publish(ContactCreatedTopic, rec)
	}
	return rec, nil
}

func (a *ContactActions) insert(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	now := time.Now()
	rec := &domain.Contact{
		ID:        common.UUIDint64(),
		Name:      in.Name,
		Email:     in.Email,
		Messages:  in.Messages,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "create contact")
	}
	return rec, nil
}

func (a *ContactActions) List(ctx context.Context, limit int) ([]domain.Contact, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var rows []domain.Contact
	total, err := a.store.List(ctx, &rows, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list contacts")
	}
	return rows, total, nil
}

func (a *ContactActions) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var rec domain.Contact
	if err := a.store.Get(ctx, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *ContactActions) Update(ctx context.Context, sess *Session, id int64, patch ContactPatch) (*domain.Contact, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return a.AdminUpdate(ctx, id, patch)
}

func (a *ContactActions) AdminUpdate(ctx context.Context, id int64, patch ContactPatch) (*domain.Contact, error) {
	updates := patch.updates()
	updates["updated_at"] = time.Now()
	if err := a.store.Update(ctx, &domain.Contact{}, id, updates); err != nil {
		return nil, err
	}
	return a.GetByID(ctx, id)
}

func (a *ContactActions) Delete(ctx context.Context, sess *Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return a.AdminDelete(ctx, id)
}

func (a *ContactActions) AdminDelete(ctx context.Context, id int64) error {
	return a.store.Delete(ctx, &domain.Contact{}, id)
}
