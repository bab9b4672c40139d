package actions

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

// TestimonialActions exposes CRUD over the Testimonials collection.
type TestimonialActions struct {
	store docstore.Store
}

func NewTestimonialActions(store docstore.Store) *TestimonialActions {
	return &TestimonialActions{store: store}
}

type TestimonialInput struct {
	Name     string                   `json:"name"`
	Position string                   `json:"position"`
	Content  string                   `json:"content"`
	Rating   domain.TestimonialRating `json:"rating"`
	Status   domain.TestimonialStatus `json:"status"`
}

// TestimonialPatch is a merge patch; nil fields are left untouched. The
// creation timestamp is never part of a patch.
type TestimonialPatch struct {
	Name     *string                   `json:"name"`
	Position *string                   `json:"position"`
	Content  *string                   `json:"content"`
	Rating   *domain.TestimonialRating `json:"rating"`
	Status   *domain.TestimonialStatus `json:"status"`
}

func (p TestimonialPatch) updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Position != nil {
		updates["position"] = *p.Position
	}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.Rating != nil {
		if !p.Rating.Valid() {
			return nil, errors.Errorf("invalid testimonial rating %q", *p.Rating)
		}
		updates["rating"] = *p.Rating
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, errors.Errorf("invalid testimonial status %q", *p.Status)
		}
		updates["status"] = *p.Status
	}
	return updates, nil
}

func (a *TestimonialActions) Create(ctx context.Context, sess *Session, in TestimonialInput) (*domain.Testimonial, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if !in.Rating.Valid() {
		return nil, errors.Errorf("invalid testimonial rating %q", in.Rating)
	}
	if !in.Status.Valid() {
		return nil, errors.Errorf("invalid testimonial status %q", in.Status)
	}

	now := time.Now()
	rec := &domain.Testimonial{
		ID:        common.UUIDint64(),
		Name:      in.Name,
		Position:  in.Position,
		Content:   in.Content,
		Rating:    in.Rating,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "create testimonial")
	}
	return rec, nil
}

func (a *TestimonialActions) List(ctx context.Context, limit int) ([]domain.Testimonial, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var rows []domain.Testimonial
	total, err := a.store.List(ctx, &rows, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list testimonials")
	}
	return rows, total, nil
}

func (a *TestimonialActions) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	var rec domain.Testimonial
	if err := a.store.Get(ctx, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *TestimonialActions) Update(ctx context.Context, sess *Session, id int64, patch TestimonialPatch) (*domain.Testimonial, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return a.AdminUpdate(ctx, id, patch)
}

func (a *TestimonialActions) AdminUpdate(ctx context.Context, id int64, patch TestimonialPatch) (*domain.Testimonial, error) {
	updates, err := patch.updates()
	if err != nil {
		return nil, err
	}
	updates["updated_at"] = time.Now()
	if err := a.store.Update(ctx, &domain.Testimonial{}, id, updates); err != nil {
		return nil, err
	}
	return a.GetByID(ctx, id)
}

func (a *TestimonialActions) Delete(ctx context.Context, sess *Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return a.AdminDelete(ctx, id)
}

func (a *TestimonialActions) AdminDelete(ctx context.Context, id int64) error {
	return a.store.Delete(ctx, &domain.Testimonial{}, id)
}
