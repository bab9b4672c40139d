package actions

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

// ClientActions exposes CRUD over the Clients collection (earnings case
// studies).
type ClientActions struct {
	store docstore.Store
}

func NewClientActions(store docstore.Store) *ClientActions {
	return &ClientActions{store: store}
}

type ClientInput struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Investment float64 `json:"investment"`
	Earnings   float64 `json:"earnings"`
	Period     int     `json:"period"`
}

// ClientPatch is a merge patch; nil fields are left untouched.
type ClientPatch struct {
	Name       *string  `json:"name"`
	Location   *string  `json:"location"`
	Investment *float64 `json:"investment"`
	Earnings   *float64 `json:"earnings"`
	Period     *int     `json:"period"`
}

func (p ClientPatch) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.Investment != nil {
		updates["investment"] = *p.Investment
	}
	if p.Earnings != nil {
		updates["earnings"] = *p.Earnings
	}
	if p.Period != nil {
		updates["period"] = *p.Period
	}
	return updates
}

func (a *ClientActions) Create(ctx context.Context, sess *Session, in ClientInput) (*domain.Client, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	now := time.Now()
	rec := &domain.Client{
		ID:         common.UUIDint64(),
		Name:       in.Name,
		Location:   in.Location,
		Investment: in.Investment,
		Earnings:   in.Earnings,
		Period:     in.Period,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := a.store.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	return rec, nil
}

func (a *ClientActions) List(ctx context.Context, limit int) ([]domain.Client, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var rows []domain.Client
	total, err := a.store.List(ctx, &rows, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list clients")
	}
	return rows, total, nil
}

func (a *ClientActions) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var rec domain.Client
	if err := a.store.Get(ctx, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *ClientActions) Update(ctx context.Context, sess *Session, id int64, patch ClientPatch) (*domain.Client, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return a.AdminUpdate(ctx, id, patch)
}

func (a *ClientActions) AdminUpdate(ctx context.Context, id int64, patch ClientPatch) (*domain.Client, error) {
	updates := patch.updates()
	updates["updated_at"] = time.Now()
	if err := a.store.Update(ctx, &domain.Client{}, id, updates); err != nil {
		return nil, err
	}
	return a.GetByID(ctx, id)
}

func (a *ClientActions) Delete(ctx context.Context, sess *Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return a.AdminDelete(ctx, id)
}

func (a *ClientActions) AdminDelete(ctx context.Context, id int64) error {
	return a.store.Delete(ctx, &domain.Client{}, id)
}
