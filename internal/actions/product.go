package actions

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

// ProductActions exposes CRUD over the Products collection.
type ProductActions struct {
	store docstore.Store
}

func NewProductActions(store docstore.Store) *ProductActions {
	return &ProductActions{store: store}
}

type ProductInput struct {
	Name          string                 `json:"name"`
	Apy           float64                `json:"apy"`
	Risk          domain.ProductRisk     `json:"risk"`
	MinInvestment float64                `json:"min_investment"`
	MaxInvestment float64                `json:"max_investment"`
	Investors     int64                  `json:"investors"`
	Status        domain.ProductStatus   `json:"status"`
	Category      domain.ProductCategory `json:"category"`
	Features      string                 `json:"features"`
}

// ProductPatch is a merge patch; nil fields are left untouched.
type ProductPatch struct {
	Name          *string                 `json:"name"`
	Apy           *float64                `json:"apy"`
	Risk          *domain.ProductRisk     `json:"risk"`
	MinInvestment *float64                `json:"min_investment"`
	MaxInvestment *float64                `json:"max_investment"`
	Investors     *int64                  `json:"investors"`
	Status        *domain.ProductStatus   `json:"status"`
	Category      *domain.ProductCategory `json:"category"`
	Features      *string                 `json:"features"`
}

func (p ProductPatch) updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Apy != nil {
		updates["apy"] = *p.Apy
	}
	if p.Risk != nil {
		if !p.Risk.Valid() {
			return nil, errors.Errorf("invalid product risk %q", *p.Risk)
		}
		updates["risk"] = *p.Risk
	}
	if p.MinInvestment != nil {
		updates["min_investment"] = *p.MinInvestment
	}
	if p.MaxInvestment != nil {
		updates["max_investment"] = *p.MaxInvestment
	}
	if p.Investors != nil {
		updates["investors"] = *p.Investors
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, errors.Errorf("invalid product status %q", *p.Status)
		}
		updates["status"] = *p.Status
	}
	if p.Category != nil {
		if !p.Category.Valid() {
			return nil, errors.Errorf("invalid product category %q", *p.Category)
		}
		updates["category"] = *p.Category
	}
	if p.Features != nil {
		updates["features"] = *p.Features
	}
	return updates, nil
}

// Create persists a new product. Requires an authenticated session; an
// anonymous call returns ErrNotAuthorized without touching the store.
func (a *ProductActions) Create(ctx context.Context, sess *Session, in ProductInput) (*domain.Product, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if !in.Risk.Valid() {
		return nil, errors.Errorf("invalid product risk %q", in.Risk)
	}
	if !in.Status.Valid() {
		return nil, errors.Errorf("invalid product status %q", in.Status)
	}
	if !in.Category.Valid() {
		return nil, errors.Errorf("invalid product category %q", in.Category)
	}

	now := time.Now()
	rec := &domain.Product{
		ID:            common.UUIDint64(),
		Name:          in.Name,
		Apy:           in.Apy,
		Risk:          in.Risk,
		MinInvestment: in.MinInvestment,
		MaxInvestment: in.MaxInvestment,
		Investors:     in.Investors,
		Status:        in.Status,
		Category:      in.Category,
		Features:      in.Features,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := a.store.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return rec, nil
}

// List returns up to limit products, newest first, plus the collection total.
func (a *ProductActions) List(ctx context.Context, limit int) ([]domain.Product, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var rows []domain.Product
	total, err := a.store.List(ctx, &rows, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list products")
	}
	return rows, total, nil
}

func (a *ProductActions) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var rec domain.Product
	if err := a.store.Get(ctx, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update merge-patches a product after the session check.
func (a *ProductActions) Update(ctx context.Context, sess *Session, id int64, patch ProductPatch) (*domain.Product, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return a.AdminUpdate(ctx, id, patch)
}

// AdminUpdate performs the same merge-patch write without the per-call check;
// the admin surface relies on the session gate instead.
func (a *ProductActions) AdminUpdate(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error) {
	updates, err := patch.updates()
	if err != nil {
		return nil, err
	}
	updates["updated_at"] = time.Now()
	if err := a.store.Update(ctx, &domain.Product{}, id, updates); err != nil {
		return nil, err
	}
	return a.GetByID(ctx, id)
}

func (a *ProductActions) Delete(ctx context.Context, sess *Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return a.AdminDelete(ctx, id)
}

func (a *ProductActions) AdminDelete(ctx context.Context, id int64) error {
	return a.store.Delete(ctx, &domain.Product{}, id)
}
