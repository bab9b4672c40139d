package actions

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
)

func adminSession() *Session {
	return &Session{Operator: &domain.SysOpr{ID: 1, Username: "admin"}}
}

func stableVaultInput() ProductInput {
	return ProductInput{
		Name:          "Stable Vault",
		Apy:           7.2,
		Risk:          domain.RiskLow,
		MinInvestment: 100,
		MaxInvestment: 100000,
		Investors:     0,
		Status:        domain.ProductActive,
		Category:      domain.CategoryDefi,
		Features:      "a,b",
	}
}

func TestProductCreateRequiresSession(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)

	_, err := acts.Create(context.Background(), nil, stableVaultInput())
	require.ErrorIs(t, err, ErrNotAuthorized)

	_, err = acts.Create(context.Background(), &Session{}, stableVaultInput())
	require.ErrorIs(t, err, ErrNotAuthorized)

	// the check short-circuits before any store interaction
	assert.Equal(t, 0, store.Calls())
}

func TestProductCreateThenListReturnsItFirst(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)
	sess := adminSession()

	older, err := acts.Create(context.Background(), sess, ProductInput{
		Name: "Legacy Pool", Apy: 3.1,
		Risk: domain.RiskMedium, Status: domain.ProductInactive, Category: domain.CategoryNft,
	})
	require.NoError(t, err)

	created, err := acts.Create(context.Background(), sess, stableVaultInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rows, total, err := acts.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, created.ID, rows[0].ID)
	assert.Equal(t, "Stable Vault", rows[0].Name)
	assert.Equal(t, older.ID, rows[1].ID)
}

func TestProductCreateRejectsUnknownEnumValues(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)

	in := stableVaultInput()
	in.Risk = "CATASTROPHIC"
	_, err := acts.Create(context.Background(), adminSession(), in)
	require.Error(t, err)

	in = stableVaultInput()
	in.Category = "MEME"
	_, err = acts.Create(context.Background(), adminSession(), in)
	require.Error(t, err)
}

func TestProductUpdatePatchesOnlyNamedFields(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)

	created, err := acts.Create(context.Background(), adminSession(), stableVaultInput())
	require.NoError(t, err)

	apy := 9.9
	updated, err := acts.AdminUpdate(context.Background(), created.ID, ProductPatch{Apy: &apy})
	require.NoError(t, err)

	assert.Equal(t, 9.9, updated.Apy)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Risk, updated.Risk)
	assert.Equal(t, created.MinInvestment, updated.MinInvestment)
	assert.Equal(t, created.MaxInvestment, updated.MaxInvestment)
	assert.Equal(t, created.Investors, updated.Investors)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Features, updated.Features)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestProductUpdateRequiresSession(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)

	apy := 1.0
	_, err := acts.Update(context.Background(), nil, 42, ProductPatch{Apy: &apy})
	require.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, 0, store.Calls())
}

func TestProductDeleteThenGetNotFound(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)

	created, err := acts.Create(context.Background(), adminSession(), stableVaultInput())
	require.NoError(t, err)

	require.NoError(t, acts.Delete(context.Background(), adminSession(), created.ID))

	_, err = acts.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestProductListSurfacesStoreFailure(t *testing.T) {
	store := newMemStore()
	acts := NewProductActions(store)
	store.failWith(errors.New("connection refused"))

	rows, _, err := acts.List(context.Background(), 0)
	require.Error(t, err)
	assert.Nil(t, rows)
}
