package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrent/chainrent/internal/domain"
)

func TestSiteSummaryAggregates(t *testing.T) {
	store := newMemStore()
	reg := NewRegistry(store, nil)
	sess := adminSession()
	ctx := context.Background()

	_, err := reg.Products.Create(ctx, sess, ProductInput{
		Name: "A", Apy: 4, Investors: 10,
		Risk: domain.RiskLow, Status: domain.ProductActive, Category: domain.CategoryDefi,
	})
	require.NoError(t, err)
	_, err = reg.Products.Create(ctx, sess, ProductInput{
		Name: "B", Apy: 8, Investors: 30,
		Risk: domain.RiskHigh, Status: domain.ProductComingSoon, Category: domain.CategoryRwa,
	})
	require.NoError(t, err)

	_, err = reg.Clients.Create(ctx, sess, ClientInput{Name: "Alice", Investment: 1000, Earnings: 120})
	require.NoError(t, err)
	_, err = reg.Clients.Create(ctx, sess, ClientInput{Name: "Bob", Investment: 500, Earnings: 20})
	require.NoError(t, err)

	_, err = reg.Contacts.Submit(ctx, ContactInput{Email: "x@example.com", Messages: "hi"})
	require.NoError(t, err)

	summary, err := reg.Summary.Site(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Products)
	assert.Equal(t, int64(2), summary.Clients)
	assert.Equal(t, int64(0), summary.Testimonials)
	assert.Equal(t, int64(1), summary.Contacts)
	assert.Equal(t, 6.0, summary.AverageApy)
	assert.Equal(t, int64(40), summary.TotalInvestors)
	assert.InDelta(t, 8.0, summary.AverageRoi, 1e-9) // mean of 12% and 4%
	assert.Equal(t, 140.0, summary.TotalEarnings)
}

func TestSiteSummaryEmptyStore(t *testing.T) {
	reg := NewRegistry(newMemStore(), nil)

	summary, err := reg.Summary.Site(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Products)
	assert.Zero(t, summary.AverageApy)
	assert.Zero(t, summary.AverageRoi)
}
