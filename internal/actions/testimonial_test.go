package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrent/chainrent/internal/domain"
)

func TestTestimonialCreateValidatesRating(t *testing.T) {
	store := newMemStore()
	acts := NewTestimonialActions(store)

	_, err := acts.Create(context.Background(), adminSession(), TestimonialInput{
		Name: "Carol", Rating: "SIX", Status: domain.TestimonialActive,
	})
	require.Error(t, err)
}

func TestTestimonialStatusPatchKeepsCreationTime(t *testing.T) {
	store := newMemStore()
	acts := NewTestimonialActions(store)

	created, err := acts.Create(context.Background(), adminSession(), TestimonialInput{
		Name: "Carol", Position: "Investor", Content: "Great yields.",
		Rating: domain.RatingFive, Status: domain.TestimonialInactive,
	})
	require.NoError(t, err)

	status := domain.TestimonialActive
	updated, err := acts.AdminUpdate(context.Background(), created.ID, TestimonialPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TestimonialActive, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Great yields.", updated.Content)
}

func TestTestimonialDeleteRequiresSession(t *testing.T) {
	store := newMemStore()
	acts := NewTestimonialActions(store)

	err := acts.Delete(context.Background(), nil, 7)
	require.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, 0, store.Calls())
}
