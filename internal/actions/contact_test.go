package actions

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/domain"
)

func TestContactSubmitStoresAndPublishes(t *testing.T) {
	store := newMemStore()
	bus := EventBus.New()
	acts := NewContactActions(store, bus)

	var published *domain.Contact
	require.NoError(t, bus.Subscribe(ContactCreatedTopic, func(c *domain.Contact) {
		published = c
	}))

	created, err := acts.Submit(context.Background(), ContactInput{
		Name: "Dave", Email: "dave@example.com", Messages: "How do I start?",
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, created.ID, published.ID)

	rows, total, err := acts.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "dave@example.com", rows[0].Email)
}

func TestContactSubmitRejectsEmptyFields(t *testing.T) {
	store := newMemStore()
	acts := NewContactActions(store, nil)

	_, err := acts.Submit(context.Background(), ContactInput{Name: "Dave"})
	require.Error(t, err)
	assert.Equal(t, 0, store.Calls())
}

func TestContactDeleteMissingIDLeavesInboxUnchanged(t *testing.T) {
	store := newMemStore()
	acts := NewContactActions(store, nil)

	created, err := acts.Submit(context.Background(), ContactInput{
		Name: "Dave", Email: "dave@example.com", Messages: "Hello",
	})
	require.NoError(t, err)

	err = acts.AdminDelete(context.Background(), created.ID+1)
	require.ErrorIs(t, err, docstore.ErrNotFound)

	rows, total, err := acts.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
}

func TestContactCreateRequiresSession(t *testing.T) {
	store := newMemStore()
	acts := NewContactActions(store, nil)

	_, err := acts.Create(context.Background(), nil, ContactInput{Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, 0, store.Calls())
}
