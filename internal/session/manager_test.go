package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/track-search/internal/domain"
)

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager(time.Hour)

	s := manager.Create()
	require.NotNil(t, s)
	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.State())

	got, err := manager.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, manager.Delete(s.ID))
	_, err = manager.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, manager.Delete(s.ID), ErrNotFound)
}

func TestGetOrCreate(t *testing.T) {
	manager := NewManager(time.Hour)

	created := manager.GetOrCreate("")
	assert.Equal(t, 1, manager.Len())

	assert.Same(t, created, manager.GetOrCreate(created.ID))
	assert.Equal(t, 1, manager.Len())

	other := manager.GetOrCreate("unknown-id")
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, 2, manager.Len())
}

func TestList(t *testing.T) {
	manager := NewManager(time.Hour)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	manager.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	var ids []string
	for i := 0; i < 12; i++ {
		ids = append(ids, manager.Create().ID)
	}

	first, err := manager.Get(ids[0])
	require.NoError(t, err)
	_, ticket := first.State().Begin(context.Background())
	first.State().SetQuery("q")
	first.State().Commit(ticket, []domain.Track{{ID: 1}})

	page := manager.List(1, 5)
	assert.Equal(t, 12, page.TotalSessions)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Sessions, 5)
	assert.Equal(t, ids[0], page.Sessions[0].ID)
	assert.Equal(t, "q", page.Sessions[0].LastQuery)
	assert.Equal(t, 1, page.Sessions[0].ResultCount)

	last := manager.List(3, 5)
	require.Len(t, last.Sessions, 2)
	assert.Equal(t, ids[11], last.Sessions[1].ID)

	beyond := manager.List(10, 5)
	assert.Empty(t, beyond.Sessions)
	assert.NotNil(t, beyond.Sessions)

	defaults := manager.List(0, 1000)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, DefaultPageSize, defaults.PageSize)
}

func TestCleanupExpired(t *testing.T) {
	manager := NewManager(time.Hour)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return now }

	stale := manager.Create()
	fresh := manager.Create()

	now = now.Add(2 * time.Hour)
	assert.Same(t, fresh, manager.GetOrCreate(fresh.ID))

	assert.Equal(t, 1, manager.cleanupExpired())

	_, err := manager.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = manager.Get(fresh.ID)
	assert.NoError(t, err)
}
