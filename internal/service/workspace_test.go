package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewWorkspace_BuildsEveryScreen(t *testing.T) {
	var ws *Workspace
	assert.NotPanics(t, func() { ws = NewWorkspace(stubRepositories()) })
	assert.NotNil(t, ws.Inventory)
	assert.NotNil(t, ws.Purchase)
	assert.NotNil(t, ws.Deposit)
	assert.NotNil(t, ws.Sessions)
	assert.NotNil(t, ws.Report)
	assert.NotNil(t, ws.Payout)
}

func TestWorkspaceStore_IsolatesWorkspaces(t *testing.T) {
	store := NewWorkspaceStore(stubRepositories(), time.Hour)
	a, b := store.Open(), store.Open()

	store.Get(a).Inventory.SetSearchText("azul")
	assert.Equal(t, "azul", store.Get(a).Inventory.SearchText())
	assert.Equal(t, "", store.Get(b).Inventory.SearchText())
	assert.Same(t, store.Get(a), store.Get(a))
}

func TestWorkspaceStore_PurgesIdleWorkspaces(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store := NewWorkspaceStore(stubRepositories(), 30*time.Minute)
	store.now = func() time.Time { return now }

	idle := store.Open()
	now = now.Add(20 * time.Minute)
	active := store.Open()
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, store.Purge())
	assert.Equal(t, 1, store.Len())
	_ = store.Get(active)

	// A purged workspace comes back empty while its token is still valid.
	ws := store.Get(idle)
	assert.NotNil(t, ws)
	assert.Equal(t, 2, store.Len())
}

func TestWorkspaceStore_Close(t *testing.T) {
	store := NewWorkspaceStore(stubRepositories(), time.Hour)
	id := store.Open()
	store.Close(id)
	store.Close(uuid.New())
	assert.Zero(t, store.Len())
}

func TestMenuFor(t *testing.T) {
	assert.Len(t, MenuFor("user"), 2)

	admin := MenuFor(RoleAdmin)
	assert.Len(t, admin, 3)
	assert.Equal(t, "Admin", admin[2].Title)
	assert.Contains(t, admin[2].Items, "Rembourser Vendeur")
	assert.Contains(t, admin[0].Items, "Deposer Jeu")
}
