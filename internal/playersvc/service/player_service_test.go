package service

import (
	"context"
	"testing"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/avvvet/playhub-services/internal/playersvc/models"
	"github.com/avvvet/playhub-services/internal/playersvc/store"
	"github.com/avvvet/playhub-services/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *PlayerService {
	return NewPlayerService(store.NewPlayerStore(testutil.OpenDB(t, &models.Player{})))
}

func ptr[T any](v T) *T { return &v }

func TestRegisterThenGet(t *testing.T) {
	svc := newService(t)

	p, err := svc.RegisterPlayer(context.Background(), RegisterPlayerRequest{Name: "ann", GameID: ptr(int64(4))})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Name)
	assert.Equal(t, int64(4), *got.GameID)
}

func TestRegisterWithoutGame(t *testing.T) {
	svc := newService(t)

	p, err := svc.RegisterPlayer(context.Background(), RegisterPlayerRequest{Name: ""})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Nil(t, p.GameID)
}

func TestDeletePlayer(t *testing.T) {
	svc := newService(t)
	p, err := svc.RegisterPlayer(context.Background(), RegisterPlayerRequest{Name: "ann"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlayer(context.Background(), p.ID))
	assert.ErrorIs(t, svc.DeletePlayer(context.Background(), p.ID), apperr.ErrNotFound)
}

func TestUpdatePlayerGame(t *testing.T) {
	svc := newService(t)
	p, err := svc.RegisterPlayer(context.Background(), RegisterPlayerRequest{Name: "ann"})
	require.NoError(t, err)

	updated, err := svc.UpdatePlayerGame(context.Background(), p.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), *updated.GameID)

	_, err = svc.UpdatePlayerGame(context.Background(), p.ID+1, 12)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveGameForPlayers(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	a, _ := svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "ann", GameID: ptr(int64(7))})
	b, _ := svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "bob", GameID: ptr(int64(7))})
	c, _ := svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "cid", GameID: ptr(int64(8))})

	require.NoError(t, svc.RemoveGameForPlayers(ctx, 7))
	require.NoError(t, svc.RemoveGameForPlayers(ctx, 7))

	for _, id := range []int64{a.ID, b.ID} {
		got, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.GameID)
	}
	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), *got.GameID)
}

func TestFindByName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "ann", GameID: ptr(int64(1))})
	svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "ann"})
	svc.RegisterPlayer(ctx, RegisterPlayerRequest{Name: "bob", GameID: ptr(int64(2))})

	players, err := svc.FindByName(ctx, "ann")
	require.NoError(t, err)
	assert.Len(t, players, 2)
}
