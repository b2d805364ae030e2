package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
)

func TestLoad_MissingSlot(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background(), snapshot.SlotServices)
	assert.ErrorIs(t, err, snapshot.ErrSlotNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	payload := []byte(`[{"id":"1","name":"Corte Social"}]`)

	require.NoError(t, store.Save(context.Background(), snapshot.SlotServices, payload))

	got, err := store.Load(context.Background(), snapshot.SlotServices)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// один файл на слот, без временных остатков
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, snapshot.SlotServices+".json", entries[0].Name())
}

func TestSave_OverwritesSlot(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, snapshot.SlotAppointments, []byte(`[]`)))
	require.NoError(t, store.Save(ctx, snapshot.SlotAppointments, []byte(`[{"id":"a1"}]`)))

	got, err := store.Load(ctx, snapshot.SlotAppointments)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a1"}]`), got)
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "snapshots")
	store := NewStore(dir)

	require.NoError(t, store.Save(context.Background(), snapshot.SlotServices, []byte(`[]`)))

	_, err := os.Stat(filepath.Join(dir, snapshot.SlotServices+".json"))
	assert.NoError(t, err)
}

func TestSlotsAreIndependent(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, snapshot.SlotServices, []byte(`["services"]`)))
	require.NoError(t, store.Save(ctx, snapshot.SlotAppointments, []byte(`["appointments"]`)))

	services, err := store.Load(ctx, snapshot.SlotServices)
	require.NoError(t, err)
	appointments, err := store.Load(ctx, snapshot.SlotAppointments)
	require.NoError(t, err)
	assert.NotEqual(t, services, appointments)
}
