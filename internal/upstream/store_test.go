package upstream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szyszomat/KiedySmieciKRK/internal/ocr"
)

func TestStoreSaveImage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.SaveImage("Krakowska", "3 CA", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "schedule_Krakowska_3_CA.png", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestStoreBackupOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.SaveImage("Krakowska", "1", []byte("old"))
	require.NoError(t, err)
	path, err := store.SaveImage("Krakowska", "1", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	backups, err := os.ReadDir(filepath.Join(dir, "backup"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	backed, err := os.ReadFile(filepath.Join(dir, "backup", backups[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), backed)
}

func TestStoreRecordRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	rec := &ocr.ScheduleRecord{
		Address:     "Krakowska",
		HouseNumber: "1",
		Dates: []ocr.CollectionDate{{
			ISODate:   "2025-09-16",
			Formatted: "16.09.2025",
			Weekday:   "Tuesday",
			RawText:   "16 wrzesnia",
		}},
		Categories: map[string][]ocr.CollectionDate{
			"Garden Waste": {{ISODate: "2025-09-16"}},
		},
		TotalCollections: 1,
	}

	path, err := store.SaveRecord(rec.Address, rec.HouseNumber, rec)
	require.NoError(t, err)
	assert.Equal(t, "schedule_Krakowska_1.json", filepath.Base(path))

	loaded, err := store.LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestStoreLoadRecordErrors(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Should report a missing file", func(t *testing.T) {
		_, err := store.LoadRecord(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Should report corrupt JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := store.LoadRecord(path)
		assert.Error(t, err)
	})
}
