package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/shelfstreak/internal/database"
	"github.com/mrlokans/shelfstreak/internal/entities"
)

func setupStore(t *testing.T) (*Store, *database.Database) {
	dbPath := filepath.Join(t.TempDir(), t.Name()+".db")

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db), db
}

func TestLoad_Empty(t *testing.T) {
	store, _ := setupStore(t)

	books := store.Load()

	assert.Empty(t, books)
}

func TestLoad_MalformedDataDegradesToEmpty(t *testing.T) {
	store, db := setupStore(t)

	require.NoError(t, db.SetSetting(entities.SettingKeyLibraryBooks, "{not json"))

	assert.Empty(t, store.Load())
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	store, _ := setupStore(t)

	store.Append(entities.Book{Title: "First"})
	store.Append(entities.Book{Title: "Second"})
	store.Append(entities.Book{Title: "Third"})

	books := store.Load()
	require.Len(t, books, 3)
	assert.Equal(t, "First", books[0].Title)
	assert.Equal(t, "Second", books[1].Title)
	assert.Equal(t, "Third", books[2].Title)
}

func TestAppend_AllowsDuplicateISBN(t *testing.T) {
	store, _ := setupStore(t)

	store.Append(entities.Book{Title: "Copy 1", ISBN: "9780306406157"})
	store.Append(entities.Book{Title: "Copy 2", ISBN: "9780306406157"})

	assert.Len(t, store.Load(), 2)
}

func TestAppend_EmptyTitleGetsPlaceholder(t *testing.T) {
	store, _ := setupStore(t)

	store.Append(entities.Book{ISBN: "9780306406157"})

	books := store.Load()
	require.Len(t, books, 1)
	assert.Equal(t, "Book (9780306406157)", books[0].Title)
}

func TestLogPages_Accumulates(t *testing.T) {
	store, _ := setupStore(t)
	store.Append(entities.Book{Title: "A"})
	store.Append(entities.Book{Title: "B"})

	_, err := store.LogPages(0, 10)
	require.NoError(t, err)
	_, err = store.LogPages(1, 25)
	require.NoError(t, err)
	book, err := store.LogPages(0, 5)
	require.NoError(t, err)

	assert.Equal(t, 15, book.ReadPages)
	assert.Equal(t, 40, store.TotalPoints())
}

func TestLogPages_InvalidInputLeavesStateUnchanged(t *testing.T) {
	store, _ := setupStore(t)
	store.Append(entities.Book{Title: "A"})
	_, err := store.LogPages(0, 10)
	require.NoError(t, err)

	before := store.Load()

	_, err = store.LogPages(0, 0)
	assert.ErrorIs(t, err, ErrInvalidPages)

	_, err = store.LogPages(0, -5)
	assert.ErrorIs(t, err, ErrInvalidPages)

	_, err = store.LogPages(1, 10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = store.LogPages(-1, 10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, before, store.Load())
	assert.Equal(t, 10, store.TotalPoints())
}

func TestTotalPoints_EmptyShelf(t *testing.T) {
	store, _ := setupStore(t)

	assert.Equal(t, 0, store.TotalPoints())
}

func TestLastWriteError_NilOnHealthyStore(t *testing.T) {
	store, _ := setupStore(t)

	store.Append(entities.Book{Title: "Saved"})

	assert.NoError(t, store.LastWriteError())
}

func TestAppend_WriteFailureIsRememberedNotRaised(t *testing.T) {
	store, db := setupStore(t)
	require.NoError(t, db.Close())

	assert.NotPanics(t, func() {
		store.Append(entities.Book{Title: "Unsaved"})
	})

	assert.Error(t, store.LastWriteError())
	assert.Empty(t, store.Load())
}
