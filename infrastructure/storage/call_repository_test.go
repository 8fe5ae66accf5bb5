package storage

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
	pErrors "partyline/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newCall(id string, at time.Time, personas ...persona.ID) call.Call {
	return call.Call{
		ID:        call.ID(id),
		URL:       "https://example.com",
		Personas:  personas,
		Content:   "summary",
		Language:  "en",
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestCallRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCallRepository(db, slog.Default())

	// Given a stored call
	at := time.Now().UTC()
	c := newCall("call-1", at, persona.Nerd, persona.Chef)
	req.NoError(repo.Save(c))

	// When it is read back
	fetched, err := repo.Get("call-1")

	// Then it is identical
	req.NoError(err)
	req.Equal(c.ID, fetched.ID)
	req.Equal(c.Personas, fetched.Personas)
	req.True(c.CreatedAt.Equal(fetched.CreatedAt))
}

func TestCallRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCallRepository(db, slog.Default())

	_, err := repo.Get("call-404")

	req.ErrorIs(err, pErrors.ErrCallNotFound)
}

func TestCallRepository_Update(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCallRepository(db, slog.Default())
	at := time.Now().UTC()
	req.NoError(repo.Save(newCall("call-1", at, persona.Nerd)))

	// When a persona joins
	updated, err := repo.Update("call-1", func(c *call.Call) error {
		c.Join(persona.Dancer, at.Add(time.Second))
		return nil
	})
	req.NoError(err)
	req.Equal([]persona.ID{persona.Nerd, persona.Dancer}, updated.Personas)

	// Then the change is persisted
	fetched, err := repo.Get("call-1")
	req.NoError(err)
	req.Equal(updated.Personas, fetched.Personas)

	// And a failing update writes nothing
	_, err = repo.Update("call-1", func(c *call.Call) error {
		c.Leave(persona.Nerd, at)
		return fmt.Errorf("nope")
	})
	req.Error(err)
	fetched, err = repo.Get("call-1")
	req.NoError(err)
	req.Equal([]persona.ID{persona.Nerd, persona.Dancer}, fetched.Personas)

	// And unknown calls are reported
	_, err = repo.Update("call-404", func(c *call.Call) error { return nil })
	req.ErrorIs(err, pErrors.ErrCallNotFound)
}

func TestCallRepository_Concurrent_Updates(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCallRepository(db, slog.Default())
	at := time.Now().UTC()
	req.NoError(repo.Save(newCall("call-1", at, persona.Nerd)))

	// Given four writers, each joining and leaving with its own persona
	const rounds = 50
	var failed atomic.Int32
	var wg sync.WaitGroup
	for _, id := range []persona.ID{persona.CoolDude, persona.Singer, persona.Chef, persona.Dancer} {
		wg.Add(1)
		go func(id persona.ID) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				join := i%2 == 0
				_, err := repo.Update("call-1", func(c *call.Call) error {
					if join {
						c.Join(id, at)
					} else {
						c.Leave(id, at)
					}
					return nil
				})
				if err != nil {
					failed.Add(1)
				}
			}
		}(id)
	}
	wg.Wait()

	// Then no update is lost to a conflict and every writer ended with a leave
	req.Zero(failed.Load())
	c, err := repo.Get("call-1")
	req.NoError(err)
	req.Equal([]persona.ID{persona.Nerd}, c.Personas)
}

func TestCallRepository_List_Newest_First_With_Limit(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCallRepository(db, slog.Default())
	at := time.Now().UTC()

	// Given three calls created one minute apart
	for i := 0; i < 3; i++ {
		req.NoError(repo.Save(newCall(fmt.Sprintf("call-%d", i), at.Add(time.Duration(i)*time.Minute), persona.Nerd)))
	}

	// When all calls are listed
	calls, err := repo.List(0)
	req.NoError(err)
	req.Len(calls, 3)
	req.Equal(call.ID("call-2"), calls[0].ID)
	req.Equal(call.ID("call-0"), calls[2].ID)

	// When a limit is given
	calls, err = repo.List(2)
	req.NoError(err)
	req.Len(calls, 2)
	req.Equal(call.ID("call-1"), calls[1].ID)
}
