//go:generate go run go.uber.org/mock/mockgen -source=call_repository.go -destination=../../mocks/mock_call_repository.go -package=mocks
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"partyline/domain/call"
	pErrors "partyline/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	callPrefix        = "call:"
	callCreatedPrefix = "idx:call:created:"

	maxUpdateAttempts = 20
	updateRetryDelay  = time.Millisecond
)

type ICallRepository interface {
	Save(c call.Call) error
	Get(id call.ID) (call.Call, error)
	Update(id call.ID, fn func(c *call.Call) error) (call.Call, error)
	List(limit int) ([]call.Call, error)
}

type CallRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCallRepository(db *badger.DB, log *slog.Logger) *CallRepository {
	return &CallRepository{db: db, log: log}
}

// Save writes the call under "call:{id}" and a creation index entry
// "idx:call:created:{unix_nano_padded}:{id}" so that List can walk calls from
// the newest to the oldest without decoding every value.
func (r *CallRepository) Save(c call.Call) error {
	value, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal call %s: %w", c.ID, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(callKey(c.ID), value); err != nil {
			return err
		}
		return txn.Set(createdKey(c), nil)
	})
}

func (r *CallRepository) Get(id call.ID) (call.Call, error) {
	var c call.Call
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = readCall(txn, id)
		return err
	})
	return c, err
}

// Update loads, modifies and stores a call inside a single transaction.
// Nothing is written when fn returns an error. A transaction losing a race
// against another update of the same call is replayed, so fn may run more
// than once and must only depend on the call it is given.
func (r *CallRepository) Update(id call.ID, fn func(c *call.Call) error) (call.Call, error) {
	var (
		updated call.Call
		err     error
	)
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err = r.db.Update(func(txn *badger.Txn) error {
			c, err := readCall(txn, id)
			if err != nil {
				return err
			}
			if err = fn(&c); err != nil {
				return err
			}
			value, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("marshal call %s: %w", id, err)
			}
			updated = c
			return txn.Set(callKey(id), value)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return updated, err
		}
		r.log.Debug("Concurrent update on call, retrying", "call_id", id, "attempt", attempt)
		time.Sleep(time.Duration(attempt) * updateRetryDelay)
	}
	r.log.Warn("Concurrent update on call, giving up", "call_id", id, "attempts", maxUpdateAttempts)
	return call.Call{}, err
}

// List returns calls from the most recent one. A limit <= 0 returns all.
func (r *CallRepository) List(limit int) ([]call.Call, error) {
	var calls []call.Call
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(callCreatedPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		// Start from the highest possible timestamp of the prefix
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(calls) == limit {
				break
			}
			id := callIDFromIndex(it.Item().KeyCopy(nil))
			c, err := readCall(txn, id)
			if err != nil {
				if errors.Is(err, pErrors.ErrCallNotFound) {
					r.log.Debug("Dangling call index entry", "call_id", id)
					continue
				}
				return err
			}
			calls = append(calls, c)
		}
		return nil
	})
	return calls, err
}

func readCall(txn *badger.Txn, id call.ID) (call.Call, error) {
	var c call.Call
	item, err := txn.Get(callKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return c, fmt.Errorf("%w: %s", pErrors.ErrCallNotFound, id)
	}
	if err != nil {
		return c, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &c)
	})
	return c, err
}

func callKey(id call.ID) []byte {
	return []byte(callPrefix + string(id))
}

func createdKey(c call.Call) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", callCreatedPrefix, c.CreatedAt.UnixNano(), c.ID))
}

// callIDFromIndex strips "idx:call:created:" and the 19 digit timestamp plus
// its separator.
func callIDFromIndex(key []byte) call.ID {
	rest := key[len(callCreatedPrefix):]
	if len(rest) <= 20 {
		return ""
	}
	return call.ID(rest[20:])
}
