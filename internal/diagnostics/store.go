package diagnostics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/kestrelgames/chesskernel/internal/engine"
)

// Storage keys
const (
	keyTraceCounter = "trace_counter"
	keyTracePrefix  = "trace:"
)

// EventSnapshot is a flattened, JSON-friendly record of one event from an
// aborted resolution's tail. The kernel's Event values are not
// serializable as-is (they carry live board.Piece/board.Tile
// references); a snapshot keeps only what a postmortem needs.
type EventSnapshot struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Trace records the tail of an aborted resolution.
type Trace struct {
	RecordedAt   time.Time       `json:"recorded_at"`
	RecentEvents []EventSnapshot `json:"recent_events"`
}

// Store wraps BadgerDB to persist resolution-abort traces. It implements
// engine.DiagnosticSink, so it can be handed directly to
// engine.NewFacade in place of the default LogSink.
type Store struct {
	db *badger.DB
}

// NewStore opens (creating if necessary) the trace database under the
// platform data directory.
func NewStore() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// OnAborted implements engine.DiagnosticSink: it snapshots recentEvents
// and persists them as a new Trace.
func (s *Store) OnAborted(recentEvents []engine.Event) {
	snapshots := make([]EventSnapshot, len(recentEvents))
	for i, e := range recentEvents {
		snapshots[i] = EventSnapshot{Kind: string(e.Kind()), Description: e.Description()}
	}
	trace := Trace{RecordedAt: time.Now(), RecentEvents: snapshots}
	if err := s.saveTrace(trace); err != nil {
		// The diagnostic path is best-effort; a failure to persist a trace
		// must not propagate back into resolution.
		return
	}
}

func (s *Store) saveTrace(trace Trace) error {
	data, err := json.Marshal(trace)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		id, err := s.nextID(txn)
		if err != nil {
			return err
		}
		// Zero-padded so that key order matches insertion order.
		return txn.Set([]byte(fmt.Sprintf("%s%020d", keyTracePrefix, id)), data)
	})
}

func (s *Store) nextID(txn *badger.Txn) (uint64, error) {
	var next uint64

	item, err := txn.Get([]byte(keyTraceCounter))
	switch {
	case err == badger.ErrKeyNotFound:
		next = 0
	case err != nil:
		return 0, err
	default:
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &next)
		}); err != nil {
			return 0, err
		}
	}

	encoded, err := json.Marshal(next + 1)
	if err != nil {
		return 0, err
	}
	if err := txn.Set([]byte(keyTraceCounter), encoded); err != nil {
		return 0, err
	}

	return next, nil
}

// ListTraces returns every persisted trace, in insertion order.
func (s *Store) ListTraces() ([]Trace, error) {
	var traces []Trace

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyTracePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var trace Trace
				if err := json.Unmarshal(val, &trace); err != nil {
					return err
				}
				traces = append(traces, trace)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return traces, err
}
