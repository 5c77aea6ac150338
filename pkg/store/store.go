// Package store persists and reloads board snapshots under an opaque,
// caller-visible ID, backed by an embedded BadgerDB key/value store with
// JSON-encoded values.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/qerr"
)

// Endgame record types.
const (
	TypeSystemPreset = 0
	TypeUserSave     = 1
)

// maxNameLen bounds the persisted endgame name.
const maxNameLen = 50

// Snapshot is the serializable form of a board, independent of in-memory
// Piece identity (Go pointers do not survive a JSON round trip). Turn is
// false for White to move, true for Black.
type Snapshot struct {
	Name   string        `json:"name"`
	Type   int           `json:"type"`
	Turn   bool          `json:"turn"`
	Pieces []PieceRecord `json:"pieces"`
}

// PieceRecord is one piece's color, kind, and placement list. Placements are
// [col, row, probability] triples; color and kind use their lowercase names.
type PieceRecord struct {
	Color      string       `json:"color"`
	Kind       string       `json:"kind"`
	Placements [][3]float64 `json:"placements"`
}

// ToSnapshot flattens a board into its serializable form under the given
// name and record type, truncating the name to its persisted maximum.
func ToSnapshot(b *board.Board, name string, typ int) Snapshot {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	s := Snapshot{Name: name, Type: typ, Turn: b.Turn() == board.Black}
	for _, p := range b.Pieces() {
		if !p.Alive() {
			continue
		}
		pr := PieceRecord{Color: p.Color.String(), Kind: p.Kind.String()}
		for _, pl := range p.Place {
			pr.Placements = append(pr.Placements, [3]float64{float64(pl.At.Col), float64(pl.At.Row), pl.Probability})
		}
		s.Pieces = append(s.Pieces, pr)
	}
	return s
}

// ToBoard reconstructs a board from a snapshot.
func (s Snapshot) ToBoard() (*board.Board, error) {
	b := board.NewEmptyBoard()
	if s.Turn {
		b.SetTurn(board.Black)
	}
	for _, pr := range s.Pieces {
		color, ok := board.ParseColor(pr.Color)
		if !ok {
			return nil, qerr.Persistence("unknown color %q", pr.Color)
		}
		kind, ok := board.ParseKindName(pr.Kind)
		if !ok {
			return nil, qerr.Persistence("unknown kind %q", pr.Kind)
		}
		p := &board.Piece{Color: color, Kind: kind}
		for _, t := range pr.Placements {
			sq := board.NewSquare(int(t[0]), int(t[1]))
			if !sq.IsValid() {
				return nil, qerr.Persistence("placement off board: %v", t)
			}
			p.Place = append(p.Place, board.Placement{At: sq, Probability: t[2]})
		}
		b.AddPiece(p)
	}
	return b, nil
}

// Store persists and retrieves board snapshots by an opaque, monotonically
// assigned ID.
type Store interface {
	// Save persists the board under a fresh ID and returns it.
	Save(name string, b *board.Board) (int64, error)
	// Load retrieves the board previously saved under id.
	Load(id int64) (*board.Board, error)
	Close() error
}

const keyNextID = "_next_id"

// BadgerStore is a Store backed by an embedded BadgerDB instance.
type BadgerStore struct {
	db *badger.DB
}

// Open opens (creating if absent) a BadgerDB store at dir.
func Open(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, qerr.Persistence("open badger store at %v: %v", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) Save(name string, b *board.Board) (int64, error) {
	return s.save(ToSnapshot(b, name, TypeUserSave))
}

// SavePreset persists a system-preset endgame, the record type the shipped
// endgame library uses rather than user saves.
func (s *BadgerStore) SavePreset(name string, b *board.Board) (int64, error) {
	return s.save(ToSnapshot(b, name, TypeSystemPreset))
}

func (s *BadgerStore) save(snap Snapshot) (int64, error) {
	id, err := s.nextID()
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return 0, qerr.Persistence("marshal snapshot: %v", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(boardKey(id), data)
	})
	if err != nil {
		return 0, qerr.Persistence("write snapshot %v: %v", id, err)
	}
	return id, nil
}

func (s *BadgerStore) Load(id int64) (*board.Board, error) {
	var snap Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(boardKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, qerr.Persistence("no saved game %v", id)
	}
	if err != nil {
		return nil, qerr.Persistence("read snapshot %v: %v", id, err)
	}
	return snap.ToBoard()
}

func (s *BadgerStore) nextID() (int64, error) {
	var id int64
	err := s.db.Update(func(txn *badger.Txn) error {
		var next int64 = 1
		item, err := txn.Get([]byte(keyNextID))
		if err == nil {
			_ = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &next)
			})
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		id = next
		data, err := json.Marshal(next + 1)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyNextID), data)
	})
	if err != nil {
		return 0, qerr.Persistence("allocate save id: %v", err)
	}
	return id, nil
}

func boardKey(id int64) []byte {
	return []byte(fmt.Sprintf("board:%d", id))
}
