package store_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrips(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	b := board.NewStandardBoard()
	b.SetTurn(board.Black)

	id, err := s.Save("mid-game", b)
	require.NoError(t, err)

	loaded, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, board.Black, loaded.Turn())
	assert.Len(t, loaded.Pieces(), len(b.Pieces()))
}

func TestSaveLoadSaveYieldsIdenticalPieceLists(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	b := board.NewStandardBoard()
	id, err := s.Save("round-trip", b)
	require.NoError(t, err)

	loaded, err := s.Load(id)
	require.NoError(t, err)

	first := store.ToSnapshot(b, "round-trip", store.TypeUserSave)
	second := store.ToSnapshot(loaded, "round-trip", store.TypeUserSave)
	assert.Equal(t, first.Pieces, second.Pieces)
	assert.Equal(t, first.Turn, second.Turn)
}

func TestSnapshotWireFormat(t *testing.T) {
	b := board.NewEmptyBoard()
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(5, 1)))

	data, err := json.Marshal(store.ToSnapshot(b, "endgame", store.TypeSystemPreset))
	require.NoError(t, err)

	js := string(data)
	assert.Contains(t, js, `"color":"white"`)
	assert.Contains(t, js, `"kind":"king"`)
	assert.Contains(t, js, `"placements":[[5,1,1]]`)
	assert.Contains(t, js, `"type":0`)
	assert.Contains(t, js, `"turn":false`)
}

func TestSnapshotTruncatesLongNames(t *testing.T) {
	b := board.NewEmptyBoard()
	snap := store.ToSnapshot(b, strings.Repeat("x", 80), store.TypeUserSave)
	assert.Len(t, snap.Name, 50)
}

func TestLoadMissingIDFails(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(999)
	assert.Error(t, err)
}

func TestSaveAssignsIncrementingIDs(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	b := board.NewStandardBoard()
	id1, err := s.Save("a", b)
	require.NoError(t, err)
	id2, err := s.Save("b", b)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
