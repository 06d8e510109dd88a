package entity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("IsInBounds accepts only the 10x10 grid", func(t *testing.T) {
		board := &Board{}

		assert.True(t, board.IsInBounds(Position{X: 0, Y: 0}))
		assert.True(t, board.IsInBounds(Position{X: 9, Y: 9}))
		assert.False(t, board.IsInBounds(Position{X: 10, Y: 0}))
		assert.False(t, board.IsInBounds(Position{X: 0, Y: -1}))
	})

	t.Run("Set and Get address cells as x column, y row", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: a monster is set at column 2, row 7
		board.Set(Position{X: 2, Y: 7}, &Creature{Owner: "a", Kind: KindGhost})

		// Then: it is stored in row 7
		require.NotNil(t, board[7][2])
		assert.Equal(t, KindGhost, board.Get(Position{X: 2, Y: 7}).Kind)
		assert.True(t, board.IsEmpty(Position{X: 7, Y: 2}))
	})

	t.Run("CountOwned scans the whole board", func(t *testing.T) {
		board := &Board{}
		board.Set(Position{X: 0, Y: 0}, &Creature{Owner: "a", Kind: KindGhost})
		board.Set(Position{X: 9, Y: 9}, &Creature{Owner: "a", Kind: KindVampire})
		board.Set(Position{X: 5, Y: 5}, &Creature{Owner: "b", Kind: KindVampire})

		assert.Equal(t, 2, board.CountOwned("a"))
		assert.Equal(t, 1, board.CountOwned("b"))
		assert.Equal(t, 0, board.CountOwned("c"))
	})

	t.Run("Rows is a copy", func(t *testing.T) {
		board := &Board{}
		board.Set(Position{X: 1, Y: 1}, &Creature{Owner: "a", Kind: KindGhost})

		rows := board.Rows()
		rows[1][1].Owner = "b"

		require.Len(t, rows, BoardSize)
		assert.Equal(t, "a", board.Get(Position{X: 1, Y: 1}).Owner)
	})
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("zombie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown monster kind")
}

func TestGame_Reset(t *testing.T) {
	// Given: a game with monsters, counters and a moved turn pointer
	game := NewGame("a")
	game.AddPlayer("b")
	game.Board.Set(Position{X: 3, Y: 3}, &Creature{Owner: "a", Kind: KindGhost})
	game.Players[0].PlacedCount, game.Players[0].Score = 1, 1
	game.LastPlaced = &Position{X: 3, Y: 3}
	game.Turn = "b"

	// When: resetting the game
	game.Reset()

	// Then: the board is empty, counters are zero, the roster is kept and the first player moves
	expected := &Game{
		Players: []*PlayerSlot{{ID: "a"}, {ID: "b"}},
		Turn:    "a",
	}
	require.Equal(t, expected, game)
}

func TestGame_Snapshot(t *testing.T) {
	// Given: a two player game
	game := NewGame("a")
	game.AddPlayer("b")
	game.Board.Set(Position{X: 0, Y: 0}, &Creature{Owner: "a", Kind: KindGhost})
	game.Board.Set(Position{X: 0, Y: 1}, &Creature{Owner: "a", Kind: KindWerewolf})
	game.Players[0].Score = 3
	game.LastPlaced = &Position{X: 0, Y: 1}

	// When: taking a snapshot
	snapshot := game.Snapshot()

	// Then: it carries the roster, scores and derived monster counts
	assert.Equal(t, []PlayerView{{ID: "a"}, {ID: "b"}}, snapshot.Players)
	assert.Equal(t, "a", snapshot.Turn)
	assert.Equal(t, map[string]int{"a": 3, "b": 0}, snapshot.Scores)
	assert.Equal(t, map[string]int{"a": 2, "b": 0}, snapshot.MonstersCount)
	assert.Equal(t, &Position{X: 0, Y: 1}, snapshot.LastPlaced)
	assert.Equal(t, KindWerewolf, snapshot.Board[1][0].Kind)
}

type stubConn struct {
	id string
}

func (that *stubConn) ID() string {
	return that.id
}

func (that *stubConn) Send(context.Context, *Message) error {
	return nil
}

func TestRoom_Connections(t *testing.T) {
	t.Run("Recipients follow join order", func(t *testing.T) {
		room := NewRoom("r1", "a")
		room.Game.AddPlayer("b")
		room.Attach("b", &stubConn{id: "cb"})
		room.Attach("a", &stubConn{id: "ca"})

		recipients := room.Recipients()

		require.Len(t, recipients, 2)
		assert.Equal(t, "ca", recipients[0].ID())
		assert.Equal(t, "cb", recipients[1].ID())
	})

	t.Run("Detach ignores a stale connection", func(t *testing.T) {
		// Given: player a reconnected with a new connection
		room := NewRoom("r1", "a")
		room.Attach("a", &stubConn{id: "old"})
		room.Attach("a", &stubConn{id: "new"})

		// When: the old connection goes away
		detached := room.Detach("a", "old")

		// Then: the live handle is kept
		assert.False(t, detached)
		conn, ok := room.Conn("a")
		require.True(t, ok)
		assert.Equal(t, "new", conn.ID())
	})
}
