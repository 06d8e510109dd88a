package entity

const BoardSize = 10

// Board is a fixed BoardSize x BoardSize grid indexed as [y][x]. A nil cell is empty.
// Callers check IsInBounds before Get and Set.
type Board [BoardSize][BoardSize]*Creature

func (that *Board) IsInBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < BoardSize && pos.Y >= 0 && pos.Y < BoardSize
}

func (that *Board) Get(pos Position) *Creature {
	return that[pos.Y][pos.X]
}

func (that *Board) Set(pos Position, creature *Creature) {
	that[pos.Y][pos.X] = creature
}

func (that *Board) IsEmpty(pos Position) bool {
	return that.Get(pos) == nil
}

// CountOwned returns the number of monsters on the board owned by owner.
func (that *Board) CountOwned(owner string) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != nil && cell.Owner == owner {
				count++
			}
		}
	}

	return count
}

func (that *Board) Clear() {
	*that = Board{}
}

// Rows returns a deep copy of the grid suitable for serialization.
func (that *Board) Rows() [][]*Creature {
	rows := make([][]*Creature, BoardSize)
	for y, row := range that {
		rows[y] = make([]*Creature, BoardSize)
		for x, cell := range row {
			if cell != nil {
				creature := *cell
				rows[y][x] = &creature
			}
		}
	}

	return rows
}
