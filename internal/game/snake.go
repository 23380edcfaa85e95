package game

// Cell is one grid coordinate, 0-indexed from the top-left corner of the board.
type Cell struct {
	X, Y int
}

// Direction is a unit movement delta applied to the head once per tick.
type Direction struct {
	DX, DY int
}

// The four movement directions.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsOpposite reports whether other points in the exact opposite direction.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// isSnakeAt reports whether any body segment occupies the given cell.
func (g *Game) isSnakeAt(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}
