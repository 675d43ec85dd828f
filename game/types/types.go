package types

// Point is a single grid cell. Two points are equal when both
// coordinates match.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is a cardinal movement direction. The zero value DirNone
// means "no intent" and is never adopted by the engine.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Vector returns the unit step for one move in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "None"
	}
}

// Grid is a toroidal board. Valid coordinates cover the closed square
// [-Size, Size] on both axes; stepping past an edge re-enters on the
// opposite one.
type Grid struct {
	Size int
}

// Wrap maps p back into the board.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Size), Y: wrap(p.Y, g.Size)}
}

// Contains reports whether p lies within the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= -g.Size && p.X <= g.Size && p.Y >= -g.Size && p.Y <= g.Size
}

// Span is the number of cells along one axis.
func (g Grid) Span() int {
	return 2*g.Size + 1
}

func wrap(v, size int) int {
	span := 2*size + 1
	v = (v + size) % span
	if v < 0 {
		v += span
	}
	return v - size
}

// PowerUpKind distinguishes the transient pickups.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpPoints

	PowerUpKindCount // must stay last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "Speed"
	case PowerUpPoints:
		return "Points"
	default:
		return "Unknown"
	}
}

// Game constants
const (
	InitialLength       = 3    // starting snake segments
	FoodScore           = 10   // points per food
	PointsBonus         = 50   // points power-up reward
	LevelStep           = 50   // score per level crossing
	SpeedFactor         = 0.85 // step interval multiplier per speed power-up
	InitialStepInterval = 0.20 // seconds between ticks at level 1
	MinStepInterval     = 0.02 // floor for speed stacking
	PowerUpLifetime     = 5.0  // seconds before an uneaten power-up vanishes
	PowerUpChance       = 0.2  // spawn probability on each food eaten
	MaxPlaceAttempts    = 1000 // retry budget for random placement
)
