package game

// Static board geometry for the Parqués board: a 68-cell circular track
// shared by all players, plus a private 8-cell goal lane per color. Lane
// positions are encoded 68-75 regardless of color; 75 is the crowned cell.
// Everything in this file is pure and stateless, the dynamic state lives in
// GameState.

const (
	TrackSize = 68 // Cells on the shared circular track (0-67)
	LaneSize  = 8  // Cells in each color's goal lane
	LaneStart = 68 // First lane position
	Crowned   = 75 // Final lane position, piece is done
	Jailed    = -1 // Position of a piece in jail

	PiecesPerPlayer = 4
	MaxPlayers      = 4
	MinPlayers      = 2

	DiceMin = 1
	DiceMax = 6
)

// Color identifies a player's side and fixes its track geometry.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Green  Color = "green"
)

// Colors lists all playable colors in canonical order.
var Colors = []Color{Red, Blue, Yellow, Green}

// startCells maps each color to the track cell where its pieces leave jail.
var startCells = map[Color]int{
	Red:    0,
	Blue:   17,
	Yellow: 34,
	Green:  51,
}

// safeCells is the fixed set of track cells where no capture may occur: the
// four start cells, the four lane entries, and four intermediate stars.
var safeCells = map[int]bool{
	0: true, 5: true, 12: true, 17: true,
	22: true, 29: true, 34: true, 39: true,
	46: true, 51: true, 56: true, 63: true,
}

// StartCell returns the track cell where pieces of the color enter play.
func StartCell(c Color) int {
	return startCells[c]
}

// LaneEntry returns the track cell just before the color's goal lane. A piece
// whose move carries it past this cell leaves the track and enters the lane.
// The entry sits five cells behind the color's start.
func LaneEntry(c Color) int {
	return (startCells[c] + TrackSize - 5) % TrackSize
}

// Advance steps a track position forward on the circular track.
func Advance(pos, steps int) int {
	return (pos + steps) % TrackSize
}

// StepsBetween returns the number of forward steps from one track cell to
// another, accounting for wraparound.
func StepsBetween(from, to int) int {
	return (to - from + TrackSize) % TrackSize
}

// IsSafeCell reports whether a track cell is capture-proof.
func IsSafeCell(pos int) bool {
	return safeCells[pos]
}

// IsTrack reports whether a position is on the shared circular track.
func IsTrack(pos int) bool {
	return pos >= 0 && pos < TrackSize
}

// IsLane reports whether a position is inside a goal lane (crowned included).
func IsLane(pos int) bool {
	return pos >= LaneStart && pos <= Crowned
}

// LanePosition converts a 1-based lane offset to a board position. Offsets
// outside 1..LaneSize have no board position and return false.
func LanePosition(offset int) (int, bool) {
	if offset < 1 || offset > LaneSize {
		return 0, false
	}
	return LaneStart + offset - 1, true
}
