// Package sheet builds rectangular mass-spring sheet topologies.
//
// The sheet rests on the x-y plane with particle 0 at the origin and
// extends along +x (columns) and -y (rows):
//
//	0  -  1  -  2  -  3
//	|  \  |  \  |  \  |
//	4  -  5  -  6  -  7
//	|  \  |  \  |  \  |
//	8  -  9  -  10 - 11
//
// Particles and springs are identified by position in their slices, so the
// numbering below is a stable contract.
package sheet

import (
	"errors"
	"fmt"

	"github.com/Faultbox/springsheet/pkg/math"
)

// Sheet errors.
var (
	ErrInvalidGrid    = errors.New("invalid sheet grid")
	ErrEdgeOutOfRange = errors.New("spring references particle out of range")
)

// Grid describes a rectangular sheet.
type Grid struct {
	SpringsRow    int     // springs along a column (vertical count)
	SpringsCol    int     // springs along a row (horizontal count)
	RestLengthRow float32 // rest length of vertical springs
	RestLengthCol float32 // rest length of horizontal springs
	Diagonal      bool    // add top-left to bottom-right diagonals
}

// Edge connects particles A and B.
type Edge struct {
	A, B int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.A, e.B)
}

// Kind classifies a spring by the block it belongs to.
type Kind int

// Spring kinds, in block order.
const (
	Horizontal Kind = iota
	Vertical
	Diagonal
)

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mesh holds the generated topology.
type Mesh struct {
	Grid          Grid
	Edges         []Edge
	RestPositions []math.Vec3 // row-major, local frame
	RestLengths   []float32   // aligned with Edges
}

// Bounds holds the axis-aligned bounding box of the rest positions.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}
