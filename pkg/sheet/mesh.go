package sheet

import (
	"fmt"

	"github.com/Faultbox/springsheet/pkg/math"
)

// Generate builds the rest positions and springs of a rectangular sheet.
//
// Springs come in three contiguous blocks: horizontal, then vertical, then
// (if g.Diagonal) diagonal. Each block is ordered row-major by the
// top-left endpoint.
func Generate(g Grid) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	rows, cols := g.Dims()
	m := &Mesh{
		Grid:          g,
		RestPositions: make([]math.Vec3, 0, rows*cols),
		Edges:         make([]Edge, 0, g.NumSprings()),
		RestLengths:   make([]float32, 0, g.NumSprings()),
	}

	for r := range rows {
		for c := range cols {
			m.RestPositions = append(m.RestPositions, math.Vec3{
				X: float32(c) * g.RestLengthCol,
				Y: -float32(r) * g.RestLengthRow,
			})
		}
	}

	// Horizontal: every particle row, every spring column.
	for r := range rows {
		for c := range g.SpringsCol {
			m.add(g.ParticleIndex(r, c), g.ParticleIndex(r, c+1), g.RestLengthCol)
		}
	}

	// Vertical: every spring row, every particle column.
	for r := range g.SpringsRow {
		for c := range cols {
			m.add(g.ParticleIndex(r, c), g.ParticleIndex(r+1, c), g.RestLengthRow)
		}
	}

	if g.Diagonal {
		l0 := g.DiagonalRestLength()
		for r := range g.SpringsRow {
			for c := range g.SpringsCol {
				m.add(g.ParticleIndex(r, c), g.ParticleIndex(r+1, c+1), l0)
			}
		}
	}

	return m, nil
}

func (m *Mesh) add(a, b int, l0 float32) {
	m.Edges = append(m.Edges, Edge{A: a, B: b})
	m.RestLengths = append(m.RestLengths, l0)
}

// NumParticles returns the number of particles.
func (m *Mesh) NumParticles() int {
	return len(m.RestPositions)
}

// NumSprings returns the number of springs.
func (m *Mesh) NumSprings() int {
	return len(m.Edges)
}

// Kind returns the block spring i belongs to.
func (m *Mesh) Kind(i int) Kind {
	rows, cols := m.Grid.Dims()
	nh := rows * m.Grid.SpringsCol
	nv := m.Grid.SpringsRow * cols
	switch {
	case i < nh:
		return Horizontal
	case i < nh+nv:
		return Vertical
	default:
		return Diagonal
	}
}

// Bounds returns the bounding box of the rest positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.RestPositions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.RestPositions[0], Max: m.RestPositions[0]}
	for _, p := range m.RestPositions[1:] {
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}

// ValidateEdges checks that every edge references a particle in
// [0, numParticles).
func ValidateEdges(edges []Edge, numParticles int) error {
	for i, e := range edges {
		if e.A < 0 || e.A >= numParticles || e.B < 0 || e.B >= numParticles {
			return fmt.Errorf("%w: spring %d %s with %d particles", ErrEdgeOutOfRange, i, e, numParticles)
		}
	}
	return nil
}
