package sheet

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smath "github.com/Faultbox/springsheet/pkg/math"
)

func unitGrid(rows, cols int, diagonal bool) Grid {
	return Grid{SpringsRow: rows, SpringsCol: cols, RestLengthRow: 1, RestLengthCol: 1, Diagonal: diagonal}
}

func TestGenerate_TwoByThree(t *testing.T) {
	m, err := Generate(unitGrid(2, 3, false))
	require.NoError(t, err)

	assert.Len(t, m.RestPositions, 12)
	require.Len(t, m.Edges, 17)
	require.Len(t, m.RestLengths, 17)

	assert.Equal(t, Edge{0, 1}, m.Edges[0])
	assert.Equal(t, float32(1), m.RestLengths[0])

	// 3 particle rows x 3 spring columns of horizontals, then the first
	// vertical spring.
	assert.Equal(t, Edge{10, 11}, m.Edges[8])
	assert.Equal(t, Edge{0, 4}, m.Edges[9])
	assert.Equal(t, Vertical, m.Kind(9))
	assert.Equal(t, float32(1), m.RestLengths[9])

	assert.Equal(t, Edge{3, 7}, m.Edges[12])
	assert.Equal(t, Edge{7, 11}, m.Edges[16])
}

func TestGenerate_RestPositions(t *testing.T) {
	g := Grid{SpringsRow: 2, SpringsCol: 3, RestLengthRow: 0.5, RestLengthCol: 2}
	m, err := Generate(g)
	require.NoError(t, err)

	assert.Equal(t, smath.Vec3{}, m.RestPositions[0])
	rows, cols := g.Dims()
	for r := range rows {
		for c := range cols {
			want := smath.Vec3{X: float32(c) * 2, Y: -float32(r) * 0.5}
			assert.Equal(t, want, m.RestPositions[g.ParticleIndex(r, c)], "particle (%d,%d)", r, c)
		}
	}

	b := m.Bounds()
	assert.Equal(t, smath.Vec3{X: 0, Y: -1, Z: 0}, b.Min)
	assert.Equal(t, smath.Vec3{X: 6, Y: 0, Z: 0}, b.Max)
}

func TestGenerate_RestLengthsFollowKind(t *testing.T) {
	g := Grid{SpringsRow: 3, SpringsCol: 2, RestLengthRow: 3, RestLengthCol: 4, Diagonal: true}
	m, err := Generate(g)
	require.NoError(t, err)

	for i, l0 := range m.RestLengths {
		switch m.Kind(i) {
		case Horizontal:
			assert.Equal(t, float32(4), l0, "spring %d", i)
		case Vertical:
			assert.Equal(t, float32(3), l0, "spring %d", i)
		case Diagonal:
			assert.InDelta(t, 5, l0, 1e-6, "spring %d", i)
		}
	}
}

func TestGenerate_Cardinality(t *testing.T) {
	for r := 0; r <= 5; r++ {
		for c := 0; c <= 5; c++ {
			for _, diag := range []bool{false, true} {
				g := unitGrid(r, c, diag)
				m, err := Generate(g)
				require.NoError(t, err)

				want := 2*r*c + r + c
				if diag {
					want += r * c
				}
				assert.Len(t, m.RestPositions, (r+1)*(c+1))
				assert.Len(t, m.Edges, want)
				assert.Len(t, m.RestLengths, want)
				assert.Equal(t, g.NumSprings(), want)
				assert.Equal(t, g.NumParticles(), m.NumParticles())
			}
		}
	}
}

func TestGenerate_BlockOrdering(t *testing.T) {
	g := unitGrid(3, 4, true)
	m, err := Generate(g)
	require.NoError(t, err)

	rows, cols := g.Dims()
	nh := rows * g.SpringsCol
	nv := g.SpringsRow * cols
	n := g.NumParticles()

	seen := make(map[Edge]bool)
	for i, e := range m.Edges {
		require.True(t, e.A >= 0 && e.A < n && e.B >= 0 && e.B < n, "edge %d %s out of range", i, e)
		require.False(t, seen[e], "duplicate edge %s", e)
		seen[e] = true

		ra, ca := e.A/cols, e.A%cols
		rb, cb := e.B/cols, e.B%cols
		switch {
		case i < nh:
			assert.Equal(t, Horizontal, m.Kind(i))
			assert.Equal(t, ra, rb, "edge %d", i)
			assert.Equal(t, ca+1, cb, "edge %d", i)
		case i < nh+nv:
			assert.Equal(t, Vertical, m.Kind(i))
			assert.Equal(t, ra+1, rb, "edge %d", i)
			assert.Equal(t, ca, cb, "edge %d", i)
		default:
			assert.Equal(t, Diagonal, m.Kind(i))
			assert.Equal(t, ra+1, rb, "edge %d", i)
			assert.Equal(t, ca+1, cb, "edge %d", i)
		}
	}
	assert.Equal(t, nh+nv+g.SpringsRow*g.SpringsCol, len(m.Edges))
}

func TestGenerate_Deterministic(t *testing.T) {
	g := Grid{SpringsRow: 4, SpringsCol: 7, RestLengthRow: 0.1, RestLengthCol: 0.3, Diagonal: true}
	a, err := Generate(g)
	require.NoError(t, err)
	b, err := Generate(g)
	require.NoError(t, err)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.RestPositions, b.RestPositions)
	assert.Equal(t, a.RestLengths, b.RestLengths)
}

func TestGenerate_SingleLine(t *testing.T) {
	// No vertical springs: one row of particles.
	m, err := Generate(unitGrid(0, 3, true))
	require.NoError(t, err)
	assert.Len(t, m.RestPositions, 4)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, m.Edges)

	// No horizontal springs: one column of particles.
	m, err = Generate(unitGrid(2, 0, true))
	require.NoError(t, err)
	assert.Len(t, m.RestPositions, 3)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}}, m.Edges)
	assert.Equal(t, Vertical, m.Kind(0))

	// A single particle.
	m, err = Generate(unitGrid(0, 0, true))
	require.NoError(t, err)
	assert.Len(t, m.RestPositions, 1)
	assert.Empty(t, m.Edges)
	assert.Empty(t, m.RestLengths)
}

func TestGenerate_InvalidGrid(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name string
		grid Grid
	}{
		{"zero row length", Grid{SpringsRow: 1, SpringsCol: 1, RestLengthRow: 0, RestLengthCol: 1}},
		{"negative col length", Grid{SpringsRow: 1, SpringsCol: 1, RestLengthRow: 1, RestLengthCol: -1}},
		{"nan length", Grid{SpringsRow: 1, SpringsCol: 1, RestLengthRow: nan, RestLengthCol: 1}},
		{"inf length", Grid{SpringsRow: 1, SpringsCol: 1, RestLengthRow: 1, RestLengthCol: inf}},
		{"negative rows", Grid{SpringsRow: -1, SpringsCol: 1, RestLengthRow: 1, RestLengthCol: 1}},
		{"negative cols", Grid{SpringsRow: 1, SpringsCol: -2, RestLengthRow: 1, RestLengthCol: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(tt.grid)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidGrid), "got %v", err)
		})
	}
}

func TestValidateEdges(t *testing.T) {
	assert.NoError(t, ValidateEdges([]Edge{{0, 1}, {1, 2}}, 3))

	err := ValidateEdges([]Edge{{0, 1}, {2, 3}}, 3)
	assert.ErrorIs(t, err, ErrEdgeOutOfRange)

	err = ValidateEdges([]Edge{{-1, 0}}, 3)
	assert.ErrorIs(t, err, ErrEdgeOutOfRange)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "diagonal", Diagonal.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
