package sheet

import (
	"fmt"
	"math"
)

// Validate checks the grid parameters.
func (g Grid) Validate() error {
	if g.SpringsRow < 0 || g.SpringsCol < 0 {
		return fmt.Errorf("%w: negative spring count %dx%d", ErrInvalidGrid, g.SpringsRow, g.SpringsCol)
	}
	if !positive(g.RestLengthRow) {
		return fmt.Errorf("%w: row rest length %v must be positive", ErrInvalidGrid, g.RestLengthRow)
	}
	if !positive(g.RestLengthCol) {
		return fmt.Errorf("%w: column rest length %v must be positive", ErrInvalidGrid, g.RestLengthCol)
	}
	return nil
}

// Dims returns the particle counts per column and per row.
func (g Grid) Dims() (rows, cols int) {
	return g.SpringsRow + 1, g.SpringsCol + 1
}

// NumParticles returns (R+1)*(C+1).
func (g Grid) NumParticles() int {
	rows, cols := g.Dims()
	return rows * cols
}

// NumSprings returns 2RC+R+C, plus RC when diagonals are enabled.
func (g Grid) NumSprings() int {
	r, c := g.SpringsRow, g.SpringsCol
	n := 2*r*c + r + c
	if g.Diagonal {
		n += r * c
	}
	return n
}

// ParticleIndex returns the row-major index of the particle at (row, col).
func (g Grid) ParticleIndex(row, col int) int {
	return row*(g.SpringsCol+1) + col
}

// DiagonalRestLength returns sqrt(lr^2 + lc^2).
func (g Grid) DiagonalRestLength() float32 {
	return float32(math.Hypot(float64(g.RestLengthRow), float64(g.RestLengthCol)))
}

func positive(f float32) bool {
	return f > 0 && !math.IsInf(float64(f), 0)
}
