package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellOf(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first cell", 14.9, 29.9, 0, 0},
		{"cell edge", 15, 30, 1, 1},
		{"frog spawn", 450, 885, 30, 29},
		{"negative", -0.5, -31, -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := CellOf(tt.x, tt.y, 15, 30)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestCellSpan(t *testing.T) {
	from, to := CellSpan(0, 45, 15)
	assert.Equal(t, 0, from)
	assert.Equal(t, 3, to)

	from, to = CellSpan(10, 46, 15)
	assert.Equal(t, 0, from)
	assert.Equal(t, 4, to, "partial cells count")

	from, to = CellSpan(-112, 0, 15)
	assert.Equal(t, -8, from)
	assert.Equal(t, 0, to)
}
