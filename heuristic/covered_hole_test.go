package heuristic

import (
	"testing"

	"blockcore/geometry"
	"blockcore/matrix"

	"github.com/stretchr/testify/assert"
)

func rows(bottomUp ...[]bool) matrix.Matrix {
	return matrix.FromRows(len(bottomUp[0]), bottomUp)
}

func TestCoveredHole_Empty(t *testing.T) {
	m := matrix.New(5)
	var buf ResidueBuf
	_, _, found := CoveredHole(m, &buf)
	assert.False(t, found)
}

func TestCoveredHole_FullBoardNoHole(t *testing.T) {
	xx := true
	m := rows(
		[]bool{xx, xx, xx, xx, xx, xx},
		[]bool{xx, xx, xx, xx, xx, xx},
	)
	var buf ResidueBuf
	_, _, found := CoveredHole(m, &buf)
	assert.False(t, found)
}

func TestCoveredHole_CheeseHeightOne(t *testing.T) {
	xx, __ := true, false
	m := rows(
		[]bool{xx, xx, xx, xx, xx, xx}, // row 0 (bottom)
		[]bool{__, xx, xx, xx, xx, xx}, // row 1
		[]bool{xx, xx, xx, xx, xx, xx}, // row 2
	)
	var buf ResidueBuf
	row, res, found := CoveredHole(m, &buf)
	assert.True(t, found)
	assert.Equal(t, 1, row)
	assert.Equal(t, geometry.Range{Start: 2, Limit: 3}, res)
}

func TestCoveredHole_SpikeFromFloor(t *testing.T) {
	xx, __ := true, false
	m := rows(
		[]bool{xx, xx, xx, __, xx, xx}, // row 0 (bottom)
		[]bool{__, __, __, xx, __, __}, // row 1
		[]bool{__, __, __, xx, __, __}, // row 2
		[]bool{__, __, __, xx, __, __}, // row 3 (top)
	)
	var buf ResidueBuf
	row, res, found := CoveredHole(m, &buf)
	assert.True(t, found)
	assert.Equal(t, 0, row)
	assert.Equal(t, geometry.Range{Start: 1, Limit: 4}, res)
}

func TestCoveredHole_ResidueBufIsReusable(t *testing.T) {
	xx, __ := true, false
	m := rows(
		[]bool{__, xx, xx, xx, xx, __},
		[]bool{__, xx, xx, xx, xx, xx},
		[]bool{xx, xx, xx, xx, xx, __},
	)
	var buf ResidueBuf
	row1, res1, found1 := CoveredHole(m, &buf)
	row2, res2, found2 := CoveredHole(m, &buf) // reuse the same buffer
	assert.Equal(t, found1, found2)
	assert.Equal(t, row1, row2)
	assert.Equal(t, res1, res2)
}

func TestCoveredHole_ColumnsOrderedAscendingWithinRow(t *testing.T) {
	// "double": two columns have gaps at the same row; the algorithm must
	// pick the first (leftmost) column encountered in ascending order.
	xx, __ := true, false
	m := rows(
		[]bool{xx, xx, xx, xx, xx, xx}, // row 0
		[]bool{xx, __, xx, __, xx, xx}, // row 1
		[]bool{xx, xx, xx, xx, xx, xx}, // row 2
	)
	var buf ResidueBuf
	row, res, found := CoveredHole(m, &buf)
	assert.True(t, found)
	assert.Equal(t, 1, row)
	assert.Equal(t, geometry.Range{Start: 2, Limit: 3}, res)
}

func TestCoveredHole_IffNoColumnHasGapBelowFilledCell(t *testing.T) {
	// property: CoveredHole returns found=false iff every column's filled
	// cells form a contiguous suffix of rows 0..rows-1 (no empty cell sits
	// below a filled one).
	xx, __ := true, false

	// Every column's filled cells sit at the bottom with only empty cells
	// (if any) above: no empty cell has a filled cell above it.
	noHole := rows(
		[]bool{xx, __, xx}, // row 0 (bottom)
		[]bool{xx, __, xx}, // row 1
		[]bool{__, __, xx}, // row 2 (top)
	)
	var buf ResidueBuf
	_, _, found := CoveredHole(noHole, &buf)
	assert.False(t, found)

	// Column 0 has an empty cell (row 0) below a filled cell (row 1).
	withHole := rows(
		[]bool{__, __, xx}, // row 0 (bottom)
		[]bool{xx, __, xx}, // row 1
		[]bool{xx, xx, xx}, // row 2 (top)
	)
	_, _, found = CoveredHole(withHole, &buf)
	assert.True(t, found)
}
