// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the Dense container.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchol/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}

	_, err = matrix.NewDense[float64](0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense[float64](3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewDenseFrom(t *testing.T) {
	data := []complex128{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	// The matrix aliases the caller's slice: writes are shared both ways.
	require.NoError(t, m.Set(1, 2, 42))
	require.Equal(t, complex128(42), data[5])
	data[0] = -1
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), v)

	_, err = matrix.NewDenseFrom(2, 3, data[:5])
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFrom[complex128](0, 0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange, "Set(%d,%d)", idx[0], idx[1])
	}
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

func TestDense_DataLayout(t *testing.T) {
	// Row-major contract: (i,j) lives at Data()[i*Cols()+j].
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 5))
	require.Equal(t, 5.0, m.Data()[1*3+2])
}
