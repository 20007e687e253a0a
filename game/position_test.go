package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		require.True(t, Position{Row: 0, Col: 0}.InBounds())
		require.True(t, Position{Row: Rows - 1, Col: Cols - 1}.InBounds())
		require.False(t, Position{Row: -1, Col: 0}.InBounds())
		require.False(t, Position{Row: Rows, Col: 0}.InBounds())
		require.False(t, Position{Row: 0, Col: Cols}.InBounds())
	})

	t.Run("adjacency is orthogonal distance one", func(t *testing.T) {
		center := Position{Row: 4, Col: 3}
		require.True(t, center.Adjacent(Position{Row: 3, Col: 3}))
		require.True(t, center.Adjacent(Position{Row: 4, Col: 4}))
		require.False(t, center.Adjacent(Position{Row: 3, Col: 4}), "diagonals are not adjacent")
		require.False(t, center.Adjacent(center))
		require.False(t, center.Adjacent(Position{Row: 6, Col: 3}))
	})
}

func TestSide(t *testing.T) {
	require.Equal(t, Blue, Red.Other())
	require.Equal(t, Red, Blue.Other())
	require.Equal(t, "red", Red.String())
	require.Equal(t, "blue", Blue.String())
	require.Equal(t, "none", NoSide.String())
}
