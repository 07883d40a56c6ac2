package addressbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedSet_AddDeduplicates(t *testing.T) {
	s := newOrderedSet("a", "b", "a")

	require.Equal(t, []string{"a", "b"}, s.values())
	require.True(t, s.add("c"))
	require.False(t, s.add("a"))
	require.Equal(t, 3, s.len())
}

func TestOrderedSet_ValuesIsACopy(t *testing.T) {
	s := newOrderedSet("a", "b")

	vals := s.values()
	vals[0] = "mutated"

	require.Equal(t, []string{"a", "b"}, s.values())
}

func TestOrderedSet_ZeroValueUsable(t *testing.T) {
	var s orderedSet[int]

	require.False(t, s.has(1))
	require.True(t, s.add(1))
	require.True(t, s.has(1))
}

func TestOrderedSet_Clear(t *testing.T) {
	s := newOrderedSet(1, 2, 3)
	s.clear()

	require.Zero(t, s.len())
	require.False(t, s.has(1))
	require.Empty(t, s.values())
	require.True(t, s.add(1))
}
