package edit_action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

/*
========================
Equality and rendering
========================
*/

func TestEdit_Equality(t *testing.T) {
	require.True(t, NewAdd(FullEdge(1, 2)).Equal(NewAdd(FullEdge(2, 1))))
	require.Equal(t, NewAdd(FullEdge(1, 2)).Hash(), NewAdd(FullEdge(2, 1)).Hash())
	require.False(t, NewAdd(FullEdge(1, 2)).Equal(NewRemove(FullEdge(1, 2))))
	require.NotEqual(t, NewAdd(FullEdge(1, 2)).Key(), NewRemove(FullEdge(1, 2)).Key())
}

func TestEdit_String(t *testing.T) {
	require.Equal(t, "ADD(1, 2)", NewAdd(FullEdge(1, 2)).String())
	require.Equal(t, "REMOVE(3,?)", NewRemove(PartialEdge(3)).Format(StyleCompact))
	require.True(t, Edit{}.IsZero())
	require.False(t, NewAdd(PartialEdge(1)).IsZero())
}

/*
========================
Partial matching
========================
*/

func TestPartialEquals_KindMismatchShortCircuits(t *testing.T) {
	ok, err := NewRemove(FullEdge(1, 2)).PartialEquals(NewAdd(FullEdge(1, 2)))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = NewRemove(PartialEdge(1)).PartialEquals(NewAdd(PartialEdge(1)))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPartialEquals_Table(t *testing.T) {
	cases := []struct {
		name  string
		self  Edge
		other Edge
		want  bool
	}{
		{"same order", FullEdge(1, 2), FullEdge(1, 2), true},
		{"reversed", FullEdge(1, 2), FullEdge(2, 1), true},
		{"disjoint", FullEdge(1, 2), FullEdge(3, 4), false},
		{"one shared endpoint", FullEdge(1, 2), FullEdge(1, 3), false},
		{"repeated endpoint is loose", FullEdge(1, 1), FullEdge(1, 2), true},
		{"repeated endpoint other side", FullEdge(1, 2), FullEdge(1, 1), false},
		{"wildcard hits first", PartialEdge(1), FullEdge(1, 9), true},
		{"wildcard hits second", PartialEdge(9), FullEdge(1, 9), true},
		{"wildcard misses", PartialEdge(1), FullEdge(5, 9), false},
		{"full against wildcard", FullEdge(5, 9), PartialEdge(9), true},
		{"full against missing wildcard", FullEdge(5, 9), PartialEdge(1), false},
		{"two wildcards", PartialEdge(1), PartialEdge(5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := NewAdd(tc.self).PartialEquals(NewAdd(tc.other))
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestPartialEquals_LeadingWildcardBehavesLikeTrailing(t *testing.T) {
	leading, err := NewEdge(nil, 1)
	require.NoError(t, err)

	ok, err := NewAdd(leading).PartialEquals(NewAdd(FullEdge(9, 1)))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPartialEquals_EmptyEditUnsupported(t *testing.T) {
	_, err := Edit{}.PartialEquals(NewAdd(FullEdge(1, 2)))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedComparison))

	_, err = NewAdd(FullEdge(1, 2)).PartialEquals(Edit{})
	var unsupported *UnsupportedComparisonError
	require.ErrorAs(t, err, &unsupported)
}

/*
========================
Factory
========================
*/

func TestMakeEdit_UnknownTagIsAbsent(t *testing.T) {
	for _, tag := range []string{"FOO", "", "add", "SUGGEST"} {
		edit, ok, err := MakeEdit(tag, 1, 2)
		require.NoError(t, err)
		require.False(t, ok)
		require.True(t, edit.IsZero())
	}

	// lenient even when the endpoints are free text
	_, ok, err := MakeEdit("CHAT", "hello", nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMakeEdit_RoundTrip(t *testing.T) {
	edit, ok, err := MakeEditPair("REMOVE", [2]any{4, 7})
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, edit.Equal(NewRemove(FullEdge(4, 7))))
	require.Equal(t, "REMOVE(4, 7)", edit.String())
}

func TestMakeEdit_BadEndpoint(t *testing.T) {
	_, ok, err := MakeEdit("ADD", "x", 2)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrConstruction)
}

/*
========================
Parsing
========================
*/

func TestParseEdit_BothStyles(t *testing.T) {
	edits := []Edit{
		NewAdd(FullEdge(1, 2)),
		NewRemove(FullEdge(10, 3)),
		NewAdd(PartialEdge(3)),
	}
	for _, e := range edits {
		for _, style := range []Style{StyleSpaced, StyleCompact} {
			parsed, err := ParseEdit(e.Format(style))
			require.NoError(t, err)
			require.True(t, parsed.Equal(e))
			require.Equal(t, e.Format(style), parsed.Format(style))
		}
	}
}

func TestParseEdit_Errors(t *testing.T) {
	for _, in := range []string{"", "ADD", "ADD(1, 2", "MOVE(1, 2)", "ADD(1)", "ADD(1, 2, 3)", "ADD(a, 2)", "ADD(?, None)"} {
		_, err := ParseEdit(in)
		require.Error(t, err, in)
		require.ErrorIs(t, err, ErrParse, in)
	}
}
