package edit_action

// MakeEdit builds an Edit from a logged tag and a raw endpoint pair.
//
// A tag other than ADD or REMOVE is not an error: ok is false and callers are
// expected to skip the row, since logs mix edits with free-text events. For a
// known tag, endpoint construction errors are returned as is.
func MakeEdit(tag string, u, v any) (edit Edit, ok bool, err error) {
	kind := Kind(tag)
	if !kind.Valid() {
		return Edit{}, false, nil
	}
	edge, err := NewEdge(u, v)
	if err != nil {
		return Edit{}, false, err
	}
	return Edit{kind: kind, edge: edge}, true, nil
}

// MakeEditPair is MakeEdit for a two-element endpoint tuple.
func MakeEditPair(tag string, pair [2]any) (Edit, bool, error) {
	return MakeEdit(tag, pair[0], pair[1])
}
