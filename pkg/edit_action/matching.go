package edit_action

// PartialEquals is the tolerant comparator used to decide whether an executed
// edit corresponds to a suggested or instructed one.
//
// Edits of different kinds never match. For edits of the same kind the result
// depends on the shapes of the two edges:
//
//   - Full x Full: every endpoint of e appears among the endpoints of other.
//     This is set membership, not pair equality, so (1,1) matches (1,2).
//   - Partial x Full, Full x Partial: the anchor of the partial edge is one of
//     the endpoints of the full edge.
//   - Partial x Partial: always a match; the unknown endpoints coincide.
//
// An *UnsupportedComparisonError is returned when either edit carries no edge.
func (e Edit) PartialEquals(other Edit) (bool, error) {
	if e.edge.Shape() == Invalid {
		return false, &UnsupportedComparisonError{Content: "empty edit"}
	}
	if other.edge.Shape() == Invalid {
		return false, &UnsupportedComparisonError{Content: "empty edit"}
	}
	if e.kind != other.kind {
		return false, nil
	}
	return edgesOverlap(e.edge, other.edge), nil
}

func edgesOverlap(a, b Edge) bool {
	switch a.Shape() {
	case Full:
		switch b.Shape() {
		case Full:
			return looseMembership(a, b)
		case Partial:
			anchor, _ := b.Anchor()
			return a.Touches(anchor)
		}
	case Partial:
		switch b.Shape() {
		case Full:
			anchor, _ := a.Anchor()
			return b.Touches(anchor)
		case Partial:
			return true
		}
	}
	return false
}

// looseMembership keeps the historical matching policy for fully specified
// edges. It deliberately does not compare multisets.
func looseMembership(a, b Edge) bool {
	return b.Touches(a.first.id) && b.Touches(a.second.id)
}
