package edit_action

// Kind is the graph operation an Edit applies.
type Kind string

const (
	Add    Kind = "ADD"
	Remove Kind = "REMOVE"
)

func (k Kind) Valid() bool {
	return k == Add || k == Remove
}

// Edit is an ADD or REMOVE applied to one Edge. Edits are immutable values.
type Edit struct {
	kind Kind
	edge Edge
}

// EditKey is the comparable canonical form of an Edit.
type EditKey struct {
	Kind Kind
	Edge EdgeKey
}

func NewAdd(edge Edge) Edit {
	return Edit{kind: Add, edge: edge}
}

func NewRemove(edge Edge) Edit {
	return Edit{kind: Remove, edge: edge}
}

func (e Edit) Kind() Kind {
	return e.kind
}

func (e Edit) Edge() Edge {
	return e.edge
}

// IsZero reports whether e is the zero Edit, which carries no edge.
func (e Edit) IsZero() bool {
	return e.kind == "" && e.edge.Shape() == Invalid
}

func (e Edit) Key() EditKey {
	return EditKey{Kind: e.kind, Edge: e.edge.Key()}
}

// Equal requires the same kind and undirected-equal edges.
func (e Edit) Equal(other Edit) bool {
	return e.Key() == other.Key()
}

func (e Edit) Hash() uint64 {
	return hashEditKey(e.Key())
}

func (e Edit) Format(style Style) string {
	return string(e.kind) + "(" + e.edge.Format(style) + ")"
}

func (e Edit) String() string {
	return e.Format(StyleSpaced)
}
