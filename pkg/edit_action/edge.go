package edit_action

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type NodeID = int

// Endpoint is one end of an Edge: either a known node or a wildcard.
type Endpoint struct {
	id    NodeID
	known bool
}

// Wildcard is an endpoint that has not been specified yet.
var Wildcard = Endpoint{}

func Node(id NodeID) Endpoint {
	return Endpoint{id: id, known: true}
}

// ID returns the node id and false for a wildcard.
func (p Endpoint) ID() (NodeID, bool) {
	return p.id, p.known
}

func (p Endpoint) IsWildcard() bool {
	return !p.known
}

// Shape tells which variant of Edge a value is.
type Shape uint8

const (
	// Invalid is the zero Edge. It is never produced by a constructor.
	Invalid Shape = iota
	// Full edges have both endpoints known.
	Full
	// Partial edges have exactly one known endpoint, the anchor.
	Partial
)

func (s Shape) String() string {
	switch s {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "invalid"
	}
}

// Edge is an undirected pair of node ids, one of which may be a wildcard.
//
// Endpoints are kept in the order they were given so the edge renders the way
// it was logged. Identity (Equal, Key, Hash) only ever looks at the canonical
// form: the sorted pair for a Full edge, the anchor for a Partial one.
// Edge values are immutable.
type Edge struct {
	first  Endpoint
	second Endpoint
}

// EdgeKey is the canonical form of an Edge. It is comparable and meant to be
// used as a map key; two edges are Equal exactly when their keys are equal.
type EdgeKey struct {
	Shape Shape
	Lo    NodeID
	Hi    NodeID
}

// FullEdge builds a fully specified edge.
func FullEdge(u, v NodeID) Edge {
	return Edge{first: Node(u), second: Node(v)}
}

// PartialEdge builds an edge whose second endpoint is a wildcard.
func PartialEdge(u NodeID) Edge {
	return Edge{first: Node(u), second: Wildcard}
}

// NewEdge builds an edge from two raw endpoint values as they come out of a
// loaded table. nil (or a nil *int) is a wildcard. Integers, integral floats,
// decimal strings and Endpoint values are accepted as node ids; anything else
// is rejected with an *EdgeError. At least one endpoint must be known.
func NewEdge(u, v any) (Edge, error) {
	a, err := coerceEndpoint(u)
	if err != nil {
		return Edge{}, err
	}
	b, err := coerceEndpoint(v)
	if err != nil {
		return Edge{}, err
	}
	return EdgeOf(a, b)
}

// EdgeOf builds an edge from two endpoints.
func EdgeOf(a, b Endpoint) (Edge, error) {
	if !a.known && !b.known {
		return Edge{}, &EdgeError{Msg: "edge needs at least one known endpoint"}
	}
	return Edge{first: a, second: b}, nil
}

func coerceEndpoint(raw any) (Endpoint, error) {
	switch x := raw.(type) {
	case nil:
		return Wildcard, nil
	case Endpoint:
		return x, nil
	case *int:
		if x == nil {
			return Wildcard, nil
		}
		return Node(*x), nil
	case int:
		return Node(x), nil
	case int8:
		return Node(int(x)), nil
	case int16:
		return Node(int(x)), nil
	case int32:
		return Node(int(x)), nil
	case int64:
		return fromInt64(raw, x)
	case uint:
		return fromUint64(raw, uint64(x))
	case uint8:
		return Node(int(x)), nil
	case uint16:
		return Node(int(x)), nil
	case uint32:
		return fromInt64(raw, int64(x))
	case uint64:
		return fromUint64(raw, x)
	case float32:
		return fromFloat(raw, float64(x))
	case float64:
		return fromFloat(raw, x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return Endpoint{}, &EdgeError{Value: raw, Msg: fmt.Sprintf("endpoint %q is not an integer", x)}
		}
		return Node(n), nil
	default:
		return Endpoint{}, &EdgeError{Value: raw}
	}
}

func fromInt64(raw any, x int64) (Endpoint, error) {
	if x > math.MaxInt || x < math.MinInt {
		return Endpoint{}, &EdgeError{Value: raw, Msg: fmt.Sprintf("endpoint %d overflows int", x)}
	}
	return Node(int(x)), nil
}

func fromUint64(raw any, x uint64) (Endpoint, error) {
	if x > math.MaxInt {
		return Endpoint{}, &EdgeError{Value: raw, Msg: fmt.Sprintf("endpoint %d overflows int", x)}
	}
	return Node(int(x)), nil
}

func fromFloat(raw any, x float64) (Endpoint, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return Endpoint{}, &EdgeError{Value: raw, Msg: fmt.Sprintf("endpoint %v is not an integer", x)}
	}
	if x >= math.MaxInt64 || x < math.MinInt64 {
		return Endpoint{}, &EdgeError{Value: raw, Msg: fmt.Sprintf("endpoint %v overflows int", x)}
	}
	return fromInt64(raw, int64(x))
}

func (e Edge) Shape() Shape {
	switch {
	case e.first.known && e.second.known:
		return Full
	case e.first.known || e.second.known:
		return Partial
	default:
		return Invalid
	}
}

// Endpoints returns the endpoints in display order.
func (e Edge) Endpoints() (Endpoint, Endpoint) {
	return e.first, e.second
}

// Pair returns the sorted node ids of a Full edge.
func (e Edge) Pair() (lo, hi NodeID, ok bool) {
	if e.Shape() != Full {
		return 0, 0, false
	}
	lo, hi = e.first.id, e.second.id
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// Anchor returns the known endpoint of a Partial edge.
func (e Edge) Anchor() (NodeID, bool) {
	if e.Shape() != Partial {
		return 0, false
	}
	if e.first.known {
		return e.first.id, true
	}
	return e.second.id, true
}

// Touches reports whether n is one of the known endpoints.
func (e Edge) Touches(n NodeID) bool {
	return (e.first.known && e.first.id == n) || (e.second.known && e.second.id == n)
}

func (e Edge) Key() EdgeKey {
	switch e.Shape() {
	case Full:
		lo, hi, _ := e.Pair()
		return EdgeKey{Shape: Full, Lo: lo, Hi: hi}
	case Partial:
		a, _ := e.Anchor()
		return EdgeKey{Shape: Partial, Lo: a}
	default:
		return EdgeKey{}
	}
}

// Equal is undirected: Edge(a,b) equals Edge(b,a).
func (e Edge) Equal(other Edge) bool {
	return e.Key() == other.Key()
}

func (e Edge) Hash() uint64 {
	return hashEdgeKey(e.Key())
}

// Style selects how edges are rendered inside log text.
type Style uint8

const (
	// StyleSpaced renders "u, v" with a wildcard as None.
	StyleSpaced Style = iota
	// StyleCompact renders "u,v" with a wildcard as ?.
	StyleCompact
)

func (s Style) separator() string {
	if s == StyleCompact {
		return ","
	}
	return ", "
}

func (s Style) wildcard() string {
	if s == StyleCompact {
		return "?"
	}
	return "None"
}

func (s Style) endpoint(p Endpoint) string {
	if !p.known {
		return s.wildcard()
	}
	return strconv.Itoa(p.id)
}

func (e Edge) Format(style Style) string {
	return style.endpoint(e.first) + style.separator() + style.endpoint(e.second)
}

func (e Edge) String() string {
	return e.Format(StyleSpaced)
}
