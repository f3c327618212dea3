package edit_action

import (
	"strconv"
	"strings"
)

// ParseEdit reads an edit back from its rendered form. Both rendering styles
// are accepted: "ADD(1, 2)", "REMOVE(3, None)", "ADD(3,?)".
func ParseEdit(s string) (Edit, error) {
	text := strings.TrimSpace(s)
	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return Edit{}, &ParseError{Input: s, Msg: "expected TAG(u, v)"}
	}
	kind := Kind(text[:open])
	if !kind.Valid() {
		return Edit{}, &ParseError{Input: s, Msg: "unknown edit tag " + string(kind)}
	}
	edge, err := ParseEdge(text[open+1 : len(text)-1])
	if err != nil {
		return Edit{}, err
	}
	return Edit{kind: kind, edge: edge}, nil
}

// ParseEdge reads "u, v" or "u,v", where either side may be "?" or "None".
func ParseEdge(s string) (Edge, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Edge{}, &ParseError{Input: s, Msg: "expected two endpoints"}
	}
	a, err := parseEndpoint(parts[0])
	if err != nil {
		return Edge{}, err
	}
	b, err := parseEndpoint(parts[1])
	if err != nil {
		return Edge{}, err
	}
	edge, err := EdgeOf(a, b)
	if err != nil {
		return Edge{}, &ParseError{Input: s, Msg: "edge needs at least one known endpoint"}
	}
	return edge, nil
}

func parseEndpoint(s string) (Endpoint, error) {
	token := strings.TrimSpace(s)
	switch token {
	case StyleCompact.wildcard(), StyleSpaced.wildcard():
		return Wildcard, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return Endpoint{}, &ParseError{Input: s, Msg: "endpoint is not an integer"}
	}
	return Node(n), nil
}
