package act

import (
	"strings"

	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

// Parse reads rendered log text such as "ACCEPT_B(SUGGEST_A(ADD(1, 2)))"
// back into an Act. Roles are not checked against any vocabulary.
func Parse(s string) (Act, error) {
	text := strings.TrimSpace(s)
	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return Act{}, &ParseError{Input: s, Msg: "expected ROLE_AGENT(content)"}
	}
	head := text[:open]
	sep := strings.IndexByte(head, '_')
	if sep <= 0 || sep == len(head)-1 {
		return Act{}, &ParseError{Input: s, Msg: "expected ROLE_AGENT before content"}
	}
	role, agent := Role(head[:sep]), head[sep+1:]
	if err := ValidateAgent(agent); err != nil {
		return Act{}, &ParseError{Input: s, Msg: "bad agent", Err: err}
	}
	inner := text[open+1 : len(text)-1]

	if isActText(inner) {
		prior, err := Parse(inner)
		if err != nil {
			return Act{}, err
		}
		return withPrior(role, prior, agent), nil
	}
	edit, err := edit_action.ParseEdit(inner)
	if err != nil {
		return Act{}, &ParseError{Input: s, Msg: "bad edit", Err: err}
	}
	return withEdit(role, edit, agent), nil
}

// isActText tells nested acts from edits: only acts carry ROLE_AGENT.
func isActText(s string) bool {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return false
	}
	return strings.ContainsRune(s[:open], '_')
}

// Parse reads an act and checks it against the vocabulary.
func (v Vocabulary) Parse(s string) (Act, error) {
	a, err := Parse(s)
	if err != nil {
		return Act{}, err
	}
	if err := v.Check(a); err != nil {
		return Act{}, &ParseError{Input: s, Msg: "act does not fit protocol " + string(v.name), Err: err}
	}
	return a, nil
}
