package act

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

type ProtocolName string

const (
	// ProtocolSuggestion is the suggestion based experiment (Protocol A).
	ProtocolSuggestion ProtocolName = "suggestion"
	// ProtocolInstruction is the instruction based experiment (Protocol B).
	ProtocolInstruction ProtocolName = "instruction"
)

// roleSpec says what a role wraps. An empty wraps means an Edit.
type roleSpec struct {
	wraps Role
}

// Vocabulary is the set of roles one experiment protocol uses, the content
// each role wraps, and how edges are rendered in that protocol's logs.
type Vocabulary struct {
	name  ProtocolName
	style edit_action.Style
	roles map[Role]roleSpec
}

var (
	ProtocolA = Vocabulary{
		name:  ProtocolSuggestion,
		style: edit_action.StyleSpaced,
		roles: map[Role]roleSpec{
			Suggest: {},
			Free:    {},
			Do:      {},
			Accept:  {wraps: Suggest},
			Reject:  {wraps: Suggest},
		},
	}

	ProtocolB = Vocabulary{
		name:  ProtocolInstruction,
		style: edit_action.StyleCompact,
		roles: map[Role]roleSpec{
			Instruct: {},
			Do:       {},
			Nonmatch: {},
			Match:    {wraps: Instruct},
			Mismatch: {wraps: Instruct},
		},
	}
)

// VocabularyFor resolves a protocol by name. "A" and "suggestion" select
// Protocol A, "B" and "instruction" select Protocol B; case is ignored.
func VocabularyFor(name string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", string(ProtocolSuggestion):
		return ProtocolA, nil
	case "b", string(ProtocolInstruction):
		return ProtocolB, nil
	default:
		return Vocabulary{}, fmt.Errorf("unknown protocol %q", name)
	}
}

func (v Vocabulary) Name() ProtocolName {
	return v.name
}

func (v Vocabulary) Style() edit_action.Style {
	return v.style
}

func (v Vocabulary) Has(role Role) bool {
	_, ok := v.roles[role]
	return ok
}

// WrapsEdit reports whether role is in the vocabulary and wraps an Edit.
func (v Vocabulary) WrapsEdit(role Role) bool {
	rs, ok := v.roles[role]
	return ok && rs.wraps == ""
}

// Wraps returns the role of the prior act a judgement role refers to.
func (v Vocabulary) Wraps(role Role) (Role, bool) {
	rs, ok := v.roles[role]
	if !ok || rs.wraps == "" {
		return "", false
	}
	return rs.wraps, true
}

// Roles lists the vocabulary in alphabetical order.
func (v Vocabulary) Roles() []Role {
	out := make([]Role, 0, len(v.roles))
	for r := range v.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Check verifies every act in the nesting: its role must belong to the
// vocabulary and it must wrap the content that role calls for. Agents are
// checked with ValidateAgent.
func (v Vocabulary) Check(a Act) error {
	cur := a
	for {
		if err := ValidateAgent(cur.agent); err != nil {
			return err
		}
		rs, ok := v.roles[cur.role]
		if !ok {
			return &RoleError{Protocol: v.name, Role: cur.role, Msg: "role not in vocabulary"}
		}
		prior, hasPrior := cur.Prior()
		if rs.wraps == "" {
			if hasPrior {
				return &RoleError{Protocol: v.name, Role: cur.role, Msg: "must wrap an edit, got act " + string(prior.role)}
			}
			if _, ok := cur.Edit(); !ok {
				return &RoleError{Protocol: v.name, Role: cur.role, Msg: "missing edit"}
			}
			return nil
		}
		if !hasPrior {
			return &RoleError{Protocol: v.name, Role: cur.role, Msg: "must wrap a " + string(rs.wraps) + " act"}
		}
		if prior.role != rs.wraps {
			return &RoleError{Protocol: v.name, Role: cur.role, Msg: "must wrap a " + string(rs.wraps) + " act, got " + string(prior.role)}
		}
		cur = prior
	}
}

// Format renders a in this protocol's log text form.
func (v Vocabulary) Format(a Act) string {
	return a.Format(v.style)
}
