package act

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

// Role is the communicative or execution role of an Act.
type Role string

const (
	Suggest  Role = "SUGGEST"
	Free     Role = "FREE"
	Do       Role = "DO"
	Accept   Role = "ACCEPT"
	Reject   Role = "REJECT"
	Instruct Role = "INSTRUCT"
	Match    Role = "MATCH"
	Mismatch Role = "MISMATCH"
	Nonmatch Role = "NONMATCH"
)

// DefaultAgent stands in for an unidentified agent.
const DefaultAgent = "X"

// Content is what an Act wraps: an edit_action.Edit or a prior Act.
type Content interface {
	fmt.Stringer
}

// Act is an agent-attributed, role-tagged event. It wraps either an Edit or
// the prior Act it judges (ACCEPT wraps a SUGGEST, MATCH wraps an INSTRUCT).
// Acts are immutable values; nesting is by copy, never shared.
type Act struct {
	role  Role
	agent string
	edit  edit_action.Edit
	prior *Act
}

func agentOrDefault(agent string) string {
	if agent == "" {
		return DefaultAgent
	}
	return agent
}

func withEdit(role Role, edit edit_action.Edit, agent string) Act {
	return Act{role: role, agent: agentOrDefault(agent), edit: edit}
}

func withPrior(role Role, prior Act, agent string) Act {
	p := prior
	return Act{role: role, agent: agentOrDefault(agent), prior: &p}
}

// New builds an Act of any role around an Edit or an Act. It does not check
// the role against a vocabulary; see Vocabulary.Check for that. The agent must
// satisfy ValidateAgent.
func New(role Role, content Content, agent string) (Act, error) {
	if err := ValidateAgent(agent); err != nil {
		return Act{}, fmt.Errorf("act %s: %w", role, err)
	}
	switch c := content.(type) {
	case edit_action.Edit:
		if c.IsZero() {
			return Act{}, fmt.Errorf("act %s: empty edit", role)
		}
		return withEdit(role, c, agent), nil
	case Act:
		if c.IsZero() {
			return Act{}, fmt.Errorf("act %s: empty prior act", role)
		}
		return withPrior(role, c, agent), nil
	case *Act:
		if c == nil || c.IsZero() {
			return Act{}, fmt.Errorf("act %s: empty prior act", role)
		}
		return withPrior(role, *c, agent), nil
	default:
		return Act{}, fmt.Errorf("act %s: unsupported content %T", role, content)
	}
}

// ValidateAgent rejects agent names that cannot be read back from rendered
// log text. The empty agent is valid and stands for DefaultAgent.
func ValidateAgent(agent string) error {
	if i := strings.IndexAny(agent, "()\n\r"); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrAgent, agent, agent[i])
	}
	return nil
}

// The typed constructors below trust their agent argument. Callers holding
// untrusted names should go through New, or run Vocabulary.Check on the result.

// Protocol A

func NewSuggest(edit edit_action.Edit, agent string) Act { return withEdit(Suggest, edit, agent) }
func NewFree(edit edit_action.Edit, agent string) Act    { return withEdit(Free, edit, agent) }
func NewDo(edit edit_action.Edit, agent string) Act      { return withEdit(Do, edit, agent) }

func NewAccept(suggestion Act, agent string) Act { return withPrior(Accept, suggestion, agent) }
func NewReject(suggestion Act, agent string) Act { return withPrior(Reject, suggestion, agent) }

// Protocol B

func NewInstruct(edit edit_action.Edit, agent string) Act { return withEdit(Instruct, edit, agent) }
func NewNonmatch(edit edit_action.Edit, agent string) Act { return withEdit(Nonmatch, edit, agent) }

func NewMatch(instruction Act, agent string) Act    { return withPrior(Match, instruction, agent) }
func NewMismatch(instruction Act, agent string) Act { return withPrior(Mismatch, instruction, agent) }

func (a Act) Role() Role {
	return a.role
}

func (a Act) Agent() string {
	return a.agent
}

// Edit returns the wrapped edit, false when the act wraps a prior act.
func (a Act) Edit() (edit_action.Edit, bool) {
	if a.prior != nil {
		return edit_action.Edit{}, false
	}
	return a.edit, !a.edit.IsZero()
}

// Prior returns the wrapped act, false when the act wraps an edit.
func (a Act) Prior() (Act, bool) {
	if a.prior == nil {
		return Act{}, false
	}
	return *a.prior, true
}

// Content returns the wrapped Edit or Act.
func (a Act) Content() Content {
	if a.prior != nil {
		return *a.prior
	}
	return a.edit
}

// Root follows prior acts down to the innermost one.
func (a Act) Root() Act {
	cur := a
	for cur.prior != nil {
		cur = *cur.prior
	}
	return cur
}

func (a Act) IsZero() bool {
	return a.role == "" && a.agent == "" && a.prior == nil && a.edit.IsZero()
}

// Equal compares role, agent and content structurally; nested acts are
// compared recursively and edits are compared undirected.
func (a Act) Equal(other Act) bool {
	if a.role != other.role || a.agent != other.agent {
		return false
	}
	switch {
	case a.prior == nil && other.prior == nil:
		return a.edit.Equal(other.edit)
	case a.prior != nil && other.prior != nil:
		return a.prior.Equal(*other.prior)
	default:
		return false
	}
}

// Key is a canonical string form of the act. Equal acts have equal keys, so
// Key is the value to use for sets and map lookups.
func (a Act) Key() string {
	var b strings.Builder
	a.writeKey(&b)
	return b.String()
}

func (a Act) writeKey(b *strings.Builder) {
	b.WriteString(string(a.role))
	b.WriteByte('_')
	b.WriteString(strconv.Quote(a.agent))
	b.WriteByte('(')
	if a.prior != nil {
		a.prior.writeKey(b)
	} else {
		k := a.edit.Key()
		b.WriteString(string(k.Kind))
		b.WriteByte('(')
		switch k.Edge.Shape {
		case edit_action.Full:
			b.WriteString(strconv.Itoa(k.Edge.Lo))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(k.Edge.Hi))
		case edit_action.Partial:
			b.WriteString(strconv.Itoa(k.Edge.Lo))
			b.WriteString(",?")
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
}

func (a Act) Hash() uint64 {
	h := fnv.New64a()
	cur := a
	for {
		edit_action.WriteString(h, string(cur.role))
		edit_action.WriteString(h, cur.agent)
		if cur.prior == nil {
			edit_action.WriteEditKey(h, cur.edit.Key())
			return h.Sum64()
		}
		cur = *cur.prior
	}
}

// Format renders ROLE_AGENT(content) with edges in the given style.
func (a Act) Format(style edit_action.Style) string {
	var b strings.Builder
	a.writeFormat(&b, style)
	return b.String()
}

func (a Act) writeFormat(b *strings.Builder, style edit_action.Style) {
	b.WriteString(string(a.role))
	b.WriteByte('_')
	b.WriteString(a.agent)
	b.WriteByte('(')
	if a.prior != nil {
		a.prior.writeFormat(b, style)
	} else {
		b.WriteString(a.edit.Format(style))
	}
	b.WriteByte(')')
}

func (a Act) String() string {
	return a.Format(edit_action.StyleSpaced)
}

// PartialEquals runs the edit comparator on two contents. It is only defined
// for edits; any other content yields an *edit_action.UnsupportedComparisonError.
func PartialEquals(a, b Content) (bool, error) {
	ea, err := asEdit(a)
	if err != nil {
		return false, err
	}
	eb, err := asEdit(b)
	if err != nil {
		return false, err
	}
	return ea.PartialEquals(eb)
}

func asEdit(c Content) (edit_action.Edit, error) {
	switch v := c.(type) {
	case edit_action.Edit:
		return v, nil
	case Act:
		return edit_action.Edit{}, &edit_action.UnsupportedComparisonError{Content: "act " + string(v.role)}
	case *Act:
		return edit_action.Edit{}, &edit_action.UnsupportedComparisonError{Content: "act"}
	default:
		return edit_action.Edit{}, &edit_action.UnsupportedComparisonError{Content: fmt.Sprintf("%T", c)}
	}
}

// EditsPartiallyEqual compares the edits wrapped by two acts, e.g. an observed
// DO against an earlier SUGGEST or INSTRUCT. Acts that wrap a prior act are
// not comparable.
func EditsPartiallyEqual(a, b Act) (bool, error) {
	return PartialEquals(a.Content(), b.Content())
}
