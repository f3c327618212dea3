package act_log

import (
	"time"

	"github.com/google/uuid"

	"github.com/jtomasevic/graphedit/pkg/act"
)

type RecordID = uuid.UUID

// Record is one observed or inferred act in a session, in log order.
// Once appended, a Record MUST NOT be modified.
type Record struct {
	ID        RecordID
	Seq       int
	Act       act.Act
	Timestamp time.Time
}

// ActLog is an append-only, ordered sequence of acts from one session, such
// as the labeled output of a judgement routine or a team's ingested log.
type ActLog interface {
	// Append stores a copy of the act and returns the id of its record.
	// A zero Timestamp is replaced by the current time.
	Append(a act.Act, at time.Time) (RecordID, error)

	GetByID(id RecordID) (Record, error)

	// All returns the records in append order.
	All() []Record

	ByRole(role act.Role) []Record
	ByAgent(agent string) []Record

	// Contains is structural: an act equal to a (agent and undirected edges
	// included) has already been appended.
	Contains(a act.Act) bool

	// Distinct returns the first record of every distinct act, in append order.
	Distinct() []Record

	Len() int
}
