package ingest

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jtomasevic/graphedit/pkg/act"
	"github.com/jtomasevic/graphedit/pkg/act_log"
	"github.com/jtomasevic/graphedit/pkg/config"
	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

// Row is one already-loaded log or transcript event.
type Row struct {
	// Role may be empty; the ingestor's default role applies then.
	Role    string
	EditTag string
	U, V    any
	Agent   string
	At      time.Time
}

// RowError reports the row that stopped ingestion.
type RowError struct {
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

var ErrJudgementRole = errors.New("judgement roles cannot be read from rows")

type Report struct {
	Appended int
	Skipped  int
}

// Ingestor turns rows into acts of one protocol and appends them to a log.
type Ingestor struct {
	vocab        act.Vocabulary
	defaultAgent string
	defaultRole  act.Role
	sink         act_log.ActLog
	logger       *zap.Logger
}

type Option func(*Ingestor)

func WithLogger(logger *zap.Logger) Option {
	return func(i *Ingestor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func WithDefaultAgent(agent string) Option {
	return func(i *Ingestor) {
		i.defaultAgent = agent
	}
}

func WithDefaultRole(role act.Role) Option {
	return func(i *Ingestor) {
		i.defaultRole = role
	}
}

func NewIngestor(vocab act.Vocabulary, sink act_log.ActLog, opts ...Option) *Ingestor {
	i := &Ingestor{
		vocab:        vocab,
		defaultAgent: act.DefaultAgent,
		defaultRole:  act.Do,
		sink:         sink,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// FromConfig builds an ingestor with the vocabulary and defaults of cfg.
func FromConfig(cfg config.Config, sink act_log.ActLog, logger *zap.Logger) (*Ingestor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vocab, err := cfg.Vocabulary()
	if err != nil {
		return nil, err
	}
	return NewIngestor(vocab, sink,
		WithLogger(logger),
		WithDefaultAgent(cfg.DefaultAgent),
		WithDefaultRole(act.Role(cfg.DefaultRole)),
	), nil
}

// Act converts a single row. ok is false when the row carries no edit (an
// unknown edit tag); that is not an error whatever the row's role, since
// transcripts mix edits with free-text events. Roles are only checked for
// rows that do carry an edit.
func (i *Ingestor) Act(row Row) (a act.Act, ok bool, err error) {
	edit, ok, err := edit_action.MakeEdit(row.EditTag, row.U, row.V)
	if err != nil || !ok {
		return act.Act{}, false, err
	}

	role := act.Role(row.Role)
	if role == "" {
		role = i.defaultRole
	}
	if !i.vocab.Has(role) {
		return act.Act{}, false, &act.RoleError{Protocol: i.vocab.Name(), Role: role, Msg: "role not in vocabulary"}
	}
	if !i.vocab.WrapsEdit(role) {
		return act.Act{}, false, fmt.Errorf("%w: %s", ErrJudgementRole, role)
	}

	agent := row.Agent
	if agent == "" {
		agent = i.defaultAgent
	}
	a, err = act.New(role, edit, agent)
	if err != nil {
		return act.Act{}, false, err
	}
	return a, true, nil
}

// Ingest appends the acts of rows in order. Rows without an edit are skipped
// and logged; any other problem stops at the offending row with a *RowError.
func (i *Ingestor) Ingest(rows []Row) (Report, error) {
	var report Report
	for idx, row := range rows {
		a, ok, err := i.Act(row)
		if err != nil {
			i.logger.Warn("row rejected",
				zap.Int("row", idx),
				zap.String("role", row.Role),
				zap.String("tag", row.EditTag),
				zap.Error(err),
			)
			return report, &RowError{Index: idx, Err: err}
		}
		if !ok {
			report.Skipped++
			i.logger.Debug("row skipped, not an edit",
				zap.Int("row", idx),
				zap.String("tag", row.EditTag),
			)
			continue
		}
		if _, err := i.sink.Append(a, row.At); err != nil {
			return report, &RowError{Index: idx, Err: err}
		}
		report.Appended++
	}
	i.logger.Info("rows ingested",
		zap.String("protocol", string(i.vocab.Name())),
		zap.Int("appended", report.Appended),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}
