package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jtomasevic/graphedit/pkg/act"
	"github.com/jtomasevic/graphedit/pkg/act_log"
	"github.com/jtomasevic/graphedit/pkg/config"
	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestIngest_PhysicalLog(t *testing.T) {
	logger, logs := observed()
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolB, sink, WithLogger(logger))

	rows := []Row{
		{EditTag: "ADD", U: 1, V: 2},
		{EditTag: "CHAT", U: nil, V: nil, Agent: "human"},
		{EditTag: "REMOVE", U: "4", V: 7.0, Agent: "robot"},
		{EditTag: "ADD", U: 3, V: nil},
	}
	report, err := ing.Ingest(rows)
	require.NoError(t, err)
	require.Equal(t, Report{Appended: 3, Skipped: 1}, report)

	all := sink.All()
	require.Len(t, all, 3)
	require.Equal(t, "DO_X(ADD(1,2))", act.ProtocolB.Format(all[0].Act))
	require.Equal(t, "DO_robot(REMOVE(4,7))", act.ProtocolB.Format(all[1].Act))
	require.Equal(t, "DO_X(ADD(3,?))", act.ProtocolB.Format(all[2].Act))

	require.Equal(t, 1, logs.FilterMessage("row skipped, not an edit").Len())
	require.Equal(t, 1, logs.FilterMessage("rows ingested").Len())
}

func TestIngest_TranscriptRoles(t *testing.T) {
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolA, sink, WithDefaultAgent("robot"))

	report, err := ing.Ingest([]Row{
		{Role: "SUGGEST", EditTag: "ADD", U: 1, V: 2, Agent: "human"},
		{Role: "FREE", EditTag: "REMOVE", U: 5, V: nil},
		{EditTag: "ADD", U: 2, V: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, report.Appended)

	all := sink.All()
	edit := edit_action.NewAdd(edit_action.FullEdge(1, 2))
	require.True(t, all[0].Act.Equal(act.NewSuggest(edit, "human")))
	require.Equal(t, "FREE_robot(REMOVE(5, None))", all[1].Act.String())
	require.True(t, all[2].Act.Equal(act.NewDo(edit, "robot")))
}

func TestIngest_StopsOnBadEndpoint(t *testing.T) {
	logger, logs := observed()
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolB, sink, WithLogger(logger))

	report, err := ing.Ingest([]Row{
		{EditTag: "ADD", U: 1, V: 2},
		{EditTag: "ADD", U: "one", V: 2},
		{EditTag: "ADD", U: 3, V: 4},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, edit_action.ErrConstruction)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 1, rowErr.Index)
	require.Equal(t, 1, report.Appended)
	require.Equal(t, 1, sink.Len())
	require.Equal(t, 1, logs.FilterMessage("row rejected").Len())
}

func TestIngest_RejectsRolesOutsideRowScope(t *testing.T) {
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolB, sink)

	_, err := ing.Ingest([]Row{{Role: "SUGGEST", EditTag: "ADD", U: 1, V: 2}})
	require.ErrorIs(t, err, act.ErrRole)

	_, err = ing.Ingest([]Row{{Role: "MATCH", EditTag: "ADD", U: 1, V: 2}})
	require.ErrorIs(t, err, ErrJudgementRole)
	require.Equal(t, 0, sink.Len())
}

func TestIngest_SkipsNonEditsWhateverTheirRole(t *testing.T) {
	logger, logs := observed()
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolA, sink, WithLogger(logger))

	report, err := ing.Ingest([]Row{
		{Role: "SUGGEST", EditTag: "ADD", U: 1, V: 2, Agent: "A"},
		{Role: "ACCEPT", EditTag: "", Agent: "B"},
		{Role: "UTTERANCE", EditTag: "CHAT", Agent: "B"},
		{Role: "DO", EditTag: "ADD", U: 2, V: 1, Agent: "B"},
	})
	require.NoError(t, err)
	require.Equal(t, Report{Appended: 2, Skipped: 2}, report)
	require.Equal(t, 2, logs.FilterMessage("row skipped, not an edit").Len())
	require.Equal(t, 0, logs.FilterMessage("row rejected").Len())
}

func TestIngest_RejectsUnrenderableAgent(t *testing.T) {
	sink := act_log.NewInMemoryActLog()
	ing := NewIngestor(act.ProtocolB, sink)

	report, err := ing.Ingest([]Row{
		{EditTag: "ADD", U: 1, V: 2, Agent: "robot"},
		{EditTag: "ADD", U: 3, V: 4, Agent: "robot)"},
	})
	require.ErrorIs(t, err, act.ErrAgent)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 1, rowErr.Index)
	require.Equal(t, 1, report.Appended)
}

func TestIngestor_Act(t *testing.T) {
	ing := NewIngestor(act.ProtocolB, act_log.NewInMemoryActLog())

	a, ok, err := ing.Act(Row{Role: "INSTRUCT", EditTag: "ADD", U: 1, V: nil, Agent: "Y"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "INSTRUCT_Y(ADD(1,?))", act.ProtocolB.Format(a))

	_, ok, err = ing.Act(Row{EditTag: "FOO", U: 1, V: 2})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Protocol = "A"
	cfg.DefaultRole = "SUGGEST"
	cfg.DefaultAgent = "human"

	sink := act_log.NewInMemoryActLog()
	ing, err := FromConfig(cfg, sink, nil)
	require.NoError(t, err)

	_, err = ing.Ingest([]Row{{EditTag: "ADD", U: 1, V: 2}})
	require.NoError(t, err)
	require.Equal(t, "SUGGEST_human(ADD(1, 2))", sink.All()[0].Act.String())

	cfg.DefaultRole = "MATCH"
	_, err = FromConfig(cfg, sink, nil)
	require.ErrorIs(t, err, config.ErrConfig)
}
