package act_log

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jtomasevic/graphedit/pkg/act"
)

type InMemoryActLog struct {
	mu sync.RWMutex

	records []Record
	byID    map[RecordID]int

	// first record index per act key, for Contains and Distinct
	firstByKey map[string]int
}

func NewInMemoryActLog() *InMemoryActLog {
	return &InMemoryActLog{
		byID:       make(map[RecordID]int),
		firstByKey: make(map[string]int),
	}
}

func (l *InMemoryActLog) Append(a act.Act, at time.Time) (RecordID, error) {
	if a.IsZero() {
		return uuid.Nil, fmt.Errorf("cannot append an empty act")
	}
	if at.IsZero() {
		at = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec := Record{
		ID:        uuid.New(),
		Seq:       len(l.records),
		Act:       a,
		Timestamp: at,
	}
	l.records = append(l.records, rec)
	l.byID[rec.ID] = rec.Seq

	key := a.Key()
	if _, seen := l.firstByKey[key]; !seen {
		l.firstByKey[key] = rec.Seq
	}
	return rec.ID, nil
}

func (l *InMemoryActLog) GetByID(id RecordID) (Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("record not found: %s", id)
	}
	return l.records[i], nil
}

func (l *InMemoryActLog) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *InMemoryActLog) ByRole(role act.Role) []Record {
	return l.filter(func(r Record) bool { return r.Act.Role() == role })
}

func (l *InMemoryActLog) ByAgent(agent string) []Record {
	return l.filter(func(r Record) bool { return r.Act.Agent() == agent })
}

func (l *InMemoryActLog) filter(keep func(Record) bool) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Record, 0)
	for _, r := range l.records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

func (l *InMemoryActLog) Contains(a act.Act) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.firstByKey[a.Key()]
	return ok
}

func (l *InMemoryActLog) Distinct() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Record, 0, len(l.firstByKey))
	for i, r := range l.records {
		if l.firstByKey[r.Act.Key()] == i {
			result = append(result, r)
		}
	}
	return result
}

func (l *InMemoryActLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
