package metrics

import (
	"time"

	"github.com/google/uuid"
	"github.com/ur-fault/checkengine/game"
)

type SearchMetric struct {
	MaxDepth  int
	Duration  time.Duration
	Nodes     int // positions visited
	Leaves    int // static evaluations at the depth cut
	Terminals int // decided positions
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer game.Color
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Turns          int
}

type Collector interface {
	Start(maxDepth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	Complete() SearchMetric
}

// collector counts the work of a single search. Searches are sequential, so
// plain counters suffice.
type collector struct {
	maxDepth  int
	startTime time.Time
	nodes     int
	leaves    int
	terminals int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int) {
	*m = collector{maxDepth: maxDepth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxDepth:  m.maxDepth,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Terminals: m.terminals,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int)     {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
