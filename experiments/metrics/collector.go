package metrics

import (
	"connectfour/game"
	"math"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int // Deepest fully completed search
	Nodes       int
	Evaluations int
	Cutoffs     int
	Score       float64
	Duration    time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Agent  string
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a tie or turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID     int
	Name   string
	Depth  int           // 0 for time-bounded agents
	Budget time.Duration // 0 for fixed-depth agents
}

// Collector counts search work. Start resets every counter.
type Collector interface {
	Start()
	SetDepth(depth int)
	SetScore(score float64)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	depth       atomic.Int32
	score       atomic.Uint64 // float64 bits
	nodes       atomic.Int32
	evaluations atomic.Int32
	cutoffs     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.depth.Store(0)
	m.score.Store(0)
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetScore(score float64) {
	m.score.Store(math.Float64bits(score))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Score:       math.Float64frombits(m.score.Load()),
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) SetScore(score float64) {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
