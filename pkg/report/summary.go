package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/tburke/sociograph/pkg/analytics"
	"github.com/tburke/sociograph/pkg/graph"
)

// Summary is the run-level overview of an analyzed graph.
type Summary struct {
	RunID       string
	GeneratedAt time.Time

	Nodes         int
	Edges         int
	Components    int
	Density       float64
	AverageDegree float64

	// Path statistics are only defined on connected graphs
	AveragePathLength *float64
	Diameter          *int

	// Community statistics, when detection ran
	Communities *int
	Modularity  *float64

	Duration time.Duration
}

// NewSummary captures the structural overview of a loaded graph.
func NewSummary(g *graph.Graph) *Summary {
	return &Summary{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		Components:    len(analytics.ConnectedComponents(g)),
		Density:       g.Density(),
		AverageDegree: g.AverageDegree(),
	}
}

// AttachPathStats records whole-graph geodesic statistics.
func (s *Summary) AttachPathStats(avg float64, diameter int) {
	s.AveragePathLength = &avg
	s.Diameter = &diameter
}

// AttachPartition records the outcome of community detection.
func (s *Summary) AttachPartition(p *analytics.PartitionResult) {
	n := len(p.Communities)
	s.Communities = &n
	s.Modularity = &p.Modularity
}

// ScoreTable is one ranked centrality listing for rendering.
type ScoreTable struct {
	Title string
	Rows  []analytics.RankedNode
}
