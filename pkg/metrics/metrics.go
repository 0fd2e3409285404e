package metrics

import (
	"runtime"
	"time"
)

// slowAnalysisThreshold marks runs worth flagging for operators.
const slowAnalysisThreshold = 30 * time.Second

// RecordAnalysis records one analysis run with its duration
func (r *Registry) RecordAnalysis(algorithm, status string, duration time.Duration, nodesSwept int) {
	r.AnalysesTotal.WithLabelValues(algorithm, status).Inc()
	r.AnalysisDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.AnalysisNodesSwept.WithLabelValues(algorithm).Observe(float64(nodesSwept))

	if duration > slowAnalysisThreshold {
		r.SlowAnalyses.WithLabelValues(algorithm).Inc()
	}
}

// RecordLoad records one graph load run
func (r *Registry) RecordLoad(source, status string, duration time.Duration, loaded, skipped int) {
	r.LoaderRunsTotal.WithLabelValues(source, status).Inc()
	r.LoaderDuration.WithLabelValues(source).Observe(duration.Seconds())
	r.LoaderEdgesTotal.WithLabelValues("loaded").Add(float64(loaded))
	r.LoaderEdgesTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// UpdateGraphMetrics updates the gauges describing the loaded graph
func (r *Registry) UpdateGraphMetrics(nodes, edges, components int, density, avgDegree float64) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphComponents.Set(float64(components))
	r.GraphDensity.Set(density)
	r.GraphAvgDegree.Set(avgDegree)
}

// RecordPartition updates the gauges for the last community detection run
func (r *Registry) RecordPartition(communities int, modularity float64) {
	r.CommunitiesFound.Set(float64(communities))
	r.ModularityScore.Set(modularity)
}

// UpdateSystemMetrics refreshes the process-level gauges
func (r *Registry) UpdateSystemMetrics(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
