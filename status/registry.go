package status

import "sync/atomic"

// Registry is the read-only telemetry facade between the simulation and
// presentation consumers. Systems cache metric pointers at construction and
// write atomics directly; the HUD reads once per rendered frame. Nothing
// reachable from the registry can mutate world state.
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Metric names published by the simulation core and guard
const (
	MetricBodies         = "sim.bodies"
	MetricPairsTested    = "sim.pairs_tested"
	MetricFragEvents     = "sim.frag_events"
	MetricTickCostMicros = "sim.tick_cost_us"
	MetricTicks          = "sim.ticks"
	MetricGuardSeverity  = "guard.severity"
	MetricAiCadenceHz    = "ai.cadence_hz"
	MetricAiTargetScore  = "ai.last_target_score"
	MetricAiThreatScore  = "ai.last_threat_score"
	MetricShotsFired     = "combat.shots_fired"
	MetricShotsHit       = "combat.shots_hit"
	MetricAnomalyClamped = "sim.anomalies_clamped"
	MetricBudgetRejected = "sim.budget_rejected"
	MetricGodMode        = "sim.god_mode"
	MetricSpawnClamped   = "sim.spawn_clamped"
)
