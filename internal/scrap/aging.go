package scrap

import "time"

// Report summarizes one aging pass.
type Report struct {
	HealthLoss int   // 0 or 1
	Oxidized   []int // Indices of weapons that became oxidized
	Destroyed  []int // Indices of weapons that were destroyed
}

// Coordinator runs the periodic aging pass. The host calls Tick once per
// aging interval; the coordinator keeps no state between calls.
type Coordinator struct {
	interval time.Duration
}

// NewCoordinator creates a coordinator that advances weapons by interval per tick.
func NewCoordinator(interval time.Duration) Coordinator {
	if interval <= 0 {
		interval = DefaultAgingInterval
	}
	return Coordinator{interval: interval}
}

// Interval returns the time each tick advances weapons by.
func (c Coordinator) Interval() time.Duration {
	return c.interval
}

// Tick halves every inventory counter, advances every weapon by one interval
// and charges at most one point of health for the whole pass, however many
// weapons were destroyed by it.
func (c Coordinator) Tick(s *State) Report {
	var report Report

	if s.Inventory != nil {
		s.Inventory.Age()
	}

	destroyedThisRound := false
	for i, w := range s.Weapons {
		if w == nil {
			continue
		}
		before := w.Condition()
		if w.UpdateState(c.interval) {
			report.Destroyed = append(report.Destroyed, i)
			if !destroyedThisRound {
				destroyedThisRound = true
				report.HealthLoss = 1
			}
			continue
		}
		if before == Normal && w.Condition() == Oxidized {
			report.Oxidized = append(report.Oxidized, i)
		}
	}

	s.Damage(report.HealthLoss)
	return report
}
