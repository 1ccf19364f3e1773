// Package metrics tracks the performance counters exposed by both engines:
// instructions retired, branches taken, procedure calls, cycles elapsed, and
// wall-clock execution time. Rendering these counters for a user is out of
// scope here; this package only accumulates them.
package metrics

import "time"

// Metrics holds the monotonic counters of a single simulation run. It is
// reset only by constructing a fresh value.
type Metrics struct {
	InstructionCount uint64
	BranchCount      uint64
	ProcedureCount   uint64
	Cycles           uint64

	startTime     time.Time
	ExecutionTime time.Duration
	running       bool
}

// New returns a zeroed Metrics.
func New() *Metrics {
	return &Metrics{}
}

// Start begins wall-clock timing. Calling Start again resets the timer but
// not the counters.
func (m *Metrics) Start() {
	m.startTime = time.Now()
	m.running = true
}

// Stop ends wall-clock timing and records ExecutionTime.
func (m *Metrics) Stop() {
	if !m.running {
		return
	}
	m.ExecutionTime = time.Since(m.startTime)
	m.running = false
}

// ExecutionTimeSeconds returns the recorded execution time in seconds.
func (m *Metrics) ExecutionTimeSeconds() float64 {
	return m.ExecutionTime.Seconds()
}

// RecordInstruction increments the retired-instruction counter.
func (m *Metrics) RecordInstruction() {
	m.InstructionCount++
}

// RecordBranch increments the taken-branch counter.
func (m *Metrics) RecordBranch() {
	m.BranchCount++
}

// RecordProcedure increments the procedure-call (JAL) counter.
func (m *Metrics) RecordProcedure() {
	m.ProcedureCount++
}

// RecordCycle increments the cycle counter. The single-cycle engine calls
// this once per instruction; the pipeline calls it once per engine step
// regardless of how many stages produced useful work.
func (m *Metrics) RecordCycle() {
	m.Cycles++
}
