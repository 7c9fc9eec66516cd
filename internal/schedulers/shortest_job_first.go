package schedulers

import (
	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

// ScheduleShortestJobFirst runs the non-preemptive variant: once picked, a job
// keeps the CPU until it completes.
func ScheduleShortestJobFirst(descriptors []core.ProcessDescriptor) (core.SimulationResult, error) {
	if err := core.ValidateDescriptors(descriptors); err != nil {
		return core.SimulationResult{}, err
	}
	log := policyLogger(SJF)
	log.Debug("running sjf algorithm", zap.Int("processes", len(descriptors)))

	processes := core.NewProcessRecords(descriptors)
	var timeline core.Timeline
	currentTime := 0

	for completed := 0; completed < len(processes); {
		admit(processes, currentTime)
		next := pickShortestJob(processes)
		if next == -1 {
			arrival, ok := nextArrival(processes)
			if !ok {
				return core.SimulationResult{}, &core.InternalInvariantError{Policy: string(SJF), Reason: "no ready or pending process left"}
			}
			log.Debug("cpu idle", zap.Int("from", currentTime), zap.Int("to", arrival))
			currentTime = arrival
			continue
		}

		p := &processes[next]
		if err := execute(log, &timeline, p, currentTime, p.BurstTime); err != nil {
			return core.SimulationResult{}, withPolicy(SJF, err)
		}
		currentTime += p.BurstTime
		completed++
	}

	return finish(SJF, &timeline, processes)
}

// pickShortestJob returns the ready process with the smallest burst, breaking
// ties by arrival and then input position. -1 when nothing is ready.
func pickShortestJob(processes []core.ProcessRecord) int {
	best := -1
	for i := range processes {
		p := &processes[i]
		if p.State != core.Ready {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := &processes[best]
		if p.BurstTime < b.BurstTime || (p.BurstTime == b.BurstTime && p.ArrivalTime < b.ArrivalTime) {
			best = i
		}
	}
	return best
}
