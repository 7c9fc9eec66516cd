package schedulers

import (
	"fmt"

	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

// ScheduleShortestRemainingTimeFirst is the preemptive form of SJF. The choice
// is revisited every time unit.
func ScheduleShortestRemainingTimeFirst(descriptors []core.ProcessDescriptor) (core.SimulationResult, error) {
	if err := core.ValidateDescriptors(descriptors); err != nil {
		return core.SimulationResult{}, err
	}
	log := policyLogger(SRTF)
	log.Debug("running srtf algorithm", zap.Int("processes", len(descriptors)))

	processes := core.NewProcessRecords(descriptors)
	horizon := srtfHorizon(processes)

	var timeline core.Timeline
	currentTime := 0
	running := -1

	for completed := 0; completed < len(processes); {
		if currentTime >= horizon {
			return core.SimulationResult{}, &core.InternalInvariantError{
				Policy: string(SRTF),
				Reason: fmt.Sprintf("time %d reached the bound %d with %d processes unfinished", currentTime, horizon, len(processes)-completed),
			}
		}

		admit(processes, currentTime)
		next := pickShortestRemaining(processes)
		if next == -1 {
			running = -1
			currentTime++
			continue
		}

		if running != -1 && running != next {
			log.Debug("preempt", zap.Int("pid", processes[running].ID), zap.Int("time", currentTime))
			processes[running].Preempt()
		}

		p := &processes[next]
		if err := execute(log, &timeline, p, currentTime, 1); err != nil {
			return core.SimulationResult{}, withPolicy(SRTF, err)
		}
		currentTime++
		running = next
		if p.Done() {
			completed++
			running = -1
		}
	}

	return finish(SRTF, &timeline, processes)
}

// srtfHorizon is the latest time a work-conserving single CPU can still be busy:
// the last arrival plus all the work there is.
func srtfHorizon(processes []core.ProcessRecord) int {
	lastArrival, work := 0, 0
	for i := range processes {
		if processes[i].ArrivalTime > lastArrival {
			lastArrival = processes[i].ArrivalTime
		}
		work += processes[i].BurstTime
	}
	return lastArrival + work
}

// pickShortestRemaining returns the arrived, unfinished process with the least
// remaining time. Ties go to the earlier arrival, then the earlier input position.
func pickShortestRemaining(processes []core.ProcessRecord) int {
	best := -1
	for i := range processes {
		p := &processes[i]
		if p.State != core.Ready && p.State != core.Running {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := &processes[best]
		if p.RemainingTime < b.RemainingTime || (p.RemainingTime == b.RemainingTime && p.ArrivalTime < b.ArrivalTime) {
			best = i
		}
	}
	return best
}
