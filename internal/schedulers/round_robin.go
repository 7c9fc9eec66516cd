package schedulers

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

func ScheduleRoundRobin(descriptors []core.ProcessDescriptor, timeQuantum int) (core.SimulationResult, error) {
	if err := core.ValidateDescriptors(descriptors); err != nil {
		return core.SimulationResult{}, err
	}
	if timeQuantum < 1 {
		return core.SimulationResult{}, &core.ValidationError{Field: "time_quantum", Reason: fmt.Sprintf("must be >= 1, got %d", timeQuantum)}
	}
	log := policyLogger(RoundRobin)
	log.Debug("running roundRobin algorithm", zap.Int("time_quantum", timeQuantum), zap.Int("processes", len(descriptors)))

	// arrival order only decides admission; the queue decides execution
	processes := core.NewProcessRecords(descriptors)
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	queue := make([]int, 0, len(processes))
	admitted := 0
	admitArrived := func(now int) {
		for admitted < len(processes) && processes[admitted].ArrivalTime <= now {
			processes[admitted].Admit(now)
			queue = append(queue, admitted)
			admitted++
		}
	}

	var timeline core.Timeline
	currentTime := 0
	admitArrived(currentTime)

	for completed := 0; completed < len(processes); {
		if len(queue) == 0 {
			if admitted == len(processes) {
				return core.SimulationResult{}, &core.InternalInvariantError{Policy: string(RoundRobin), Reason: "ready queue drained with work remaining"}
			}
			arrival := processes[admitted].ArrivalTime
			log.Debug("cpu idle", zap.Int("from", currentTime), zap.Int("to", arrival))
			currentTime = arrival
			admitArrived(currentTime)
			continue
		}

		index := queue[0]
		queue = queue[1:]
		p := &processes[index]

		slice := min(timeQuantum, p.RemainingTime)
		if err := execute(log, &timeline, p, currentTime, slice); err != nil {
			return core.SimulationResult{}, withPolicy(RoundRobin, err)
		}
		currentTime += slice

		// newcomers queue up ahead of the process whose quantum just expired
		admitArrived(currentTime)

		if p.Done() {
			completed++
			continue
		}
		p.Preempt()
		queue = append(queue, index)
	}

	return finish(RoundRobin, &timeline, processes)
}
