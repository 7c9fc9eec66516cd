package schedulers

import (
	"sort"

	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

func ScheduleFirstComeFirstServe(descriptors []core.ProcessDescriptor) (core.SimulationResult, error) {
	if err := core.ValidateDescriptors(descriptors); err != nil {
		return core.SimulationResult{}, err
	}
	log := policyLogger(FCFS)
	log.Debug("running fcfs algorithm", zap.Int("processes", len(descriptors)))

	// sort jobs by arrival time, equal arrivals keep submission order
	processes := core.NewProcessRecords(descriptors)
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	var timeline core.Timeline
	currentTime := 0
	for i := range processes {
		p := &processes[i]
		if currentTime < p.ArrivalTime {
			log.Debug("cpu idle", zap.Int("from", currentTime), zap.Int("to", p.ArrivalTime))
			currentTime = p.ArrivalTime
		}
		p.Admit(currentTime)
		if err := execute(log, &timeline, p, currentTime, p.BurstTime); err != nil {
			return core.SimulationResult{}, withPolicy(FCFS, err)
		}
		currentTime += p.BurstTime
	}

	return finish(FCFS, &timeline, processes)
}
