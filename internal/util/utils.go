package util

import (
	"gonum.org/v1/gonum/stat"

	"os-scheduler-sim/internal/core"
)

// CalculateAverage reduces per-process metrics to their means. An empty slice
// yields zeros.
func CalculateAverage(processes []core.ProcessRecord) (averageWaitingTime, averageResponseTime, averageTurnAroundTime, averagePenalty float64) {
	if len(processes) == 0 {
		return
	}

	waiting := make([]float64, len(processes))
	response := make([]float64, len(processes))
	turnAround := make([]float64, len(processes))
	penalty := make([]float64, len(processes))
	for i, p := range processes {
		waiting[i] = float64(p.WaitingTime)
		response[i] = float64(p.ResponseTime)
		turnAround[i] = float64(p.TurnaroundTime)
		penalty[i] = p.Penalty
	}

	averageWaitingTime = stat.Mean(waiting, nil)
	averageResponseTime = stat.Mean(response, nil)
	averageTurnAroundTime = stat.Mean(turnAround, nil)
	averagePenalty = stat.Mean(penalty, nil)
	return
}
