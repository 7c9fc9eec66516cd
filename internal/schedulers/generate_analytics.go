package schedulers

import (
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/responses"
	"os-scheduler-sim/internal/util"
)

// GenerateResponse flattens a simulation into the API/CLI response shape.
// timeQuantum is reported for round robin only.
func GenerateResponse(policy Policy, timeQuantum int, result core.SimulationResult, includeIdle bool) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime, averagePenalty := util.CalculateAverage(result.Processes)
	cpuMetric := result.CpuMetric()

	blocks := result.Blocks
	if includeIdle {
		blocks = result.WithIdle()
	}

	response := responses.ScheduleResponse{
		Algorithm:             string(policy),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AveragePenalty:        averagePenalty,
		CpuUtilization:        cpuMetric.CpuUtilization,
		CpuThroughput:         cpuMetric.CpuThroughput,
		ContextSwitches:       cpuMetric.ContextSwitches,
		GanttBlocks:           make([]responses.GanttBlockResponse, 0, len(blocks)),
		Details:               make([]responses.ProcessResponse, 0, len(result.Processes)),
	}
	if policy == RoundRobin {
		response.TimeQuantum = timeQuantum
	}

	for _, b := range blocks {
		response.GanttBlocks = append(response.GanttBlocks, responses.GanttBlockResponse{
			ProcessId:   b.ProcessID,
			ProcessName: b.Name,
			Start:       b.Start,
			End:         b.End,
			Idle:        b.Idle,
		})
	}
	for _, p := range result.Processes {
		response.Details = append(response.Details, generateProcessDetails(p))
	}
	return response
}

func generateProcessDetails(process core.ProcessRecord) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		Name:           process.Name,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		CompletionTime: process.CompletionTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
		ResponseTime:   process.ResponseTime,
		Penalty:        process.Penalty,
	}
}

// ScheduleAll runs every policy on the same input, in Policies order. The first
// failure aborts the whole comparison.
func ScheduleAll(descriptors []core.ProcessDescriptor, timeQuantum int, includeIdle bool) (responses.AllAlgorithmsResponse, error) {
	all := responses.AllAlgorithmsResponse{Results: make([]responses.ScheduleResponse, 0, len(Policies))}
	for _, policy := range Policies {
		result, err := Simulate(policy, descriptors, timeQuantum)
		if err != nil {
			return responses.AllAlgorithmsResponse{}, err
		}
		all.Results = append(all.Results, GenerateResponse(policy, timeQuantum, result, includeIdle))
	}
	return all, nil
}
