package requests

import (
	"fmt"

	"os-scheduler-sim/internal/core"
)

type Job struct {
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"processes"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum"`
}

// Descriptors converts the submitted jobs into engine input. Ids follow
// submission order and blank names become P1, P2, ...
func (r ScheduleRequests) Descriptors() []core.ProcessDescriptor {
	descriptors := make([]core.ProcessDescriptor, len(r.Jobs))
	for i, job := range r.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		descriptors[i] = core.ProcessDescriptor{
			ID:          i,
			Name:        name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		}
	}
	return descriptors
}
