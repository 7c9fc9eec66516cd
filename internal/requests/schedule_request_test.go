package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"os-scheduler-sim/internal/core"
)

func TestDescriptors(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{Name: "web", ArrivalTime: 0, BurstTime: 3},
		{ArrivalTime: 2, BurstTime: 1},
		{Name: "web", ArrivalTime: 1, BurstTime: 2},
	}}

	assert.Equal(t, []core.ProcessDescriptor{
		{ID: 0, Name: "web", ArrivalTime: 0, BurstTime: 3},
		{ID: 1, Name: "P2", ArrivalTime: 2, BurstTime: 1},
		{ID: 2, Name: "web", ArrivalTime: 1, BurstTime: 2},
	}, request.Descriptors())
}
