package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-sim/internal/responses"
)

func init() {
	color.NoColor = true
}

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "fcfs",
		TotalTime:             16,
		AverageTurnAroundTime: 8.67,
		AverageWaitingTime:    3.33,
		AverageResponseTime:   3.33,
		AveragePenalty:        1.47,
		CpuUtilization:        1,
		CpuThroughput:         0.1875,
		ContextSwitches:       2,
		GanttBlocks: []responses.GanttBlockResponse{
			{ProcessId: 0, ProcessName: "P1", Start: 0, End: 5},
			{ProcessId: 1, ProcessName: "P2", Start: 5, End: 8},
			{ProcessId: 2, ProcessName: "P3", Start: 8, End: 16},
		},
		Details: []responses.ProcessResponse{
			{ProcessId: 0, Name: "P1", ArrivalTime: 0, BurstTime: 5, CompletionTime: 5, TurnAroundTime: 5, Penalty: 1},
			{ProcessId: 1, Name: "P2", ArrivalTime: 1, BurstTime: 3, CompletionTime: 8, TurnAroundTime: 7, WaitingTime: 4, ResponseTime: 4, Penalty: 7.0 / 3},
			{ProcessId: 2, Name: "P3", ArrivalTime: 2, BurstTime: 8, CompletionTime: 16, TurnAroundTime: 14, WaitingTime: 6, ResponseTime: 6, Penalty: 1.75},
		},
	}
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, sampleResponse().GanttBlocks)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "|    P1    |  P2  |       P3       |", lines[0])
	assert.Equal(t, "0          5      8                16", lines[1])
}

func TestGantt_Gap(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, []responses.GanttBlockResponse{
		{ProcessName: "A", Start: 0, End: 2},
		{ProcessName: "B", Start: 4, End: 5},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "| A  |~~~| B |", lines[0])
	assert.Equal(t, "0    2   4   5", lines[1])
}

func TestGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, nil)
	assert.Contains(t, buf.String(), "empty timeline")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleResponse())

	output := buf.String()
	assert.Contains(t, output, "P3")
	assert.Contains(t, output, "2.33")
	assert.Contains(t, output, "8.67")
	assert.Contains(t, strings.ToUpper(output), "AVERAGE")
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, "First Come First Serve", sampleResponse())

	output := buf.String()
	assert.Contains(t, output, "First Come First Serve")
	assert.Contains(t, output, "utilization 100.00%")
	assert.Contains(t, output, "context switches 2")
}

func TestComparison(t *testing.T) {
	rr := sampleResponse()
	rr.Algorithm = "rr"
	rr.TimeQuantum = 4

	var buf bytes.Buffer
	Comparison(&buf, responses.AllAlgorithmsResponse{Results: []responses.ScheduleResponse{sampleResponse(), rr}})

	output := buf.String()
	assert.Contains(t, output, "fcfs")
	assert.Contains(t, output, "rr (q=4)")
}
