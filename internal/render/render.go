// Package render draws simulation responses for a terminal.
package render

import (
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"os-scheduler-sim/internal/responses"
)

// unitWidth is the number of columns one time unit takes in the Gantt bar.
const unitWidth = 2

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

var processColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// colorFor picks a palette entry from the process name so the same name keeps
// its color across policies.
func colorFor(b responses.GanttBlockResponse) func(a ...interface{}) string {
	if b.Idle {
		return dim
	}
	h := fnv.New32a()
	h.Write([]byte(b.ProcessName))
	return processColors[h.Sum32()%uint32(len(processColors))]
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Gantt writes a one-line bar with a time axis underneath. Gaps in a timeline
// without idle blocks are drawn as "~~~".
func Gantt(w io.Writer, blocks []responses.GanttBlockResponse) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, dim("(empty timeline)"))
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for i, b := range blocks {
		if i > 0 && b.Start > blocks[i-1].End {
			bar.WriteString("~~~|")
			axis.WriteString(padRight(strconv.Itoa(blocks[i-1].End), 4))
		}
		width := max((b.End-b.Start)*unitWidth, len(b.ProcessName)+2)
		bar.WriteString(colorFor(b)(center(b.ProcessName, width)))
		bar.WriteString("|")
		axis.WriteString(padRight(strconv.Itoa(b.Start), width+1))
	}
	axis.WriteString(strconv.Itoa(blocks[len(blocks)-1].End))

	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Table writes the per-process results with an averages footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response", "Penalty"})
	for _, p := range response.Details {
		table.Append([]string{
			p.Name,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnAroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
			formatFloat(p.Penalty),
		})
	}
	table.SetFooter([]string{"Average", "", "", "",
		formatFloat(response.AverageTurnAroundTime),
		formatFloat(response.AverageWaitingTime),
		formatFloat(response.AverageResponseTime),
		formatFloat(response.AveragePenalty),
	})
	table.Render()
}

func Summary(w io.Writer, title string, response responses.ScheduleResponse) {
	fmt.Fprintln(w, bold(title))
	fmt.Fprintf(w, "total time %d, idle %d, utilization %s%%, throughput %s/t, context switches %d\n",
		response.TotalTime, response.IdleTime,
		formatFloat(response.CpuUtilization*100), formatFloat(response.CpuThroughput),
		response.ContextSwitches)
}

// Report is Summary, Gantt and Table in that order.
func Report(w io.Writer, title string, response responses.ScheduleResponse) {
	Summary(w, title, response)
	fmt.Fprintln(w)
	Gantt(w, response.GanttBlocks)
	fmt.Fprintln(w)
	Table(w, response)
}

// Comparison writes one row of averages per algorithm.
func Comparison(w io.Writer, all responses.AllAlgorithmsResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response", "Avg Penalty", "Total Time", "Ctx Switches"})
	for _, r := range all.Results {
		name := r.Algorithm
		if r.TimeQuantum > 0 {
			name = fmt.Sprintf("%s (q=%d)", r.Algorithm, r.TimeQuantum)
		}
		table.Append([]string{
			name,
			formatFloat(r.AverageTurnAroundTime),
			formatFloat(r.AverageWaitingTime),
			formatFloat(r.AverageResponseTime),
			formatFloat(r.AveragePenalty),
			strconv.Itoa(r.TotalTime),
			strconv.Itoa(r.ContextSwitches),
		})
	}
	table.Render()
}
