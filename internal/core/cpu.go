package core

// IdleProcessID is the process id carried by idle blocks in a display timeline.
const IdleProcessID = -1

const IdleName = "IDLE"

// GanttBlock is one interval [Start, End) during which the CPU runs a process.
type GanttBlock struct {
	ProcessID int
	Name      string
	Start     int
	End       int
	Idle      bool
}

func (b GanttBlock) Duration() int {
	return b.End - b.Start
}

// Timeline records CPU occupancy for a single simulated CPU. Consecutive runs of
// the same process with no gap between them are merged into one block.
type Timeline struct {
	blocks []GanttBlock
}

// Run records that p occupied the CPU over [start, end).
func (t *Timeline) Run(p *ProcessRecord, start, end int) {
	if n := len(t.blocks); n > 0 {
		last := &t.blocks[n-1]
		if last.ProcessID == p.ID && last.End == start {
			last.End = end
			return
		}
	}
	t.blocks = append(t.blocks, GanttBlock{
		ProcessID: p.ID,
		Name:      p.Name,
		Start:     start,
		End:       end,
	})
}

func (t *Timeline) Blocks() []GanttBlock {
	out := make([]GanttBlock, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// SimulationResult is the engine output: the execution timeline and one record
// per input process.
type SimulationResult struct {
	Blocks    []GanttBlock
	Processes []ProcessRecord
}

// WithIdle returns the timeline with every gap from time 0 to the last block
// filled by an explicit idle block. Blocks itself is left untouched.
func (r SimulationResult) WithIdle() []GanttBlock {
	out := make([]GanttBlock, 0, len(r.Blocks)*2)
	cursor := 0
	for _, b := range r.Blocks {
		if b.Start > cursor {
			out = append(out, GanttBlock{
				ProcessID: IdleProcessID,
				Name:      IdleName,
				Start:     cursor,
				End:       b.Start,
				Idle:      true,
			})
		}
		out = append(out, b)
		cursor = b.End
	}
	return out
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	CpuUtilization  float64
	CpuThroughput   float64
	ContextSwitches int
}

// CpuMetric summarizes how busy the CPU was over the whole run.
func (r SimulationResult) CpuMetric() CpuMetric {
	var metric CpuMetric
	if len(r.Blocks) == 0 {
		return metric
	}
	metric.TotalTime = r.Blocks[len(r.Blocks)-1].End
	for _, b := range r.Blocks {
		metric.UtilizationTime += b.Duration()
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	metric.ContextSwitches = len(r.Blocks) - 1
	if metric.TotalTime > 0 {
		metric.CpuUtilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		metric.CpuThroughput = float64(len(r.Processes)) / float64(metric.TotalTime)
	}
	return metric
}
