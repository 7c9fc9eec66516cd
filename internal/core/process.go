package core

import "fmt"

// ResponseUnset marks a record that has never been dispatched.
const ResponseUnset = -1

type State int

const (
	Unarrived State = iota
	Ready
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Unarrived:
		return "unarrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ProcessDescriptor is the immutable input for one process.
type ProcessDescriptor struct {
	ID          int
	Name        string
	ArrivalTime int
	BurstTime   int
}

// ProcessRecord is a descriptor plus the bookkeeping a policy mutates while it runs.
// Once State is Completed the record is frozen.
type ProcessRecord struct {
	ProcessDescriptor

	State          State
	RemainingTime  int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
	Penalty        float64
}

func NewProcessRecord(d ProcessDescriptor) ProcessRecord {
	return ProcessRecord{
		ProcessDescriptor: d,
		State:             Unarrived,
		RemainingTime:     d.BurstTime,
		ResponseTime:      ResponseUnset,
	}
}

// NewProcessRecords copies descriptors into fresh records, keeping input order.
func NewProcessRecords(descriptors []ProcessDescriptor) []ProcessRecord {
	records := make([]ProcessRecord, len(descriptors))
	for i, d := range descriptors {
		records[i] = NewProcessRecord(d)
	}
	return records
}

// Admit moves an unarrived record to Ready once its arrival time has passed.
func (p *ProcessRecord) Admit(now int) bool {
	if p.State != Unarrived || p.ArrivalTime > now {
		return false
	}
	p.State = Ready
	return true
}

// Dispatch puts the record on the CPU at time now. The response time is fixed
// on the first dispatch only.
func (p *ProcessRecord) Dispatch(now int) error {
	switch p.State {
	case Completed:
		return &InternalInvariantError{Reason: fmt.Sprintf("process %d dispatched after completion", p.ID)}
	case Unarrived:
		if p.ArrivalTime > now {
			return &InternalInvariantError{Reason: fmt.Sprintf("process %d dispatched at %d before arrival %d", p.ID, now, p.ArrivalTime)}
		}
	}
	if p.ResponseTime == ResponseUnset {
		p.ResponseTime = now - p.ArrivalTime
	}
	p.State = Running
	return nil
}

// Execute consumes units of CPU time. When the remaining time reaches zero the
// record is completed at now+units.
func (p *ProcessRecord) Execute(now, units int) error {
	if p.State != Running {
		return &InternalInvariantError{Reason: fmt.Sprintf("process %d executed while %s", p.ID, p.State)}
	}
	if units < 1 || units > p.RemainingTime {
		return &InternalInvariantError{Reason: fmt.Sprintf("process %d asked to run %d units with %d remaining", p.ID, units, p.RemainingTime)}
	}
	p.RemainingTime -= units
	if p.RemainingTime == 0 {
		p.complete(now + units)
	}
	return nil
}

// Preempt returns a running record to the ready state.
func (p *ProcessRecord) Preempt() {
	if p.State == Running {
		p.State = Ready
	}
}

func (p *ProcessRecord) complete(at int) {
	p.State = Completed
	p.CompletionTime = at
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.Penalty = float64(p.TurnaroundTime) / float64(p.BurstTime)
}

func (p *ProcessRecord) Done() bool {
	return p.State == Completed
}

// Eligible reports whether the record can be picked at time now.
func (p *ProcessRecord) Eligible(now int) bool {
	return p.State != Completed && p.ArrivalTime <= now && p.RemainingTime > 0
}
