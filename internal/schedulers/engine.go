package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

type Policy string

const (
	FCFS       Policy = "fcfs"
	SJF        Policy = "sjf"
	SRTF       Policy = "srtf"
	RoundRobin Policy = "rr"
)

// Policies lists every supported policy in the order results are reported.
var Policies = []Policy{FCFS, SJF, SRTF, RoundRobin}

func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}
	return "", &core.ValidationError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q", name)}
}

func (p Policy) Title() string {
	switch p {
	case FCFS:
		return "First Come First Serve"
	case SJF:
		return "Shortest Job First"
	case SRTF:
		return "Shortest Remaining Time First"
	case RoundRobin:
		return "Round Robin"
	}
	return string(p)
}

// Simulate runs descriptors through the named policy. quantum is only read by
// round robin.
func Simulate(policy Policy, descriptors []core.ProcessDescriptor, quantum int) (core.SimulationResult, error) {
	switch policy {
	case FCFS:
		return ScheduleFirstComeFirstServe(descriptors)
	case SJF:
		return ScheduleShortestJobFirst(descriptors)
	case SRTF:
		return ScheduleShortestRemainingTimeFirst(descriptors)
	case RoundRobin:
		return ScheduleRoundRobin(descriptors, quantum)
	}
	return core.SimulationResult{}, &core.ValidationError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q", policy)}
}

func policyLogger(policy Policy) *zap.Logger {
	return zap.L().With(zap.String("policy", string(policy)))
}

// execute dispatches p at now and runs it for units, recording the interval.
func execute(log *zap.Logger, timeline *core.Timeline, p *core.ProcessRecord, now, units int) error {
	if p.State != core.Running {
		log.Debug("dispatch", zap.Int("pid", p.ID), zap.String("name", p.Name), zap.Int("time", now))
	}
	if err := p.Dispatch(now); err != nil {
		return err
	}
	if err := p.Execute(now, units); err != nil {
		return err
	}
	timeline.Run(p, now, now+units)
	if p.Done() {
		log.Debug("process completed", zap.Int("pid", p.ID), zap.Int("completion_time", p.CompletionTime))
	}
	return nil
}

// admit marks every process that has arrived by now as ready.
func admit(processes []core.ProcessRecord, now int) {
	for i := range processes {
		processes[i].Admit(now)
	}
}

// nextArrival returns the earliest arrival among processes not yet admitted.
func nextArrival(processes []core.ProcessRecord) (int, bool) {
	found := false
	earliest := 0
	for i := range processes {
		p := &processes[i]
		if p.State != core.Unarrived {
			continue
		}
		if !found || p.ArrivalTime < earliest {
			earliest = p.ArrivalTime
			found = true
		}
	}
	return earliest, found
}

func finish(policy Policy, timeline *core.Timeline, processes []core.ProcessRecord) (core.SimulationResult, error) {
	for i := range processes {
		if !processes[i].Done() {
			return core.SimulationResult{}, &core.InternalInvariantError{
				Policy: string(policy),
				Reason: fmt.Sprintf("process %d finished with %d units remaining", processes[i].ID, processes[i].RemainingTime),
			}
		}
	}
	return core.SimulationResult{Blocks: timeline.Blocks(), Processes: processes}, nil
}

func withPolicy(policy Policy, err error) error {
	var invariant *core.InternalInvariantError
	if errors.As(err, &invariant) && invariant.Policy == "" {
		invariant.Policy = string(policy)
	}
	return err
}
