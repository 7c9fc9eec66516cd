// Package workload reads process sets for the command line: YAML (or JSON)
// files and name:arrival:burst shorthand.
package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler-sim/internal/requests"
)

// Load decodes a workload document:
//
//	time_quantum: 4
//	processes:
//	  - {name: P1, arrival_time: 0, burst_time: 5}
//
// JSON documents with the same keys decode too.
func Load(r io.Reader) (requests.ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read workload: %w", err)
	}

	var request requests.ScheduleRequests
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&request); err != nil {
		if err == io.EOF {
			return requests.ScheduleRequests{}, fmt.Errorf("workload is empty")
		}
		return requests.ScheduleRequests{}, fmt.Errorf("decode workload: %w", err)
	}
	return request, nil
}

func LoadFile(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// ParseJob parses "name:arrival:burst". An empty name is kept empty and
// defaulted when the request is converted to descriptors.
func ParseJob(s string) (requests.Job, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return requests.Job{}, fmt.Errorf("process %q: want name:arrival:burst", s)
	}
	arrival, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return requests.Job{}, fmt.Errorf("process %q: arrival: %w", s, err)
	}
	burst, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return requests.Job{}, fmt.Errorf("process %q: burst: %w", s, err)
	}
	return requests.Job{
		Name:        strings.TrimSpace(parts[0]),
		ArrivalTime: arrival,
		BurstTime:   burst,
	}, nil
}

func ParseJobs(specs []string) ([]requests.Job, error) {
	jobs := make([]requests.Job, 0, len(specs))
	for _, s := range specs {
		job, err := ParseJob(s)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
