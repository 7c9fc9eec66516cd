package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/workload"
)

type inputOptions struct {
	file      string
	processes []string
	quantum   int
	idle      bool
	output    string
}

func (o *inputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Workload file (YAML or JSON)")
	cmd.Flags().StringArrayVarP(&o.processes, "process", "p", nil, "Process as name:arrival:burst (repeatable)")
	cmd.Flags().IntVarP(&o.quantum, "quantum", "q", 0, "Round robin time quantum (default from workload or config)")
	cmd.Flags().BoolVar(&o.idle, "idle", false, "Show idle gaps as IDLE blocks")
	cmd.Flags().StringVarP(&o.output, "output", "o", "table", "Output format (table, json)")
}

// load gathers the workload file and --process flags into one request. The
// quantum is taken from the flag, then the file, then the config.
func (o *inputOptions) load(defaultQuantum int) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if o.file != "" {
		loaded, err := workload.LoadFile(o.file)
		if err != nil {
			return requests.ScheduleRequests{}, err
		}
		request = loaded
	}

	jobs, err := workload.ParseJobs(o.processes)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	request.Jobs = append(request.Jobs, jobs...)

	switch {
	case o.quantum != 0:
		request.TimeQuantum = o.quantum
	case request.TimeQuantum == 0:
		request.TimeQuantum = defaultQuantum
	}
	return request, nil
}

func (o *inputOptions) checkOutput() error {
	switch o.output {
	case "table", "json":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table or json)", o.output)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
