package responses

type GanttBlockResponse struct {
	ProcessId   int    `json:"process_id"`
	ProcessName string `json:"process_name"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Idle        bool   `json:"idle,omitempty"`
}

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	Name           string  `json:"name"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	CompletionTime int     `json:"completion_time"`
	TurnAroundTime int     `json:"turn_around_time"`
	WaitingTime    int     `json:"waiting_time"`
	ResponseTime   int     `json:"response_time"`
	Penalty        float64 `json:"penalty"`
}

type ScheduleResponse struct {
	Algorithm             string               `json:"algorithm"`
	TimeQuantum           int                  `json:"time_quantum,omitempty"`
	TotalTime             int                  `json:"total_time"`
	IdleTime              int                  `json:"idle_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	AveragePenalty        float64              `json:"average_penalty"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"cpu_throughput"`
	ContextSwitches       int                  `json:"context_switches"`
	GanttBlocks           []GanttBlockResponse `json:"gantt_blocks"`
	Details               []ProcessResponse    `json:"details"`
}

type AllAlgorithmsResponse struct {
	Results []ScheduleResponse `json:"results"`
}
