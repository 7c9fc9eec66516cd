package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/metrics"
)

const scenarioC = `{"jobs": [
	{"name": "P1", "arrival_time": 0, "burst_time": 5},
	{"name": "P2", "arrival_time": 1, "burst_time": 3},
	{"name": "P3", "arrival_time": 2, "burst_time": 1},
	{"name": "P4", "arrival_time": 3, "burst_time": 2}
], "time_quantum": 4}`

func do(app *fiber.App, method, path, body string) (int, gjson.Result, http.Header) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp.StatusCode, gjson.ParseBytes(data), resp.Header
}

var _ = Describe("SchedulerHandler", func() {
	var (
		app      *fiber.App
		registry *prometheus.Registry
	)

	BeforeEach(func() {
		registry = prometheus.NewRegistry()
		cfg := &config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2}
		handler := NewSchedulerHandlerImpl(cfg, metrics.NewRecorder(registry))
		app = NewApp(handler, registry, zap.NewNop())
	})

	Context("with a single policy endpoint", func() {
		It("should schedule fcfs", func() {
			status, body, header := do(app, http.MethodPost, "/api/v1/fcfs", `{"jobs": [
				{"name": "P1", "arrival_time": 0, "burst_time": 5},
				{"name": "P2", "arrival_time": 1, "burst_time": 3},
				{"name": "P3", "arrival_time": 2, "burst_time": 8}]}`)

			Expect(status).To(Equal(http.StatusOK))
			Expect(header.Get(requestIDHeader)).To(HavePrefix("req_"))
			Expect(body.Get("algorithm").String()).To(Equal("fcfs"))
			Expect(body.Get("gantt_blocks.#.process_name").String()).To(Equal(`["P1","P2","P3"]`))
			Expect(body.Get("gantt_blocks.#.end").String()).To(Equal(`[5,8,16]`))
			Expect(body.Get("details.#.completion_time").String()).To(Equal(`[5,8,16]`))
			Expect(body.Get("time_quantum").Exists()).To(BeFalse())
		})

		It("should use the request quantum for round robin", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/rr", scenarioC)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("time_quantum").Int()).To(Equal(int64(4)))
			Expect(body.Get("gantt_blocks.#.process_name").String()).To(Equal(`["P1","P2","P3","P4","P1"]`))
			Expect(body.Get("average_turn_around_time").Float()).To(BeNumerically("~", 7.5, 1e-9))
		})

		It("should fall back to the configured quantum", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/rr", `{"jobs": [{"name": "A", "arrival_time": 0, "burst_time": 3}, {"name": "B", "arrival_time": 0, "burst_time": 3}]}`)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("time_quantum").Int()).To(Equal(int64(2)))
			Expect(body.Get("gantt_blocks.#.end").String()).To(Equal(`[2,4,5,6]`))
		})

		It("should default blank process names", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/sjf", `{"jobs": [{"arrival_time": 0, "burst_time": 2}, {"arrival_time": 0, "burst_time": 1}]}`)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("gantt_blocks.#.process_name").String()).To(Equal(`["P2","P1"]`))
		})

		It("should include idle blocks on request", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/srtf?idle=true", `{"jobs": [{"name": "P1", "arrival_time": 3, "burst_time": 1}]}`)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("gantt_blocks.0.idle").Bool()).To(BeTrue())
			Expect(body.Get("gantt_blocks.0.process_name").String()).To(Equal("IDLE"))
			Expect(body.Get("gantt_blocks.1.start").Int()).To(Equal(int64(3)))
			Expect(body.Get("idle_time").Int()).To(Equal(int64(3)))
		})
	})

	Context("with the generic simulate endpoint", func() {
		It("should dispatch by policy name", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/simulate/SRTF", `{"jobs": [
				{"name": "P1", "arrival_time": 0, "burst_time": 8},
				{"name": "P2", "arrival_time": 1, "burst_time": 4},
				{"name": "P3", "arrival_time": 2, "burst_time": 9},
				{"name": "P4", "arrival_time": 3, "burst_time": 5}]}`)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("algorithm").String()).To(Equal("srtf"))
			Expect(body.Get("details.#.completion_time").String()).To(Equal(`[17,5,26,10]`))
		})

		It("should reject an unknown policy", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/simulate/mlfq", scenarioC)

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body.Get("error").String()).To(ContainSubstring("unknown policy"))
			Expect(body.Get("request_id").String()).To(HavePrefix("req_"))
		})
	})

	Context("with invalid input", func() {
		It("should reject malformed json", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/fcfs", `{"jobs": [`)

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body.Get("error").String()).To(Equal("invalid request format"))
		})

		It("should reject an empty process list", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/sjf", `{"jobs": []}`)

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body.Get("error").String()).To(ContainSubstring("at least one process"))
		})

		It("should reject a zero burst", func() {
			status, _, _ := do(app, http.MethodPost, "/api/v1/fcfs", `{"jobs": [{"name": "P1", "arrival_time": 0, "burst_time": 0}]}`)
			Expect(status).To(Equal(http.StatusBadRequest))
		})

		It("should reject a negative quantum", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/rr", `{"jobs": [{"name": "P1", "arrival_time": 0, "burst_time": 1}], "time_quantum": -1}`)

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body.Get("error").String()).To(ContainSubstring("time_quantum"))
		})

		It("should echo the caller's request id", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/fcfs", strings.NewReader(`{"jobs": []}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(requestIDHeader, "trace-123")
			resp, err := app.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get(requestIDHeader)).To(Equal("trace-123"))
		})
	})

	Context("with all algorithms", func() {
		It("should return every policy in order", func() {
			status, body, _ := do(app, http.MethodPost, "/api/v1/all", scenarioC)

			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("results.#.algorithm").String()).To(Equal(`["fcfs","sjf","srtf","rr"]`))
			Expect(body.Get("results.3.time_quantum").Int()).To(Equal(int64(4)))
		})
	})

	Context("with operational endpoints", func() {
		It("should report health", func() {
			status, body, _ := do(app, http.MethodGet, "/healthz", "")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body.Get("status").String()).To(Equal("ok"))
		})

		It("should expose simulation metrics", func() {
			status, _, _ := do(app, http.MethodPost, "/api/v1/fcfs", scenarioC)
			Expect(status).To(Equal(http.StatusOK))

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			resp, err := app.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			data, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`schedsim_simulations_total{policy="fcfs"} 1`))
		})
	})
})
