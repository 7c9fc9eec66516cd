package api

import (
	"github.com/gofiber/fiber/v2"

	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/metrics"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	recorder *metrics.Recorder
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, recorder *metrics.Recorder) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, recorder: recorder}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

// Simulate serves /simulate/:policy for callers that pick the policy at runtime.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		s.recorder.ObserveError("unknown", err)
		return err
	}
	return s.schedule(ctx, policy)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	quantum := s.timeQuantum(request)
	descriptors := request.Descriptors()

	response, err := schedulers.ScheduleAll(descriptors, quantum, s.includeIdle(ctx))
	if err != nil {
		s.recorder.ObserveError("all", err)
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	quantum := s.timeQuantum(request)

	result, err := schedulers.Simulate(policy, request.Descriptors(), quantum)
	if err != nil {
		s.recorder.ObserveError(string(policy), err)
		return err
	}
	s.recorder.Observe(string(policy), result)

	return ctx.JSON(schedulers.GenerateResponse(policy, quantum, result, s.includeIdle(ctx)))
}

// timeQuantum falls back to the configured quantum when the request leaves it out.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) includeIdle(ctx *fiber.Ctx) bool {
	return ctx.QueryBool("idle", s.config.IncludeIdle)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}
