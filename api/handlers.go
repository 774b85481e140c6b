package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

func (s *Server) listPolicies(c *fiber.Ctx) error {
	return c.JSON(PoliciesResponse{
		Policies: sim.SchedulerNames(),
		Aliases: map[string]string{
			"round-robin": sim.PolicyRoundRobin,
			"fair-share":  sim.PolicyCFS,
		},
	})
}

func (s *Server) simulate(c *fiber.Ctx) error {
	policy, ok := sim.CanonicalSchedulerName(c.Params("policy"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("unknown policy %q; valid: %v", c.Params("policy"), sim.SchedulerNames()))
	}
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	resp, err := s.run(policy, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (s *Server) compare(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	out := CompareResponse{Results: make([]*SimulateResponse, 0, len(sim.ValidSchedulers))}
	for _, policy := range sim.SchedulerNames() {
		resp, err := s.run(policy, req)
		if err != nil {
			return err
		}
		out.Results = append(out.Results, resp)
	}
	return c.JSON(out)
}

func parseRequest(c *fiber.Ctx) (SimulateRequest, error) {
	var req SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
	}
	return req, nil
}

// run answers from the cache when possible. Invalid input maps to 400.
func (s *Server) run(policy string, req SimulateRequest) (*SimulateResponse, error) {
	key, err := s.cache.key(policy, req)
	if err != nil {
		return nil, err
	}
	if resp, ok := s.cache.get(key); ok {
		logrus.Debugf("cache hit for %s (key %016x)", policy, key)
		return resp, nil
	}

	res, err := sim.Simulate(policy, req.config(), req.Processes)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	resp := newSimulateResponse(res)
	s.cache.set(key, resp)
	return resp, nil
}
