package api

import "github.com/schedsim/schedsim/sim"

// SimulateRequest is the body of the simulate and compare endpoints.
type SimulateRequest struct {
	Quantum   int64             `json:"quantum"`
	Overhead  int64             `json:"overhead"`
	DiskCost  int64             `json:"disk_cost"`
	Processes []sim.ProcessSpec `json:"processes"`
}

func (r SimulateRequest) config() sim.Config {
	return sim.NewConfig(r.Quantum, r.Overhead, r.DiskCost)
}

// SimulateResponse is the outcome of one policy run.
type SimulateResponse struct {
	Policy    string         `json:"policy"`
	Clock     int64          `json:"clock"`
	IdleTime  int64          `json:"idle_time"`
	Summary   sim.Summary    `json:"summary"`
	Processes []*sim.Process `json:"processes"`
}

// CompareResponse holds one run per policy, in policy-name order.
type CompareResponse struct {
	Results []*SimulateResponse `json:"results"`
}

// PoliciesResponse lists the accepted policy names.
type PoliciesResponse struct {
	Policies []string          `json:"policies"`
	Aliases  map[string]string `json:"aliases"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newSimulateResponse(res *sim.Result) *SimulateResponse {
	return &SimulateResponse{
		Policy:    res.Policy,
		Clock:     res.Clock,
		IdleTime:  res.IdleTime,
		Summary:   sim.Summarize(res),
		Processes: res.Finished,
	}
}
