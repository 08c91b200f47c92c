package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the service is operational.
	Healthy Status = "ok"
)

// Report aggregates health information.
type Report struct {
	Status    Status
	Documents int
}

// Service reports service health.
type Service struct {
	docs DocumentCounter
}

// New creates a Service.
func New(docs DocumentCounter) *Service {
	return &Service{docs: docs}
}

// Check returns the current health report. The in-memory store has no
// failure mode of its own, so the status is always healthy.
func (s *Service) Check() Report {
	return Report{Status: Healthy, Documents: s.docs.Count()}
}
