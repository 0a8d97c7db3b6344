package domain

// HealthStatus grades one diagnostic check.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
	HealthFail HealthStatus = "fail"
)

// HealthCheck is a single named diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Message string
}

// HealthReport aggregates doctor checks.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether no check failed outright.
func (r HealthReport) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == HealthFail {
			return false
		}
	}
	return true
}
