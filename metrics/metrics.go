package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Authentication outcomes recorded by AuthAttempts
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

var (
	AuthAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Completed authentication callbacks by strategy and outcome",
	}, []string{"strategy", "outcome"})

	StaffLogins = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "staff_logins_total",
		Help: "Staff records created or refreshed by a successful login",
	})
)

// Register registers the collectors on reg, or the default registerer when nil.
// Collectors that are already registered are ignored.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{AuthAttempts, StaffLogins} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return err
			}
		}
	}
	return nil
}
