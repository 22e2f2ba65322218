package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_users_registered_total",
			Help: "Total number of registered users",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobportal_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_tokens_issued_total",
			Help: "Total number of access tokens issued",
		},
	)
)
