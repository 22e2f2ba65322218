package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_jobs_created_total",
			Help: "Total number of jobs created",
		},
	)

	JobsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_jobs_updated_total",
			Help: "Total number of jobs updated",
		},
	)

	JobsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_jobs_deleted_total",
			Help: "Total number of jobs deleted",
		},
	)
)
