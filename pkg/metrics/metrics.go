package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SavesTotal counts save attempts per tab by terminal outcome:
	// success, validation_failed, csrf_invalid, conflict_duplicate,
	// conflict_lock_held, transient.
	SavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courtadmin_saves_total",
		Help: "Save attempts per collection tab by outcome.",
	}, []string{"tab", "outcome"})

	LockReleasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courtadmin_lock_releases_total",
		Help: "Edit-lock release calls triggered by escape routes, by outcome.",
	}, []string{"outcome"})
)
