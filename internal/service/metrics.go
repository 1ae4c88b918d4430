package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the organizer's Prometheus counters.
type Metrics struct {
	FilesOrganized prometheus.Counter
	FilesSkipped   *prometheus.CounterVec
	FoldersCreated prometheus.Counter
}

// NewMetrics creates and registers the organizer counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		FilesOrganized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "drivesort_files_organized_total",
			Help: "Total number of files moved into a year/month folder.",
		}),
		FilesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "drivesort_files_skipped_total",
			Help: "Total number of entries skipped during batch runs.",
		}, []string{"reason"}),
		FoldersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "drivesort_folders_created_total",
			Help: "Total number of year/month folders created in the store.",
		}),
	}

	for _, c := range []prometheus.Collector{m.FilesOrganized, m.FilesSkipped, m.FoldersCreated} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
