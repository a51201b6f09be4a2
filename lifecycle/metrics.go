package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCreate       = "create"
	opRespond      = "respond"
	opManage       = "manage"
	opUpdateStatus = "update_status"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bloodlink",
		Subsystem: "lifecycle",
		Name:      "operations_total",
		Help:      "Total number of blood request lifecycle operations",
	}, []string{"operation", "status"})

	expiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bloodlink",
		Subsystem: "lifecycle",
		Name:      "requests_expired_total",
		Help:      "Total number of blood requests flipped to expired",
	})
)

func observe(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	operationsTotal.WithLabelValues(operation, status).Inc()
}
