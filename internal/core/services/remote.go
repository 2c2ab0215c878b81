package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/hostelmanager/hostel-access-service/internal/metrics"
)

// remote wraps every backend call in the shared circuit breaker and records
// the outcome. After repeated consecutive failures the open breaker fast-fails
// calls without a network round trip; the caller's fallback path absorbs that
// exactly like any other transport failure. No retries happen here.
type remote struct {
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	log     *logrus.Logger
}

func (r *remote) call(operation string, fn func() (interface{}, error)) (interface{}, error) {
	start := time.Now()
	v, err := r.cb.Execute(fn)
	r.metrics.ObserveRequest(operation, time.Since(start), err)
	return v, err
}

// fellBack logs and counts an operation served from the fallback dataset.
func (r *remote) fellBack(operation string, cause error) {
	r.metrics.RecordFallback(operation)
	r.log.WithFields(logrus.Fields{
		"operation": operation,
		"cause":     cause,
	}).Warn("backend unavailable, serving fallback data")
}
