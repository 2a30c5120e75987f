package cost

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// memoMetrics mirrors Stats into prometheus counters, labelled by chain length.
type memoMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
}

// newMemoMetrics registers the counter vectors with reg, reusing vectors an
// earlier evaluator already registered there, and binds them to maxDepth.
func newMemoMetrics(reg prometheus.Registerer, maxDepth string) (*memoMetrics, error) {
	hits, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keypadchain",
		Subsystem: "cost",
		Name:      "memo_hits_total",
		Help:      "Cost evaluations answered from the memo.",
	}, []string{"max_depth"}))
	if err != nil {
		return nil, err
	}
	misses, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keypadchain",
		Subsystem: "cost",
		Name:      "memo_misses_total",
		Help:      "Cost evaluations computed and stored in the memo.",
	}, []string{"max_depth"}))
	if err != nil {
		return nil, err
	}
	return &memoMetrics{
		hits:   hits.WithLabelValues(maxDepth),
		misses: misses.WithLabelValues(maxDepth),
	}, nil
}

func register(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}

func (m *memoMetrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *memoMetrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}
