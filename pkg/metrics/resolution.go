package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes reported by the selection service.
const (
	OutcomeResolved    = "resolved"
	OutcomeIncomplete  = "incomplete"
	OutcomeUnavailable = "unavailable"
)

// ResolutionMetrics records how shopper selections resolve against the
// variant catalog.
type ResolutionMetrics struct {
	resolutions *prometheus.CounterVec
	cartAdds    prometheus.Counter
}

// NewResolutionMetrics registers the resolution metrics on the provided registerer.
func NewResolutionMetrics(reg prometheus.Registerer) *ResolutionMetrics {
	if reg == nil {
		return &ResolutionMetrics{}
	}
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "variant_resolutions_total",
		Help: "Selection resolution attempts by outcome.",
	}, []string{"outcome"})
	cartAdds := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Cart line items created from resolved selections.",
	})
	reg.MustRegister(resolutions, cartAdds)
	return &ResolutionMetrics{
		resolutions: resolutions,
		cartAdds:    cartAdds,
	}
}

// IncResolution increments the counter for the given outcome.
func (m *ResolutionMetrics) IncResolution(outcome string) {
	if m == nil || m.resolutions == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}

// IncCartAdd increments the cart addition counter.
func (m *ResolutionMetrics) IncCartAdd() {
	if m == nil || m.cartAdds == nil {
		return
	}
	m.cartAdds.Inc()
}
