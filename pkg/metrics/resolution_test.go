package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestResolutionMetricsCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewResolutionMetrics(reg)

	m.IncResolution(OutcomeResolved)
	m.IncResolution(OutcomeResolved)
	m.IncResolution(OutcomeIncomplete)
	m.IncResolution("")
	m.IncCartAdd()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if got := counterValue(families, "variant_resolutions_total", "outcome", OutcomeResolved); got != 2 {
		t.Fatalf("resolved count = %v, want 2", got)
	}
	if got := counterValue(families, "variant_resolutions_total", "outcome", OutcomeIncomplete); got != 1 {
		t.Fatalf("incomplete count = %v, want 1", got)
	}
	if got := counterValue(families, "variant_resolutions_total", "outcome", "unknown"); got != 1 {
		t.Fatalf("unknown count = %v, want 1", got)
	}
	if got := counterValue(families, "cart_items_added_total", "", ""); got != 1 {
		t.Fatalf("cart adds = %v, want 1", got)
	}
}

func TestResolutionMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *ResolutionMetrics
	m.IncResolution(OutcomeResolved)
	m.IncCartAdd()

	empty := NewResolutionMetrics(nil)
	empty.IncResolution(OutcomeUnavailable)
	empty.IncCartAdd()
}

func counterValue(families []*dto.MetricFamily, name, labelName, labelValue string) float64 {
	fam := findFamily(families, name)
	if fam == nil {
		return -1
	}
	for _, metric := range fam.GetMetric() {
		if labelName == "" || hasLabel(metric, labelName, labelValue) {
			return metric.GetCounter().GetValue()
		}
	}
	return -1
}

func findFamily(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, fam := range families {
		if fam.GetName() == name {
			return fam
		}
	}
	return nil
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
