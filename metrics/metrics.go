// Package metrics exposes a fund computation as Prometheus gauges.
package metrics

import (
	"github.com/foundersfund/fund"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the fund gauges.
type Metrics struct {
	RealizedProfit   prometheus.Gauge
	UnrealizedPnl    prometheus.Gauge
	Share            *prometheus.GaugeVec
	RealizedNet      *prometheus.GaugeVec
	EndCapital       *prometheus.GaugeVec
	ValidationIssues *prometheus.GaugeVec
}

// New constructs the metrics and registers them in reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RealizedProfit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fund_realized_profit",
			Help: "Realized profit of the window",
		}),
		UnrealizedPnl: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fund_unrealized_pnl",
			Help: "Unrealized profit at the window end",
		}),
		Share: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fund_share",
				Help: "Share of the realized profit by participant",
			},
			[]string{"participant"},
		),
		RealizedNet: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fund_realized_net",
				Help: "Realized profit after management fees by participant",
			},
			[]string{"participant"},
		),
		EndCapital: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fund_end_capital",
				Help: "Capital at the window end by participant",
			},
			[]string{"participant"},
		),
		ValidationIssues: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fund_validation_issues",
				Help: "Validation issues by severity",
			},
			[]string{"severity"},
		),
	}
	for _, c := range []prometheus.Collector{m.RealizedProfit, m.UnrealizedPnl, m.Share, m.RealizedNet, m.EndCapital, m.ValidationIssues} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Set replaces every gauge value with the given computation.
func (m *Metrics) Set(s fund.State, o fund.Outputs, issues fund.Issues) {
	m.RealizedProfit.Set(o.RealizedProfit.AsFloat())
	m.UnrealizedPnl.Set(s.UnrealizedPnlEndOfWindow.AsFloat())

	m.Share.Reset()
	m.RealizedNet.Reset()
	m.EndCapital.Reset()
	for _, p := range o.Participants() {
		m.Share.WithLabelValues(p).Set(o.Shares.Of(p).AsFloat())
		m.RealizedNet.WithLabelValues(p).Set(o.RealizedNet.Of(p).AsFloat())
		m.EndCapital.WithLabelValues(p).Set(o.EndCapital.Of(p).AsFloat())
	}
	for severity, n := range issues.Count() {
		m.ValidationIssues.WithLabelValues(severity).Set(float64(n))
	}
}

// Observe registers the fund gauges in reg and sets them.
func Observe(reg prometheus.Registerer, s fund.State, o fund.Outputs, issues fund.Issues) error {
	m, err := New(reg)
	if err != nil {
		return err
	}
	m.Set(s, o, issues)
	return nil
}

// WriteTextfile writes the gauges of a computation to path, in the text
// format read by the node exporter textfile collector.
func WriteTextfile(path string, s fund.State, o fund.Outputs, issues fund.Issues) error {
	reg := prometheus.NewRegistry()
	if err := Observe(reg, s, o, issues); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
