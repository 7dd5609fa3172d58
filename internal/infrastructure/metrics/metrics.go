package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	DepositsRecorded prometheus.Counter
	OrdersExecuted   *prometheus.CounterVec
	OrderErrors      *prometheus.CounterVec
	TradeAmount      prometheus.Histogram
	AccountBalance   prometheus.Gauge

	// Catalog metrics
	InstrumentsRegistered prometheus.Counter
	PriceUpdates          prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		DepositsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brokerledger_deposits_total",
			Help: "Total number of deposits recorded",
		}),
		OrdersExecuted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brokerledger_orders_executed_total",
				Help: "Total number of executed orders by side",
			},
			[]string{"side"},
		),
		OrderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brokerledger_order_errors_total",
				Help: "Total number of rejected orders by side and reason",
			},
			[]string{"side", "reason"},
		),
		TradeAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "brokerledger_trade_amount",
			Help:    "Gross amounts of executed trades",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		AccountBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "brokerledger_account_balance",
			Help: "Current cash balance of the account",
		}),

		// Catalog metrics
		InstrumentsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brokerledger_instruments_registered_total",
			Help: "Total number of instruments registered in the catalog",
		}),
		PriceUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brokerledger_price_updates_total",
			Help: "Total number of instrument price updates",
		}),
	}
}
