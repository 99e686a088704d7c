package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_import_files_total",
		Help: "Number of statement files processed, by outcome.",
	}, []string{"outcome"})

	importTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backend_import_transactions_total",
		Help: "Number of transactions created from imported files.",
	})
)
