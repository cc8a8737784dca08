package importer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statementImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statement_imports_total",
		Help: "Number of statement import runs by result.",
	}, []string{"result"})

	transactionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statement_transactions_added_total",
		Help: "Number of transactions appended to the ledger by statement imports.",
	})

	transactionsDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statement_transactions_duplicate_total",
		Help: "Number of statement transactions skipped as duplicates.",
	})
)

const (
	resultImported       = "imported"
	resultParseFailed    = "parse_failed"
	resultUnknownAccount = "unknown_account"
	resultEmpty          = "no_transactions"
)
