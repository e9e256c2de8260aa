// Package cashflow buckets an organization's transactions into chart-ready
// time periods. Bucket size adapts to the visible range (day, ISO week or
// calendar month) so a chart stays readable whether the user looks at one
// week or several years. All functions are pure and never fail.
package cashflow

import "time"

// Status distinguishes settled transactions from planned ones.
type Status string

const (
	// StatusProcessed marks a settled transaction already reflected in the
	// actual account balance.
	StatusProcessed Status = "processed"
	// StatusExpected marks a planned transaction not yet settled.
	StatusExpected Status = "expected"
)

// Transaction is the read-only slice of a stored transaction the aggregator
// consumes. The amount sign is the sole income/expense signal.
type Transaction struct {
	Date   time.Time
	Amount float64
	Status Status
}

// DataPoint is one charted period. Income fields are positive sums,
// expense fields carry negated magnitudes so income and expense bars
// diverge from a zero baseline. Balance is the running balance at the
// point's period boundary.
type DataPoint struct {
	Date             string  `json:"date"`
	ActualIncome     float64 `json:"actualIncome"`
	ExpectedIncome   float64 `json:"expectedIncome"`
	ActualExpenses   float64 `json:"actualExpenses"`
	ExpectedExpenses float64 `json:"expectedExpenses"`
	Balance          float64 `json:"balance"`
	Timestamp        int64   `json:"timestamp"`
}

// Generate produces one data point per period, in chronological order,
// covering [rangeStart, rangeEnd] with no gaps and no overlap. An empty
// transaction list yields zero-valued points; an inverted range yields nil.
func Generate(transactions []Transaction, startBalance float64, rangeStart, rangeEnd time.Time) []DataPoint {
	if rangeEnd.Before(rangeStart) {
		return nil
	}

	periods := buildPeriods(rangeStart, rangeEnd)
	points := make([]DataPoint, 0, len(periods))

	for _, p := range periods {
		point := DataPoint{
			Date:      p.label,
			Timestamp: p.start.UnixMilli(),
		}

		for i := range transactions {
			txn := &transactions[i]
			if txn.Date.Before(p.start) || !txn.Date.Before(p.end) {
				continue
			}

			switch {
			case txn.Status == StatusProcessed && txn.Amount > 0:
				point.ActualIncome += txn.Amount
			case txn.Status == StatusProcessed && txn.Amount < 0:
				point.ActualExpenses += txn.Amount
			case txn.Status == StatusExpected && txn.Amount > 0:
				point.ExpectedIncome += txn.Amount
			case txn.Status == StatusExpected && txn.Amount < 0:
				point.ExpectedExpenses += txn.Amount
			}
		}

		// Running balance at the period boundary: full rescan of every
		// transaction, any status, dated strictly before it. Data sets are
		// single-organization sized, so no incremental update is needed.
		point.Balance = startBalance
		for i := range transactions {
			if transactions[i].Date.Before(p.start) {
				point.Balance += transactions[i].Amount
			}
		}

		points = append(points, point)
	}

	return points
}

// StartBalance derives the balance at the start of the visible range: the
// sum of all processed transactions dated strictly before it.
func StartBalance(transactions []Transaction, rangeStart time.Time) float64 {
	balance := 0.0
	for i := range transactions {
		txn := &transactions[i]
		if txn.Status == StatusProcessed && txn.Date.Before(rangeStart) {
			balance += txn.Amount
		}
	}
	return balance
}
