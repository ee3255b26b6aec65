package recurring

import (
	"fmt"
	"time"
)

// d parses a YYYY-MM-DD day for test fixtures.
func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// tx builds a test transaction with a generated ID.
func tx(date string, amount float64, dir Direction, merchant, account string) Transaction {
	return Transaction{
		ID:              fmt.Sprintf("%s-%s-%s-%.2f", merchant, account, date, amount),
		Date:            d(date),
		Amount:          amount,
		Direction:       dir,
		MerchantGroupID: merchant,
		AccountKey:      account,
	}
}

// monthlySeries emits one expense per month on the given day of month,
// starting at start, for n months.
func monthlySeries(start string, n int, amount float64, merchant, account string) []Transaction {
	var txns []Transaction
	first := d(start)
	for i := 0; i < n; i++ {
		day := first.AddDate(0, i, 0)
		txns = append(txns, tx(day.Format("2006-01-02"), amount, DirectionExpense, merchant, account))
	}
	return txns
}

// seriesWithGaps emits transactions separated by the given gaps in days.
func seriesWithGaps(start string, gaps []int, amount float64, dir Direction, merchant, account string) []Transaction {
	day := d(start)
	txns := []Transaction{tx(start, amount, dir, merchant, account)}
	for _, g := range gaps {
		day = day.AddDate(0, 0, g)
		txns = append(txns, tx(day.Format("2006-01-02"), amount, dir, merchant, account))
	}
	return txns
}
