package models

import "time"

// Obligation is a recurring monthly payment definition. DueDay is the day
// of the month (1..31) the payment falls due.
type Obligation struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Amount    float64   `json:"amount" db:"amount"`
	DueDay    int       `json:"due_day" db:"due_day"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MonthlyPayment is one obligation's payable snapshot for a given month.
// Rows are materialized from the obligation config the first time a month
// is read, so later config edits do not rewrite past months.
type MonthlyPayment struct {
	ID           int64   `json:"id" db:"id"`
	UserID       string  `json:"user_id" db:"user_id"`
	MonthID      string  `json:"month_id" db:"month_id"` // YYYY-MM
	ObligationID int64   `json:"obligation_id" db:"obligation_id"`
	Name         string  `json:"name" db:"name"`
	Amount       float64 `json:"amount" db:"amount"`
	DueDay       int     `json:"due_day" db:"due_day"`
	Paid         bool    `json:"paid" db:"paid"`
}

// PaymentSummary totals a month's payments.
type PaymentSummary struct {
	TotalDue  float64 `json:"total_due"`
	TotalPaid float64 `json:"total_paid"`
	Remaining float64 `json:"remaining"`
}

// Summarize computes the month totals.
func Summarize(payments []*MonthlyPayment) PaymentSummary {
	var s PaymentSummary
	for _, p := range payments {
		s.TotalDue += p.Amount
		if p.Paid {
			s.TotalPaid += p.Amount
		}
	}
	s.Remaining = s.TotalDue - s.TotalPaid
	return s
}
