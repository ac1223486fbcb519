package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error) {
	query := `INSERT INTO obligations (user_id, name, amount, due_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	ob.CreatedAt = now
	ob.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query,
		ob.UserID, ob.Name, ob.Amount, ob.DueDay, ob.CreatedAt, ob.UpdatedAt,
	).Scan(&ob.ID, &ob.CreatedAt, &ob.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}
	return ob, nil
}

func (r *paymentRepository) GetObligations(ctx context.Context, userID string) ([]*models.Obligation, error) {
	query := `SELECT id, user_id, name, amount, due_day, created_at, updated_at
		FROM obligations WHERE user_id = $1 ORDER BY due_day, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligations: %w", err)
	}
	defer rows.Close()

	var obligations []*models.Obligation
	for rows.Next() {
		ob := &models.Obligation{}
		if err := rows.Scan(
			&ob.ID, &ob.UserID, &ob.Name, &ob.Amount, &ob.DueDay,
			&ob.CreatedAt, &ob.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		obligations = append(obligations, ob)
	}
	return obligations, rows.Err()
}

func (r *paymentRepository) UpdateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error) {
	query := `UPDATE obligations SET name=$2, amount=$3, due_day=$4, updated_at=$5
		WHERE id=$1 RETURNING updated_at`
	ob.UpdatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		ob.ID, ob.Name, ob.Amount, ob.DueDay, ob.UpdatedAt,
	).Scan(&ob.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}
	return ob, nil
}

func (r *paymentRepository) DeleteObligation(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM obligations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete obligation: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("obligation %d not found", id)
	}
	return nil
}

func (r *paymentRepository) GetMonth(ctx context.Context, userID, monthID string) ([]*models.MonthlyPayment, error) {
	query := `SELECT id, user_id, month_id, obligation_id, name, amount, due_day, paid
		FROM monthly_payments WHERE user_id = $1 AND month_id = $2 ORDER BY due_day, id`
	rows, err := r.db.QueryContext(ctx, query, userID, monthID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.MonthlyPayment
	for rows.Next() {
		p := &models.MonthlyPayment{}
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.MonthID, &p.ObligationID,
			&p.Name, &p.Amount, &p.DueDay, &p.Paid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreateMonth materializes a month's snapshot in one transaction so a
// concurrent read never sees a half-built month.
func (r *paymentRepository) CreateMonth(ctx context.Context, payments []*models.MonthlyPayment) ([]*models.MonthlyPayment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO monthly_payments (user_id, month_id, obligation_id, name, amount, due_day, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	for _, p := range payments {
		err := tx.QueryRowContext(ctx, query,
			p.UserID, p.MonthID, p.ObligationID, p.Name, p.Amount, p.DueDay, p.Paid,
		).Scan(&p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create monthly payment %q: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id int64) (*models.MonthlyPayment, error) {
	query := `SELECT id, user_id, month_id, obligation_id, name, amount, due_day, paid
		FROM monthly_payments WHERE id = $1`
	p := &models.MonthlyPayment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.MonthID, &p.ObligationID,
		&p.Name, &p.Amount, &p.DueDay, &p.Paid,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly payment: %w", err)
	}
	return p, nil
}

func (r *paymentRepository) SetPaid(ctx context.Context, id int64, paid bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE monthly_payments SET paid = $2 WHERE id = $1`, id, paid)
	if err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("monthly payment %d not found", id)
	}
	return nil
}
