package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/artflow/artflow/internal/models"
)

// CreateObligation validates and stores a recurring payment definition.
func (s *Service) CreateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error) {
	ob.Name = strings.TrimSpace(ob.Name)
	if ob.Name == "" {
		return nil, fmt.Errorf("%w: obligation name is required", ErrInvalidInput)
	}
	if ob.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if ob.DueDay < 1 || ob.DueDay > 31 {
		return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrInvalidInput)
	}
	return s.Payments.CreateObligation(ctx, ob)
}

// MonthPayments returns the month's payment snapshot, materializing it
// from the obligation config on first read. Past months keep the amounts
// they were created with even if the config changes later.
func (s *Service) MonthPayments(ctx context.Context, userID, monthID string) ([]*models.MonthlyPayment, models.PaymentSummary, error) {
	payments, err := s.Payments.GetMonth(ctx, userID, monthID)
	if err != nil {
		return nil, models.PaymentSummary{}, err
	}
	if payments == nil {
		obligations, err := s.Payments.GetObligations(ctx, userID)
		if err != nil {
			return nil, models.PaymentSummary{}, err
		}
		if len(obligations) > 0 {
			snapshot := make([]*models.MonthlyPayment, 0, len(obligations))
			for _, ob := range obligations {
				snapshot = append(snapshot, &models.MonthlyPayment{
					UserID:       userID,
					MonthID:      monthID,
					ObligationID: ob.ID,
					Name:         ob.Name,
					Amount:       ob.Amount,
					DueDay:       ob.DueDay,
				})
			}
			payments, err = s.Payments.CreateMonth(ctx, snapshot)
			if err != nil {
				return nil, models.PaymentSummary{}, err
			}
			s.logger.Infof("Materialized %d payments for %s", len(payments), monthID)
		}
	}
	return payments, models.Summarize(payments), nil
}

// TogglePaid flips one monthly payment's paid flag.
func (s *Service) TogglePaid(ctx context.Context, userID string, paymentID int64) (*models.MonthlyPayment, error) {
	payment, err := s.Payments.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, fmt.Errorf("payment %d: %w", paymentID, ErrNotFound)
	}
	payment.Paid = !payment.Paid
	if err := s.Payments.SetPaid(ctx, paymentID, payment.Paid); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateObligation rewrites a payment definition. Months already
// materialized are untouched.
func (s *Service) UpdateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error) {
	ob.Name = strings.TrimSpace(ob.Name)
	if ob.Name == "" {
		return nil, fmt.Errorf("%w: obligation name is required", ErrInvalidInput)
	}
	if ob.DueDay < 1 || ob.DueDay > 31 {
		return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrInvalidInput)
	}
	return s.Payments.UpdateObligation(ctx, ob)
}
