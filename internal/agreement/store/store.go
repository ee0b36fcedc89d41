package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiramlend/hiram/internal/agreement"
	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectAgreementColumns = `
	id, borrower_id, borrower_email, borrower_first_name, borrower_last_name,
	lender_id, lender_email, lender_first_name, lender_last_name,
	principal, rate_percent, term_months, purpose, business_type, payment_type,
	document_id, document_state, status, delivery_method, failure_reason,
	created_at, updated_at
`

func scanAgreement(s scanner) (*agreement.Agreement, error) {
	var (
		a             agreement.Agreement
		purpose       string
		businessType  string
		paymentType   string
		statusStr     string
		documentID    sql.NullString
		documentState sql.NullString
		method        sql.NullString
		failureReason sql.NullString
	)

	if err := s.Scan(
		&a.ID,
		&a.Request.Borrower.ID, &a.Request.Borrower.Email, &a.Request.Borrower.FirstName, &a.Request.Borrower.LastName,
		&a.Request.Lender.ID, &a.Request.Lender.Email, &a.Request.Lender.FirstName, &a.Request.Lender.LastName,
		&a.Request.Principal, &a.Request.RatePercent, &a.Request.TermMonths,
		&purpose, &businessType, &paymentType,
		&documentID, &documentState, &statusStr, &method, &failureReason,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Request.ID = a.ID
	a.Request.Purpose = loan.Purpose(purpose)
	a.Request.BusinessType = loan.BusinessType(businessType)
	a.Request.PaymentType = loan.PaymentType(paymentType)
	a.Status = agreement.Status(statusStr)
	a.DocumentID = documentID.String
	a.DocumentState = esign.Status(documentState.String)
	a.Method = agreement.DeliveryMethod(method.String)
	a.FailureReason = failureReason.String

	return &a, nil
}

func (s *Store) CreateAgreement(ctx context.Context, a *agreement.Agreement) error {
	query := `
		INSERT INTO agreements (
			id, borrower_id, borrower_email, borrower_first_name, borrower_last_name,
			lender_id, lender_email, lender_first_name, lender_last_name,
			principal, rate_percent, term_months, purpose, business_type, payment_type,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	r := a.Request

	err := s.db.QueryRowContext(ctx, query,
		a.ID,
		r.Borrower.ID, r.Borrower.Email, r.Borrower.FirstName, r.Borrower.LastName,
		r.Lender.ID, r.Lender.Email, r.Lender.FirstName, r.Lender.LastName,
		r.Principal, r.RatePercent, r.TermMonths,
		string(r.Purpose), string(r.BusinessType), string(r.PaymentType),
		a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating agreement: %w", err)
	}

	return nil
}

func (s *Store) GetAgreement(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	query := `SELECT ` + selectAgreementColumns + ` FROM agreements WHERE id = $1`

	a, err := scanAgreement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, agreement.ErrNotFound
		}

		return nil, fmt.Errorf("getting agreement: %w", err)
	}

	return a, nil
}

func (s *Store) ListAgreements(ctx context.Context, filter agreement.ListFilter) ([]*agreement.Agreement, error) {
	query := `SELECT ` + selectAgreementColumns + ` FROM agreements`

	var args []any

	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing agreements: %w", err)
	}
	defer rows.Close()

	var agreements []*agreement.Agreement

	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning agreement: %w", err)
		}

		agreements = append(agreements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agreements: %w", err)
	}

	return agreements, nil
}

func (s *Store) UpdateDocument(ctx context.Context, id uuid.UUID, documentID string, state esign.Status) error {
	query := `
		UPDATE agreements
		SET document_id = $2, document_state = $3, updated_at = NOW()
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query, id, documentID, string(state))
	if err != nil {
		return fmt.Errorf("updating agreement document: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return agreement.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateDelivery(ctx context.Context, id uuid.UUID, status agreement.Status, method agreement.DeliveryMethod, failureReason string) error {
	query := `
		UPDATE agreements
		SET status = $2, delivery_method = NULLIF($3, ''), failure_reason = NULLIF($4, ''), updated_at = NOW()
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query, id, status, string(method), failureReason)
	if err != nil {
		return fmt.Errorf("updating agreement delivery: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return agreement.ErrNotFound
	}

	return nil
}
