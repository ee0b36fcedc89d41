package loan

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purpose classifies what the borrower intends the loan for.
type Purpose string

const (
	PurposeBusiness  Purpose = "business"
	PurposeEducation Purpose = "education"
	PurposeMedical   Purpose = "medical"
	PurposeHome      Purpose = "home_improvement"
	PurposePersonal  Purpose = "personal"
	PurposeOthers    Purpose = "others"
)

var purposeLabels = map[Purpose]string{
	PurposeBusiness:  "Business Capital",
	PurposeEducation: "Education",
	PurposeMedical:   "Medical Expenses",
	PurposeHome:      "Home Improvement",
	PurposePersonal:  "Personal Expenses",
	PurposeOthers:    "Others",
}

// Label returns the display text used in agreement documents.
func (p Purpose) Label() string {
	if l, ok := purposeLabels[p]; ok {
		return l
	}

	return purposeLabels[PurposeOthers]
}

// PaymentType selects how installments are collected.
type PaymentType string

const (
	PaymentMonthly PaymentType = "monthly"
	PaymentLumpSum PaymentType = "lump_sum"
)

var paymentTypeLabels = map[PaymentType]string{
	PaymentMonthly: "Monthly Installments",
	PaymentLumpSum: "Lump Sum on Maturity",
}

func (t PaymentType) Label() string {
	if l, ok := paymentTypeLabels[t]; ok {
		return l
	}

	return string(t)
}

// BusinessType is the borrower's business classification, when the loan
// purpose is business-related.
type BusinessType string

const (
	BusinessNone               BusinessType = "none"
	BusinessSoleProprietorship BusinessType = "sole_proprietorship"
	BusinessPartnership        BusinessType = "partnership"
	BusinessCorporation        BusinessType = "corporation"
)

var businessTypeLabels = map[BusinessType]string{
	BusinessNone:               "N/A",
	BusinessSoleProprietorship: "Sole Proprietorship",
	BusinessPartnership:        "Partnership",
	BusinessCorporation:        "Corporation",
}

func (t BusinessType) Label() string {
	if l, ok := businessTypeLabels[t]; ok {
		return l
	}

	return businessTypeLabels[BusinessNone]
}

// Party identifies one signatory of the agreement.
type Party struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

func (p Party) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// AgreementRequest is the immutable input to the agreement pipeline. It is
// created once, when a loan is approved or a direct lend request is
// confirmed, and never mutated afterwards.
type AgreementRequest struct {
	ID           uuid.UUID
	Borrower     Party
	Lender       Party
	Principal    decimal.Decimal
	RatePercent  decimal.Decimal
	TermMonths   int
	Purpose      Purpose
	BusinessType BusinessType
	PaymentType  PaymentType
}

// ValidationError reports a malformed agreement request. It is returned
// before any network call is attempted and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid agreement request: %s %s", e.Field, e.Reason)
}

// Validate checks the request invariants.
func (r AgreementRequest) Validate() error {
	parties := []struct {
		name  string
		party Party
	}{
		{"borrower", r.Borrower},
		{"lender", r.Lender},
	}

	for _, p := range parties {
		if p.party.Email == "" {
			return &ValidationError{Field: p.name + " email", Reason: "is required"}
		}

		if p.party.FullName() == "" {
			return &ValidationError{Field: p.name + " name", Reason: "is required"}
		}
	}

	if r.Principal.IsNegative() {
		return &ValidationError{Field: "principal", Reason: "must not be negative"}
	}

	if r.RatePercent.IsNegative() {
		return &ValidationError{Field: "interest rate", Reason: "must not be negative"}
	}

	if r.TermMonths < 1 {
		return &ValidationError{Field: "term", Reason: "must be at least one month"}
	}

	return nil
}
