package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidAmount = errors.New("commercialization amount must be a non-negative number")

// Patent is a patent record owned by the backend.
type Patent struct {
	ID                      ID         `json:"id"`
	FacultyID               ID         `json:"faculty_id"`
	Title                   string     `json:"title"`
	DateIssued              string     `json:"date_issued"`
	PatentNumber            *string    `json:"patent_number,omitempty"`
	Commercialized          bool       `json:"commercialized"`
	CommercializationAmount *float64   `json:"commercialization_amount,omitempty"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
}

// PatentInput is the POST /faculty/patents body. CommercializationAmount is
// always serialized, as null when absent.
type PatentInput struct {
	Title                   string   `json:"title"`
	DateIssued              string   `json:"date_issued"`
	PatentNumber            string   `json:"patent_number"`
	Commercialized          bool     `json:"commercialized"`
	CommercializationAmount *float64 `json:"commercialization_amount"`
}

// PatentForm is raw form state. Amount stays text until submission, so a
// value typed before the commercialized switch was turned off may linger.
type PatentForm struct {
	Title          string `validate:"required"`
	DateIssued     string `validate:"required,datetime=2006-01-02"`
	PatentNumber   string
	Commercialized bool
	Amount         string
}

// Input builds the request body. The amount is only sent for commercialized
// patents with a non-empty amount; otherwise it is null.
func (f PatentForm) Input() (PatentInput, error) {
	in := PatentInput{
		Title:          strings.TrimSpace(f.Title),
		DateIssued:     strings.TrimSpace(f.DateIssued),
		PatentNumber:   strings.TrimSpace(f.PatentNumber),
		Commercialized: f.Commercialized,
	}

	amount := strings.TrimSpace(f.Amount)
	if !f.Commercialized || amount == "" {
		return in, nil
	}

	v, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return PatentInput{}, fmt.Errorf("%w: %q", ErrInvalidAmount, f.Amount)
	}
	in.CommercializationAmount = &v
	return in, nil
}

// Reset clears the form after a successful submission.
func (f *PatentForm) Reset() {
	*f = PatentForm{}
}
