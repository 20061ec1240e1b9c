package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange é o intervalo fechado usado em insights e relatórios
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseDateRange aceita datas no formato YYYY-MM-DD
func ParseDateRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}

	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start: %s", ErrInvalidDateRange, err.Error())
	}

	endDate, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end: %s", ErrInvalidDateRange, err.Error())
	}

	r := DateRange{Start: startDate, End: endDate}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}

	return r, nil
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}

	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start after end", ErrInvalidDateRange)
	}

	return nil
}

func (r DateRange) Since() string {
	return r.Start.Format(time.DateOnly)
}

func (r DateRange) Until() string {
	return r.End.Format(time.DateOnly)
}

// Key compõe o trecho de chave de cache, ex: 2024-01-01-2024-01-31
func (r DateRange) Key() string {
	return r.Since() + "-" + r.Until()
}
