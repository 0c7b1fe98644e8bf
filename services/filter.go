package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-dashboard/models"
)

// DisplayDateLayout is the DD/MM/YYYY form used by the dashboard date pickers.
const DisplayDateLayout = "02/01/2006"

const isoDateLayout = "2006-01-02"

var recordDateLayouts = []string{
	isoDateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDisplayDate parses a filter bound. DD/MM/YYYY is the display form;
// YYYY-MM-DD is accepted as well.
func ParseDisplayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DisplayDateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY", s)
	}
	return d, nil
}

// ParseRecordDate parses the text of a date column value.
func ParseRecordDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range recordDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Filter returns the rows of t matching every predicate set in f.
// The date range only applies when both bounds are set and is inclusive.
// With no predicates the result is a full copy of t.
func Filter(t *Table, f models.DashboardFilter) (*Table, error) {
	const op = "filter"

	byYear := f.Year != nil
	byMonth := f.Month != nil
	byDate := f.StartDate != nil && f.EndDate != nil

	if byYear {
		if err := t.require(op, models.ColYear); err != nil {
			return nil, err
		}
	}
	if byMonth {
		if err := t.require(op, models.ColMonth); err != nil {
			return nil, err
		}
	}
	if byDate {
		if err := t.require(op, models.ColDate); err != nil {
			return nil, err
		}
	}

	rows := make([]models.DailyRecord, 0, len(t.rows))
	for i, r := range t.rows {
		if byYear && r.Year != *f.Year {
			continue
		}
		if byMonth && r.Month != *f.Month {
			continue
		}
		if byDate {
			d, err := ParseRecordDate(r.Date)
			if err != nil {
				return nil, &DatasetError{Kind: ErrParse, Op: op, Column: models.ColDate, Row: i + 1, Err: err}
			}
			if d.Before(*f.StartDate) || d.After(*f.EndDate) {
				continue
			}
		}
		rows = append(rows, r)
	}

	return t.withRows(rows), nil
}
