package services

import (
	"slices"

	"hotel-dashboard/models"
)

// Table is an immutable, row-oriented dataset of daily records.
// Operations never modify a Table; they return new ones.
type Table struct {
	columns []string
	present map[string]bool
	rows    []models.DailyRecord
	derived bool
}

// NewTable builds a raw table. columns lists the dataset columns in file order.
func NewTable(columns []string, rows []models.DailyRecord) *Table {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	return &Table{
		columns: slices.Clone(columns),
		present: present,
		rows:    slices.Clone(rows),
	}
}

// withRows returns a table sharing t's schema over the given rows.
// rows must not be retained by the caller.
func (t *Table) withRows(rows []models.DailyRecord) *Table {
	return &Table{
		columns: t.columns,
		present: t.present,
		rows:    rows,
		derived: t.derived,
	}
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names, KPI columns included once derived.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

func (t *Table) HasColumn(name string) bool {
	return t.present[name]
}

// Derived reports whether the KPI columns have been appended.
func (t *Table) Derived() bool {
	return t.derived
}

// Records returns a copy of the rows.
func (t *Table) Records() []models.DailyRecord {
	return slices.Clone(t.rows)
}

// Record returns the i-th row.
func (t *Table) Record(i int) models.DailyRecord {
	return t.rows[i]
}

func (t *Table) require(op string, columns ...string) error {
	for _, c := range columns {
		if !t.present[c] {
			return missingColumnError(op, c)
		}
	}
	return nil
}
