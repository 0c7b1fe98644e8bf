package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"hotel-dashboard/models"
)

// DatasetLoader produces a raw (not yet derived) table.
type DatasetLoader interface {
	Load(ctx context.Context) (*Table, error)
}

var textColumns = map[string]func(*models.DailyRecord, string){
	models.ColDate:         func(r *models.DailyRecord, v string) { r.Date = v },
	models.ColCustomerName: func(r *models.DailyRecord, v string) { r.CustomerName = v },
	models.ColRoomType:     func(r *models.DailyRecord, v string) { r.RoomType = v },
}

var intColumns = map[string]func(*models.DailyRecord, int){
	models.ColYear:          func(r *models.DailyRecord, v int) { r.Year = v },
	models.ColMonth:         func(r *models.DailyRecord, v int) { r.Month = v },
	models.ColTotalRooms:    func(r *models.DailyRecord, v int) { r.TotalRooms = v },
	models.ColOccupiedRooms: func(r *models.DailyRecord, v int) { r.OccupiedRooms = v },
}

var floatColumns = map[string]func(*models.DailyRecord, float64){
	models.ColRoomRevenue:          func(r *models.DailyRecord, v float64) { r.RoomRevenue = v },
	models.ColTotalRevenue:         func(r *models.DailyRecord, v float64) { r.TotalRevenue = v },
	models.ColGrossOperatingProfit: func(r *models.DailyRecord, v float64) { r.GrossOperatingProfit = v },
	models.ColGOPPerAvailableRoom:  func(r *models.DailyRecord, v float64) { r.GOPPerAvailableRoom = v },
	models.ColTotalDailyValue:      func(r *models.DailyRecord, v float64) { r.TotalDailyValue = v },
}

func columnTypes() map[string]series.Type {
	types := make(map[string]series.Type, len(textColumns)+len(intColumns)+len(floatColumns))
	for name := range textColumns {
		types[name] = series.String
	}
	for name := range intColumns {
		types[name] = series.Int
	}
	for name := range floatColumns {
		types[name] = series.Float
	}
	return types
}

// CSVLoader reads the dataset from a delimited file.
type CSVLoader struct {
	Path      string
	Delimiter rune
}

func NewCSVLoader(path string, delimiter rune) *CSVLoader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVLoader{Path: path, Delimiter: delimiter}
}

func (l *CSVLoader) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadCSV(l.Path, l.Delimiter)
}

// LoadCSV reads a delimited file with a header row into a raw table.
func LoadCSV(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DatasetError{Kind: ErrFileNotFound, Op: "load", Path: path, Err: err}
		}
		return nil, &DatasetError{Kind: ErrParse, Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	t, err := ReadCSV(f, delimiter)
	if err != nil {
		var de *DatasetError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return t, nil
}

// ReadCSV parses delimited records from r. Known numeric columns must hold
// a finite number in every row; unknown columns are kept by name only.
// A header without data rows yields an empty table.
func ReadCSV(r io.Reader, delimiter rune) (*Table, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	records, err := cr.ReadAll()
	if err != nil {
		return nil, &DatasetError{Kind: ErrParse, Op: "load", Err: err}
	}
	if len(records) == 0 {
		return nil, &DatasetError{Kind: ErrParse, Op: "load", Err: errors.New("missing header row")}
	}
	header, data := records[0], records[1:]
	// gota refuses to build a frame without rows.
	if len(data) == 0 {
		return NewTable(header, nil), nil
	}

	// Text cells are taken verbatim, so "NA" stays a name.
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes()),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, &DatasetError{Kind: ErrParse, Op: "load", Err: df.Err}
	}

	names := df.Names()
	rows := make([]models.DailyRecord, df.Nrow())

	for idx, name := range names {
		col := df.Col(name)
		if col.Err != nil {
			return nil, &DatasetError{Kind: ErrParse, Op: "load", Column: name, Err: col.Err}
		}

		if set, ok := textColumns[name]; ok {
			for i, v := range col.Records() {
				set(&rows[i], v)
			}
			continue
		}

		if set, ok := intColumns[name]; ok {
			if err := checkNumeric(name, col, data, idx); err != nil {
				return nil, err
			}
			vals, err := col.Int()
			if err != nil {
				return nil, &DatasetError{Kind: ErrParse, Op: "load", Column: name, Err: err}
			}
			for i, v := range vals {
				set(&rows[i], v)
			}
			continue
		}

		if set, ok := floatColumns[name]; ok {
			if err := checkNumeric(name, col, data, idx); err != nil {
				return nil, err
			}
			for i, v := range col.Float() {
				if math.IsInf(v, 0) {
					return nil, cellError(name, i, data[i][idx], "is not a finite number")
				}
				set(&rows[i], v)
			}
		}
	}

	return NewTable(names, rows), nil
}

// checkNumeric rejects empty or non-numeric cells, which gota keeps as NaN.
// data holds the raw cells so the error can quote the input.
func checkNumeric(name string, col series.Series, data [][]string, idx int) error {
	for i, isNaN := range col.IsNaN() {
		if isNaN {
			return cellError(name, i, data[i][idx], "is not a number")
		}
	}
	return nil
}

func cellError(column string, i int, raw, reason string) error {
	return &DatasetError{
		Kind:   ErrParse,
		Op:     "load",
		Column: column,
		Row:    i + 1,
		Err:    fmt.Errorf("value %q %s", raw, reason),
	}
}
