package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-dashboard/models"
)

const importBatchSize = 500

// RecordStore keeps the raw daily records in MySQL.
type RecordStore struct {
	DB *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{DB: db}
}

func (s *RecordStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.DailyRecordRow{}).Count(&n).Error
	return n, err
}

// Import stores the raw columns of every row of t in one transaction.
func (s *RecordStore) Import(ctx context.Context, t *Table) (int, error) {
	rows := make([]models.DailyRecordRow, 0, t.Len())
	for i, r := range t.rows {
		row, err := toRow(r)
		if err != nil {
			return 0, &DatasetError{Kind: ErrParse, Op: "import", Column: models.ColDate, Row: i + 1, Err: err}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, importBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import daily records: %w", err)
	}
	return len(rows), nil
}

// Load reads every stored row back as a raw table, in insertion order.
func (s *RecordStore) Load(ctx context.Context) (*Table, error) {
	var rows []models.DailyRecordRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load daily records: %w", err)
	}
	records := make([]models.DailyRecord, len(rows))
	for i, row := range rows {
		records[i] = fromRow(row)
	}
	return NewTable(StoredColumns(), records), nil
}

// SeedIfEmpty imports src into the store when the store holds no rows.
func (s *RecordStore) SeedIfEmpty(ctx context.Context, src DatasetLoader) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count daily records: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	t, err := src.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := t.require("seed", StoredColumns()...); err != nil {
		return 0, err
	}
	return s.Import(ctx, t)
}

// StoredColumns lists the dataset columns a RecordStore persists.
func StoredColumns() []string {
	return []string{
		models.ColCustomerName,
		models.ColDate,
		models.ColRoomType,
		models.ColTotalDailyValue,
		models.ColTotalRooms,
		models.ColOccupiedRooms,
		models.ColRoomRevenue,
		models.ColTotalRevenue,
		models.ColGrossOperatingProfit,
		models.ColGOPPerAvailableRoom,
		models.ColYear,
		models.ColMonth,
	}
}

func toRow(r models.DailyRecord) (models.DailyRecordRow, error) {
	d, err := ParseRecordDate(r.Date)
	if err != nil {
		return models.DailyRecordRow{}, err
	}
	return models.DailyRecordRow{
		Date:                 datatypes.Date(d),
		Year:                 r.Year,
		Month:                r.Month,
		TotalRooms:           r.TotalRooms,
		OccupiedRooms:        r.OccupiedRooms,
		RoomRevenue:          r.RoomRevenue,
		TotalRevenue:         r.TotalRevenue,
		GrossOperatingProfit: r.GrossOperatingProfit,
		GOPPerAvailableRoom:  r.GOPPerAvailableRoom,
		CustomerName:         r.CustomerName,
		RoomType:             r.RoomType,
		TotalDailyValue:      r.TotalDailyValue,
	}, nil
}

func fromRow(row models.DailyRecordRow) models.DailyRecord {
	return models.DailyRecord{
		Date:                 time.Time(row.Date).Format(isoDateLayout),
		Year:                 row.Year,
		Month:                row.Month,
		TotalRooms:           row.TotalRooms,
		OccupiedRooms:        row.OccupiedRooms,
		RoomRevenue:          row.RoomRevenue,
		TotalRevenue:         row.TotalRevenue,
		GrossOperatingProfit: row.GrossOperatingProfit,
		GOPPerAvailableRoom:  row.GOPPerAvailableRoom,
		CustomerName:         row.CustomerName,
		RoomType:             row.RoomType,
		TotalDailyValue:      row.TotalDailyValue,
	}
}
