package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hotel-dashboard/models"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

var exportHeader = []interface{}{
	models.ColDate, models.ColYear, models.ColMonth,
	models.ColCustomerName, models.ColRoomType, models.ColTotalDailyValue,
	models.ColTotalRooms, models.ColOccupiedRooms,
	models.ColRoomRevenue, models.ColTotalRevenue,
	models.ColGrossOperatingProfit, models.ColGOPPerAvailableRoom,
	models.ColOccupancy, models.ColADR, models.ColRevPAR,
	models.ColTRevPAR, models.ColGOP, models.ColGOPPAR,
}

func exportRow(r models.DailyRecord) []interface{} {
	return []interface{}{
		r.Date, r.Year, r.Month,
		r.CustomerName, r.RoomType, r.TotalDailyValue,
		r.TotalRooms, r.OccupiedRooms,
		r.RoomRevenue, r.TotalRevenue,
		r.GrossOperatingProfit, r.GOPPerAvailableRoom,
		r.Occupancy, r.ADR, r.RevPAR,
		r.TRevPAR, r.GOP, r.GOPPAR,
	}
}

// WriteWorkbook writes a derived view as an XLSX workbook with a Records
// sheet and a Summary sheet.
func WriteWorkbook(view *Table, w io.Writer) error {
	summary, err := Summarize(view)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(recordsSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range view.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := exportRow(r)
		if err := f.SetSheetRow(recordsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	lines := [][]interface{}{
		{"totalRooms", summary.TotalRooms},
		{"totalRevenue", summary.TotalRevenue},
		{"meanOccupancy", summary.MeanOccupancy},
		{"meanAdr", summary.MeanADR},
		{"meanGop", summary.MeanGOP},
		{"meanGoppar", summary.MeanGOPPAR},
		{"days", summary.Days},
	}
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
