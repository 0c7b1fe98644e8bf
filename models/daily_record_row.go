package models

import (
	"time"

	"gorm.io/datatypes"
)

// DailyRecordRow is the persisted form of a DailyRecord.
// Only raw columns are stored; KPIs are derived again after every load.
type DailyRecordRow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date  datatypes.Date `gorm:"column:data;index" json:"date"`
	Year  int            `gorm:"column:ano;index:idx_daily_year_month" json:"year"`
	Month int            `gorm:"column:mes;index:idx_daily_year_month" json:"month"`

	TotalRooms    int `gorm:"column:total_quartos" json:"totalRooms"`
	OccupiedRooms int `gorm:"column:quartos_ocupados_dia" json:"occupiedRooms"`

	RoomRevenue          float64 `gorm:"column:receita_quartos_dia" json:"roomRevenue"`
	TotalRevenue         float64 `gorm:"column:receita_total_dia" json:"totalRevenue"`
	GrossOperatingProfit float64 `gorm:"column:lucro_operacional_bruto_dia" json:"grossOperatingProfit"`
	GOPPerAvailableRoom  float64 `gorm:"column:goppar_dia" json:"gopPerAvailableRoom"`

	CustomerName    string  `gorm:"column:nome_cliente;size:255" json:"customerName"`
	RoomType        string  `gorm:"column:tipo_de_quarto;size:100;index" json:"roomType"`
	TotalDailyValue float64 `gorm:"column:valor_total_diarias" json:"totalDailyValue"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name stable regardless of gorm naming strategy.
func (DailyRecordRow) TableName() string {
	return "hotel_daily_records"
}
