package models

// Source column names of the daily records dataset.
const (
	ColDate                 = "data"
	ColYear                 = "ano"
	ColMonth                = "mes"
	ColTotalRooms           = "total_quartos"
	ColOccupiedRooms        = "quartos_ocupados_dia"
	ColRoomRevenue          = "receita_quartos_dia"
	ColTotalRevenue         = "receita_total_dia"
	ColGrossOperatingProfit = "lucro_operacional_bruto_dia"
	ColGOPPerAvailableRoom  = "goppar_dia"
	ColCustomerName         = "nome_cliente"
	ColRoomType             = "tipo_de_quarto"
	ColTotalDailyValue      = "valor_total_diarias"
)

// Derived KPI column names, appended by the metrics step.
const (
	ColOccupancy = "Ocupacao"
	ColADR       = "ADR"
	ColRevPAR    = "RevPAR"
	ColTRevPAR   = "TRevPAR"
	ColGOP       = "GOP"
	ColGOPPAR    = "GOPPAR"
)

// KPIColumns lists the derived columns in the order they are appended.
var KPIColumns = []string{ColOccupancy, ColADR, ColRevPAR, ColTRevPAR, ColGOP, ColGOPPAR}

// DailyRecord is one hotel-day of the dataset.
// Date stays as text until a query needs it as a calendar date.
type DailyRecord struct {
	Date  string `json:"date"`
	Year  int    `json:"year"`
	Month int    `json:"month"`

	TotalRooms    int `json:"totalRooms"`
	OccupiedRooms int `json:"occupiedRooms"`

	RoomRevenue          float64 `json:"roomRevenue"`
	TotalRevenue         float64 `json:"totalRevenue"`
	GrossOperatingProfit float64 `json:"grossOperatingProfit"`
	GOPPerAvailableRoom  float64 `json:"gopPerAvailableRoom"`

	CustomerName    string  `json:"customerName"`
	RoomType        string  `json:"roomType"`
	TotalDailyValue float64 `json:"totalDailyValue"`

	KPI
}

// KPI holds the per-row derived metrics. Zero until metrics are derived.
type KPI struct {
	Occupancy float64 `json:"occupancy"`
	ADR       float64 `json:"adr"`
	RevPAR    float64 `json:"revpar"`
	TRevPAR   float64 `json:"trevpar"`
	GOP       float64 `json:"gop"`
	GOPPAR    float64 `json:"goppar"`
}
