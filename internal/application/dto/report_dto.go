package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportResponse resumen de ventas y existencias del dueño.
type ReportResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Username    string          `json:"username"`
	Sales       []SaleResponse  `json:"sales"`
	Stocks      []StockResponse `json:"stocks"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalStock  int64           `json:"total_stock"`
}
