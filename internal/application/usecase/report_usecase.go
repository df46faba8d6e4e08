package usecase

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportUseCase arma el resumen de ventas y existencias del dueño:
// listados con nombre de producto, ingreso total y unidades en stock.
type ReportUseCase struct {
	saleRepo  repository.SaleRepository
	stockRepo repository.StockRepository
	userRepo  repository.UserRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, stockRepo repository.StockRepository, userRepo repository.UserRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, stockRepo: stockRepo, userRepo: userRepo}
}

// Generate produce el reporte del dueño con marca de tiempo actual.
func (uc *ReportUseCase) Generate(ownerID string) (*dto.ReportResponse, error) {
	user, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	sales, err := uc.saleRepo.ListDetailByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.stockRepo.ListDetailByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportResponse{
		GeneratedAt: time.Now(),
		Username:    user.Username,
		Sales:       make([]dto.SaleResponse, 0, len(sales)),
		Stocks:      make([]dto.StockResponse, 0, len(stocks)),
		TotalSales:  decimal.Zero,
	}
	for _, s := range sales {
		report.Sales = append(report.Sales, dto.SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			TotalPrice:  s.TotalPrice,
			DateSold:    s.DateSold,
		})
		report.TotalSales = report.TotalSales.Add(s.TotalPrice)
	}
	for _, st := range stocks {
		report.Stocks = append(report.Stocks, dto.StockResponse{
			ID:              st.ID,
			ProductID:       st.ProductID,
			ProductName:     st.ProductName,
			Quantity:        st.Quantity,
			MinimumQuantity: st.MinimumQuantity,
			UpdatedAt:       st.UpdatedAt,
		})
		report.TotalStock += st.Quantity
	}
	return report, nil
}
