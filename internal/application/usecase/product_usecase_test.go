package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

type productFixture struct {
	uc            *usecase.ProductUseCase
	products      *fakeProductRepo
	manufacturers *fakeManufacturerRepo
	counterparts  *fakeCounterpartyRepo
	agreements    *fakeAgreementRepo
}

func newProductFixture() *productFixture {
	products := newFakeProductRepo()
	manufacturers := newFakeManufacturerRepo()
	counterparts := newFakeCounterpartyRepo()
	agreements := newFakeAgreementRepo()
	return &productFixture{
		uc:            usecase.NewProductUseCase(products, manufacturers, counterparts, agreements),
		products:      products,
		manufacturers: manufacturers,
		counterparts:  counterparts,
		agreements:    agreements,
	}
}

// addReferences registra fabricante, contraparte y contrato para el dueño dado.
func (f *productFixture) addReferences(owner string) (manufacturerID, counterpartyID, agreementID string) {
	manufacturerID, counterpartyID, agreementID = "man-1", "cp-1", "agr-1"
	f.manufacturers.items[manufacturerID] = &entity.Manufacturer{ID: manufacturerID, UserID: owner, Name: "Acme"}
	f.counterparts.items[counterpartyID] = &entity.Counterparty{ID: counterpartyID, UserID: owner, Name: "Cliente"}
	f.agreements.items[agreementID] = &entity.Agreement{ID: agreementID, UserID: owner, ContractNumber: "C-001", DateSigned: time.Now()}
	return
}

func TestProducto_CrearConReferenciasPropias(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)

	out, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name:           "Tornillos",
		Price:          decimal.NewFromInt(100),
		ManufacturerID: manID,
		CounterpartyID: cpID,
		AgreementID:    agrID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Tornillos", out.Name)
	assert.Len(t, f.products.items, 1)
}

func TestProducto_ReferenciaAjena_Forbidden(t *testing.T) {
	f := newProductFixture()
	// Las referencias pertenecen a OTRO dueño
	manID, cpID, agrID := f.addReferences(otherOwner)

	_, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name:           "Tornillos",
		Price:          decimal.NewFromInt(100),
		ManufacturerID: manID,
		CounterpartyID: cpID,
		AgreementID:    agrID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.products.items, "no debe persistirse nada")
}

func TestProducto_NombreDuplicado_Duplicate(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)

	in := dto.CreateProductRequest{
		Name:           "Tornillos",
		Price:          decimal.NewFromInt(100),
		ManufacturerID: manID,
		CounterpartyID: cpID,
		AgreementID:    agrID,
	}
	_, err := f.uc.Create(ownerID, in)
	require.NoError(t, err)

	_, err = f.uc.Create(ownerID, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.products.items, 1)
}

func TestProducto_MismoNombreEnOtroDueno_Permitido(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)
	f.manufacturers.items["man-2"] = &entity.Manufacturer{ID: "man-2", UserID: otherOwner, Name: "Acme"}
	f.counterparts.items["cp-2"] = &entity.Counterparty{ID: "cp-2", UserID: otherOwner, Name: "Cliente"}
	f.agreements.items["agr-2"] = &entity.Agreement{ID: "agr-2", UserID: otherOwner, ContractNumber: "C-002"}

	_, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name: "Tornillos", Price: decimal.NewFromInt(100),
		ManufacturerID: manID, CounterpartyID: cpID, AgreementID: agrID,
	})
	require.NoError(t, err)

	// La unicidad del nombre es por dueño, no global
	_, err = f.uc.Create(otherOwner, dto.CreateProductRequest{
		Name: "Tornillos", Price: decimal.NewFromInt(100),
		ManufacturerID: "man-2", CounterpartyID: "cp-2", AgreementID: "agr-2",
	})
	require.NoError(t, err)
	assert.Len(t, f.products.items, 2)
}

func TestProducto_PrecioNegativo_Invalido(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)

	_, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name:           "Tornillos",
		Price:          decimal.NewFromInt(-1),
		ManufacturerID: manID,
		CounterpartyID: cpID,
		AgreementID:    agrID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProducto_ObtenerDeOtroDueno_NotFound(t *testing.T) {
	f := newProductFixture()
	f.products.items["ajeno"] = &entity.Product{ID: "ajeno", UserID: otherOwner, Name: "Ajeno"}

	_, err := f.uc.GetByID(ownerID, "ajeno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducto_ActualizarRevalidaReferencias(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)

	created, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name: "Tornillos", Price: decimal.NewFromInt(100),
		ManufacturerID: manID, CounterpartyID: cpID, AgreementID: agrID,
	})
	require.NoError(t, err)

	// Contrato de otro dueño en el update → 403
	f.agreements.items["agr-ajeno"] = &entity.Agreement{ID: "agr-ajeno", UserID: otherOwner}
	_, err = f.uc.Update(ownerID, created.ID, dto.UpdateProductRequest{
		Name: "Tornillos v2", Price: decimal.NewFromInt(120),
		ManufacturerID: manID, CounterpartyID: cpID, AgreementID: "agr-ajeno",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Tornillos", f.products.items[created.ID].Name, "el producto no debe cambiar")
}

func TestProducto_Eliminar(t *testing.T) {
	f := newProductFixture()
	manID, cpID, agrID := f.addReferences(ownerID)

	created, err := f.uc.Create(ownerID, dto.CreateProductRequest{
		Name: "Tornillos", Price: decimal.NewFromInt(100),
		ManufacturerID: manID, CounterpartyID: cpID, AgreementID: agrID,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ownerID, created.ID))
	assert.Empty(t, f.products.items)

	err = f.uc.Delete(ownerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
