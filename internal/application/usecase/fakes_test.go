package usecase_test

import (
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete.

const (
	ownerID    = "00000000-0000-0000-0000-000000000001"
	otherOwner = "00000000-0000-0000-0000-000000000099"
)

type fakeManufacturerRepo struct {
	items map[string]*entity.Manufacturer
}

func newFakeManufacturerRepo() *fakeManufacturerRepo {
	return &fakeManufacturerRepo{items: map[string]*entity.Manufacturer{}}
}

func (r *fakeManufacturerRepo) Create(m *entity.Manufacturer) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeManufacturerRepo) GetByIDAndOwner(id, owner string) (*entity.Manufacturer, error) {
	m, ok := r.items[id]
	if !ok || m.UserID != owner {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeManufacturerRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Manufacturer, error) {
	var list []*entity.Manufacturer
	for _, m := range r.items {
		if m.UserID == owner {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeManufacturerRepo) Update(m *entity.Manufacturer) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeManufacturerRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.items, id)
	return nil
}

type fakeCounterpartyRepo struct {
	items map[string]*entity.Counterparty
}

func newFakeCounterpartyRepo() *fakeCounterpartyRepo {
	return &fakeCounterpartyRepo{items: map[string]*entity.Counterparty{}}
}

func (r *fakeCounterpartyRepo) Create(cp *entity.Counterparty) error {
	c := *cp
	r.items[cp.ID] = &c
	return nil
}

func (r *fakeCounterpartyRepo) GetByIDAndOwner(id, owner string) (*entity.Counterparty, error) {
	cp, ok := r.items[id]
	if !ok || cp.UserID != owner {
		return nil, nil
	}
	c := *cp
	return &c, nil
}

func (r *fakeCounterpartyRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Counterparty, error) {
	var list []*entity.Counterparty
	for _, cp := range r.items {
		if cp.UserID == owner {
			c := *cp
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *fakeCounterpartyRepo) Update(cp *entity.Counterparty) error {
	c := *cp
	r.items[cp.ID] = &c
	return nil
}

func (r *fakeCounterpartyRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.items, id)
	return nil
}

type fakeAgreementRepo struct {
	items map[string]*entity.Agreement
}

func newFakeAgreementRepo() *fakeAgreementRepo {
	return &fakeAgreementRepo{items: map[string]*entity.Agreement{}}
}

func (r *fakeAgreementRepo) Create(a *entity.Agreement) error {
	if r.numberTaken(a) {
		return domain.ErrDuplicate
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

// numberTaken emula el UNIQUE (user_id, contract_number) del esquema.
func (r *fakeAgreementRepo) numberTaken(a *entity.Agreement) bool {
	for _, other := range r.items {
		if other.ID != a.ID && other.UserID == a.UserID && other.ContractNumber == a.ContractNumber {
			return true
		}
	}
	return false
}

func (r *fakeAgreementRepo) GetByIDAndOwner(id, owner string) (*entity.Agreement, error) {
	a, ok := r.items[id]
	if !ok || a.UserID != owner {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAgreementRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Agreement, error) {
	var list []*entity.Agreement
	for _, a := range r.items {
		if a.UserID == owner {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeAgreementRepo) Update(a *entity.Agreement) error {
	if r.numberTaken(a) {
		return domain.ErrDuplicate
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAgreementRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.nameTaken(p) {
		return domain.ErrDuplicate
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

// nameTaken emula el UNIQUE (user_id, name) del esquema.
func (r *fakeProductRepo) nameTaken(p *entity.Product) bool {
	for _, other := range r.items {
		if other.ID != p.ID && other.UserID == p.UserID && other.Name == p.Name {
			return true
		}
	}
	return false
}

func (r *fakeProductRepo) GetByIDAndOwner(id, owner string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok || p.UserID != owner {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.items {
		if p.UserID == owner {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if r.nameTaken(p) {
		return domain.ErrDuplicate
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.items, id)
	return nil
}

type fakeStockRepo struct {
	items    map[string]*entity.Stock // por ID
	products *fakeProductRepo
}

func newFakeStockRepo(products *fakeProductRepo) *fakeStockRepo {
	return &fakeStockRepo{items: map[string]*entity.Stock{}, products: products}
}

func (r *fakeStockRepo) Create(s *entity.Stock) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByIDAndOwner(id, owner string) (*entity.Stock, error) {
	s, ok := r.items[id]
	if !ok || s.UserID != owner {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStockRepo) GetByProductAndOwner(productID, owner string) (*entity.Stock, error) {
	for _, s := range r.items {
		if s.ProductID == productID && s.UserID == owner {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, owner string) (*entity.Stock, error) {
	return r.GetByProductAndOwner(productID, owner)
}

func (r *fakeStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeStockRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.items {
		if s.UserID == owner {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeStockRepo) ListDetailByOwner(owner string) ([]*entity.StockDetail, error) {
	var list []*entity.StockDetail
	for _, s := range r.items {
		if s.UserID != owner {
			continue
		}
		d := &entity.StockDetail{Stock: *s}
		if p, ok := r.products.items[s.ProductID]; ok {
			d.ProductName = p.Name
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *fakeStockRepo) Update(s *entity.Stock) error {
	return r.Upsert(s)
}

func (r *fakeStockRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.items, id)
	return nil
}
