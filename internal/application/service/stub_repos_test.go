package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// In-memory repository stubs. Maps keyed by ID, no concurrency concerns
// in tests.

type stubProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *stubProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.add(product)
	return nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *stubProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListLowStock(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.LowStock() {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		p, ok := r.products[id]
		if !ok || p.Quantity < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		r.products[id].Quantity -= amount
	}
	return nil, nil
}

func (r *stubProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, amount := range increments {
		if p, ok := r.products[id]; ok {
			p.Quantity += amount
		}
	}
	return nil
}

type stubDealRepo struct {
	deals map[uuid.UUID]*entity.Deal
}

func newStubDealRepo() *stubDealRepo {
	return &stubDealRepo{deals: make(map[uuid.UUID]*entity.Deal)}
}

func (r *stubDealRepo) Create(ctx context.Context, deal *entity.Deal) error {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	r.deals[deal.ID] = deal
	return nil
}

func (r *stubDealRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	d, ok := r.deals[id]
	if !ok {
		return nil, nil
	}
	// Hand back a copy so callers mutating the result don't write
	// through to the stored row without an Update
	out := *d
	return &out, nil
}

func (r *stubDealRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	return r.deals[id], nil
}

func (r *stubDealRepo) Update(ctx context.Context, deal *entity.Deal) error {
	existing, ok := r.deals[deal.ID]
	if ok && deal.Items == nil {
		deal.Items = existing.Items
	}
	r.deals[deal.ID] = deal
	return nil
}

func (r *stubDealRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.deals, id)
	return nil
}

func (r *stubDealRepo) List(ctx context.Context, params *repository.DealFilterParams) ([]entity.Deal, int64, error) {
	var out []entity.Deal
	for _, d := range r.deals {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *stubDealRepo) ReplaceItems(ctx context.Context, dealID uuid.UUID, items []entity.DealItem) error {
	if d, ok := r.deals[dealID]; ok {
		for i := range items {
			items[i].DealID = dealID
		}
		d.Items = items
	}
	return nil
}

type stubSaleRepo struct {
	sales      map[uuid.UUID]*entity.Sale
	items      map[uuid.UUID][]entity.SaleItem
	udhars     *stubUdharRepo
	failCreate error
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{
		sales: make(map[uuid.UUID]*entity.Sale),
		items: make(map[uuid.UUID][]entity.SaleItem),
	}
}

func (r *stubSaleRepo) Create(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, udhar *entity.UdharTransaction) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.sales[sale.ID] = sale
	if items == nil {
		items = sale.Items
	}
	for i := range items {
		items[i].SaleID = sale.ID
	}
	r.items[sale.ID] = items
	if udhar != nil {
		saleID := sale.ID
		udhar.SaleID = &saleID
		if err := r.udhars.Create(ctx, udhar); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *stubSaleRepo) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ReceiptNo == receiptNo {
			return s, nil
		}
	}
	return nil, nil
}

func (r *stubSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale := r.sales[id]
	if sale != nil {
		sale.Items = r.items[id]
	}
	return sale, nil
}

func (r *stubSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type stubCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *stubCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return c
}

func (r *stubCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.add(customer)
	return nil
}

func (r *stubCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *stubCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone != nil && *c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type stubUdharRepo struct {
	udhars   map[uuid.UUID]*entity.UdharTransaction
	payments map[uuid.UUID][]entity.UdharPayment
}

func newStubUdharRepo() *stubUdharRepo {
	return &stubUdharRepo{
		udhars:   make(map[uuid.UUID]*entity.UdharTransaction),
		payments: make(map[uuid.UUID][]entity.UdharPayment),
	}
}

func (r *stubUdharRepo) Create(ctx context.Context, udhar *entity.UdharTransaction) error {
	if udhar.ID == uuid.Nil {
		udhar.ID = uuid.New()
	}
	r.udhars[udhar.ID] = udhar
	for i := range udhar.Payments {
		if udhar.Payments[i].ID == uuid.Nil {
			udhar.Payments[i].ID = uuid.New()
		}
		udhar.Payments[i].UdharID = udhar.ID
		r.payments[udhar.ID] = append(r.payments[udhar.ID], udhar.Payments[i])
	}
	return nil
}

func (r *stubUdharRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error) {
	return r.udhars[id], nil
}

func (r *stubUdharRepo) GetWithPayments(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error) {
	udhar := r.udhars[id]
	if udhar != nil {
		udhar.Payments = r.payments[id]
	}
	return udhar, nil
}

func (r *stubUdharRepo) Update(ctx context.Context, udhar *entity.UdharTransaction) error {
	r.udhars[udhar.ID] = udhar
	return nil
}

func (r *stubUdharRepo) List(ctx context.Context, params *repository.UdharFilterParams) ([]entity.UdharTransaction, int64, error) {
	var out []entity.UdharTransaction
	for _, u := range r.udhars {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUdharRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]entity.UdharTransaction, error) {
	var out []entity.UdharTransaction
	for _, u := range r.udhars {
		if u.DueDate.Before(asOf) && u.Status != enum.UdharStatusPaid {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUdharRepo) AddPayment(ctx context.Context, payment *entity.UdharPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments[payment.UdharID] = append(r.payments[payment.UdharID], *payment)
	return nil
}

type stubOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *stubOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *stubOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *stubOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type stubOrderItemRepo struct {
	items map[uuid.UUID][]entity.OrderItem
}

func newStubOrderItemRepo() *stubOrderItemRepo {
	return &stubOrderItemRepo{items: make(map[uuid.UUID][]entity.OrderItem)}
}

func (r *stubOrderItemRepo) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	for _, item := range items {
		r.items[item.OrderID] = append(r.items[item.OrderID], item)
	}
	return nil
}

func (r *stubOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *stubOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	delete(r.items, orderID)
	return nil
}

// stubSettingsRepo optionally fails every read to exercise the
// settings-unavailable path.
type stubSettingsRepo struct {
	settings *entity.BillSettings
	fail     error
}

func (r *stubSettingsRepo) Get(ctx context.Context) (*entity.BillSettings, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Create(ctx context.Context, settings *entity.BillSettings) error {
	if r.fail != nil {
		return r.fail
	}
	r.settings = settings
	return nil
}

func (r *stubSettingsRepo) Update(ctx context.Context, settings *entity.BillSettings) error {
	if r.fail != nil {
		return r.fail
	}
	r.settings = settings
	return nil
}
