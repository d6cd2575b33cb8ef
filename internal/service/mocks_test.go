package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/cache"
	"siyomart/internal/gateway"
	"siyomart/internal/models"
	"siyomart/internal/repository"
)

// mocks hechos a mano sobre mapas en memoria; la guarda de stock se
// implementa igual que en el repositorio real para poder ejercitar
// checkouts concurrentes.

type mockProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*models.Product
}

func newMockProductStore(products ...*models.Product) *mockProductStore {
	m := &mockProductStore{products: make(map[primitive.ObjectID]*models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byID := make(map[primitive.ObjectID]*models.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			cp := *p
			byID[id] = &cp
		}
	}
	return byID, nil
}

func (m *mockProductStore) DecrementStock(_ context.Context, id primitive.ObjectID, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if p.Stock < quantity {
		return repository.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (m *mockProductStore) RestoreStock(_ context.Context, id primitive.ObjectID, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		p.Stock += quantity
	}
	return nil
}

func (m *mockProductStore) stock(id primitive.ObjectID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

type mockCartStore struct {
	mu        sync.Mutex
	carts     map[string]*models.Cart
	upsertErr error
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: make(map[string]*models.Cart)}
}

func (m *mockCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (m *mockCartStore) Upsert(_ context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[userID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(m.carts, userID)
	return nil
}

type mockOrderStore struct {
	mu        sync.Mutex
	orders    map[primitive.ObjectID]*models.Order
	createErr error
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (m *mockOrderStore) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = primitive.NewObjectID()
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderStore) FindByUser(_ context.Context, userID string) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockOrderStore) FindAll(_ context.Context) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Order, 0)
	for _, o := range m.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockOrderStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (m *mockOrderStore) SetTransactionID(_ context.Context, id primitive.ObjectID, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.TransactionID = transactionID
	return nil
}

type mockPaymentStore struct {
	mu        sync.Mutex
	payments  []*models.Payment
	createErr error
}

func (m *mockPaymentStore) Create(_ context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, payment)
	return nil
}

// noopCache siempre falla el Get; suficiente para los tests de servicio.
type noopCache struct{}

func (noopCache) Get(context.Context, string) (*models.CartView, error) {
	return nil, cache.ErrCacheMiss
}
func (noopCache) Set(context.Context, string, *models.CartView) error { return nil }
func (noopCache) Delete(context.Context, string) error                { return nil }

type mockGateway struct {
	intent *gateway.Intent
	err    error
	calls  int
}

func (m *mockGateway) CreateIntent(_ context.Context, _ gateway.IntentRequest) (*gateway.Intent, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}
