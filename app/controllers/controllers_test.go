package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
)

// In-memory repository fakes. They satisfy the same interfaces the Mongo
// implementations do, including mongo.ErrNoDocuments on absent records, so
// controllers see identical semantics.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (m *memUserRepo) RoleByEmail(_ context.Context, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[email].Role, nil
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.Email] = *user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (m *memUserRepo) All(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) UpsertRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		u.Role = role
		m.users[email] = u
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	u := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	m.users[email] = u
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: u.ID}, nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[primitive.ObjectID]models.Product)}
}

func (m *memProductRepo) Create(_ context.Context, product *models.Product) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products[product.ID] = *product
	return &mongo.InsertOneResult{InsertedID: product.ID}, nil
}

func (m *memProductRepo) All(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

type memCartRepo struct {
	mu    sync.Mutex
	items []models.CartItem
}

func (m *memCartRepo) Create(_ context.Context, item *models.CartItem) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.items = append(m.items, *item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (m *memCartRepo) FindByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CartItem
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCartRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *memCartRepo) DeleteByEmail(_ context.Context, email string) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []models.CartItem
	var deleted int64
	for _, it := range m.items {
		if it.Email == email {
			deleted++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return &mongo.DeleteResult{DeletedCount: deleted}, nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []models.Order
}

func (m *memOrderRepo) Create(_ context.Context, order *models.Order) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	m.orders = append(m.orders, *order)
	return &mongo.InsertOneResult{InsertedID: order.ID}, nil
}

func (m *memOrderRepo) FindPendingByEmail(_ context.Context, email string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.Email == email && o.Status == models.StatusPending {
			out = append(out, o)
		}
	}
	return out, nil
}

// envelope mirrors the pkg/response JSON shape for assertions.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dest); err != nil {
		t.Fatalf("decode envelope data: %v", err)
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}
