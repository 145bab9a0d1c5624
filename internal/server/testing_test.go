package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techzen-dev/techzen/internal/config"
	"github.com/techzen-dev/techzen/internal/imghost"
	"github.com/techzen-dev/techzen/internal/models"
)

// mockStore simulates the document store gateway for handler tests
type mockStore struct {
	user     *models.User
	users    []models.User
	products []models.Product
	err      error

	lastFilter   bson.M
	lastSearch   string
	upsertCalls  int
	upsertedUser models.User
}

func (m *mockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user != nil && m.user.Email == email {
		return m.user, nil
	}
	return nil, nil
}

func (m *mockStore) UpsertUser(ctx context.Context, user models.User) (*mongo.UpdateResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.upsertCalls++
	m.upsertedUser = user
	return &mongo.UpdateResult{UpsertedCount: 1}, nil
}

func (m *mockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockStore) FilterProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	return m.products, nil
}

func (m *mockStore) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastSearch = query
	return m.products, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        "0",
			Environment: "development",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Auth: config.AuthConfig{TokenSecret: "test-secret"},
	}
}

func newTestServer(t *testing.T, st *mockStore) *Server {
	t.Helper()
	return New(testConfig(), st, imghost.NewClient("http://127.0.0.1:0"), zerolog.Nop())
}

func perform(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func getRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
