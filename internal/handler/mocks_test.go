package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// MockInventoryService mocks inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Grant(ctx context.Context, playerID int64, itemID, quantity int) (*domain.GrantResult, error) {
	args := m.Called(ctx, playerID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrantResult), args.Error(1)
}

func (m *MockInventoryService) Consume(ctx context.Context, playerID int64, itemID int) (*domain.ConsumeResult, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsumeResult), args.Error(1)
}

func (m *MockInventoryService) DrawGacha(ctx context.Context, playerID int64, drawCount int) (*domain.GachaResult, error) {
	args := m.Called(ctx, playerID, drawCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaResult), args.Error(1)
}

// MockPlayerRegistry mocks PlayerRegistry
type MockPlayerRegistry struct {
	mock.Mock
}

func (m *MockPlayerRegistry) CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRegistry) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRegistry) GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerItem), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// serve routes a single request through pattern so chi URL params resolve
func serve(t *testing.T, method, pattern, path string, body interface{}, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}
