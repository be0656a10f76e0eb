package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/dto"
	"github.com/katysh-aa/family-budget/internal/handlers"
	"github.com/katysh-aa/family-budget/internal/platform/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ReplaceSnapshot(ctx context.Context, req dto.TransactionSnapshotRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context) (*domain.UsdRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsdRate), args.Error(1)
}

func (m *MockRateService) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockTxn  *MockTransactionService
	mockRate *MockRateService
}

func (suite *TransactionHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidations()
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.mockTxn = new(MockTransactionService)
	suite.mockRate = new(MockRateService)

	container := &portssvc.ServiceContainer{
		Transaction: suite.mockTxn,
		Rate:        suite.mockRate,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	body := `{
		"date": "2025-03-15",
		"category": "Продукты",
		"amount": 2500,
		"type": "expense",
		"author": "Анна"
	}`
	created := &domain.Transaction{
		TransactionID: "t1",
		Date:          time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:      "Продукты",
		Amount:        decimal.NewFromInt(2500),
		Type:          domain.Expense,
		Author:        "Анна",
	}
	suite.mockTxn.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(created, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("t1", resp.TransactionID)
	suite.Equal("2025-03-15", resp.Date)

	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorListsEveryViolation() {
	body := `{
		"date": "15.03.2025",
		"category": "Продукты",
		"amount": 100,
		"type": "transfer",
		"author": "Анна"
	}`
	violations := []string{
		"date must be in YYYY-MM-DD format",
		"type must be either income or expense",
	}
	suite.mockTxn.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError(violations)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(violations, resp.Errors)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxn.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	body := `{
		"date": "2025-03-15",
		"category": "Продукты",
		"amount": 2500,
		"type": "expense",
		"author": "Анна"
	}`
	suite.mockTxn.On("UpdateTransaction", mock.Anything, "missing", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/transactions/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestReplaceSnapshot_Success() {
	body := `{"transactions": [{
		"date": "2025-03-15",
		"category": "Продукты",
		"amount": 2500,
		"type": "expense",
		"author": "Анна"
	}]}`
	suite.mockTxn.On("ReplaceSnapshot", mock.Anything, mock.Anything).Return(1, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/transactions/snapshot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SnapshotResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Replaced)
}

func (suite *TransactionHandlerTestSuite) TestGetRate_UnavailableMapsTo503() {
	suite.mockRate.On("GetRate", mock.Anything).Return(nil, apperrors.ErrRateUnavailable).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rate", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetRate_ReportsStaleness() {
	rate := &domain.UsdRate{
		Rate:      decimal.NewFromFloat(89.75),
		FetchedAt: time.Now().Add(-48 * time.Hour),
	}
	suite.mockRate.On("GetRate", mock.Anything).Return(rate, nil).Once()
	suite.mockRate.On("TTL").Return(24 * time.Hour).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rate", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Stale)
	suite.True(resp.Rate.Equal(decimal.NewFromFloat(89.75)))
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
