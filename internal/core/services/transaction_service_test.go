package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/core/services"
	"github.com/katysh-aa/family-budget/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

// --- Mock RefreshTrigger ---
type MockRefreshTrigger struct {
	mock.Mock
}

func (m *MockRefreshTrigger) Notify() {
	m.Called()
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockTransactionRepository
	mockTrigger *MockRefreshTrigger
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockTrigger = new(MockRefreshTrigger)
	suite.service = services.NewTransactionService(
		suite.mockRepo,
		services.WithTransactionRefreshTrigger(suite.mockTrigger),
	)
}

func validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:     "2025-03-15",
		Category: "Продукты",
		Amount:   decimal.NewFromInt(2500),
		Type:     "expense",
		Author:   "Анна",
		Comment:  "Неделя",
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := validRequest()

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID != "" &&
			t.Category == req.Category &&
			t.Type == domain.Expense &&
			t.Date.Format(domain.DateLayout) == req.Date
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(req.Category, txn.Category)
	suite.False(txn.DollarSavings)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTrigger.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ReportsAllViolationsTogether() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:   "15.03.2025",
		Amount: decimal.NewFromInt(-10),
		Type:   "transfer",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Len(ve.Violations, 5) // date, category, amount, type, author

	// No store mutation and no refresh on a rejected intake.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.mockTrigger.AssertNotCalled(suite.T(), "Notify")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PreservesIDAndCreatedAt() {
	ctx := context.Background()
	existing := validRequest().ToInput().ToTransaction()
	existing.TransactionID = uuid.NewString()

	req := validRequest()
	req.Amount = decimal.NewFromInt(9000)

	suite.mockRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == existing.TransactionID && t.Amount.Equal(decimal.NewFromInt(9000))
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	txn, err := suite.service.UpdateTransaction(ctx, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(existing.TransactionID, txn.TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(ctx, id, validRequest())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, id).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, id))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTrigger.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestReplaceSnapshot_SortsDateDescending() {
	ctx := context.Background()
	older := validRequest()
	older.Date = "2025-01-01"
	newer := validRequest()
	newer.Date = "2025-03-01"

	req := dto.TransactionSnapshotRequest{
		Transactions: []dto.CreateTransactionRequest{older, newer},
	}

	suite.mockRepo.On("ReplaceAllTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 && txns[0].Date.After(txns[1].Date)
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	replaced, err := suite.service.ReplaceSnapshot(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(2, replaced)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestReplaceSnapshot_OneBadRowRejectsWholePush() {
	ctx := context.Background()
	good := validRequest()
	bad := validRequest()
	bad.Amount = decimal.Zero

	req := dto.TransactionSnapshotRequest{
		Transactions: []dto.CreateTransactionRequest{good, bad},
	}

	replaced, err := suite.service.ReplaceSnapshot(ctx, req)

	suite.Require().Error(err)
	suite.Zero(replaced)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Require().Len(ve.Violations, 1)
	suite.Contains(ve.Violations[0], "transaction 1:")

	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceAllTransactions", mock.Anything, mock.Anything)
	suite.mockTrigger.AssertNotCalled(suite.T(), "Notify")
}

func (suite *TransactionServiceTestSuite) TestReplaceSnapshot_SaveErrorPropagates() {
	ctx := context.Background()
	req := dto.TransactionSnapshotRequest{
		Transactions: []dto.CreateTransactionRequest{validRequest()},
	}

	suite.mockRepo.On("ReplaceAllTransactions", ctx, mock.Anything).Return(assert.AnError).Once()

	replaced, err := suite.service.ReplaceSnapshot(ctx, req)

	suite.Require().Error(err)
	suite.Zero(replaced)
	suite.ErrorIs(err, assert.AnError)
	suite.mockTrigger.AssertNotCalled(suite.T(), "Notify")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
