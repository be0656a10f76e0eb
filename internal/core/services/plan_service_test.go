package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/core/services"
	"github.com/katysh-aa/family-budget/internal/dto"
)

// --- Mock PlanRepository ---
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) ListPlans(ctx context.Context) ([]domain.FinancialPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialPlan), args.Error(1)
}

func (m *MockPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.FinancialPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPlan), args.Error(1)
}

func (m *MockPlanRepository) FindPlanByMonth(ctx context.Context, month string) (*domain.FinancialPlan, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPlan), args.Error(1)
}

func (m *MockPlanRepository) SavePlan(ctx context.Context, plan domain.FinancialPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlan(ctx context.Context, plan domain.FinancialPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) DeletePlan(ctx context.Context, planID string) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

func (m *MockPlanRepository) ReplaceAllPlans(ctx context.Context, plans []domain.FinancialPlan) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

// --- Test Suite ---
type PlanServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockPlanRepository
	mockTrigger *MockRefreshTrigger
	service     portssvc.PlanSvcFacade
}

func (suite *PlanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPlanRepository)
	suite.mockTrigger = new(MockRefreshTrigger)
	suite.service = services.NewPlanService(
		suite.mockRepo,
		services.WithPlanRefreshTrigger(suite.mockTrigger),
	)
}

func planRequest(month string) dto.SavePlanRequest {
	return dto.SavePlanRequest{
		Month:   month,
		Income:  decimal.NewFromInt(150000),
		Expense: decimal.NewFromInt(90000),
	}
}

func (suite *PlanServiceTestSuite) TestSavePlan_CreatesWhenMonthIsNew() {
	ctx := context.Background()
	req := planRequest("2025-04")

	suite.mockRepo.On("FindPlanByMonth", ctx, "2025-04").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePlan", ctx, mock.MatchedBy(func(p domain.FinancialPlan) bool {
		return p.PlanID != "" && p.Month == "2025-04"
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	plan, err := suite.service.SavePlan(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("2025-04", plan.Month)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestSavePlan_ReplacesExistingMonth() {
	ctx := context.Background()
	existing := &domain.FinancialPlan{
		PlanID: uuid.NewString(),
		Month:  "2025-04",
		Income: decimal.NewFromInt(100000),
	}
	req := planRequest("2025-04")

	suite.mockRepo.On("FindPlanByMonth", ctx, "2025-04").Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePlan", ctx, mock.MatchedBy(func(p domain.FinancialPlan) bool {
		return p.PlanID == existing.PlanID && p.Income.Equal(decimal.NewFromInt(150000))
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	plan, err := suite.service.SavePlan(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(existing.PlanID, plan.PlanID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePlan", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestSavePlan_RejectsBadMonthAndNegativeAmounts() {
	ctx := context.Background()
	req := dto.SavePlanRequest{
		Month:   "апрель",
		Income:  decimal.NewFromInt(-1),
		Expense: decimal.NewFromInt(-2),
	}

	plan, err := suite.service.SavePlan(ctx, req)

	suite.Require().Error(err)
	suite.Nil(plan)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Len(ve.Violations, 3)

	suite.mockRepo.AssertNotCalled(suite.T(), "FindPlanByMonth", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestReplaceSnapshot_SortsByMonthAscending() {
	ctx := context.Background()
	req := dto.PlanSnapshotRequest{
		Plans: []dto.SavePlanRequest{planRequest("2025-05"), planRequest("2025-03")},
	}

	suite.mockRepo.On("ReplaceAllPlans", ctx, mock.MatchedBy(func(plans []domain.FinancialPlan) bool {
		return len(plans) == 2 && plans[0].Month == "2025-03" && plans[1].Month == "2025-05"
	})).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	replaced, err := suite.service.ReplaceSnapshot(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(2, replaced)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlanServiceTestSuite) TestReplaceSnapshot_RejectsDuplicateMonths() {
	ctx := context.Background()
	req := dto.PlanSnapshotRequest{
		Plans: []dto.SavePlanRequest{planRequest("2025-03"), planRequest("2025-03")},
	}

	replaced, err := suite.service.ReplaceSnapshot(ctx, req)

	suite.Require().Error(err)
	suite.Zero(replaced)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Require().Len(ve.Violations, 1)
	suite.Contains(ve.Violations[0], "duplicate month 2025-03")

	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceAllPlans", mock.Anything, mock.Anything)
}

func (suite *PlanServiceTestSuite) TestDeletePlan_Success() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("DeletePlan", ctx, id).Return(nil).Once()
	suite.mockTrigger.On("Notify").Return().Once()

	suite.Require().NoError(suite.service.DeletePlan(ctx, id))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
