package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/core/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SumByAccountType(ctx context.Context, companyID int64) ([]domain.AccountTypeTotals, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTypeTotals), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID int64, req dto.CreateAccountRequest, creatorUserID int64) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID, accountID int64, requestingUserID int64) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, companyID int64, accountIDs []int64, requestingUserID int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

func (m *MockCompanyService) CreateCompany(ctx context.Context, name string, creatorUserID int64) (*domain.Company, error) {
	args := m.Called(ctx, name, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) ListUserCompanies(ctx context.Context, userID int64) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) AddMember(ctx context.Context, actingUserID, targetUserID, companyID int64, role domain.CompanyRole) error {
	args := m.Called(ctx, actingUserID, targetUserID, companyID, role)
	return args.Error(0)
}

func (m *MockCompanyService) SelectCompany(ctx context.Context, userID, companyID int64) error {
	args := m.Called(ctx, userID, companyID)
	return args.Error(0)
}

func (m *MockCompanyService) AuthorizeUserAction(ctx context.Context, userID, companyID int64, requiredRole domain.CompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	mockCompanySvc  *MockCompanyService
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	revenueAccount  domain.Account
	companyID       int64
	userID          int64
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockCompanySvc = new(MockCompanyService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockCompanySvc)

	suite.companyID = 42
	suite.userID = 7

	suite.cashAccount = domain.Account{
		AccountID:   101,
		CompanyID:   suite.companyID,
		Name:        "Cash",
		AccountType: domain.Asset,
		Code:        "1000",
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   102,
		CompanyID:   suite.companyID,
		Name:        "Sales",
		AccountType: domain.Revenue,
		Code:        "4000",
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Cash sale",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(500)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(500)},
		},
	}
}

func (suite *JournalServiceTestSuite) accountsMap() map[int64]domain.Account {
	return map[int64]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, []int64{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}, suite.userID).
		Return(suite.accountsMap(), nil).Once()

	persisted := &domain.JournalEntry{
		EntryID:     1001,
		CompanyID:   suite.companyID,
		Description: req.Description,
		Lines: []domain.JournalLine{
			{LineID: 1, EntryID: 1001, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(500), Credit: decimal.Zero, Position: 0},
			{LineID: 2, EntryID: 1001, AccountID: suite.revenueAccount.AccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(500), Position: 1},
		},
	}
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Return(persisted, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(1001), entry.EntryID)
	suite.Equal(suite.companyID, entry.CompanyID)
	suite.Len(entry.Lines, 2)

	suite.mockCompanySvc.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AuthorizationFail() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_EmptyLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "No lines",
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrEmptyEntry)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Unbalanced",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(500)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromFloat(499.50)},
		},
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	var unbalanced *accounting.UnbalancedEntryError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.TotalDebits.Equal(decimal.NewFromInt(500)))
	suite.True(unbalanced.TotalCredits.Equal(decimal.NewFromFloat(499.50)))
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:        time.Now(),
		Description: "Negative debit",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(-100)},
		},
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	var invalid *accounting.InvalidAmountError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal(0, invalid.Position)
	suite.Equal("debit", invalid.Field)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_CrossTenantAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	// The revenue account is missing from the scoped lookup, as happens when
	// it belongs to another company.
	accounts := map[int64]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, []int64{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}, suite.userID).
		Return(accounts, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	var crossTenant *accounting.CrossTenantReferenceError
	suite.Require().ErrorAs(err, &crossTenant)
	suite.Equal(suite.revenueAccount.AccountID, crossTenant.AccountID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	inactive := suite.revenueAccount
	inactive.IsActive = false
	accounts := map[int64]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		inactive.AccountID:          inactive,
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, []int64{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}, suite.userID).
		Return(accounts, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_PersistenceFailure() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, []int64{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}, suite.userID).
		Return(suite.accountsMap(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Return(nil, apperrors.ErrPersistence).Once()

	_, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	// A failed commit is not retried.
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveEntry", 1)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_WrongCompanyHidden() {
	ctx := context.Background()
	otherCompanyEntry := &domain.JournalEntry{EntryID: 900, CompanyID: suite.companyID + 1}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleViewer).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntryByID", ctx, int64(900)).Return(otherCompanyEntry, nil).Once()

	_, err := suite.service.GetEntryByID(ctx, suite.companyID, 900, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListEntries_IncludeLines() {
	ctx := context.Background()
	entries := []domain.JournalEntry{
		{EntryID: 1, CompanyID: suite.companyID},
		{EntryID: 2, CompanyID: suite.companyID},
	}
	lines := map[int64][]domain.JournalLine{
		1: {{LineID: 10, EntryID: 1, AccountID: suite.cashAccount.AccountID}},
		2: {{LineID: 11, EntryID: 2, AccountID: suite.revenueAccount.AccountID}},
	}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleViewer).Return(nil).Once()
	suite.mockJournalRepo.On("ListEntriesByCompany", ctx, suite.companyID, 50).Return(entries, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryIDs", ctx, []int64{1, 2}).Return(lines, nil).Once()

	got, err := suite.service.ListEntries(ctx, suite.companyID, dto.ListJournalEntriesParams{IncludeLines: true}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Len(got[0].Lines, 1)
	suite.Len(got[1].Lines, 1)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
