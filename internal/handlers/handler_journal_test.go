package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/handlers"
	"github.com/openbookshq/openbooks/internal/platform/config"
	"github.com/openbookshq/openbooks/internal/utils"
	"github.com/openbookshq/openbooks/internal/utils/accounting"
)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetLastCompany(ctx context.Context, userID, companyID int64) error {
	args := m.Called(ctx, userID, companyID)
	return args.Error(0)
}

func (m *MockUserService) StoreRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock CompanyService ---

type MockCompanyService struct {
	mock.Mock
}

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

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, companyID int64, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, companyID, entryID int64, requestingUserID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, companyID int64, params dto.ListJournalEntriesParams, requestingUserID int64) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, params, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Test Suite ---

type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockCompanyService *MockCompanyService
	mockJournalService *MockJournalService
	cfg                *config.Config

	userID    int64
	companyID int64
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "openbooks-test",
		RateLimitRate:     "100-M",
		IsProduction:      true, // keeps swagger routes out of the test router
	}

	suite.mockUserService = new(MockUserService)
	suite.mockCompanyService = new(MockCompanyService)
	suite.mockJournalService = new(MockJournalService)

	services := &portssvc.ServiceContainer{
		User:    suite.mockUserService,
		Company: suite.mockCompanyService,
		Journal: suite.mockJournalService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services)

	suite.userID = 7
	suite.companyID = 42
}

func (suite *JournalHandlerTestSuite) generateTestToken(userID int64) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *JournalHandlerTestSuite) postEntry(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	url := fmt.Sprintf("/api/v1/companies/%d/journal-entries", suite.companyID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) validEntryRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Invoice payment received",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: 101, Debit: decimal.NewFromInt(500)},
			{AccountID: 102, Credit: decimal.NewFromInt(500)},
		},
	}
}

func (suite *JournalHandlerTestSuite) allowTenantAccess() {
	suite.mockCompanyService.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleViewer).Return(nil)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	suite.allowTenantAccess()
	req := suite.validEntryRequest()

	created := &domain.JournalEntry{
		EntryID:     301,
		CompanyID:   suite.companyID,
		EntryDate:   req.Date,
		Description: req.Description,
		Lines: []domain.JournalLine{
			{LineID: 1, EntryID: 301, AccountID: 101, Debit: decimal.NewFromInt(500)},
			{LineID: 2, EntryID: 301, AccountID: 102, Credit: decimal.NewFromInt(500)},
		},
	}
	suite.mockJournalService.On("CreateEntry", mock.Anything, suite.companyID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(created, nil)

	w := suite.postEntry(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(301), resp.EntryID)
	suite.Len(resp.Lines, 2)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_NoToken() {
	url := fmt.Sprintf("/api/v1/companies/%d/journal-entries", suite.companyID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_NonMemberForbidden() {
	suite.mockCompanyService.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleViewer).
		Return(apperrors.ErrForbidden)

	w := suite.postEntry(suite.validEntryRequest())

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_UnbalancedReportsTotals() {
	suite.allowTenantAccess()
	suite.mockJournalService.On("CreateEntry", mock.Anything, suite.companyID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, &accounting.UnbalancedEntryError{
			TotalDebits:  decimal.NewFromInt(500),
			TotalCredits: decimal.RequireFromString("499.50"),
		})

	w := suite.postEntry(suite.validEntryRequest())

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.UnbalancedEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("UNBALANCED_ENTRY", resp.Code)
	suite.Equal("500", resp.TotalDebits)
	suite.Equal("499.5", resp.TotalCredits)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_EmptyEntry() {
	suite.allowTenantAccess()
	suite.mockJournalService.On("CreateEntry", mock.Anything, suite.companyID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, accounting.ErrEmptyEntry)

	w := suite.postEntry(suite.validEntryRequest())

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EMPTY_ENTRY", resp.Code)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MalformedBody() {
	suite.allowTenantAccess()

	url := fmt.Sprintf("/api/v1/companies/%d/journal-entries", suite.companyID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{"date":`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	suite.allowTenantAccess()
	suite.mockJournalService.On("GetEntryByID", mock.Anything, suite.companyID, int64(999), suite.userID).
		Return(nil, fmt.Errorf("%w: journal entry 999", apperrors.ErrNotFound))

	url := fmt.Sprintf("/api/v1/companies/%d/journal-entries/999", suite.companyID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestListEntries_Success() {
	suite.allowTenantAccess()
	entries := []domain.JournalEntry{
		{EntryID: 1, CompanyID: suite.companyID, Description: "Opening balance"},
		{EntryID: 2, CompanyID: suite.companyID, Description: "Office rent"},
	}
	suite.mockJournalService.On("ListEntries", mock.Anything, suite.companyID, mock.AnythingOfType("dto.ListJournalEntriesParams"), suite.userID).
		Return(entries, nil)

	url := fmt.Sprintf("/api/v1/companies/%d/journal-entries?limit=10", suite.companyID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
