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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLinesByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesByCompany(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, companyID, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Test Suite Setup ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerRepository
	mockCompanySvc   *MockCompanyService
	service          portssvc.InvoiceSvcFacade
	companyID        int64
	userID           int64
	customerID       int64
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockCompanySvc = new(MockCompanyService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCustomerRepo, suite.mockCompanySvc)
	suite.companyID = 42
	suite.userID = 7
	suite.customerID = 301
}

func (suite *InvoiceServiceTestSuite) validRequest() dto.CreateInvoiceRequest {
	issue := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreateInvoiceRequest{
		CustomerID: suite.customerID,
		Number:     "INV-0001",
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 1, 0),
		Lines: []dto.CreateInvoiceLineRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(150.50)},
			{Description: "Travel", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(89.99)},
		},
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TotalComputedServerSide() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, suite.customerID).
		Return(&domain.Customer{CustomerID: suite.customerID, CompanyID: suite.companyID}, nil).Once()

	// 10 * 150.50 + 1 * 89.99 = 1594.99
	wantTotal := decimal.NewFromFloat(1594.99)
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Total.Equal(wantTotal) && inv.Status == domain.InvoiceDraft && inv.CompanyID == suite.companyID
	}), mock.MatchedBy(func(lines []domain.InvoiceLine) bool {
		return len(lines) == 2 && lines[0].Amount.Equal(decimal.NewFromInt(1505))
	})).Return(&domain.Invoice{InvoiceID: 1, CompanyID: suite.companyID, Total: wantTotal}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(invoice.Total.Equal(wantTotal))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoLines() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Lines = nil

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueBeforeIssue() {
	ctx := context.Background()
	req := suite.validRequest()
	req.DueDate = req.IssueDate.AddDate(0, 0, -1)

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ForeignCustomer() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, suite.customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroQuantity() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Lines[0].Quantity = decimal.Zero

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, suite.customerID).
		Return(&domain.Customer{CustomerID: suite.customerID, CompanyID: suite.companyID}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_WrongCompanyHidden() {
	ctx := context.Background()
	foreign := &domain.Invoice{InvoiceID: 5, CompanyID: suite.companyID + 1}

	suite.mockCompanySvc.On("AuthorizeUserAction", ctx, suite.userID, suite.companyID, domain.RoleViewer).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(5)).Return(foreign, nil).Once()

	_, err := suite.service.GetInvoiceByID(ctx, suite.companyID, 5, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
