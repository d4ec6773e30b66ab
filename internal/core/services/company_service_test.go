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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID int64) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindMembership(ctx context.Context, userID, companyID int64) (*domain.CompanyMembership, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMembership), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, creatorMembership domain.CompanyMembership) (*domain.Company, error) {
	args := m.Called(ctx, company, creatorMembership)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) AddMembership(ctx context.Context, membership domain.CompanyMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastCompany(ctx context.Context, userID int64, companyID int64) error {
	args := m.Called(ctx, userID, companyID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.CompanySvcFacade
	companyID       int64
	userID          int64
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo)
	suite.companyID = 42
	suite.userID = 7
}

func (suite *CompanyServiceTestSuite) membershipWith(role domain.CompanyRole) *domain.CompanyMembership {
	return &domain.CompanyMembership{
		UserID:    suite.userID,
		CompanyID: suite.companyID,
		Role:      role,
		JoinedAt:  time.Now(),
	}
}

// --- Test Cases ---

func (suite *CompanyServiceTestSuite) TestAuthorize_NonMemberForbidden() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.companyID, domain.RoleViewer)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CompanyServiceTestSuite) TestAuthorize_ViewerCannotWrite() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleViewer), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.companyID, domain.RoleMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CompanyServiceTestSuite) TestAuthorize_ViewerCanRead() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleViewer), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.companyID, domain.RoleViewer)

	suite.Require().NoError(err)
}

func (suite *CompanyServiceTestSuite) TestAuthorize_AdminOutranksMember() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleAdmin), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.companyID, domain.RoleMember)

	suite.Require().NoError(err)
}

func (suite *CompanyServiceTestSuite) TestAuthorize_MemberCannotAdmin() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleMember), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.companyID, domain.RoleAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_CreatorBecomesAdmin() {
	ctx := context.Background()
	saved := &domain.Company{CompanyID: suite.companyID, Name: "Acme"}

	suite.mockCompanyRepo.On("SaveCompany", ctx, mock.AnythingOfType("domain.Company"), mock.MatchedBy(func(m domain.CompanyMembership) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(saved, nil).Once()
	suite.mockUserRepo.On("UpdateLastCompany", ctx, suite.userID, suite.companyID).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, "Acme", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.companyID, company.CompanyID)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestAddMember_RequiresAdmin() {
	ctx := context.Background()
	targetUserID := int64(99)

	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleMember), nil).Once()

	err := suite.service.AddMember(ctx, suite.userID, targetUserID, suite.companyID, domain.RoleMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "AddMembership", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	targetUserID := int64(99)

	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(suite.membershipWith(domain.RoleAdmin), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetUserID).
		Return(&domain.User{UserID: targetUserID}, nil).Once()
	suite.mockCompanyRepo.On("AddMembership", ctx, mock.MatchedBy(func(m domain.CompanyMembership) bool {
		return m.UserID == targetUserID && m.CompanyID == suite.companyID && m.Role == domain.RoleViewer
	})).Return(nil).Once()

	err := suite.service.AddMember(ctx, suite.userID, targetUserID, suite.companyID, domain.RoleViewer)

	suite.Require().NoError(err)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestSelectCompany_NonMemberForbidden() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindMembership", ctx, suite.userID, suite.companyID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SelectCompany(ctx, suite.userID, suite.companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastCompany", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
