package services

import (
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/platform/config"
)

// NewServiceContainer wires all application services over the repository
// container. Called once at startup.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, cfg *config.Config) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.User)
	companySvc := NewCompanyService(repos.Company, repos.User)
	accountSvc := NewAccountService(repos.Account, companySvc)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Token:       NewTokenService(repos.User, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration, cfg.RefreshTokenExpiryDuration),
		GoogleOAuth: NewGoogleOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
		Company:     companySvc,
		Account:     accountSvc,
		Journal:     NewJournalService(repos.Journal, accountSvc, companySvc),
		Customer:    NewCustomerService(repos.Customer, companySvc),
		Vendor:      NewVendorService(repos.Vendor, companySvc),
		Invoice:     NewInvoiceService(repos.Invoice, repos.Customer, companySvc),
		Expense:     NewExpenseService(repos.Expense, repos.Vendor, companySvc),
		Dashboard:   NewDashboardService(repos.Journal, repos.Invoice, repos.Expense, companySvc),
	}
}
