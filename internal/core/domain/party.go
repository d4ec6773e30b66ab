package domain

// Customer represents a billing counterparty that receives invoices.
type Customer struct {
	CustomerID int64  `json:"customerID"` // Primary key (bigserial)
	CompanyID  int64  `json:"companyID"`  // FK -> companies.company_id (NOT NULL)
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	TaxID      string `json:"taxID"`
	AuditFields
}

// Vendor represents a supplier that expenses can be recorded against.
type Vendor struct {
	VendorID  int64  `json:"vendorID"` // Primary key (bigserial)
	CompanyID int64  `json:"companyID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TaxID     string `json:"taxID"`
	AuditFields
}
