package invobox

import (
	"time"
)

// Subject represents an address-book entry: a customer or supplier that
// invoices are issued to or received from.
type Subject struct {
	ID             int64      `json:"id,omitempty"              yaml:"id,omitempty"`
	CustomID       string     `json:"custom_id,omitempty"       yaml:"custom_id,omitempty"`
	Name           string     `json:"name"                      yaml:"name"`
	FullName       string     `json:"full_name,omitempty"       yaml:"full_name,omitempty"`
	Email          string     `json:"email,omitempty"           yaml:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Web            string     `json:"web,omitempty"             yaml:"web,omitempty"`
	Street         string     `json:"street,omitempty"          yaml:"street,omitempty"`
	City           string     `json:"city,omitempty"            yaml:"city,omitempty"`
	Zip            string     `json:"zip,omitempty"             yaml:"zip,omitempty"`
	Country        string     `json:"country,omitempty"         yaml:"country,omitempty"`
	RegistrationNo string     `json:"registration_no,omitempty" yaml:"registration_no,omitempty"`
	VATNo          string     `json:"vat_no,omitempty"          yaml:"vat_no,omitempty"`
	Note           string     `json:"note,omitempty"            yaml:"note,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// Invoice represents an issued invoice including its line items.
//
// Monetary amounts are decimal strings exactly as the API reports them; the
// client performs no arithmetic on them.
type Invoice struct {
	ID          int64         `json:"id,omitempty"           yaml:"id,omitempty"`
	SubjectID   int64         `json:"subject_id"             yaml:"subject_id"`
	Number      string        `json:"number,omitempty"       yaml:"number,omitempty"`
	OrderNumber string        `json:"order_number,omitempty" yaml:"order_number,omitempty"`
	Status      string        `json:"status,omitempty"       yaml:"status,omitempty"`
	Due         int           `json:"due,omitempty"          yaml:"due,omitempty"`
	IssuedOn    string        `json:"issued_on,omitempty"    yaml:"issued_on,omitempty"`
	DueOn       string        `json:"due_on,omitempty"       yaml:"due_on,omitempty"`
	SentAt      *time.Time    `json:"sent_at,omitempty"      yaml:"sent_at,omitempty"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"      yaml:"paid_at,omitempty"`
	Currency    string        `json:"currency,omitempty"     yaml:"currency,omitempty"`
	Note        string        `json:"note,omitempty"         yaml:"note,omitempty"`
	Lines       []InvoiceLine `json:"lines,omitempty"        yaml:"lines,omitempty"`
	Subtotal    string        `json:"subtotal,omitempty"     yaml:"subtotal,omitempty"`
	Total       string        `json:"total,omitempty"        yaml:"total,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// InvoiceLine represents a single invoice line item.
type InvoiceLine struct {
	ID        int64  `json:"id,omitempty"         yaml:"id,omitempty"`
	Name      string `json:"name"                 yaml:"name"`
	Quantity  string `json:"quantity,omitempty"   yaml:"quantity,omitempty"`
	UnitName  string `json:"unit_name,omitempty"  yaml:"unit_name,omitempty"`
	UnitPrice string `json:"unit_price"           yaml:"unit_price"`
	VATRate   int    `json:"vat_rate,omitempty"   yaml:"vat_rate,omitempty"`
}

// BankAccount represents a bank account configured on the billing account.
// The bank accounts endpoint is not paginated by the API.
type BankAccount struct {
	ID       int64  `json:"id"                 yaml:"id"`
	Name     string `json:"name"               yaml:"name"`
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Number   string `json:"number,omitempty"   yaml:"number,omitempty"`
	IBAN     string `json:"iban,omitempty"     yaml:"iban,omitempty"`
	SwiftBIC string `json:"swift_bic,omitempty" yaml:"swift_bic,omitempty"`
	Default  bool   `json:"default,omitempty"  yaml:"default,omitempty"`
}

// Account represents the billing account's own details.
type Account struct {
	Subdomain      string     `json:"subdomain"                 yaml:"subdomain"`
	Plan           string     `json:"plan,omitempty"            yaml:"plan,omitempty"`
	Name           string     `json:"name"                      yaml:"name"`
	FullName       string     `json:"full_name,omitempty"       yaml:"full_name,omitempty"`
	InvoiceEmail   string     `json:"invoice_email,omitempty"   yaml:"invoice_email,omitempty"`
	Phone          string     `json:"phone,omitempty"           yaml:"phone,omitempty"`
	WebURL         string     `json:"web_url,omitempty"         yaml:"web_url,omitempty"`
	Street         string     `json:"street,omitempty"          yaml:"street,omitempty"`
	City           string     `json:"city,omitempty"            yaml:"city,omitempty"`
	Zip            string     `json:"zip,omitempty"             yaml:"zip,omitempty"`
	Country        string     `json:"country,omitempty"         yaml:"country,omitempty"`
	RegistrationNo string     `json:"registration_no,omitempty" yaml:"registration_no,omitempty"`
	VATNo          string     `json:"vat_no,omitempty"          yaml:"vat_no,omitempty"`
	Currency       string     `json:"currency,omitempty"        yaml:"currency,omitempty"`
	UnitName       string     `json:"unit_name,omitempty"       yaml:"unit_name,omitempty"`
	VATRate        int        `json:"vat_rate,omitempty"        yaml:"vat_rate,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// SubjectList is a convenience alias for a slice of subjects.
type SubjectList = []Subject

// InvoiceList is a convenience alias for a slice of invoices.
type InvoiceList = []Invoice
