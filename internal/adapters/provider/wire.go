package provider

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Wire shapes of the provider's v3 REST API. Only the fields the engine reads are
// declared. Numeric fields keep the raw token so one malformed value cannot fail
// the whole page; mapper.amount parses them.

const wireDateLayout = "2006-01-02"

type wireRef struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type wireAccount struct {
	ID             string          `json:"Id"`
	Name           string          `json:"Name"`
	Classification string          `json:"Classification"`
	AccountType    string          `json:"AccountType"`
	AccountSubType string          `json:"AccountSubType"`
	CurrentBalance json.RawMessage `json:"CurrentBalance"`
}

type wireInvoice struct {
	ID          string          `json:"Id"`
	DocNumber   string          `json:"DocNumber"`
	CustomerRef wireRef         `json:"CustomerRef"`
	TxnDate     string          `json:"TxnDate"`
	DueDate     string          `json:"DueDate"`
	TotalAmt    json.RawMessage `json:"TotalAmt"`
	Balance     json.RawMessage `json:"Balance"`
}

type wirePayment struct {
	ID            string          `json:"Id"`
	TxnDate       string          `json:"TxnDate"`
	TotalAmt      json.RawMessage `json:"TotalAmt"`
	PaymentRefNum string          `json:"PaymentRefNum"`
}

type wirePurchase struct {
	ID       string          `json:"Id"`
	TxnDate  string          `json:"TxnDate"`
	TotalAmt json.RawMessage `json:"TotalAmt"`
}

type wireCustomer struct {
	ID           string          `json:"Id"`
	DisplayName  string          `json:"DisplayName"`
	TotalRevenue json.RawMessage `json:"TotalRevenue"`
	Balance      json.RawMessage `json:"Balance"`
}

type wireItem struct {
	ID        string          `json:"Id"`
	Name      string          `json:"Name"`
	Sku       string          `json:"Sku"`
	Type      string          `json:"Type"`
	UnitPrice json.RawMessage `json:"UnitPrice"`
	QtyOnHand json.RawMessage `json:"QtyOnHand"`
}

type wireCompanyInfo struct {
	ID                   string `json:"Id"`
	CompanyName          string `json:"CompanyName"`
	LegalName            string `json:"LegalName"`
	Country              string `json:"Country"`
	FiscalYearStartMonth string `json:"FiscalYearStartMonth"`
}

type queryResponse struct {
	QueryResponse struct {
		Account  []wireAccount  `json:"Account"`
		Invoice  []wireInvoice  `json:"Invoice"`
		Payment  []wirePayment  `json:"Payment"`
		Purchase []wirePurchase `json:"Purchase"`
		Customer []wireCustomer `json:"Customer"`
		Item     []wireItem     `json:"Item"`
	} `json:"QueryResponse"`
}

type companyInfoResponse struct {
	CompanyInfo wireCompanyInfo `json:"CompanyInfo"`
}

// mapper converts wire records to domain values. Malformed fields are replaced with
// their zero value and reported at WARN; they never fail the fetch.
type mapper struct {
	logger *slog.Logger
}

func (m mapper) amount(entity, id, field string, raw json.RawMessage) decimal.Decimal {
	v, err := parseAmount(raw)
	if err != nil {
		m.logger.Warn("Malformed provider entity, defaulting field to zero",
			slog.String("entity", entity),
			slog.String("id", id),
			slog.String("field", field),
			slog.String("value", string(raw)))
		return decimal.Zero
	}
	return v
}

var errMissingAmount = errors.New("missing amount")

// parseAmount accepts a JSON number or a quoted number.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, errMissingAmount
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return decimal.Zero, err
		}
		s = strings.TrimSpace(unquoted)
	}
	return decimal.NewFromString(s)
}

func (m mapper) date(entity, id, field, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(wireDateLayout, raw)
	if err != nil {
		m.logger.Warn("Malformed provider date, leaving it unset",
			slog.String("entity", entity),
			slog.String("id", id),
			slog.String("field", field),
			slog.String("value", raw))
		return time.Time{}
	}
	return t
}

// accountType maps the provider's classification onto the closed account type set.
// Unknown classifications are passed through so the classifier can report them.
func accountType(classification string) domain.AccountType {
	t, err := domain.ParseAccountType(classification)
	if err != nil {
		return domain.AccountType(classification)
	}
	return t
}

func itemType(raw string) domain.ItemType {
	switch raw {
	case "Inventory":
		return domain.ItemInventory
	case "Service":
		return domain.ItemService
	default:
		return domain.ItemNonInventory
	}
}

func (m mapper) accounts(in []wireAccount) []domain.Account {
	out := make([]domain.Account, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Account{
			ID:             a.ID,
			Name:           a.Name,
			Type:           accountType(a.Classification),
			SubType:        a.AccountSubType,
			CurrentBalance: m.amount("Account", a.ID, "CurrentBalance", a.CurrentBalance),
		})
	}
	return out
}

func (m mapper) invoices(in []wireInvoice) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(in))
	for _, inv := range in {
		out = append(out, domain.Invoice{
			ID:               inv.ID,
			DocumentNumber:   inv.DocNumber,
			CustomerRef:      inv.CustomerRef.Value,
			CustomerName:     inv.CustomerRef.Name,
			IssueDate:        m.date("Invoice", inv.ID, "TxnDate", inv.TxnDate),
			DueDate:          m.date("Invoice", inv.ID, "DueDate", inv.DueDate),
			TotalAmount:      m.amount("Invoice", inv.ID, "TotalAmt", inv.TotalAmt),
			BalanceRemaining: m.amount("Invoice", inv.ID, "Balance", inv.Balance),
		})
	}
	return out
}

func (m mapper) payments(in []wirePayment) []domain.Payment {
	out := make([]domain.Payment, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Payment{
			ID:              p.ID,
			Date:            m.date("Payment", p.ID, "TxnDate", p.TxnDate),
			TotalAmount:     m.amount("Payment", p.ID, "TotalAmt", p.TotalAmt),
			ReferenceNumber: p.PaymentRefNum,
		})
	}
	return out
}

func (m mapper) expenses(in []wirePurchase) []domain.ExpenseTransaction {
	out := make([]domain.ExpenseTransaction, 0, len(in))
	for _, e := range in {
		out = append(out, domain.ExpenseTransaction{
			ID:          e.ID,
			Date:        m.date("Purchase", e.ID, "TxnDate", e.TxnDate),
			TotalAmount: m.amount("Purchase", e.ID, "TotalAmt", e.TotalAmt),
		})
	}
	return out
}

func (m mapper) customers(in []wireCustomer) []domain.Customer {
	out := make([]domain.Customer, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Customer{
			ID:                 c.ID,
			DisplayName:        c.DisplayName,
			TotalRevenueToDate: m.amount("Customer", c.ID, "TotalRevenue", c.TotalRevenue),
			CurrentBalance:     m.amount("Customer", c.ID, "Balance", c.Balance),
		})
	}
	return out
}

func (m mapper) items(in []wireItem) []domain.Item {
	out := make([]domain.Item, 0, len(in))
	for _, it := range in {
		typ := itemType(it.Type)
		qty := decimal.Zero
		// Only inventory items carry a quantity on hand.
		if typ == domain.ItemInventory {
			qty = m.amount("Item", it.ID, "QtyOnHand", it.QtyOnHand)
		}
		out = append(out, domain.Item{
			ID:             it.ID,
			Name:           it.Name,
			SKU:            it.Sku,
			Type:           typ,
			UnitPrice:      m.amount("Item", it.ID, "UnitPrice", it.UnitPrice),
			QuantityOnHand: qty,
		})
	}
	return out
}

func companyInfo(in wireCompanyInfo) *domain.CompanyInfo {
	return &domain.CompanyInfo{
		ID:                   in.ID,
		Name:                 in.CompanyName,
		LegalName:            in.LegalName,
		Country:              in.Country,
		FiscalYearStartMonth: in.FiscalYearStartMonth,
	}
}
