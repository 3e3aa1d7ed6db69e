package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a customer invoice fetched from the provider.
type Invoice struct {
	ID               string          `json:"id"`
	DocumentNumber   string          `json:"documentNumber"`
	CustomerRef      string          `json:"customerRef"`
	CustomerName     string          `json:"customerName"`
	IssueDate        time.Time       `json:"issueDate"`
	DueDate          time.Time       `json:"dueDate"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

// IsOutstanding reports whether part of the invoice is still unpaid.
func (i Invoice) IsOutstanding() bool {
	return i.BalanceRemaining.IsPositive()
}

// IsOverdue reports whether the invoice is outstanding and its due date is before now.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.IsOutstanding() && !i.DueDate.IsZero() && i.DueDate.Before(now)
}

// Payment is a received customer payment.
type Payment struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ReferenceNumber string          `json:"referenceNumber"`
}

// ExpenseTransaction is a purchase / expense transaction.
type ExpenseTransaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Customer is a customer record with its lifetime revenue.
type Customer struct {
	ID                 string          `json:"id"`
	DisplayName        string          `json:"displayName"`
	TotalRevenueToDate decimal.Decimal `json:"totalRevenueToDate"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
}

// ItemType is the kind of product or service an Item represents.
type ItemType string

const (
	ItemInventory    ItemType = "Inventory"
	ItemService      ItemType = "Service"
	ItemNonInventory ItemType = "NonInventory"
)

// Item is an inventory or service item.
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	Type           ItemType        `json:"type"`
}

// CompanyInfo is the provider's company profile.
type CompanyInfo struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	LegalName            string `json:"legalName"`
	Country              string `json:"country"`
	FiscalYearStartMonth string `json:"fiscalYearStartMonth"`
}
