package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTrendPoint is one calendar month of a trailing trend series.
type MonthlyTrendPoint struct {
	MonthLabel string          `json:"monthLabel"`
	Year       int             `json:"year"`
	Month      time.Month      `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
}

// TransactionKind tags the source collection of a RecentTransaction.
type TransactionKind string

const (
	TransactionInvoice TransactionKind = "Invoice"
	TransactionPayment TransactionKind = "Payment"
	TransactionExpense TransactionKind = "Expense"
)

// Derived transaction statuses.
const (
	StatusOutstanding = "Outstanding"
	StatusPaid        = "Paid"
	StatusCompleted   = "Completed"
	StatusRecorded    = "Recorded"
)

// RecentTransaction is a dated invoice, payment or expense shown on the dashboard.
type RecentTransaction struct {
	ID        string          `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Reference string          `json:"reference"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// TopCustomer is a customer ranked by lifetime revenue.
type TopCustomer struct {
	CustomerID         string          `json:"customerID"`
	DisplayName        string          `json:"displayName"`
	TotalRevenueToDate decimal.Decimal `json:"totalRevenueToDate"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	InvoiceCount       int             `json:"invoiceCount"`
}

// TopItem is an inventory or service item ranked by unit price.
type TopItem struct {
	ItemID         string          `json:"itemID"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Type           ItemType        `json:"type"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
}

// KeyMetrics is the scalar subset of the aggregated metrics shown on the dashboard.
type KeyMetrics struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetIncome          decimal.Decimal `json:"netIncome"`
	GrossProfit        decimal.Decimal `json:"grossProfit"`
	OperatingIncome    decimal.Decimal `json:"operatingIncome"`
	ProfitMargin       decimal.Decimal `json:"profitMargin"`
	TotalAssets        decimal.Decimal `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal `json:"totalLiabilities"`
	Equity             decimal.Decimal `json:"equity"`
	CashBalance        decimal.Decimal `json:"cashBalance"`
	AccountsReceivable decimal.Decimal `json:"accountsReceivable"`
	AccountsPayable    decimal.Decimal `json:"accountsPayable"`
	WorkingCapital     decimal.Decimal `json:"workingCapital"`
	DebtToEquity       decimal.Decimal `json:"debtToEquity"`
}

// DashboardMetrics is the consolidated dashboard summary. It is recomputed on every request.
type DashboardMetrics struct {
	Company                CompanyInfo         `json:"company"`
	GeneratedAt            time.Time           `json:"generatedAt"`
	Metrics                KeyMetrics          `json:"metrics"`
	Taxes                  TaxSummary          `json:"taxes"`
	RevenueTrend           []MonthlyTrendPoint `json:"revenueTrend"`
	ExpenseTrend           []MonthlyTrendPoint `json:"expenseTrend"`
	RecentTransactions     []RecentTransaction `json:"recentTransactions"`
	TopCustomers           []TopCustomer       `json:"topCustomers"`
	TopItems               []TopItem           `json:"topItems"`
	OverdueInvoiceCount    int                 `json:"overdueInvoiceCount"`
	TotalCustomers         int                 `json:"totalCustomers"`
	TotalInvoices          int                 `json:"totalInvoices"`
	OutstandingReceivables decimal.Decimal     `json:"outstandingReceivables"`
	InventoryValue         decimal.Decimal     `json:"inventoryValue"`
}
