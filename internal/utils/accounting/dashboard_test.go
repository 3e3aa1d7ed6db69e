package accounting_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardInput() accounting.DashboardInput {
	return accounting.DashboardInput{
		Company: testCompany,
		Metrics: accounting.Aggregate(accounting.Classify(sampleAccounts(), nil)),
		Invoices: []domain.Invoice{
			{ID: "inv-1", DocumentNumber: "1001", CustomerRef: "c1", IssueDate: date(2026, time.October, 1), DueDate: date(2026, time.October, 10), TotalAmount: dec("500"), BalanceRemaining: dec("500")},
			{ID: "inv-2", DocumentNumber: "1002", CustomerRef: "c1", IssueDate: date(2026, time.September, 1), DueDate: date(2026, time.September, 30), TotalAmount: dec("300"), BalanceRemaining: dec("0")},
			{ID: "inv-3", DocumentNumber: "1003", CustomerRef: "c2", IssueDate: date(2026, time.October, 15), DueDate: date(2026, time.November, 15), TotalAmount: dec("200"), BalanceRemaining: dec("200")},
		},
		Payments: []domain.Payment{
			{ID: "pay-1", Date: date(2026, time.October, 18), TotalAmount: dec("300"), ReferenceNumber: "CHK-9"},
		},
		Expenses: []domain.ExpenseTransaction{
			{ID: "exp-1", Date: date(2026, time.October, 17), TotalAmount: dec("75")},
		},
		Customers: []domain.Customer{
			{ID: "c1", DisplayName: "Globex", TotalRevenueToDate: dec("800"), CurrentBalance: dec("500")},
			{ID: "c2", DisplayName: "Initech", TotalRevenueToDate: dec("200"), CurrentBalance: dec("200")},
		},
		Items: []domain.Item{
			{ID: "i1", Name: "Widget", Type: domain.ItemInventory, UnitPrice: dec("10"), QuantityOnHand: dec("5")},
			{ID: "i2", Name: "Setup", Type: domain.ItemService, UnitPrice: dec("150")},
			{ID: "i3", Name: "Bundle", Type: domain.ItemNonInventory, UnitPrice: dec("999")},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	d := accounting.BuildDashboard(dashboardInput(), testNow)

	assert.Equal(t, 1, d.OverdueInvoiceCount)
	assert.Equal(t, 3, d.TotalInvoices)
	assert.Equal(t, 2, d.TotalCustomers)
	assertDecimal(t, "700", d.OutstandingReceivables)
	assertDecimal(t, "50", d.InventoryValue)
	assertDecimal(t, "1250000", d.Metrics.TotalRevenue)
	assert.Len(t, d.RevenueTrend, 12)
	assert.Len(t, d.ExpenseTrend, 12)
	assertDecimal(t, "700", d.RevenueTrend[11].Amount)

	require.Len(t, d.RecentTransactions, 5)
	assert.Equal(t, "pay-1", d.RecentTransactions[0].ID)
	assert.Equal(t, domain.StatusCompleted, d.RecentTransactions[0].Status)
	assert.Equal(t, "exp-1", d.RecentTransactions[1].ID)
	assert.Equal(t, domain.StatusRecorded, d.RecentTransactions[1].Status)
	assert.Equal(t, "inv-3", d.RecentTransactions[2].ID)
	assert.Equal(t, domain.StatusOutstanding, d.RecentTransactions[2].Status)
	assert.Equal(t, "inv-2", d.RecentTransactions[4].ID)
	assert.Equal(t, domain.StatusPaid, d.RecentTransactions[4].Status)

	require.Len(t, d.TopCustomers, 2)
	assert.Equal(t, "Globex", d.TopCustomers[0].DisplayName)
	assert.Equal(t, 2, d.TopCustomers[0].InvoiceCount)
	assert.Equal(t, 1, d.TopCustomers[1].InvoiceCount)

	require.Len(t, d.TopItems, 2)
	assert.Equal(t, "Setup", d.TopItems[0].Name)
	assert.Equal(t, "Widget", d.TopItems[1].Name)
}

func TestBuildDashboard_OverdueEvaluatedAgainstNow(t *testing.T) {
	in := dashboardInput()

	before := accounting.BuildDashboard(in, date(2026, time.October, 5))
	after := accounting.BuildDashboard(in, date(2026, time.December, 1))

	assert.Equal(t, 0, before.OverdueInvoiceCount)
	assert.Equal(t, 2, after.OverdueInvoiceCount)
}

func TestRecentTransactions_LimitedToNewest(t *testing.T) {
	var invoices []domain.Invoice
	for i := 0; i < 8; i++ {
		invoices = append(invoices, domain.Invoice{ID: fmt.Sprintf("inv-%d", i), IssueDate: date(2026, time.January, i+1), TotalAmount: dec("1")})
	}
	var payments []domain.Payment
	for i := 0; i < 8; i++ {
		payments = append(payments, domain.Payment{ID: fmt.Sprintf("pay-%d", i), Date: date(2026, time.February, i+1), TotalAmount: dec("1")})
	}

	txns := accounting.RecentTransactions(invoices, payments, nil, 10)

	require.Len(t, txns, 10)
	assert.Equal(t, "pay-7", txns[0].ID)
	assert.Equal(t, "inv-6", txns[9].ID)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].Date.After(txns[i-1].Date))
	}
}

func TestTopCustomers_ZeroRevenueRankedLast(t *testing.T) {
	customers := []domain.Customer{
		{ID: "zero", DisplayName: "Aardvark", TotalRevenueToDate: dec("0")},
	}
	for i := 1; i <= 5; i++ {
		customers = append(customers, domain.Customer{
			ID:                 fmt.Sprintf("c%d", i),
			DisplayName:        fmt.Sprintf("Customer %d", i),
			TotalRevenueToDate: dec(fmt.Sprintf("%d00", i)),
		})
	}

	top := accounting.TopCustomers(customers, nil, 5)

	require.Len(t, top, 5)
	for _, c := range top {
		assert.NotEqual(t, "zero", c.CustomerID)
	}
	assert.Equal(t, "c5", top[0].CustomerID)
	assert.Equal(t, "c1", top[4].CustomerID)
}

func TestTopItems_OnlyInventoryAndService(t *testing.T) {
	items := []domain.Item{
		{ID: "n", Type: domain.ItemNonInventory, UnitPrice: dec("1000")},
		{ID: "a", Type: domain.ItemInventory, UnitPrice: dec("1")},
		{ID: "b", Type: domain.ItemService, UnitPrice: dec("2")},
		{ID: "c", Type: domain.ItemInventory, UnitPrice: dec("3")},
		{ID: "d", Type: domain.ItemService, UnitPrice: dec("4")},
		{ID: "e", Type: domain.ItemInventory, UnitPrice: dec("5")},
		{ID: "f", Type: domain.ItemService, UnitPrice: dec("6")},
	}

	top := accounting.TopItems(items, 5)

	require.Len(t, top, 5)
	assert.Equal(t, "f", top[0].ItemID)
	assert.Equal(t, "b", top[4].ItemID)
}
