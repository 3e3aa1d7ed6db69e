package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	dashboardRecentTransactions = 10
	dashboardTopCustomers       = 5
	dashboardTopItems           = 5
)

// DashboardInput is everything the dashboard composer folds together.
type DashboardInput struct {
	Company   domain.CompanyInfo
	Metrics   Metrics
	Taxes     domain.TaxSummary
	Invoices  []domain.Invoice
	Payments  []domain.Payment
	Expenses  []domain.ExpenseTransaction
	Customers []domain.Customer
	Items     []domain.Item
}

// BuildDashboard composes the dashboard summary. Overdue counts and trends are evaluated
// against now on every call.
func BuildDashboard(in DashboardInput, now time.Time) *domain.DashboardMetrics {
	overdue := 0
	outstanding := decimal.Zero
	for _, inv := range in.Invoices {
		if inv.IsOverdue(now) {
			overdue++
		}
		if inv.IsOutstanding() {
			outstanding = outstanding.Add(inv.BalanceRemaining)
		}
	}

	inventoryValue := decimal.Zero
	for _, it := range in.Items {
		if it.Type == domain.ItemInventory {
			inventoryValue = inventoryValue.Add(it.UnitPrice.Mul(it.QuantityOnHand))
		}
	}

	return &domain.DashboardMetrics{
		Company:                in.Company,
		GeneratedAt:            now,
		Metrics:                in.Metrics.KeyMetrics(),
		Taxes:                  in.Taxes,
		RevenueTrend:           RevenueTrend(in.Invoices, now),
		ExpenseTrend:           ExpenseTrend(in.Expenses, now),
		RecentTransactions:     RecentTransactions(in.Invoices, in.Payments, in.Expenses, dashboardRecentTransactions),
		TopCustomers:           TopCustomers(in.Customers, in.Invoices, dashboardTopCustomers),
		TopItems:               TopItems(in.Items, dashboardTopItems),
		OverdueInvoiceCount:    overdue,
		TotalCustomers:         len(in.Customers),
		TotalInvoices:          len(in.Invoices),
		OutstandingReceivables: outstanding,
		InventoryValue:         inventoryValue,
	}
}

// RecentTransactions merges invoices, payments and expenses and returns the newest limit
// entries, each tagged with a derived status.
func RecentTransactions(invoices []domain.Invoice, payments []domain.Payment, expenses []domain.ExpenseTransaction, limit int) []domain.RecentTransaction {
	txns := make([]domain.RecentTransaction, 0, len(invoices)+len(payments)+len(expenses))
	for _, inv := range invoices {
		status := domain.StatusPaid
		if inv.IsOutstanding() {
			status = domain.StatusOutstanding
		}
		txns = append(txns, domain.RecentTransaction{
			ID:        inv.ID,
			Kind:      domain.TransactionInvoice,
			Reference: inv.DocumentNumber,
			Date:      inv.IssueDate,
			Amount:    inv.TotalAmount,
			Status:    status,
		})
	}
	for _, p := range payments {
		txns = append(txns, domain.RecentTransaction{
			ID:        p.ID,
			Kind:      domain.TransactionPayment,
			Reference: p.ReferenceNumber,
			Date:      p.Date,
			Amount:    p.TotalAmount,
			Status:    domain.StatusCompleted,
		})
	}
	for _, e := range expenses {
		txns = append(txns, domain.RecentTransaction{
			ID:     e.ID,
			Kind:   domain.TransactionExpense,
			Date:   e.Date,
			Amount: e.TotalAmount,
			Status: domain.StatusRecorded,
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	if len(txns) > limit {
		txns = txns[:limit]
	}
	return txns
}

// TopCustomers ranks customers by lifetime revenue and annotates each with the number of
// invoices that reference it. Ties are broken by display name.
func TopCustomers(customers []domain.Customer, invoices []domain.Invoice, limit int) []domain.TopCustomer {
	invoiceCounts := make(map[string]int, len(customers))
	for _, inv := range invoices {
		invoiceCounts[inv.CustomerRef]++
	}

	ranked := make([]domain.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].TotalRevenueToDate.Equal(ranked[j].TotalRevenueToDate) {
			return ranked[i].TotalRevenueToDate.GreaterThan(ranked[j].TotalRevenueToDate)
		}
		return ranked[i].DisplayName < ranked[j].DisplayName
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]domain.TopCustomer, 0, len(ranked))
	for _, c := range ranked {
		top = append(top, domain.TopCustomer{
			CustomerID:         c.ID,
			DisplayName:        c.DisplayName,
			TotalRevenueToDate: c.TotalRevenueToDate,
			CurrentBalance:     c.CurrentBalance,
			InvoiceCount:       invoiceCounts[c.ID],
		})
	}
	return top
}

// TopItems ranks inventory and service items by unit price. Other item types are skipped.
func TopItems(items []domain.Item, limit int) []domain.TopItem {
	ranked := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Type == domain.ItemInventory || it.Type == domain.ItemService {
			ranked = append(ranked, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UnitPrice.GreaterThan(ranked[j].UnitPrice)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]domain.TopItem, 0, len(ranked))
	for _, it := range ranked {
		top = append(top, domain.TopItem{
			ItemID:         it.ID,
			Name:           it.Name,
			SKU:            it.SKU,
			Type:           it.Type,
			UnitPrice:      it.UnitPrice,
			QuantityOnHand: it.QuantityOnHand,
		})
	}
	return top
}
