package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReportFormat selects how much of a report is rendered. It never changes the figures.
type ReportFormat string

const (
	// FormatJSON renders the full report including breakdown lines and the native payload.
	FormatJSON ReportFormat = "json"
	// FormatSummary renders totals only.
	FormatSummary ReportFormat = "summary"
)

// PeriodQuery binds the query string of period-based reports.
type PeriodQuery struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Format   string `form:"format" binding:"omitempty,oneof=json summary"`
}

// Period resolves the query into a report period. The period defaults to the first day of
// the current month through today.
func (q PeriodQuery) Period(now time.Time) (domain.ReportPeriod, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	if q.FromDate != "" {
		if from, err = time.Parse(dateLayout, q.FromDate); err != nil {
			return domain.ReportPeriod{}, fmt.Errorf("%w: invalid fromDate: %v", apperrors.ErrValidation, err)
		}
	}
	if q.ToDate != "" {
		if to, err = time.Parse(dateLayout, q.ToDate); err != nil {
			return domain.ReportPeriod{}, fmt.Errorf("%w: invalid toDate: %v", apperrors.ErrValidation, err)
		}
	}

	period := domain.ReportPeriod{StartDate: from, EndDate: to}
	return period, period.Validate()
}

// AsOfQuery binds the query string of the balance sheet.
type AsOfQuery struct {
	AsOf   string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	Format string `form:"format" binding:"omitempty,oneof=json summary"`
}

// Date resolves the asOf date, defaulting to today.
func (q AsOfQuery) Date(now time.Time) (time.Time, error) {
	if q.AsOf == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	asOf, err := time.Parse(dateLayout, q.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid asOf: %v", apperrors.ErrValidation, err)
	}
	return asOf, nil
}

// FormatQuery binds the format selector alone.
type FormatQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json summary"`
}

// ParseFormat maps the raw selector onto a ReportFormat, defaulting to FormatJSON.
func ParseFormat(raw string) ReportFormat {
	if ReportFormat(raw) == FormatSummary {
		return FormatSummary
	}
	return FormatJSON
}

// money rounds a currency amount for presentation.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CompanyResponse identifies the company a report belongs to.
type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LegalName string `json:"legalName,omitempty"`
	Country   string `json:"country,omitempty"`
}

func toCompanyResponse(c domain.CompanyInfo) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, LegalName: c.LegalName, Country: c.Country}
}

// BreakdownLineResponse is one account's share of a report section.
type BreakdownLineResponse struct {
	AccountID  string          `json:"accountID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BreakdownResponse is a report section. Lines are omitted in summary format.
type BreakdownResponse struct {
	Lines []BreakdownLineResponse `json:"lines,omitempty"`
	Total decimal.Decimal         `json:"total"`
}

func toBreakdownResponse(b domain.Breakdown, format ReportFormat) BreakdownResponse {
	resp := BreakdownResponse{Total: money(b.Total)}
	if format == FormatSummary {
		return resp
	}
	resp.Lines = make([]BreakdownLineResponse, len(b.Lines))
	sum := decimal.Zero
	largest := 0
	for i, l := range b.Lines {
		resp.Lines[i] = BreakdownLineResponse{
			AccountID:  l.AccountID,
			Name:       l.Name,
			Amount:     money(l.Amount),
			Percentage: l.Percentage.Round(2),
		}
		sum = sum.Add(resp.Lines[i].Percentage)
		if l.Amount.Abs().GreaterThan(b.Lines[largest].Amount.Abs()) {
			largest = i
		}
	}
	// Rounded shares still add up to 100; the largest line absorbs the remainder.
	if len(resp.Lines) > 0 && !b.Total.IsZero() {
		resp.Lines[largest].Percentage = resp.Lines[largest].Percentage.Add(hundred.Sub(sum))
	}
	return resp
}

var hundred = decimal.NewFromInt(100)

// TaxSummaryResponse holds the statutory tax figures.
type TaxSummaryResponse struct {
	Jurisdiction    string          `json:"jurisdiction"`
	VATRate         decimal.Decimal `json:"vatRate"`
	VATCollected    decimal.Decimal `json:"vatCollected"`
	VATPaid         decimal.Decimal `json:"vatPaid"`
	NetVAT          decimal.Decimal `json:"netVat"`
	IncomeTaxRate   decimal.Decimal `json:"incomeTaxRate"`
	IncomeTax       decimal.Decimal `json:"incomeTax"`
	WithholdingRate decimal.Decimal `json:"withholdingRate"`
	WithholdingTax  decimal.Decimal `json:"withholdingTax"`
}

func toTaxSummaryResponse(t domain.TaxSummary) TaxSummaryResponse {
	return TaxSummaryResponse{
		Jurisdiction:    t.Jurisdiction,
		VATRate:         t.VATRate,
		VATCollected:    money(t.VATCollected),
		VATPaid:         money(t.VATPaid),
		NetVAT:          money(t.NetVAT),
		IncomeTaxRate:   t.IncomeTaxRate,
		IncomeTax:       money(t.IncomeTax),
		WithholdingRate: t.WithholdingRate,
		WithholdingTax:  money(t.WithholdingTax),
	}
}

func nativePayload(n *domain.NativeReport, format ReportFormat) json.RawMessage {
	if n == nil || format == FormatSummary {
		return nil
	}
	return n.Payload
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	Company     CompanyResponse    `json:"company"`
	FromDate    string             `json:"fromDate"`
	ToDate      string             `json:"toDate"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Revenue     BreakdownResponse  `json:"revenue"`
	Expenses    BreakdownResponse  `json:"expenses"`
	COGS        BreakdownResponse  `json:"cogs"`
	Taxes       TaxSummaryResponse `json:"taxes"`
	Summary     struct {
		TotalRevenue      decimal.Decimal `json:"totalRevenue"`
		CostOfGoodsSold   decimal.Decimal `json:"costOfGoodsSold"`
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
		OperatingIncome   decimal.Decimal `json:"operatingIncome"`
		TotalExpenses     decimal.Decimal `json:"totalExpenses"`
		NetIncome         decimal.Decimal `json:"netIncome"`
		Margin            decimal.Decimal `json:"margin"`
	} `json:"summary"`
	Native json.RawMessage `json:"native,omitempty" swaggertype:"object"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport, format ReportFormat) ProfitAndLossResponse {
	resp := ProfitAndLossResponse{
		Company:     toCompanyResponse(report.Company),
		FromDate:    report.Period.StartDate.Format(dateLayout),
		ToDate:      report.Period.EndDate.Format(dateLayout),
		GeneratedAt: report.GeneratedAt,
		Revenue:     toBreakdownResponse(report.Revenue, format),
		Expenses:    toBreakdownResponse(report.Expenses, format),
		COGS:        toBreakdownResponse(report.COGS, format),
		Taxes:       toTaxSummaryResponse(report.Taxes),
		Native:      nativePayload(report.Native, format),
	}
	s := report.Summary
	resp.Summary.TotalRevenue = money(s.TotalRevenue)
	resp.Summary.CostOfGoodsSold = money(s.CostOfGoodsSold)
	resp.Summary.GrossProfit = money(s.GrossProfit)
	resp.Summary.OperatingExpenses = money(s.OperatingExpenses)
	resp.Summary.OperatingIncome = money(s.OperatingIncome)
	resp.Summary.TotalExpenses = money(s.TotalExpenses)
	resp.Summary.NetIncome = money(s.NetIncome)
	resp.Summary.Margin = s.Margin.Round(2)
	return resp
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Company             CompanyResponse   `json:"company"`
	AsOf                string            `json:"asOf"`
	GeneratedAt         time.Time         `json:"generatedAt"`
	CurrentAssets       BreakdownResponse `json:"currentAssets"`
	FixedAssets         BreakdownResponse `json:"fixedAssets"`
	CurrentLiabilities  BreakdownResponse `json:"currentLiabilities"`
	LongTermLiabilities BreakdownResponse `json:"longTermLiabilities"`
	Equity              BreakdownResponse `json:"equity"`
	Summary             struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		BookedEquity     decimal.Decimal `json:"bookedEquity"`
		EquityVariance   decimal.Decimal `json:"equityVariance"`
		IsBalanced       bool            `json:"isBalanced"`
		WorkingCapital   decimal.Decimal `json:"workingCapital"`
		DebtToEquity     decimal.Decimal `json:"debtToEquity"`
	} `json:"summary"`
	Native json.RawMessage `json:"native,omitempty" swaggertype:"object"`
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, format ReportFormat) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		Company:             toCompanyResponse(report.Company),
		AsOf:                report.AsOf.Format(dateLayout),
		GeneratedAt:         report.GeneratedAt,
		CurrentAssets:       toBreakdownResponse(report.CurrentAssets, format),
		FixedAssets:         toBreakdownResponse(report.FixedAssets, format),
		CurrentLiabilities:  toBreakdownResponse(report.CurrentLiabilities, format),
		LongTermLiabilities: toBreakdownResponse(report.LongTermLiabilities, format),
		Equity:              toBreakdownResponse(report.Equity, format),
		Native:              nativePayload(report.Native, format),
	}
	s := report.Summary
	resp.Summary.TotalAssets = money(s.TotalAssets)
	resp.Summary.TotalLiabilities = money(s.TotalLiabilities)
	resp.Summary.TotalEquity = money(s.TotalEquity)
	resp.Summary.BookedEquity = money(s.BookedEquity)
	resp.Summary.EquityVariance = money(s.EquityVariance)
	resp.Summary.IsBalanced = s.IsBalanced
	resp.Summary.WorkingCapital = money(s.WorkingCapital)
	resp.Summary.DebtToEquity = s.DebtToEquity.Round(2)
	return resp
}

// CashFlowItemResponse is one line of a cash flow section.
type CashFlowItemResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowSectionResponse is a cash flow section. Items are omitted in summary format.
type CashFlowSectionResponse struct {
	Items []CashFlowItemResponse `json:"items,omitempty"`
	Total decimal.Decimal        `json:"total"`
}

func toCashFlowSectionResponse(s domain.CashFlowSection, format ReportFormat) CashFlowSectionResponse {
	resp := CashFlowSectionResponse{Total: money(s.Total)}
	if format == FormatSummary {
		return resp
	}
	resp.Items = make([]CashFlowItemResponse, len(s.Items))
	for i, it := range s.Items {
		resp.Items[i] = CashFlowItemResponse{Label: it.Label, Amount: money(it.Amount)}
	}
	return resp
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	Company             CompanyResponse         `json:"company"`
	FromDate            string                  `json:"fromDate"`
	ToDate              string                  `json:"toDate"`
	GeneratedAt         time.Time               `json:"generatedAt"`
	Basis               string                  `json:"basis"`
	NetIncome           decimal.Decimal         `json:"netIncome"`
	OperatingActivities CashFlowSectionResponse `json:"operatingActivities"`
	InvestingActivities CashFlowSectionResponse `json:"investingActivities"`
	FinancingActivities CashFlowSectionResponse `json:"financingActivities"`
	NetChangeInCash     decimal.Decimal         `json:"netChangeInCash"`
	BeginningCash       decimal.Decimal         `json:"beginningCash"`
	EndingCash          decimal.Decimal         `json:"endingCash"`
	Native              json.RawMessage         `json:"native,omitempty" swaggertype:"object"`
}

// ToCashFlowResponse converts a domain cash flow statement to a DTO response
func ToCashFlowResponse(report *domain.CashFlowReport, format ReportFormat) CashFlowResponse {
	return CashFlowResponse{
		Company:             toCompanyResponse(report.Company),
		FromDate:            report.Period.StartDate.Format(dateLayout),
		ToDate:              report.Period.EndDate.Format(dateLayout),
		GeneratedAt:         report.GeneratedAt,
		Basis:               report.Basis,
		NetIncome:           money(report.NetIncome),
		OperatingActivities: toCashFlowSectionResponse(report.OperatingActivities, format),
		InvestingActivities: toCashFlowSectionResponse(report.InvestingActivities, format),
		FinancingActivities: toCashFlowSectionResponse(report.FinancingActivities, format),
		NetChangeInCash:     money(report.NetChangeInCash),
		BeginningCash:       money(report.BeginningCash),
		EndingCash:          money(report.EndingCash),
		Native:              nativePayload(report.Native, format),
	}
}

// TrendPointResponse is one month of a trend series.
type TrendPointResponse struct {
	Month  string          `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

func toTrendResponse(points []domain.MonthlyTrendPoint) []TrendPointResponse {
	resp := make([]TrendPointResponse, len(points))
	for i, p := range points {
		resp[i] = TrendPointResponse{Month: p.MonthLabel, Year: p.Year, Amount: money(p.Amount), Count: p.Count}
	}
	return resp
}

// RecentTransactionResponse is a dated invoice, payment or expense.
type RecentTransactionResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Reference string          `json:"reference,omitempty"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// TopCustomerResponse is a customer ranked by lifetime revenue.
type TopCustomerResponse struct {
	CustomerID         string          `json:"customerID"`
	DisplayName        string          `json:"displayName"`
	TotalRevenueToDate decimal.Decimal `json:"totalRevenueToDate"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	InvoiceCount       int             `json:"invoiceCount"`
}

// TopItemResponse is an item ranked by unit price.
type TopItemResponse struct {
	ItemID         string          `json:"itemID"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku,omitempty"`
	Type           string          `json:"type"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
}

// KeyMetricsResponse holds the dashboard's headline figures.
type KeyMetricsResponse struct {
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

// DashboardResponse represents the consolidated dashboard. The ranked lists and trends
// are omitted in summary format.
type DashboardResponse struct {
	Company                CompanyResponse             `json:"company"`
	GeneratedAt            time.Time                   `json:"generatedAt"`
	Metrics                KeyMetricsResponse          `json:"metrics"`
	Taxes                  TaxSummaryResponse          `json:"taxes"`
	RevenueTrend           []TrendPointResponse        `json:"revenueTrend,omitempty"`
	ExpenseTrend           []TrendPointResponse        `json:"expenseTrend,omitempty"`
	RecentTransactions     []RecentTransactionResponse `json:"recentTransactions,omitempty"`
	TopCustomers           []TopCustomerResponse       `json:"topCustomers,omitempty"`
	TopItems               []TopItemResponse           `json:"topItems,omitempty"`
	OverdueInvoiceCount    int                         `json:"overdueInvoiceCount"`
	TotalCustomers         int                         `json:"totalCustomers"`
	TotalInvoices          int                         `json:"totalInvoices"`
	OutstandingReceivables decimal.Decimal             `json:"outstandingReceivables"`
	InventoryValue         decimal.Decimal             `json:"inventoryValue"`
}

// ToDashboardResponse converts domain dashboard metrics to a DTO response
func ToDashboardResponse(d *domain.DashboardMetrics, format ReportFormat) DashboardResponse {
	m := d.Metrics
	resp := DashboardResponse{
		Company:     toCompanyResponse(d.Company),
		GeneratedAt: d.GeneratedAt,
		Metrics: KeyMetricsResponse{
			TotalRevenue:       money(m.TotalRevenue),
			TotalExpenses:      money(m.TotalExpenses),
			NetIncome:          money(m.NetIncome),
			GrossProfit:        money(m.GrossProfit),
			OperatingIncome:    money(m.OperatingIncome),
			ProfitMargin:       m.ProfitMargin.Round(2),
			TotalAssets:        money(m.TotalAssets),
			TotalLiabilities:   money(m.TotalLiabilities),
			Equity:             money(m.Equity),
			CashBalance:        money(m.CashBalance),
			AccountsReceivable: money(m.AccountsReceivable),
			AccountsPayable:    money(m.AccountsPayable),
			WorkingCapital:     money(m.WorkingCapital),
			DebtToEquity:       m.DebtToEquity.Round(2),
		},
		Taxes:                  toTaxSummaryResponse(d.Taxes),
		OverdueInvoiceCount:    d.OverdueInvoiceCount,
		TotalCustomers:         d.TotalCustomers,
		TotalInvoices:          d.TotalInvoices,
		OutstandingReceivables: money(d.OutstandingReceivables),
		InventoryValue:         money(d.InventoryValue),
	}
	if format == FormatSummary {
		return resp
	}

	resp.RevenueTrend = toTrendResponse(d.RevenueTrend)
	resp.ExpenseTrend = toTrendResponse(d.ExpenseTrend)

	resp.RecentTransactions = make([]RecentTransactionResponse, len(d.RecentTransactions))
	for i, t := range d.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransactionResponse{
			ID:        t.ID,
			Kind:      string(t.Kind),
			Reference: t.Reference,
			Date:      t.Date.Format(dateLayout),
			Amount:    money(t.Amount),
			Status:    t.Status,
		}
	}
	resp.TopCustomers = make([]TopCustomerResponse, len(d.TopCustomers))
	for i, c := range d.TopCustomers {
		resp.TopCustomers[i] = TopCustomerResponse{
			CustomerID:         c.CustomerID,
			DisplayName:        c.DisplayName,
			TotalRevenueToDate: money(c.TotalRevenueToDate),
			CurrentBalance:     money(c.CurrentBalance),
			InvoiceCount:       c.InvoiceCount,
		}
	}
	resp.TopItems = make([]TopItemResponse, len(d.TopItems))
	for i, it := range d.TopItems {
		resp.TopItems[i] = TopItemResponse{
			ItemID:         it.ItemID,
			Name:           it.Name,
			SKU:            it.SKU,
			Type:           string(it.Type),
			UnitPrice:      money(it.UnitPrice),
			QuantityOnHand: it.QuantityOnHand,
		}
	}
	return resp
}
