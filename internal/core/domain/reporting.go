package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BreakdownLine is one account's share of a report section.
// Percentage is relative to the section total and is zero when that total is zero.
type BreakdownLine struct {
	AccountID  string          `json:"accountID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Breakdown is a report section: its lines sorted by amount descending, and their total.
type Breakdown struct {
	Lines []BreakdownLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// TaxSummary holds the statutory tax figures derived from the aggregated metrics.
type TaxSummary struct {
	Jurisdiction    string          `json:"jurisdiction"`
	VATRate         decimal.Decimal `json:"vatRate"`
	VATCollected    decimal.Decimal `json:"vatCollected"`
	VATPaid         decimal.Decimal `json:"vatPaid"`
	NetVAT          decimal.Decimal `json:"netVat"`
	IncomeTaxRate   decimal.Decimal `json:"incomeTaxRate"`
	IncomeTax       decimal.Decimal `json:"incomeTax"`
	WithholdingTax  decimal.Decimal `json:"withholdingTax"`
	WithholdingRate decimal.Decimal `json:"withholdingRate"`
}

// NativeReport is a report as rendered by the provider itself. It is carried through for
// consumers and never used in the engine's own arithmetic.
type NativeReport struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ProfitAndLossSummary holds the headline figures of a P&L.
type ProfitAndLossSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	CostOfGoodsSold   decimal.Decimal `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	OperatingIncome   decimal.Decimal `json:"operatingIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetIncome         decimal.Decimal `json:"netIncome"`
	Margin            decimal.Decimal `json:"margin"` // netIncome / totalRevenue * 100
}

// ProfitAndLossReport represents a profit and loss report
type ProfitAndLossReport struct {
	Company     CompanyInfo          `json:"company"`
	Period      ReportPeriod         `json:"period"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Revenue     Breakdown            `json:"revenue"`
	Expenses    Breakdown            `json:"expenses"`
	COGS        Breakdown            `json:"cogs"`
	Taxes       TaxSummary           `json:"taxes"`
	Summary     ProfitAndLossSummary `json:"summary"`
	Native      *NativeReport        `json:"native,omitempty"`
}

// BalanceSheetSummary holds the headline figures of a balance sheet.
//
// TotalEquity is derived as TotalAssets - TotalLiabilities, so the accounting identity
// holds by construction. BookedEquity is the sum of the equity accounts as the provider
// reports them; EquityVariance is the difference and IsBalanced is true when it is zero.
type BalanceSheetSummary struct {
	TotalCurrentAssets       decimal.Decimal `json:"totalCurrentAssets"`
	TotalFixedAssets         decimal.Decimal `json:"totalFixedAssets"`
	TotalAssets              decimal.Decimal `json:"totalAssets"`
	TotalCurrentLiabilities  decimal.Decimal `json:"totalCurrentLiabilities"`
	TotalLongTermLiabilities decimal.Decimal `json:"totalLongTermLiabilities"`
	TotalLiabilities         decimal.Decimal `json:"totalLiabilities"`
	TotalEquity              decimal.Decimal `json:"totalEquity"`
	BookedEquity             decimal.Decimal `json:"bookedEquity"`
	EquityVariance           decimal.Decimal `json:"equityVariance"`
	IsBalanced               bool            `json:"isBalanced"`
	WorkingCapital           decimal.Decimal `json:"workingCapital"`
	DebtToEquity             decimal.Decimal `json:"debtToEquity"`
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	Company             CompanyInfo         `json:"company"`
	AsOf                time.Time           `json:"asOf"`
	GeneratedAt         time.Time           `json:"generatedAt"`
	CurrentAssets       Breakdown           `json:"currentAssets"`
	FixedAssets         Breakdown           `json:"fixedAssets"`
	CurrentLiabilities  Breakdown           `json:"currentLiabilities"`
	LongTermLiabilities Breakdown           `json:"longTermLiabilities"`
	Equity              Breakdown           `json:"equity"`
	Summary             BalanceSheetSummary `json:"summary"`
	Native              *NativeReport       `json:"native,omitempty"`
}

// CashFlowBasisEstimated marks cash flow figures derived from fixed fractions of revenue
// and expenses rather than from balance deltas.
const CashFlowBasisEstimated = "estimated"

// CashFlowItem is one line of a cash flow section. Inflows are positive.
type CashFlowItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowSection is a list of cash flow items and their net total.
type CashFlowSection struct {
	Items []CashFlowItem  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CashFlowReport represents a cash flow statement.
type CashFlowReport struct {
	Company             CompanyInfo     `json:"company"`
	Period              ReportPeriod    `json:"period"`
	GeneratedAt         time.Time       `json:"generatedAt"`
	Basis               string          `json:"basis"`
	NetIncome           decimal.Decimal `json:"netIncome"`
	OperatingActivities CashFlowSection `json:"operatingActivities"`
	InvestingActivities CashFlowSection `json:"investingActivities"`
	FinancingActivities CashFlowSection `json:"financingActivities"`
	NetChangeInCash     decimal.Decimal `json:"netChangeInCash"`
	BeginningCash       decimal.Decimal `json:"beginningCash"`
	EndingCash          decimal.Decimal `json:"endingCash"`
	Native              *NativeReport   `json:"native,omitempty"`
}
