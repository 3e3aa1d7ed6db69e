package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/internal/dto"
)

type reportFlags struct {
	userID    string
	companyID string
	format    string
	from      string
	to        string
	asOf      string
}

func newReportCommand(a *app) *cobra.Command {
	f := &reportFlags{}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
	}
	reportCmd.PersistentFlags().StringVar(&f.userID, "user", "", "user the provider credential belongs to")
	reportCmd.PersistentFlags().StringVar(&f.companyID, "company", "", "provider company ID")
	reportCmd.PersistentFlags().StringVar(&f.format, "format", string(dto.FormatJSON), "output format (json or summary)")
	_ = reportCmd.MarkPersistentFlagRequired("user")
	_ = reportCmd.MarkPersistentFlagRequired("company")

	reportCmd.AddCommand(
		newProfitAndLossCommand(a, f),
		newBalanceSheetCommand(a, f),
		newCashFlowCommand(a, f),
		newDashboardCommand(a, f),
	)
	return reportCmd
}

func (f *reportFlags) outputFormat() (dto.ReportFormat, error) {
	switch dto.ReportFormat(f.format) {
	case dto.FormatJSON, dto.FormatSummary:
		return dto.ReportFormat(f.format), nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or summary)", f.format)
	}
}

func addPeriodFlags(cmd *cobra.Command, f *reportFlags) {
	cmd.Flags().StringVar(&f.from, "from", "", "period start (YYYY-MM-DD), defaults to the first of this month")
	cmd.Flags().StringVar(&f.to, "to", "", "period end (YYYY-MM-DD), defaults to today")
}

func newProfitAndLossCommand(a *app, f *reportFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pnl",
		Aliases: []string{"profit-and-loss"},
		Short:   "Profit and loss for a period",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := f.outputFormat()
			if err != nil {
				return err
			}
			period, err := dto.PeriodQuery{FromDate: f.from, ToDate: f.to}.Period(time.Now())
			if err != nil {
				return err
			}
			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				report, err := rt.Reporting.ProfitAndLoss(ctx, f.companyID, period, f.userID)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToProfitAndLossResponse(report, format))
			})
		},
	}
	addPeriodFlags(cmd, f)
	return cmd
}

func newBalanceSheetCommand(a *app, f *reportFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := f.outputFormat()
			if err != nil {
				return err
			}
			asOf, err := dto.AsOfQuery{AsOf: f.asOf}.Date(time.Now())
			if err != nil {
				return err
			}
			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				report, err := rt.Reporting.BalanceSheet(ctx, f.companyID, asOf, f.userID)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToBalanceSheetResponse(report, format))
			})
		},
	}
	cmd.Flags().StringVar(&f.asOf, "as-of", "", "report date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newCashFlowCommand(a *app, f *reportFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Estimated cash flow statement for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := f.outputFormat()
			if err != nil {
				return err
			}
			period, err := dto.PeriodQuery{FromDate: f.from, ToDate: f.to}.Period(time.Now())
			if err != nil {
				return err
			}
			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				report, err := rt.Reporting.CashFlow(ctx, f.companyID, period, f.userID)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToCashFlowResponse(report, format))
			})
		},
	}
	addPeriodFlags(cmd, f)
	return cmd
}

func newDashboardCommand(a *app, f *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Consolidated dashboard metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := f.outputFormat()
			if err != nil {
				return err
			}
			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				dashboard, err := rt.Reporting.Dashboard(ctx, f.companyID, f.userID)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToDashboardResponse(dashboard, format))
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
