package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

func newCredentialsCommand(a *app) *cobra.Command {
	credCmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage stored provider credentials",
	}
	credCmd.AddCommand(newCredentialsSetCommand(a))
	credCmd.AddCommand(newCredentialsDeleteCommand(a))
	return credCmd
}

func newCredentialsSetCommand(a *app) *cobra.Command {
	var (
		userID, companyID         string
		accessToken, refreshToken string
		expiresIn                 time.Duration
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store or replace the provider tokens for a user and company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if accessToken == "" && refreshToken == "" {
				return fmt.Errorf("at least one of --access-token or --refresh-token is required")
			}
			cred := &domain.ProviderCredential{
				UserID:       userID,
				CompanyID:    companyID,
				AccessToken:  accessToken,
				RefreshToken: refreshToken,
			}
			if expiresIn > 0 {
				expiresAt := time.Now().Add(expiresIn).UTC()
				cred.ExpiresAt = &expiresAt
			}

			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Credentials.SaveCredential(ctx, cred); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved credential %s for company %s\n", cred.ID, cred.CompanyID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user the credential belongs to")
	cmd.Flags().StringVar(&companyID, "company", "", "provider company ID")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth access token")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth refresh token")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", time.Hour, "access token lifetime (0 for no expiry)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newCredentialsDeleteCommand(a *app) *cobra.Command {
	var userID, companyID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the provider tokens for a user and company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Credentials.DeleteCredential(ctx, userID, companyID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted credential for company %s\n", companyID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user the credential belongs to")
	cmd.Flags().StringVar(&companyID, "company", "", "provider company ID")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
