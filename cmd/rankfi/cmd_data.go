package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/songzhibin97/rankfi/internal/validation"
)

// ErrValidationFailed is returned by validate --strict when errors were found.
var ErrValidationFailed = errors.New("data validation failed")

func newValidateCmd(a *app) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for missing or malformed fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exchanges, err := a.catalog.All(cmd.Context())
			if err != nil {
				return err
			}

			result := validation.ValidateExchanges(exchanges)
			validation.Log(log, result)

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), result)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), validation.Report(result))
			}
			if err != nil {
				return err
			}

			if strict && result.Summary.Errors > 0 {
				return fmt.Errorf("%w: %d errors", ErrValidationFailed, result.Summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when errors are found")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	var driver, dsn string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the loaded dataset into a SQL database",
		Long: `Load the dataset from the configured sources and replace the contents of
the exchanges table with it. The database defaults to the database section
of the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if driver == "" {
				driver = a.config.Database.Driver
			}
			if dsn == "" {
				dsn = a.config.Database.ConnStr
			}
			if dsn == "" {
				return fmt.Errorf("seed requires --dsn or database.conn_str")
			}

			exchanges, err := a.catalog.All(cmd.Context())
			if err != nil {
				return err
			}

			store, err := a.openStorage(driver, dsn)
			if err != nil {
				return err
			}
			if err := store.SaveExchanges(cmd.Context(), exchanges); err != nil {
				return err
			}

			log.Info("seeded exchanges", "driver", driver, "source", a.catalog.Source(), "count", len(exchanges))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %d exchanges from %s\n", len(exchanges), a.catalog.Source())
			return err
		},
	}

	cmd.Flags().StringVar(&driver, "driver", "", "database driver: postgres, sqlite or mysql")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database connection string")
	return cmd
}
