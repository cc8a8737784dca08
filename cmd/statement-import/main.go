// statement-import imports 1C client bank statement files into the
// backend database without going through the HTTP API. It is meant for
// backfilling history and for scripted imports.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/orbita-crm/backend/internal/importer"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dbPath string
	var accountName string
	var createAccount bool
	var applyStatedBalance bool

	cmd := &cobra.Command{
		Use:   "statement-import <file>...",
		Short: "Import bank statement files into the ledger",
		Args:  cobra.MinimumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if err := models.Connect(dbPath); err != nil {
				return err
			}

			for _, path := range args {
				if err := importFile(path, accountName, createAccount, applyStatedBalance); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "data/gorm.db", "path to the sqlite database")
	cmd.Flags().StringVar(&accountName, "account-name", "", "name for the account when it is created, defaults to the inferred bank name")
	cmd.Flags().BoolVar(&createAccount, "create-account", false, "create the account from the statement header when it is unknown")
	cmd.Flags().BoolVar(&applyStatedBalance, "apply-stated-balance", false, "force-set the account balance to the closing balance stated by the file")

	return cmd
}

func importFile(path, accountName string, createAccount, applyStatedBalance bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var outcome importer.Outcome
	if createAccount {
		outcome, err = importer.RunConfirmed(models.DB, f, accountName, time.Now())
		if err != nil {
			return err
		}
	} else {
		var signal *importer.UnknownAccountSignal
		outcome, signal, err = importer.Run(models.DB, f, time.Now())
		if err != nil {
			return err
		}

		if signal != nil {
			return fmt.Errorf("no account with number %q exists, re-run with --create-account to create %q", signal.AccountNumber, signal.BankName)
		}
	}

	log.Info().
		Str("file", path).
		Str("account", outcome.AccountID.String()).
		Int("added", outcome.Added).
		Int("duplicates", outcome.Duplicates).
		Str("balance", outcome.ProjectedBalance.String()).
		Bool("balanceUpdateSkipped", outcome.SkippedBalanceUpdate).
		Msg("statement imported")

	if outcome.Discrepancy() {
		log.Warn().
			Str("stated", outcome.StatedClosingBalance.Decimal.String()).
			Str("projected", outcome.ProjectedBalance.String()).
			Msg("the stated closing balance disagrees with the ledger")
	}

	if applyStatedBalance {
		account, err := importer.ApplyStatedClosingBalance(models.DB, outcome)
		if err != nil {
			return err
		}

		log.Info().Str("balance", account.Balance.String()).Msg("stated closing balance applied")
	}

	return nil
}
