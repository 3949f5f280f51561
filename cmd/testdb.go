package cmd

import (
	"errors"

	"splitnest-cli/core/console"
	"splitnest-cli/core/database"
	"splitnest-cli/feature/dbcheck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrProbeFailed is returned in strict mode when the connectivity check fails.
var ErrProbeFailed = errors.New("MongoDB connectivity check failed")

var strictFlag bool

// openDatabase creates the MongoDB client; tests replace it.
var openDatabase dbcheck.Opener = database.Open

// testDBCmd represents the test-db command
var testDBCmd = &cobra.Command{
	Use:   "test-db",
	Short: "Verify the MongoDB connection configured in .env.local",
	Long: `Reads MONGODB_URI from .env.local (or the environment), connects, inserts and
deletes a test document and prints troubleshooting hints on failure.

Exits non-zero when MONGODB_URI is missing. A failed connection exits zero
unless --strict is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime("test-db")
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := dbcheck.NewService(cfg.Database, openDatabase, console.New(cmd.OutOrStdout()), logg)
		report, err := svc.Run(cmd.Context())
		if err != nil {
			return err
		}

		if strictFlag && !report.Succeeded() {
			logg.Debug("strict mode: failing on probe error", zap.String("category", string(report.Category)))
			return ErrProbeFailed
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(testDBCmd)
	testDBCmd.Flags().BoolVar(&strictFlag, "strict", false, "Exit non-zero when the connection check fails")
}
