package cmd

import (
	"crypto/rand"

	"splitnest-cli/core/console"
	"splitnest-cli/feature/setup"

	"github.com/spf13/cobra"
)

// commandRunner runs the runtime detection probes; tests replace it.
var commandRunner setup.CommandRunner = setup.ExecRunner{}

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create .env.local and check for a local MongoDB",
	Long: `Writes .env.local with default connection settings, placeholder Google OAuth
credentials and a random NEXTAUTH_SECRET. An existing .env.local is never
overwritten. Also checks whether MongoDB appears to be installed locally.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime("setup")
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := setup.NewService(cfg.Dir, cfg.Setup, commandRunner, rand.Reader, console.New(cmd.OutOrStdout()), logg)
		_, err = svc.Run(cmd.Context())
		return err
	},
}

func init() {
	RootCmd.AddCommand(setupCmd)
}
