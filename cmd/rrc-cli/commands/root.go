package commands

import (
	"context"
	"fmt"
	"os"

	"texasogwells-backend/lib/scrapers/rrc"
	"texasogwells-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rrc-cli",
	Short: "rrc-cli queries the commission's production data portal from the terminal.",
}

var baseUrl *string

func init() {
	baseUrl = rootCmd.PersistentFlags().String(
		"base-url",
		"https://webapps.rrc.texas.gov",
		"The portal's base URL.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createClient() *rrc.Client {
	client, err := rrc.NewClient(rrc.ClientOptions{BaseUrl: *baseUrl})
	if err != nil {
		serviceutil.Fatal("failed to initialize rrc client", err)
	}
	return client
}
