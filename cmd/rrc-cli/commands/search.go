package commands

import (
	"os"
	"strings"

	"texasogwells-backend/lib/scrapers/rrc"
	"texasogwells-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchDistrict *string
var searchCounty *string

func init() {
	searchDistrict = searchCmd.Flags().String("district", "None Selected", "District code to restrict the search to.")
	searchCounty = searchCmd.Flags().String("county", "", "County to restrict the search to.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <lease name>",
	Short: "Searches leases by name and prints the matches.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := createClient()

		session, err := client.AcquireSession(ctx)
		if err != nil {
			serviceutil.Fatal("failed to acquire session", err)
		}

		leases, err := client.SearchLeases(ctx, session, rrc.LeaseQuery{
			Name:     strings.ToUpper(args[0]),
			District: *searchDistrict,
			County:   *searchCounty,
		})
		if err != nil {
			serviceutil.Fatal("lease search failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Lease #", "Name", "Type", "District", "Well #"})
		for _, lease := range leases {
			t.AppendRow(table.Row{
				lease.LeaseNumber,
				lease.LeaseName,
				lease.WellType,
				lease.District,
				lease.WellNumber,
			})
		}
		t.Render()
	},
}
