package commands

import (
	"os"
	"sort"

	"texasogwells-backend/lib/operators"
	"texasogwells-backend/lib/scrapers/rrc"
	"texasogwells-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var productionDistrict *string
var productionType *string
var byOperator *bool

func init() {
	productionDistrict = productionCmd.Flags().String("district", "", "District code of the lease.")
	productionType = productionCmd.Flags().String("type", "Oil", "Well type: Oil or Gas.")
	byOperator = productionCmd.Flags().Bool("by-operator", false, "Aggregate volumes by operator group instead of listing months.")
	rootCmd.AddCommand(productionCmd)
}

var productionCmd = &cobra.Command{
	Use:   "production <lease number>",
	Short: "Fetches monthly production figures for one lease.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		wellType, err := rrc.ParseWellType(*productionType)
		if err != nil {
			serviceutil.Fatal("bad well type", err)
		}

		client := createClient()
		session, err := client.AcquireSession(ctx)
		if err != nil {
			serviceutil.Fatal("failed to acquire session", err)
		}

		records, err := client.Production(ctx, session, rrc.ProductionQuery{
			Lease:    args[0],
			District: *productionDistrict,
			WellType: wellType,
		})
		if err != nil {
			serviceutil.Fatal("production query failed", err)
		}

		if *byOperator {
			renderByOperator(records, wellType)
			return
		}
		renderMonths(records, wellType)
	},
}

func volumeHeaders(wellType rrc.WellType) (string, string) {
	if wellType == rrc.WellTypeGas {
		return "Gas (MCF)", "Condensate (BBL)"
	}
	return "Oil (BBL)", "Casinghead (MCF)"
}

func volumes(r rrc.ProductionRecord) (int, int) {
	if r.WellType == rrc.WellTypeGas {
		return r.GasMCF, r.CondensateBBL
	}
	return r.OilBBL, r.CasingheadGasMCF
}

func renderMonths(records []rrc.ProductionRecord, wellType rrc.WellType) {
	primary, secondary := volumeHeaders(wellType)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Month", primary, secondary, "Wells", "Operator", "Field"})
	for _, r := range records {
		a, b := volumes(r)
		t.AppendRow(table.Row{r.Month, a, b, r.WellCount, r.Operator, r.FieldName})
	}
	t.Render()
}

func renderByOperator(records []rrc.ProductionRecord, wellType rrc.WellType) {
	type totals struct {
		primary, secondary, months int
	}
	groups := map[string]*totals{}
	for _, r := range records {
		group := operators.Classify(r.Operator)
		if groups[group] == nil {
			groups[group] = &totals{}
		}
		a, b := volumes(r)
		groups[group].primary += a
		groups[group].secondary += b
		groups[group].months++
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	primary, secondary := volumeHeaders(wellType)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Operator Group", primary, secondary, "Months"})
	for _, name := range names {
		g := groups[name]
		t.AppendRow(table.Row{name, g.primary, g.secondary, g.months})
	}
	t.Render()
}
