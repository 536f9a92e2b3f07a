package rrc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"texasogwells-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoData is the portal explicitly answering "no matching records",
// a valid empty result rather than a failure.
var ErrNoData = errors.New("No production data found")

// DriftError reports markup that matches neither the data grid nor
// the no-data message, which means the portal changed shape under us.
type DriftError struct {
	Missing string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("unexpected upstream markup: %s not found", e.Missing)
}

const (
	dataGridClass = "DataGrid"
	noDataMarker  = "No Data Found"
)

type DateRange struct {
	StartMonth int
	StartYear  int
	EndMonth   int
	EndYear    int
}

// DefaultDateRange spans the portal's full data history, monthly
// production figures begin in January 1993.
func DefaultDateRange() DateRange {
	return DateRange{
		StartMonth: 1,
		StartYear:  1993,
		EndMonth:   12,
		EndYear:    time.Now().Year(),
	}
}

type ProductionQuery struct {
	Lease    string
	District string
	WellType WellType
	// zero value means DefaultDateRange
	Range DateRange
}

// ProductionRecord is one month of figures for a lease. Which volume
// fields are meaningful (and serialized) depends on WellType: oil
// leases report oil barrels and casinghead gas, gas leases report gas
// volume and condensate.
type ProductionRecord struct {
	WellType         WellType `json:"-"`
	Month            string
	OilBBL           int
	CasingheadGasMCF int
	GasMCF           int
	CondensateBBL    int
	WellCount        int
	Operator         string
	FieldName        string
}

type oilRecordJson struct {
	Month            string `json:"month"`
	OilBBL           int    `json:"oilBBL"`
	CasingheadGasMCF int    `json:"casingheadGasMCF"`
	WellCount        int    `json:"wellCount"`
	Operator         string `json:"operator"`
	FieldName        string `json:"fieldName"`
}

type gasRecordJson struct {
	Month         string `json:"month"`
	GasMCF        int    `json:"gasMCF"`
	CondensateBBL int    `json:"condensateBBL"`
	WellCount     int    `json:"wellCount"`
	Operator      string `json:"operator"`
	FieldName     string `json:"fieldName"`
}

func (r ProductionRecord) MarshalJSON() ([]byte, error) {
	if r.WellType == WellTypeGas {
		return json.Marshal(gasRecordJson{
			Month:         r.Month,
			GasMCF:        r.GasMCF,
			CondensateBBL: r.CondensateBBL,
			WellCount:     r.WellCount,
			Operator:      r.Operator,
			FieldName:     r.FieldName,
		})
	}
	return json.Marshal(oilRecordJson{
		Month:            r.Month,
		OilBBL:           r.OilBBL,
		CasingheadGasMCF: r.CasingheadGasMCF,
		WellCount:        r.WellCount,
		Operator:         r.Operator,
		FieldName:        r.FieldName,
	})
}

// Production submits a production query for one lease and extracts
// the monthly grid. The caller's date range is honored, the portal's
// historic default is only used when the range is left zero.
func (c *Client) Production(ctx context.Context, session Session, query ProductionQuery) ([]ProductionRecord, error) {
	ctx, span := tracer.Start(ctx, "client:Production")
	defer span.End()

	dates := query.Range
	if dates == (DateRange{}) {
		dates = DefaultDateRange()
	}

	form := url.Values{}
	form.Set("viewArgs.wellTypeArg", query.WellType.code())
	form.Set("viewArgs.leaseNumberArg", query.Lease)
	form.Set("viewArgs.districtCodeArg", query.District)
	form.Set("viewArgs.startMonthArg", fmt.Sprintf("%02d", dates.StartMonth))
	form.Set("viewArgs.startYearArg", fmt.Sprintf("%d", dates.StartYear))
	form.Set("viewArgs.endMonthArg", fmt.Sprintf("%02d", dates.EndMonth))
	form.Set("viewArgs.endYearArg", fmt.Sprintf("%d", dates.EndYear))

	body, err := c.SubmitForm(ctx, session, productionEndpoint, form)
	if err != nil {
		return nil, err
	}

	return ParseProductionTable(body, query.WellType)
}

// both well types read the same cell positions, only the destination
// fields differ
var volumeColumns = map[WellType]struct {
	primary   func(r *ProductionRecord, v int)
	secondary func(r *ProductionRecord, v int)
}{
	WellTypeOil: {
		primary:   func(r *ProductionRecord, v int) { r.OilBBL = v },
		secondary: func(r *ProductionRecord, v int) { r.CasingheadGasMCF = v },
	},
	WellTypeGas: {
		primary:   func(r *ProductionRecord, v int) { r.GasMCF = v },
		secondary: func(r *ProductionRecord, v int) { r.CondensateBBL = v },
	},
}

// ParseProductionTable extracts the monthly rows out of the portal's
// data grid. A document with no grid but a no-data message is ErrNoData,
// a document with neither is a DriftError.
func ParseProductionTable(markup string, wellType WellType) ([]ProductionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &DriftError{Missing: "parseable document"}
	}

	grid := doc.Find("table." + dataGridClass).First()
	if grid.Length() == 0 {
		if strings.Contains(doc.Text(), noDataMarker) {
			return nil, ErrNoData
		}
		return nil, &DriftError{Missing: "data grid table"}
	}

	columns := volumeColumns[wellType]

	var records []ProductionRecord
	grid.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			// header rows render th cells
			return
		}

		texts := make([]string, cells.Length())
		cells.Each(func(i int, cell *goquery.Selection) {
			texts[i] = htmlutil.CleanCell(cell.Text())
		})

		if isStatusRow(texts[0]) {
			return
		}

		record := ProductionRecord{
			WellType:  wellType,
			Month:     texts[0],
			WellCount: htmlutil.LooseInt(cellAt(texts, 3)),
			Operator:  cellAt(texts, 5),
			FieldName: cellAt(texts, 7),
		}
		columns.primary(&record, htmlutil.LooseInt(cellAt(texts, 1)))
		columns.secondary(&record, htmlutil.LooseInt(cellAt(texts, 2)))

		// guards trailing or malformed rows that slipped through
		// the row-level filter
		if record.Month == "" {
			return
		}
		records = append(records, record)
	})

	return records, nil
}

// status rows are upstream diagnostics rendered inside the grid:
// footnote rows prefixed with an asterisk and the running totals row
func isStatusRow(first string) bool {
	return first == "" ||
		strings.HasPrefix(first, "*") ||
		strings.EqualFold(first, "total") ||
		strings.EqualFold(first, "totals")
}

func cellAt(texts []string, i int) string {
	if i >= len(texts) {
		return ""
	}
	return texts[i]
}
