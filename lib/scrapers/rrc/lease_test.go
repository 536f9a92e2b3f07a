package rrc

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const leaseSearchFixture = `<html><body>
<form action="/PDQ/leaseQueryAction.do" method="post">
<select name="leaseList" size="10">
<option value="">Select a lease from the list below</option>
<option value="12345|EXAMPLE LEASE|O|08|1">(08-12345):EXAMPLE LEASE</option>
<option value="67890|SECOND LEASE|G|7C|null"> (7C-67890):SECOND LEASE </option>
</select>
</form>
</body></html>`

func TestParseLeaseOptions(t *testing.T) {
	records := ParseLeaseOptions(leaseSearchFixture)
	require.Len(t, records, 2)

	require.Equal(t, LeaseRecord{
		LeaseNumber: "12345",
		LeaseName:   "EXAMPLE LEASE",
		WellType:    WellTypeOil,
		District:    "08",
		WellNumber:  "1",
		DisplayId:   "08-12345",
		DisplayName: "EXAMPLE LEASE",
	}, records[0])

	// the literal "null" well number placeholder normalizes to empty
	require.Equal(t, LeaseRecord{
		LeaseNumber: "67890",
		LeaseName:   "SECOND LEASE",
		WellType:    WellTypeGas,
		District:    "7C",
		WellNumber:  "",
		DisplayId:   "7C-67890",
		DisplayName: "SECOND LEASE",
	}, records[1])
}

func TestParseLeaseOptionsEmpty(t *testing.T) {
	require.Empty(t, ParseLeaseOptions("<html><body>no options at all</body></html>"))
	require.Empty(t, ParseLeaseOptions(""))
}

func TestParseLeaseOptionsSkipsMalformed(t *testing.T) {
	markup := `<select>
	<option value="only|three|parts">(01-1):X</option>
	<option value="1|NAME|Z|01|1">(01-1):bad type code</option>
	<option value="1|NAME|O|01|1">label without the display shape</option>
	</select>`
	require.Empty(t, ParseLeaseOptions(markup))
}

func buildLeaseFixture(count int) string {
	var b strings.Builder
	b.WriteString("<html><body><select>")
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, `<option value="%d|LEASE %d|O|08|1">(08-%d):LEASE %d</option>`, i, i, i, i)
	}
	b.WriteString("</select></body></html>")
	return b.String()
}

func TestParseLeaseOptionsCap(t *testing.T) {
	records := ParseLeaseOptions(buildLeaseFixture(60))
	require.Len(t, records, maxLeaseResults)

	// document order is the upstream's relevance order, it must survive
	for i, record := range records {
		require.Equal(t, fmt.Sprintf("%d", i), record.LeaseNumber)
	}
}

func TestParseLeaseOptionsIdempotent(t *testing.T) {
	first, err := json.Marshal(ParseLeaseOptions(leaseSearchFixture))
	require.NoError(t, err)
	second, err := json.Marshal(ParseLeaseOptions(leaseSearchFixture))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
