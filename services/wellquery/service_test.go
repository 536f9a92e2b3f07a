package wellquery

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"texasogwells-backend/lib/scrapers/rrc"
	"texasogwells-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const sessionId = "TESTSESSION"

// a fixture portal that emulates the upstream's three endpoints
type fakePortal struct {
	calls          atomic.Int64
	leaseBody      string
	productionBody string
	issueSession   bool
}

func (p *fakePortal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.calls.Add(1)

	switch {
	case strings.HasPrefix(r.URL.Path, "/PDQ/generalReportAction.do"):
		if p.issueSession {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: sessionId, Path: "/"})
		}
		fmt.Fprint(w, "<html><body>landing</body></html>")
	case strings.HasPrefix(r.URL.Path, "/PDQ/leaseQueryAction.do"):
		if !strings.Contains(r.URL.Path, ";jsessionid="+sessionId) {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, p.leaseBody)
	case strings.HasPrefix(r.URL.Path, "/PDQ/productionReportAction.do"):
		fmt.Fprint(w, p.productionBody)
	default:
		http.NotFound(w, r)
	}
}

func setupApi(t *testing.T, portal *fakePortal) *httptest.Server {
	upstream := httptest.NewServer(portal)
	t.Cleanup(upstream.Close)

	client, err := rrc.NewClient(rrc.ClientOptions{BaseUrl: upstream.URL})
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewService(client).Register(mux)

	api := httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

func getJson(t *testing.T, url string) (int, map[string]any) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return res.StatusCode, body
}

func TestSearchEndpoint(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{
		issueSession: true,
		leaseBody: `<select>
			<option value="12345|EXAMPLE LEASE|O|08|1">(08-12345):EXAMPLE LEASE</option>
		</select>`,
	}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/search?name=example")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "EXAMPLE", body["query"])
	require.Equal(t, float64(1), body["count"])

	leases := body["leases"].([]any)
	require.Len(t, leases, 1)
	lease := leases[0].(map[string]any)
	require.Equal(t, "12345", lease["leaseNumber"])
	require.Equal(t, "Oil", lease["wellType"])
	require.Equal(t, "08", lease["district"])
	require.Equal(t, "1", lease["wellNumber"])
	require.Equal(t, "08-12345", lease["displayId"])
	require.Equal(t, "EXAMPLE LEASE", lease["displayName"])
}

func TestSearchMissingName(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{issueSession: true}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/search")
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, body["error"])

	// validation failures never reach the upstream
	require.EqualValues(t, 0, portal.calls.Load())
}

func TestSearchNoSession(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{issueSession: false}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/search?name=example")
	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, "no session", body["error"])
}

func TestProductionEndpoint(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{
		issueSession: true,
		productionBody: `<table class="DataGrid">
			<tr><td>01/2024</td><td>1,234</td><td>56</td><td>2</td><td>x</td><td>OPERATOR X</td><td>x</td><td>FIELD Y</td></tr>
		</table>`,
	}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/production?lease=12345&district=08&type=Oil")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "12345", body["lease"])
	require.Equal(t, "08", body["district"])
	require.Equal(t, "Oil", body["type"])
	require.Equal(t, float64(1), body["count"])

	data := body["data"].([]any)
	record := data[0].(map[string]any)
	require.Equal(t, "01/2024", record["month"])
	require.Equal(t, float64(1234), record["oilBBL"])
	require.Equal(t, float64(56), record["casingheadGasMCF"])
	require.Equal(t, float64(2), record["wellCount"])
	require.Equal(t, "OPERATOR X", record["operator"])
	require.Equal(t, "FIELD Y", record["fieldName"])
}

func TestProductionNoData(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{
		issueSession:   true,
		productionBody: "<html><body>No Data Found for the criteria specified.</body></html>",
	}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/production?lease=12345&type=Gas")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "No production data found", body["error"])
	require.Empty(t, body["data"])
	require.Equal(t, "Gas", body["type"])
}

func TestProductionParseFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{
		issueSession:   true,
		productionBody: "<html><body><h1>Unexpected page</h1></body></html>",
	}
	api := setupApi(t, portal)

	status, body := getJson(t, api.URL+"/production?lease=12345&type=Oil")
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "parse_failure", body["marker"])
	require.NotEmpty(t, body["error"])
}

func TestProductionBadParams(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{issueSession: true}
	api := setupApi(t, portal)

	status, _ := getJson(t, api.URL+"/production?type=Oil")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = getJson(t, api.URL+"/production?lease=12345&type=Water")
	require.Equal(t, http.StatusBadRequest, status)

	require.EqualValues(t, 0, portal.calls.Load())
}

func TestCorsHeaders(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:wellquery")
	defer cleanup()

	portal := &fakePortal{issueSession: true}
	api := setupApi(t, portal)

	req, err := http.NewRequest(http.MethodOptions, api.URL+"/search", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
