package rrc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"texasogwells-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestSubmitForm(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/rrc")
	defer cleanup()

	var gotPath, gotCookie, gotUserAgent string
	var gotForm url.Values

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		gotUserAgent = r.Header.Get("User-Agent")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		fmt.Fprint(w, "<html>response body</html>")
	}))

	session := Session{Id: "SUBMIT123", Cookie: "JSESSIONID=SUBMIT123"}
	form := url.Values{}
	form.Set("searchArgs.searchValueArg", "EXAMPLE")

	body, err := client.SubmitForm(context.Background(), session, leaseQueryEndpoint, form)
	require.NoError(t, err)

	// the body comes back raw, parsing is the extractor's job
	require.Equal(t, "<html>response body</html>", body)

	require.Equal(t, "/PDQ/leaseQueryAction.do;jsessionid=SUBMIT123", gotPath)
	require.Equal(t, "JSESSIONID=SUBMIT123", gotCookie)
	require.True(t, strings.HasPrefix(gotUserAgent, "Mozilla/5.0"), "missing browser identifying header: %q", gotUserAgent)
	require.Equal(t, "EXAMPLE", gotForm.Get("searchArgs.searchValueArg"))
}

func TestSubmitFormCancellation(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/rrc")
	defer cleanup()

	blocked := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SubmitForm(ctx, Session{Id: "X", Cookie: "JSESSIONID=X"}, productionEndpoint, url.Values{})
	require.Error(t, err)
}
