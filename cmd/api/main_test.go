package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"countrystats-api/api/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesPayload = `{"error":false,"msg":"ok","data":[
	{"city":"Zurich","country":"Switzerland","populationCounts":[{"year":"2019","value":"402762","sex":"Both Sexes","reliabilty":"Final figure, complete"}]},
	{"city":"Geneva","country":"Switzerland","populationCounts":[{"year":"2019","value":"201818"}]},
	{"city":"Lyon","country":"France","populationCounts":[{"year":"2015","value":"513275"}]}
]}`

const infoPayload = `{"error":false,"msg":"ok","data":[
	{"name":"Switzerland","capital":"Bern","currency":"CHF","dialCode":"+41","flag":"https://flags/ch.svg"}
]}`

// fakeUpstream serves the two upstream endpoints the services call
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0.1/countries/population/cities/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(citiesPayload))
	})
	mux.HandleFunc("/api/v0.1/countries/info", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "currency,flag,dialCode,capital", r.URL.Query().Get("returns"))
		w.Write([]byte(infoPayload))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"RATE_LIMIT", "RATE_WINDOW", "RATE_LIMIT_TRUST_PROXY", "CHART_WIDTH", "CHART_HEIGHT", "TOP_CITIES",
		"FEATURE_CHART_ENABLED", "FEATURE_METRICS_ENABLED", "FEATURE_RATE_LIMIT_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCitiesCommand(t *testing.T) {
	clearEnv(t)
	upstream := fakeUpstream(t)

	out, err := execute(t, "cities", "switzerland", "--sort", "nameAsc", "--base-url", upstream.URL+"/api/v0.1")
	require.NoError(t, err)

	var cities []responses.CityResponse
	require.NoError(t, json.Unmarshal([]byte(out), &cities))
	require.Len(t, cities, 2)
	assert.Equal(t, "Geneva", cities[0].City)
	assert.Equal(t, "Zurich", cities[1].City)
	assert.Equal(t, "Final figure, complete", cities[1].PopulationCounts[0].Reliability)
}

func TestCitiesCommand_InvalidSort(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "cities", "Switzerland", "--sort", "loudest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sortOrder")
}

func TestInfoCommand(t *testing.T) {
	clearEnv(t)
	upstream := fakeUpstream(t)

	out, err := execute(t, "info", "Switzerland", "--base-url", upstream.URL+"/api/v0.1")
	require.NoError(t, err)
	assert.Contains(t, out, `"capital": "Bern"`)

	_, err = execute(t, "info", "Atlantis", "--base-url", upstream.URL+"/api/v0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, appName+" version "+Version))
}

func TestNewApp_InvalidConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := newApp(overrides{}, io.Discard)
	assert.Error(t, err)
}

func TestRouter_EndToEnd(t *testing.T) {
	clearEnv(t)
	upstream := fakeUpstream(t)

	a, err := newApp(overrides{baseURL: upstream.URL + "/api/v0.1"}, io.Discard)
	require.NoError(t, err)
	srv := httptest.NewServer(newRouter(a))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/country-stats?country=Switzerland&sortOrder=populationDesc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var stats responses.CountryStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.NotNil(t, stats.CountryInfo)
	assert.Equal(t, "CHF", stats.CountryInfo.Currency)
	require.Len(t, stats.Cities, 2)
	assert.Equal(t, "Zurich", stats.Cities[0].City)
	require.NotNil(t, stats.Chart)
	assert.NotEmpty(t, stats.Chart.Data)

	png, err := http.Get(srv.URL + "/countries/Switzerland/chart.png")
	require.NoError(t, err)
	defer png.Body.Close()
	body, _ := io.ReadAll(png.Body)
	assert.Equal(t, "image/png", png.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	text, _ := io.ReadAll(metrics.Body)
	assert.Contains(t, string(text), `countrystats_upstream_requests_total{endpoint="countries/population/cities",outcome="ok"}`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEATURE_METRICS_ENABLED", "false")

	a, err := newApp(overrides{}, io.Discard)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	newRouter(a).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
