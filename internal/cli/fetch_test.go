package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veksi/kuntadash/internal/store"
)

const testMetadata = `{
	"title": "Kuntien avainluvut",
	"variables": [
		{"code": "Alue", "text": "Alue",
		 "values": ["SSS", "KU074", "KU236"],
		 "valueTexts": ["Koko maa", "Halsua", "Kaustinen"]},
		{"code": "Tiedot", "text": "Tiedot",
		 "values": ["M411", "M476"],
		 "valueTexts": ["Väkiluku", "Työllisyysaste, %"]},
		{"code": "Vuosi", "text": "Vuosi", "time": true,
		 "values": ["2019", "2020", "2021"],
		 "valueTexts": ["2019", "2020", "2021"]}
	]
}`

const testCube = `{
	"id": ["Alue", "Tiedot", "Vuosi"],
	"size": [2, 1, 2],
	"dimension": {
		"Alue": {"category": {
			"index": {"KU074": 0, "KU236": 1},
			"label": {"KU074": "Halsua", "KU236": "Kaustinen"}}},
		"Tiedot": {"category": {
			"label": {"M411": "Väkiluku"}}},
		"Vuosi": {"category": {
			"index": {"2020": 0, "2021": 1},
			"label": {"2020": "2020", "2021": "2021"}}}
	},
	"value": [1112, 1098, 3521, 3488]
}`

// newFakeAPI serves PxWeb-shaped metadata and cube responses.
func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, testMetadata)
			return
		}
		io.WriteString(w, testCube)
	}))
	t.Cleanup(ts.Close)
	return ts
}

// writeTestConfig writes a minimal YAML config pointing at the fake API
// and returns its path.
func writeTestConfig(t *testing.T, url string) string {
	t.Helper()
	cfg := `dataset_url: "` + url + `"
fetch_timeout: "5s"
target_years: ["2020", "2021"]
regions:
  - {code: KU074, name: Halsua, color: "#8884d8"}
  - {code: KU236, name: Kaustinen, color: "#82ca9d"}
series:
  - id: population
    title: "Väkiluku"
    selector:
      keyword: "väkiluku"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestFetchCommand_TextOutput(t *testing.T) {
	ts := newFakeAPI(t)
	cfgPath := writeTestConfig(t, ts.URL)

	out, err := executeCommand(t, "fetch", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "run ")
	assert.Contains(t, out, "population (4 rows)")
	assert.Contains(t, out, "2020  Halsua")
	assert.Contains(t, out, "2021  Kaustinen")
}

func TestFetchCommand_UnknownSeries(t *testing.T) {
	ts := newFakeAPI(t)
	cfgPath := writeTestConfig(t, ts.URL)

	_, err := executeCommand(t, "fetch", "--config", cfgPath, "--series", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown series "nope"`)
}

func TestFetchCommand_ArchivesRuns(t *testing.T) {
	ts := newFakeAPI(t)
	cfgPath := writeTestConfig(t, ts.URL)
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	_, err := executeCommand(t, "fetch", "--config", cfgPath, "--db", dbPath)
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	rows, err := st.LatestSeries(context.Background(), "population")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 2020, rows[0].Year)
	assert.Equal(t, "Halsua", rows[0].Region)
	assert.Equal(t, 1112.0, rows[0].Value)

	// The runs command reads the same archive back.
	out, err := executeCommand(t, "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "population")
	assert.Contains(t, out, "4 rows")
}

func TestPlanCommand_TextOutput(t *testing.T) {
	ts := newFakeAPI(t)
	cfgPath := writeTestConfig(t, ts.URL)

	out, err := executeCommand(t, "plan", "population", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "table: Kuntien avainluvut")
	assert.Contains(t, out, "metric: Tiedot = M411")
	assert.Contains(t, out, "KU074, KU236")
	assert.Contains(t, out, "2020, 2021")
}

func TestPlanCommand_UnknownSeries(t *testing.T) {
	ts := newFakeAPI(t)
	cfgPath := writeTestConfig(t, ts.URL)

	_, err := executeCommand(t, "plan", "nope", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
