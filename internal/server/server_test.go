package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/promoops/campaigner/internal/importer"
	"github.com/promoops/campaigner/internal/testutil"
	"github.com/promoops/campaigner/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var serverToday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func day(offset int) string {
	return serverToday.AddDate(0, 0, offset).Format("2006-01-02")
}

// fixtureBoard returns a board with one importable campaign item.
func fixtureBoard() *testutil.MockBoard {
	b := testutil.NewMockBoard()

	b.AddSnapshot(testutil.InfraSnapshot(
		testutil.InfraItem("Start Date", types.LevelCampaign, "c_start", ""),
		testutil.InfraItem("End Date", types.LevelCampaign, "c_end", ""),
		testutil.InfraItem("UK", types.LevelCampaign, "c_uk", "market"),
		testutil.InfraItem("Round Type", types.LevelRound, "r_type", ""),
		testutil.InfraItem("Start Date", types.LevelRound, "r_start", ""),
		testutil.InfraItem("End Date", types.LevelRound, "r_end", ""),
		testutil.InfraItem("Round", types.LevelConfiguration, "cfg_round", ""),
		testutil.InfraItem("Configuration Type", types.LevelConfiguration, "cfg_type", ""),
		testutil.InfraItem("Field Name", types.LevelConfiguration, "cfg_field", ""),
	))

	campaign := testutil.BuildItem("item-1", "Spring Promo",
		testutil.TextCell("c_start", day(10)),
		testutil.TextCell("c_end", day(40)),
		testutil.CheckCell("c_uk", true),
	)
	b.AddItem(&campaign)

	round := testutil.BuildItem("round-1", "Kickoff",
		testutil.TextCell("r_type", "Intro"),
		testutil.TextCell("r_start", day(12)),
		testutil.TextCell("r_end", day(20)),
	)
	b.AddGroup("board-9", &types.Group{ID: "g-rounds", Title: importer.RoundsGroupName, Items: []types.Item{round}})

	return b
}

func setupTestServer(t *testing.T) (*httptest.Server, *testutil.MockStore) {
	t.Helper()
	b := fixtureBoard()
	st := testutil.NewMockStore()
	imp := importer.New(b, st, nil, "infra",
		importer.WithClock(func() time.Time { return serverToday }))
	srv := New(":0", imp, st)

	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	t.Cleanup(http.DefaultClient.CloseIdleConnections)
	return ts, st
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestWebhookChallenge(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/webhook", "application/json",
		strings.NewReader(`{"challenge":"abc123"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "abc123", body["challenge"])
}

func TestWebhookEventRunsImport(t *testing.T) {
	ts, st := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/webhook", "application/json",
		strings.NewReader(`{"event":{"boardId":"board-9","pulseId":"item-1"}}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Webhook events are always acknowledged with 200.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res types.Result[types.AssembledCampaign]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, types.OutcomeSuccess, res.Outcome)
	assert.Equal(t, 1, st.Puts())
}

func TestWebhookRejectsUnknownPayload(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/webhook", "application/json",
		strings.NewReader(`{"hello":"world"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportEndpoint(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/import", "application/json",
		strings.NewReader(`{"boardId":"board-9","itemId":"item-1"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res types.Result[types.AssembledCampaign]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Equal(t, types.OutcomeSuccess, res.Outcome)
	require.Len(t, res.Data.Rounds, 1)
	assert.Equal(t, "Kickoff", res.Data.Rounds[0].Name)
}

func TestImportEndpoint_FaultStatus(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/import", "application/json",
		strings.NewReader(`{"boardId":"board-9","itemId":"missing"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestImportEndpoint_MissingIDs(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/import", "application/json",
		strings.NewReader(`{"boardId":"board-9"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCampaignEndpoints(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/campaigns/item-1")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/import", "application/json",
		strings.NewReader(`{"boardId":"board-9","itemId":"item-1"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/campaigns/item-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/boards/board-9/runs?limit=5")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var runs []json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Len(t, runs, 1)
}
