//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zearom/caster/internal/api"
	"github.com/zearom/caster/internal/db"
	"github.com/zearom/caster/internal/livesync"
	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/overlay"
)

// setupStack brings up the full settings service behind a real HTTP server
func setupStack(t *testing.T) (*httptest.Server, *livesync.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.New(filepath.Join(t.TempDir(), "integration.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	migrations := "file://" + filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	require.NoError(t, db.RunMigrations(sqlDB, migrations))

	service := overlay.NewService(db.NewRepositories(database))
	hub := livesync.NewHub()
	service.SetNotifier(hub)
	require.NoError(t, service.ProvisionDefaults(context.Background()))

	router := gin.New()
	apiGroup := router.Group("/api")
	api.SetupOverlayRoutes(apiGroup, service)
	api.SetupSyncRoutes(apiGroup, service, hub, livesync.DefaultPollInterval)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, hub
}

func postJSON(t *testing.T, url string, body any) {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(encoded))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSaveReachesPollingDisplaySurface(t *testing.T) {
	server, hub := setupStack(t)

	source := livesync.NewHTTPSource(server.URL)

	// Baseline poll, the way a display surface primes after its first render
	revision, settings, err := source.Poll(context.Background(), "funeral")
	require.NoError(t, err)
	assert.Equal(t, int64(1), revision)
	assert.Equal(t, "In Loving Memory", settings.MainText)

	updates := make(chan *models.OverlaySettings, 4)
	poller := livesync.NewPoller(source, "funeral", 50*time.Millisecond, func(s *models.OverlaySettings) {
		updates <- s
	})
	events, cancelSub := hub.Subscribe("funeral")
	defer cancelSub()
	poller.SetNotifyChannel(events)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	// Give the poller its baseline poll before committing the change
	time.Sleep(100 * time.Millisecond)

	postJSON(t, server.URL+"/api/settings/funeral", map[string]any{
		"main_text":  "Live update",
		"is_visible": true,
	})

	select {
	case got := <-updates:
		assert.Equal(t, "Live update", got.MainText)
		assert.True(t, got.IsVisible)
		assert.Equal(t, int64(2), got.Revision)
	case <-time.After(3 * time.Second):
		t.Fatal("display surface never observed the committed update")
	}
}

func TestPhraseEditsPropagateToPolledDocument(t *testing.T) {
	server, _ := setupStack(t)

	postJSON(t, server.URL+"/api/secondary-phrases/wedding", map[string]any{
		"phrases": []string{"Forever starts today", "Two hearts, one home"},
	})

	source := livesync.NewHTTPSource(server.URL)
	_, settings, err := source.Poll(context.Background(), "wedding")
	require.NoError(t, err)

	assert.Equal(t, []string{"Forever starts today", "Two hearts, one home"}, settings.PhraseList())
}

func TestResetPropagatesAsRegularCommit(t *testing.T) {
	server, _ := setupStack(t)
	source := livesync.NewHTTPSource(server.URL)

	postJSON(t, server.URL+"/api/settings/ceremony", map[string]any{"main_text": "Changed"})

	rev1, _, err := source.Poll(context.Background(), "ceremony")
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/settings/ceremony/reset", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rev2, settings, err := source.Poll(context.Background(), "ceremony")
	require.NoError(t, err)
	assert.Greater(t, rev2, rev1, "reset bumps the revision like any write")
	assert.Equal(t, "Special Ceremony", settings.MainText)
}
