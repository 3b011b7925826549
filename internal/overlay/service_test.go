package overlay

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zearom/caster/internal/db"
	"github.com/zearom/caster/internal/models"
)

// setupService creates a service backed by a real SQLite database in a
// temporary directory, with migrations applied.
func setupService(t *testing.T) *Service {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	migrations := "file://" + filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	require.NoError(t, db.RunMigrations(sqlDB, migrations))

	return NewService(db.NewRepositories(database))
}

// recordNotifier captures commit notifications
type recordNotifier struct {
	mu     sync.Mutex
	events []int64
}

func (n *recordNotifier) NotifyRevision(category string, revision int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, revision)
}

func (n *recordNotifier) revisions() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]int64, len(n.events))
	copy(out, n.events)
	return out
}

func TestGetProvisionsDefaultsOnFirstAccess(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	settings, err := service.Get(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, "In Loving Memory", settings.MainText)
	assert.Equal(t, int64(1), settings.Revision)
	assert.False(t, settings.IsVisible)

	// Second access returns the stored row, not fresh defaults
	again, err := service.Get(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSaveAppliesPartialUpdateAndBumpsRevision(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	before, err := service.Get(ctx, "funeral")
	require.NoError(t, err)

	text := "Updated headline"
	speed := 80
	saved, err := service.Save(ctx, "funeral", &UpdateFields{
		MainText:    &text,
		TickerSpeed: &speed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated headline", saved.MainText)
	assert.Equal(t, 80, saved.TickerSpeed)
	assert.Equal(t, before.Revision+1, saved.Revision)
	assert.Equal(t, before.SecondaryText, saved.SecondaryText, "omitted fields keep stored values")

	// A read after the write observes it
	after, err := service.Get(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, "Updated headline", after.MainText)
	assert.Equal(t, saved.Revision, after.Revision)
}

func TestSaveClampsOutOfRangeValues(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	opacity := 3.5
	duration := -2.0
	saved, err := service.Save(ctx, "funeral", &UpdateFields{
		OverlayBgOpacity: &opacity,
		EntranceDuration: &duration,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, saved.OverlayBgOpacity)
	assert.Equal(t, 0.0, saved.EntranceDuration)
}

func TestSaveDropsUnknownEnumValues(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	bad := "teleport"
	saved, err := service.Save(ctx, "funeral", &UpdateFields{
		EntranceAnimation: &bad,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AnimationSlideLeft, saved.EntranceAnimation, "unknown member keeps the stored value")
}

func TestRevisionIncreasesAcrossAllWriteOperations(t *testing.T) {
	service := setupService(t)
	notifier := &recordNotifier{}
	service.SetNotifier(notifier)
	ctx := context.Background()

	_, err := service.Get(ctx, "funeral")
	require.NoError(t, err)

	text := "A"
	_, err = service.Save(ctx, "funeral", &UpdateFields{MainText: &text})
	require.NoError(t, err)
	_, err = service.SetVisibility(ctx, "funeral", true)
	require.NoError(t, err)
	_, err = service.SaveSecondaryPhrases(ctx, "funeral", []string{"one", "two"})
	require.NoError(t, err)
	_, err = service.Reset(ctx, "funeral")
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4, 5}, notifier.revisions(), "strictly increasing, one notification per commit")
}

func TestResetRestoresDefaultsKeepingIdentity(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	before, err := service.Get(ctx, "wedding")
	require.NoError(t, err)

	text := "Changed"
	_, err = service.Save(ctx, "wedding", &UpdateFields{MainText: &text})
	require.NoError(t, err)

	reset, err := service.Reset(ctx, "wedding")
	require.NoError(t, err)

	assert.Equal(t, "Together Forever", reset.MainText)
	assert.Equal(t, before.ID, reset.ID)
	assert.Equal(t, int64(3), reset.Revision, "reset is a committed write like any other")
	assert.WithinDuration(t, before.CreatedAt, reset.CreatedAt, 0)
}

func TestSaveSecondaryPhrasesFiltersBlanks(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	phrases, err := service.SaveSecondaryPhrases(ctx, "funeral", []string{" one ", "", "  ", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, phrases)

	stored, err := service.SecondaryPhrases(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, stored)
}

func TestSaveSecondaryPhrasesRejectsEmptyList(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.SaveSecondaryPhrases(ctx, "funeral", []string{"keep me"})
	require.NoError(t, err)

	_, err = service.SaveSecondaryPhrases(ctx, "funeral", []string{"", "   "})
	require.Error(t, err)
	assert.True(t, IsEmptyPhraseList(err))

	// The stored list survives the rejected write
	stored, err := service.SecondaryPhrases(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, []string{"keep me"}, stored)
}

func TestSetVisibilityToggles(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	on, err := service.SetVisibility(ctx, "funeral", true)
	require.NoError(t, err)
	assert.True(t, on.IsVisible)

	off, err := service.SetVisibility(ctx, "funeral", false)
	require.NoError(t, err)
	assert.False(t, off.IsVisible)
	assert.Equal(t, on.Revision+1, off.Revision)
}

func TestSetMediaPathAndRemove(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	saved, err := service.SetMediaPath(ctx, "funeral", FileKindLogo, "/uploads/funeral_logo_abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/funeral_logo_abc.png", saved.CompanyLogo)

	removed, err := service.RemoveLogo(ctx, "funeral")
	require.NoError(t, err)
	assert.Empty(t, removed.CompanyLogo)
	assert.False(t, removed.ShowCompanyLogo, "removing the logo also hides it")

	_, err = service.SetMediaPath(ctx, "funeral", FileKind("banner"), "/uploads/x.png")
	assert.ErrorIs(t, err, ErrUnknownFileKind)
}

func TestProvisionDefaultsCreatesKnownCategories(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.ProvisionDefaults(ctx))

	for _, category := range models.KnownCategories {
		settings, err := service.Get(ctx, category)
		require.NoError(t, err)
		assert.Equal(t, category, settings.Category)
	}
}

func TestCategoriesListsProvisionedDocuments(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	categories, err := service.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	_, err = service.Get(ctx, "wedding")
	require.NoError(t, err)
	_, err = service.Get(ctx, "funeral")
	require.NoError(t, err)

	categories, err = service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"funeral", "wedding"}, categories)
}

func TestConcurrentSavesSerializePerCategory(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Get(ctx, "funeral")
	require.NoError(t, err)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			visible := n%2 == 0
			_, err := service.SetVisibility(ctx, "funeral", visible)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	settings, err := service.Get(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, int64(1+writers), settings.Revision, "every committed write got its own revision")
}
