// Package overlay implements the settings store: the single source of truth
// for overlay settings documents, serialized per category with a strictly
// increasing revision per committed write.
package overlay

import (
	"context"
	"sync"
	"time"

	"github.com/zearom/caster/internal/db"
	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/models"
)

// FileKind names a media slot on the settings document
type FileKind string

// File kind constants
const (
	FileKindLogo  FileKind = "logo"
	FileKindImage FileKind = "image"
)

// IsValid checks if the file kind is a known value
func (k FileKind) IsValid() bool {
	return k == FileKindLogo || k == FileKindImage
}

// Notifier receives a callback after every committed write. Used to push
// revision-change events to connected display surfaces.
type Notifier interface {
	NotifyRevision(category string, revision int64)
}

// Service is the settings store. Writes to the same category are serialized
// through a per-category mutex; the last write wins and the next read
// observes it. Reads return an atomic snapshot of the document.
type Service struct {
	repos    *db.Repositories
	notifier Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new settings store service
func NewService(repos *db.Repositories) *Service {
	return &Service{
		repos: repos,
		locks: make(map[string]*sync.Mutex),
	}
}

// SetNotifier attaches a commit notifier. Safe to leave unset; commits then
// rely on display-surface polling alone.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// categoryLock returns the mutex serializing writes for one category
func (s *Service) categoryLock(category string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[category]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[category] = lock
	}
	return lock
}

// Get returns the current settings document for a category, provisioning it
// with defaults on first access. The returned document is a snapshot; it is
// never mutated by later writes.
func (s *Service) Get(ctx context.Context, category string) (*models.OverlaySettings, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	return s.repos.Overlays.GetByCategory(ctx, category)
}

// Save applies a partial update to the category's document and bumps its
// revision. Omitted fields keep their stored values.
func (s *Service) Save(ctx context.Context, category string, fields *UpdateFields) (*models.OverlaySettings, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	fields.Apply(settings)
	settings.ClampRanges()

	if err := s.commit(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Reset replaces the category's document wholesale with category defaults.
// The document keeps its identity and the revision keeps increasing.
func (s *Service) Reset(ctx context.Context, category string) (*models.OverlaySettings, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	defaults := models.DefaultOverlaySettings(category)
	defaults.ID = settings.ID
	defaults.Revision = settings.Revision
	defaults.CreatedAt = settings.CreatedAt

	// A reset rewrites the whole row, so it goes through its own transaction.
	if err := s.commitWith(ctx, defaults, s.repos.Overlays.Replace); err != nil {
		return nil, err
	}
	return defaults, nil
}

// SecondaryPhrases returns the category's phrase list
// Categories returns the names of all provisioned settings documents, sorted
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repos.Overlays.ListCategories(ctx)
}

func (s *Service) SecondaryPhrases(ctx context.Context, category string) ([]string, error) {
	settings, err := s.Get(ctx, category)
	if err != nil {
		return nil, err
	}
	return settings.PhraseList(), nil
}

// SaveSecondaryPhrases replaces the phrase list. Blank entries are filtered
// before commit; a list that filters to empty is rejected and the stored
// list is retained.
func (s *Service) SaveSecondaryPhrases(ctx context.Context, category string, phrases []string) ([]string, error) {
	filtered := models.FilterBlankPhrases(phrases)
	if len(filtered) == 0 {
		return nil, ErrEmptyPhraseList
	}

	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	settings.SetPhraseList(filtered)
	if err := s.commit(ctx, settings); err != nil {
		return nil, err
	}
	return filtered, nil
}

// SetVisibility toggles the overlay on or off
func (s *Service) SetVisibility(ctx context.Context, category string, visible bool) (*models.OverlaySettings, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	settings.IsVisible = visible
	if err := s.commit(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// SetMediaPath records the stored path for an uploaded logo or category image
func (s *Service) SetMediaPath(ctx context.Context, category string, kind FileKind, path string) (*models.OverlaySettings, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownFileKind
	}

	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	switch kind {
	case FileKindLogo:
		settings.CompanyLogo = path
	case FileKindImage:
		settings.CategoryImage = path
	}

	if err := s.commit(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// RemoveLogo clears the company logo path and hides the logo
func (s *Service) RemoveLogo(ctx context.Context, category string) (*models.OverlaySettings, error) {
	return s.removeMedia(ctx, category, FileKindLogo)
}

// RemoveImage clears the category image path and hides the image
func (s *Service) RemoveImage(ctx context.Context, category string) (*models.OverlaySettings, error) {
	return s.removeMedia(ctx, category, FileKindImage)
}

func (s *Service) removeMedia(ctx context.Context, category string, kind FileKind) (*models.OverlaySettings, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.repos.Overlays.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	switch kind {
	case FileKindLogo:
		settings.CompanyLogo = ""
		settings.ShowCompanyLogo = false
	case FileKindImage:
		settings.CategoryImage = ""
		settings.ShowCategoryImage = false
	}

	if err := s.commit(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ProvisionDefaults creates documents for all known categories that do not
// exist yet. Called once at startup.
func (s *Service) ProvisionDefaults(ctx context.Context) error {
	for _, category := range models.KnownCategories {
		if _, err := s.Get(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

// commit bumps the revision, persists the document, and notifies listeners.
// Callers must hold the category lock.
func (s *Service) commit(ctx context.Context, settings *models.OverlaySettings) error {
	return s.commitWith(ctx, settings, s.repos.Overlays.Save)
}

func (s *Service) commitWith(ctx context.Context, settings *models.OverlaySettings, save func(context.Context, *models.OverlaySettings) error) error {
	settings.Revision++
	settings.UpdatedAt = time.Now().UTC()

	if err := save(ctx, settings); err != nil {
		return err
	}

	logger.Log.Debug().
		Str("category", settings.Category).
		Int64("revision", settings.Revision).
		Msg("Settings committed")

	if s.notifier != nil {
		s.notifier.NotifyRevision(settings.Category, settings.Revision)
	}
	return nil
}
