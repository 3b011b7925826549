package livesync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/models"
)

// DefaultPollInterval is how often a display surface polls for a newer
// revision when no push notification arrives first.
const DefaultPollInterval = 2500 * time.Millisecond

// Source fetches the latest committed document for a category. Poll is
// idempotent and side-effect-free.
type Source interface {
	Poll(ctx context.Context, category string) (int64, *models.OverlaySettings, error)
}

// HTTPSource polls the settings service over HTTP
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a poll source against the service at baseURL,
// e.g. "http://127.0.0.1:8080"
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// pollResponse mirrors the poll endpoint's JSON body
type pollResponse struct {
	Revision int64                   `json:"revision"`
	Settings *models.OverlaySettings `json:"settings"`
}

// Poll fetches the current revision and document for a category
func (s *HTTPSource) Poll(ctx context.Context, category string) (int64, *models.OverlaySettings, error) {
	url := fmt.Sprintf("%s/api/poll/%s", s.baseURL, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build poll request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("poll request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, nil, fmt.Errorf("poll returned status %d", resp.StatusCode)
	}

	var body pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, nil, fmt.Errorf("failed to decode poll response: %w", err)
	}
	return body.Revision, body.Settings, nil
}

// Poller drives one display surface's view of the store. It polls on a fixed
// interval, compares revisions, and invokes the update callback only when a
// newer revision appears. The first successful poll records a baseline
// without firing, because the initial render already applied the document.
type Poller struct {
	source   Source
	category string
	interval time.Duration
	onUpdate func(*models.OverlaySettings)

	// Optional push channel; an event here triggers an immediate poll.
	notify <-chan RevisionEvent

	lastRevision int64
	primed       bool
}

// NewPoller creates a poller for one category. onUpdate runs on the poller's
// goroutine whenever a newer revision is fetched.
func NewPoller(source Source, category string, interval time.Duration, onUpdate func(*models.OverlaySettings)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		source:   source,
		category: category,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// SetNotifyChannel attaches a push-notification channel (from a Hub
// subscription). Purely an optimization over the fixed interval.
func (p *Poller) SetNotifyChannel(ch <-chan RevisionEvent) {
	p.notify = ch
}

// Run polls until the context is cancelled. A failed poll is logged and
// skipped; the next scheduled attempt proceeds regardless. There is no
// backoff and no retry cap: polls are idempotent and cheap.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Establish the baseline immediately rather than waiting a full tick.
	p.pollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		case <-p.notifyOrNil():
			p.pollOnce(ctx)
		}
	}
}

// notifyOrNil returns the push channel, or a nil channel (which blocks
// forever) when none is attached.
func (p *Poller) notifyOrNil() <-chan RevisionEvent {
	return p.notify
}

// pollOnce performs one poll cycle
func (p *Poller) pollOnce(ctx context.Context) {
	revision, settings, err := p.source.Poll(ctx, p.category)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Log.Warn().
			Err(err).
			Str("category", p.category).
			Msg("Poll failed, will retry on next interval")
		return
	}

	if !p.primed {
		// First poll ever: record the baseline without firing, so the
		// initial render is not followed by a full animation replay.
		p.primed = true
		p.lastRevision = revision
		return
	}

	if revision == p.lastRevision {
		return
	}

	p.lastRevision = revision
	if p.onUpdate != nil {
		p.onUpdate(settings)
	}
}
