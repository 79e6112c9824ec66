package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/timmy/giftrend/internal/domain"
	"github.com/timmy/giftrend/internal/logger"
)

// TrendingRepository is the seam between the state layer and the
// network layer. The concrete implementation lives in
// internal/repository; tests substitute a fake.
type TrendingRepository interface {
	GetTrending(ctx context.Context, apiKey string) ([]domain.MediaItem, error)
}

// FeedConfig holds configuration for the feed service.
type FeedConfig struct {
	// APIKey is the provider credential used for every refresh.
	APIKey string
	// RefreshInterval enables periodic refresh when positive. Zero
	// disables the ticker; refreshes then happen only on demand.
	RefreshInterval time.Duration
}

// FeedService owns the current trending feed as observable state.
//
// The feed has two logical states: empty (no successful fetch yet) and
// loaded. Every successful refresh publishes a full replacement list;
// a failed refresh is logged and absorbed, leaving the previous list
// untouched. Nothing above this service ever sees a fetch error.
//
// Concurrent refreshes are not serialized: the publish step is
// last-completion-wins, with each attempt's sequence number recorded
// so out-of-order completions are visible in the logs.
type FeedService struct {
	repo   TrendingRepository
	apiKey string
	logger *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	seq    atomic.Uint64

	mu      sync.Mutex
	closed  bool
	current []domain.MediaItem
	loaded  bool
	lastSeq uint64

	subs    map[int]chan []domain.MediaItem
	nextSub int
}

// NewFeedService creates a new feed service. The service starts empty;
// call Refresh (or configure RefreshInterval) to populate it.
// Parameters:
//   - repo: repository used for fetches.
//   - cfg: feed configuration.
//   - log: logger instance; nil uses the default logger.
// Returns:
//   - *FeedService: initialized feed service.
func NewFeedService(repo TrendingRepository, cfg *FeedConfig, log *logger.Logger) *FeedService {
	if log == nil {
		log = logger.GetDefault()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &FeedService{
		repo:   repo,
		apiKey: cfg.APIKey,
		logger: log.WithField(logger.FieldComponent, "feed"),
		ctx:    ctx,
		cancel: cancel,
		subs:   make(map[int]chan []domain.MediaItem),
	}

	if cfg.RefreshInterval > 0 {
		s.wg.Add(1)
		go s.refreshLoop(cfg.RefreshInterval)
	}

	return s
}

// Current returns a snapshot of the last published feed. It is nil
// until the first successful refresh completes.
func (s *FeedService) Current() []domain.MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	snapshot := make([]domain.MediaItem, len(s.current))
	copy(snapshot, s.current)
	return snapshot
}

// Loaded reports whether at least one refresh has succeeded.
func (s *FeedService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Subscribe registers an observer of feed replacements. Each publish
// delivers the full replacement list. A subscriber that is not keeping
// up is skipped for that publish rather than blocking it. The returned
// func unregisters the subscriber and closes its channel.
func (s *FeedService) Subscribe() (<-chan []domain.MediaItem, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan []domain.MediaItem, 1)
	if !s.closed {
		s.subs[id] = ch
	} else {
		close(ch)
	}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Refresh triggers one asynchronous fetch-and-publish attempt. The
// returned channel closes when the attempt has finished, whether it
// published or not. On a closed service the attempt is a no-op.
func (s *FeedService) Refresh() <-chan struct{} {
	done := make(chan struct{})
	seq := s.seq.Add(1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(done)
		s.refresh(seq)
	}()
	return done
}

// Close tears the service down: cancels in-flight fetches, waits for
// them to finish, and closes all subscriber channels. No publish
// happens once Close has been entered.
func (s *FeedService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *FeedService) refreshLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.refresh(s.seq.Add(1))
		}
	}
}

// refresh is one fetch-and-publish attempt. This is the single
// absorption boundary for fetch failures: every error kind is logged
// here and goes no further.
func (s *FeedService) refresh(seq uint64) {
	start := time.Now()

	items, err := s.repo.GetTrending(s.ctx, s.apiKey)
	if err != nil {
		s.logger.WithError(err).WithFields(logger.Fields{
			logger.FieldFetchSeq:   seq,
			logger.FieldDurationMs: time.Since(start).Milliseconds(),
		}).Warn("trending refresh failed, keeping previous feed")
		return
	}

	if s.publish(seq, items) {
		s.logger.WithFields(logger.Fields{
			logger.FieldFetchSeq:   seq,
			logger.FieldCount:      len(items),
			logger.FieldDurationMs: time.Since(start).Milliseconds(),
		}).Info("trending feed replaced")
	}
}

// publish replaces the current feed and notifies subscribers. The
// replacement is unconditional for live services (last-completion-wins,
// seq recorded so a stale overwrite shows up in the logs); a service
// that has entered Close never publishes.
func (s *FeedService) publish(seq uint64, items []domain.MediaItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if seq < s.lastSeq {
		s.logger.WithFields(logger.Fields{
			logger.FieldFetchSeq: seq,
		}).Debug("late refresh overwriting a newer one")
	}

	s.current = items
	s.loaded = true
	s.lastSeq = seq

	for _, ch := range s.subs {
		snapshot := make([]domain.MediaItem, len(items))
		copy(snapshot, items)
		select {
		case ch <- snapshot:
		default:
			// subscriber not keeping up; it misses this replacement
		}
	}
	return true
}
