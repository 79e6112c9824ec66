package repository

import (
	"context"

	"github.com/timmy/giftrend/internal/domain"
	"github.com/timmy/giftrend/internal/giphy"
)

// TrendingClient is the outbound seam to the media provider. The
// concrete implementation lives in internal/giphy; tests substitute a
// fake.
type TrendingClient interface {
	// FetchTrending fetches the trending envelope from the provider.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	//   - apiKey: provider credential, passed through unvalidated.
	// Returns:
	//   - *giphy.TrendingResponse: decoded envelope.
	//   - error: non-nil if the fetch or decode fails.
	FetchTrending(ctx context.Context, apiKey string) (*giphy.TrendingResponse, error)
}

// FeedRepository exposes the trending feed as a plain item list. It is
// a pass-through over the client: no caching, no filtering, no
// transformation.
type FeedRepository struct {
	client TrendingClient
}

// NewFeedRepository creates a new FeedRepository.
// Parameters:
//   - client: provider client used for fetches.
// Returns:
//   - *FeedRepository: repository instance bound to client.
func NewFeedRepository(client TrendingClient) *FeedRepository {
	return &FeedRepository{client: client}
}

// GetTrending fetches the trending feed and unwraps the envelope.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - apiKey: provider credential.
// Returns:
//   - []domain.MediaItem: items in provider order.
//   - error: non-nil if the underlying fetch fails; passed through untouched.
func (r *FeedRepository) GetTrending(ctx context.Context, apiKey string) ([]domain.MediaItem, error) {
	resp, err := r.client.FetchTrending(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
