package nps

import (
	"context"
	"fmt"

	"github.com/NextMind-AI/nps-dashboard-go/crm"

	"github.com/rs/zerolog/log"
)

const (
	minScore = 1
	maxScore = 5
)

// ScoredContact is an upstream contact tagged once with its resolved
// score. The upstream fields are never mutated.
type ScoredContact struct {
	crm.Contact
	NPSValue float64
}

// Aggregate fetches every contact in score buckets 1 through 5 that
// passes the date window, in bucket order and upstream page/item order
// within each bucket. Buckets run strictly sequentially so at most one
// upstream request is in flight per inbound request. Any bucket failure
// aborts the whole aggregation; there is no partial result.
func (s *Service) Aggregate(ctx context.Context, window DateRange) ([]ScoredContact, error) {
	var contacts []ScoredContact

	for score := minScore; score <= maxScore; score++ {
		bucket, err := s.collectBucket(ctx, score, window)
		if err != nil {
			return nil, err
		}

		for _, contact := range bucket {
			contacts = append(contacts, ScoredContact{
				Contact:  contact,
				NPSValue: EffectiveScore(contact, score),
			})
		}
	}

	return contacts, nil
}

// collectBucket walks every page of one score bucket, keeping the items
// that fall inside the window. Items outside the window are dropped
// silently. A failed page fetch drops the whole bucket.
func (s *Service) collectBucket(ctx context.Context, score int, window DateRange) ([]crm.Contact, error) {
	var contacts []crm.Contact

	page := 1
	for {
		log.Info().
			Int("score", score).
			Int("page", page).
			Msg("Fetching contacts page")

		resp, err := s.searcher.SearchContactsPage(ctx, score, page)
		if err != nil {
			return nil, fmt.Errorf("nps bucket %d page %d: %w", score, page, err)
		}

		for _, contact := range resp.Items {
			if window.Contains(contact.UpdatedAt) {
				contacts = append(contacts, contact)
			}
		}

		log.Info().
			Int("score", score).
			Int("page", page).
			Int("items", len(resp.Items)).
			Int("kept", len(contacts)).
			Int("total_items", resp.TotalItems).
			Int("total_pages", resp.TotalPages).
			Bool("has_more_pages", resp.HasMorePages).
			Msg("Fetched contacts page")

		if !resp.HasMorePages {
			break
		}
		page++
	}

	return contacts, nil
}
