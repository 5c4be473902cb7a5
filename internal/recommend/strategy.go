package recommend

import "context"

// ScoringStrategy produces the full ranked list for one mode. Paging happens
// after ranking, in the caller.
type ScoringStrategy interface {
	Mode() string
	Rank(ctx context.Context, r Reader, p Profile) ([]Ranked, error)
}

var (
	_ ScoringStrategy = ContentScorer{}
	_ ScoringStrategy = PopularityScorer{}
)
