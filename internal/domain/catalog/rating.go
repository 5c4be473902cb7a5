package catalog

// RatingSummary is the aggregate rating of one recipe, plus the caller's own
// rating when a user was given and has rated it.
type RatingSummary struct {
	RatingSum   int64   `json:"rating_sum"`
	RatingCount int64   `json:"rating_count"`
	RatingAvg   float64 `json:"rating_avg"`
	MyRating    *int64  `json:"my_rating"`
}

// Average is sum/count, or exactly 0 when nothing is rated.
func Average(sum, count int64) float64 {
	if count <= 0 {
		return 0.0
	}
	return float64(sum) / float64(count)
}
