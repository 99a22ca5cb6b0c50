package score

import "github.com/bitmark-inc/helpledger/schema"

// ratingWeight maps a 1-5 rating onto the 0-100 trust scale
const ratingWeight = 100 / schema.MaxRating

// TrustScore recomputes a trust score from every rating an identity has
// received: floor(sum * 20 / count). With no ratings the initial score is
// returned. Ratings are expected in [1, 5], which keeps the result in
// [20, 100].
func TrustScore(ratings []int) int {
	if len(ratings) == 0 {
		return schema.InitialTrustScore
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	return sum * ratingWeight / len(ratings)
}

// ReviewRatings extracts the ratings of reviews
func ReviewRatings(reviews []schema.Review) []int {
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings
}
