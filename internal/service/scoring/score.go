// Package scoring derives event recommendations, feedback sentiment
// and registration trends from historical data. The arithmetic lives
// in pure functions; the Service methods only fetch their inputs.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/unihub/campus-events-backend/internal/config"
	"github.com/unihub/campus-events-backend/internal/domain"
)

// round1 rounds to one decimal place, halves away from zero
// (math.Round semantics). 4.75 becomes 4.8.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places, used for presentation of scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// categoryAffinity normalizes the user's history into per-category
// shares. An empty history yields an empty map, which downstream reads
// as all-zero affinity.
func categoryAffinity(history []domain.Event) map[domain.Category]float64 {
	aff := map[domain.Category]float64{}
	if len(history) == 0 {
		return aff
	}

	total := float64(len(history))
	for _, e := range history {
		aff[e.Category] += 1 / total
	}
	return aff
}

// societyAffinity is the same normalization keyed by society.
func societyAffinity(history []domain.Event) map[domain.Society]float64 {
	aff := map[domain.Society]float64{}
	if len(history) == 0 {
		return aff
	}

	total := float64(len(history))
	for _, e := range history {
		aff[e.Society] += 1 / total
	}
	return aff
}

// popularityBonus is granted only to events that are filling but not
// nearly full: fill ratio strictly between 0.3 and 0.8.
func popularityBonus(e domain.Event) bool {
	fill := e.FillRatio()
	return fill > 0.3 && fill < 0.8
}

// scoreEvent computes the weighted score for one candidate and the
// human-readable reason assembled from the contributing terms.
func scoreEvent(
	cfg config.RecommendConfig,
	e domain.Event,
	catAff map[domain.Category]float64,
	socAff map[domain.Society]float64,
) (float64, string) {
	var score float64
	var reasons []string

	if a := catAff[e.Category]; a > 0 {
		score += cfg.CategoryWeight * a
		reasons = append(reasons, "you often attend "+e.Category.String()+" events")
	}
	if a := socAff[e.Society]; a > 0 {
		score += cfg.SocietyWeight * a
		reasons = append(reasons, "you follow the "+e.Society.String()+" society")
	} else {
		score += cfg.NoveltyWeight
		reasons = append(reasons, "a society you haven't tried yet")
	}
	if popularityBonus(e) {
		score += cfg.PopularityWeight
		reasons = append(reasons, "filling up fast")
	}

	return score, strings.Join(reasons, "; ")
}

// trendDirection compares the mean of the last 3 points against the
// mean of the up-to-3 points before them. A relative change beyond
// +20%/-20% classifies as increasing/decreasing; anything else,
// including series too short to compare, is stable.
func trendDirection(series []int) domain.Trend {
	if len(series) < 3 {
		return domain.TrendStable
	}

	last := mean(series[len(series)-3:])

	prevStart := len(series) - 6
	if prevStart < 0 {
		prevStart = 0
	}
	prev := series[prevStart : len(series)-3]
	if len(prev) == 0 {
		return domain.TrendStable
	}

	prevMean := mean(prev)
	if prevMean == 0 {
		if last > 0 {
			return domain.TrendIncreasing
		}
		return domain.TrendStable
	}

	switch {
	case last > prevMean*1.2:
		return domain.TrendIncreasing
	case last < prevMean*0.8:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// denseSeries expands sparse per-day counts into one point per day
// from the first counted day through the day of now. Days without
// registrations contribute zero.
func denseSeries(counts []domain.DayCount, now time.Time) []int {
	if len(counts) == 0 {
		return nil
	}

	byDay := make(map[time.Time]int, len(counts))
	first := truncateDay(counts[0].Day)
	for _, dc := range counts {
		day := truncateDay(dc.Day)
		byDay[day] = dc.Count
		if day.Before(first) {
			first = day
		}
	}

	var series []int
	for day := first; !day.After(truncateDay(now)); day = day.AddDate(0, 0, 1) {
		series = append(series, byDay[day])
	}
	return series
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
