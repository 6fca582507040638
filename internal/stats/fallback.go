package stats

// FallbackStatistics returns the canned statistics served when the remote
// source fails and nothing has been cached yet.
func FallbackStatistics() []Statistic {
	return []Statistic{
		{
			ID:          StringID("1"),
			Title:       "Total Movies",
			Value:       Number(150),
			Description: "Total movies in the catalog",
			Category:    "movies",
			Trend:       TrendUp,
			Percentage:  percent(12),
		},
		{
			ID:          StringID("2"),
			Title:       "Active Users",
			Value:       Number(1250),
			Description: "Active users this month",
			Category:    "users",
			Trend:       TrendUp,
			Percentage:  percent(8),
		},
		{
			ID:          StringID("3"),
			Title:       "Total Views",
			Value:       Number(45000),
			Description: "Total movie views",
			Category:    "engagement",
			Trend:       TrendStable,
			Percentage:  percent(0),
		},
	}
}

func percent(f float64) *float64 { return &f }
