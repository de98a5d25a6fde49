package config

// Redis cache keys.
const (
	// CacheKeyRiskSummary holds the serialized tier-count summary for the
	// whole student population. Invalidated on every record creation and
	// refreshed by the summary worker.
	CacheKeyRiskSummary = "dropsight:summary:risk"
)
