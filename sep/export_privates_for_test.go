package sep

// Test-only exports of internal helpers. Kept in one place so the
// white-box surface stays visible.

var (
	TopKIndicesForTest      = topKIndices
	DeriveThresholdsForTest = deriveThresholds
)
