package analyticstore

// Record is one row returned by the analytics store. Column names map to
// arbitrary JSON values; the orchestrator treats rows as opaque.
type Record map[string]any

// FilterSpec is the query sent to the store. OrganizationID is mandatory:
// every lookup is scoped to the calling organization.
type FilterSpec struct {
	OrganizationID string         `json:"organization_id"`
	Conditions     map[string]any `json:"conditions,omitempty"`
	OrderBy        string         `json:"order_by,omitempty"`
	Limit          int            `json:"limit,omitempty"`
}

// String returns a canonical string for a record column, or "" when absent.
func (r Record) String(column string) string {
	if v, ok := r[column]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Float returns a numeric record column, or 0 when absent or non-numeric.
func (r Record) Float(column string) float64 {
	if v, ok := r[column]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 0
}
