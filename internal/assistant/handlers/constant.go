package handlers

// Log prefixes
const (
	LogPrefixCampaign = "internal.assistant.handlers.Campaign"
	LogPrefixAudience = "internal.assistant.handlers.Audience"
	LogPrefixGeo      = "internal.assistant.handlers.Geo"
	LogPrefixSchedule = "internal.assistant.handlers.Schedule"
)

// Analytics store tables
const (
	TableCampaignMetrics     = "campaign_metrics"
	TableAudienceSegments    = "audience_segments"
	TableRegionalPerformance = "regional_performance"
)

// Lookup limits
const (
	MaxRowsInContext  = 10
	ScheduleDaysAhead = 7
)

// Handler confidence levels. Success confidence reflects whether the
// validation loop accepted the answer or was forced to stop.
const (
	ConfidenceAccepted = 0.85
	ConfidenceForced   = 0.6
	ConfidenceDegraded = 0.3
	ConfidenceClarify  = 0.4
)

// ClarifyTemplate is used when a handler decides the request is too thin to
// answer without more detail.
const ClarifyTemplate = "I can look into %s for you, but I need a little more to go on. Which campaign or time period do you mean?"

// Degraded answers per failure mode. Non-technical on purpose.
const (
	DegradedLookupAnswer = "I couldn't load %s data right now. The dashboard tables may still have what you need, or try asking again shortly."
	NoDataNote           = "No rows matched for this organization. That's a valid result: the account may simply have no data in this view yet."
)
