package assistant

import "strings"

// IntentGeneral is the label used when no topic vocabulary matches.
const IntentGeneral = "general"

// intentVocabulary maps each handler topic to its high-signal terms.
// Order matters: earlier entries win when a query touches two topics, which
// mirrors handler registration order.
var intentVocabulary = []struct {
	label    HandlerID
	keywords []string
}{
	{HandlerCampaign, []string{"campaign", "spend", "budget", "impression", "click", "ctr", "roas", "conversion", "performance"}},
	{HandlerAudience, []string{"audience", "segment", "demographic", "persona", "age group", "viewers", "households"}},
	{HandlerGeo, []string{"region", "geographic", "map", "state", "city", "dma", "market area", "location"}},
	{HandlerSchedule, []string{"schedule", "airing", "air time", "spot", "tv", "broadcast", "calendar", "upcoming"}},
}

// ExtractIntent derives a coarse topic label from a query. It is the single
// intent function shared by routing and conversational memory so the two
// never disagree about which topic is active. Deterministic: first matching
// vocabulary wins.
func ExtractIntent(query string) string {
	q := strings.ToLower(query)
	for _, entry := range intentVocabulary {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return string(entry.label)
			}
		}
	}
	return IntentGeneral
}

// directRequests are short phrasings that are complete asks in their own
// right. Routing force-dispatches them ahead of generic scoring, and
// handlers answer them without asking for more detail.
var directRequests = []struct {
	phrase string
	target HandlerID
}{
	{"show my campaigns", HandlerCampaign},
	{"campaign performance", HandlerCampaign},
	{"how are my campaigns doing", HandlerCampaign},
	{"show my audiences", HandlerAudience},
	{"audience breakdown", HandlerAudience},
	{"show the map", HandlerGeo},
	{"regional performance", HandlerGeo},
	{"what's airing", HandlerSchedule},
	{"upcoming spots", HandlerSchedule},
}

// DirectRequest reports whether the query contains a complete-ask phrase
// and which handler owns it. First matching phrase wins.
func DirectRequest(query string) (HandlerID, bool) {
	q := strings.ToLower(query)
	for _, entry := range directRequests {
		if strings.Contains(q, entry.phrase) {
			return entry.target, true
		}
	}
	return "", false
}

// Keywords returns the topic vocabulary for a handler. Routing scores,
// handler CanHandle checks and intent extraction all share this one table.
func Keywords(id HandlerID) []string {
	for _, entry := range intentVocabulary {
		if entry.label == id {
			return entry.keywords
		}
	}
	return nil
}
