package http

import "marketing-insights-assistant/internal/model"

// askRequest is the POST /query body. user_id and organization_id scope the
// conversation and every data lookup.
type askRequest struct {
	Query          string         `json:"query" binding:"required"`
	UserID         string         `json:"user_id" binding:"required"`
	OrganizationID string         `json:"organization_id" binding:"required"`
	Page           string         `json:"page"`
	Filters        map[string]any `json:"filters"`
}

func (r askRequest) sessionContext() model.SessionContext {
	return model.SessionContext{
		UserID:          r.UserID,
		OrganizationID:  r.OrganizationID,
		CurrentPageHint: r.Page,
		ActiveFilters:   r.Filters,
	}
}

// capabilityItem is one handler's descriptor in the capabilities listing.
type capabilityItem struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Topics      []string `json:"topics,omitempty"`
}
