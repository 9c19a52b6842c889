package domain

import "time"

// SiteContent is one editable section of the public site, keyed by section
// name with a free-form JSON payload.
type SiteContent struct {
	ID        string                 `json:"id"`
	Section   string                 `json:"section"`
	Content   map[string]interface{} `json:"content"`
	UpdatedBy string                 `json:"updatedBy,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// SiteImage is a metadata record for an already-hosted image. The service
// stores URLs only; upload and hosting happen elsewhere.
type SiteImage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	AltText    string    `json:"altText,omitempty"`
	Section    string    `json:"section,omitempty"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
