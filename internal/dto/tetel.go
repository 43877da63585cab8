package dto

// ── Tétel requests ──

// SubsectionInput is a subsection in a create/update payload.
type SubsectionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionInput is a section in a create/update payload. Order in the slice
// becomes the stored position.
type SectionInput struct {
	Content     string            `json:"content" binding:"required"`
	Subsections []SubsectionInput `json:"subsections"`
}

// CreateTetelRequest creates a tétel with its full content tree.
type CreateTetelRequest struct {
	Name      string         `json:"name"      binding:"required,min=1,max=255"`
	Sections  []SectionInput `json:"sections"  binding:"required,min=1,dive"`
	Osszegzes string         `json:"osszegzes"`
}

// UpdateTetelRequest replaces a tétel's content tree.
type UpdateTetelRequest struct {
	Name      string         `json:"name"      binding:"required,min=1,max=255"`
	Sections  []SectionInput `json:"sections"  binding:"required,min=1,dive"`
	Osszegzes string         `json:"osszegzes"`
}

// ── Tétel responses ──

// TetelSummary is one row of the catalog listing.
type TetelSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SectionCount int    `json:"section_count"`
}

// TetelRef identifies a tétel in the detail response.
type TetelRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubsectionResponse mirrors a stored subsection.
type SubsectionResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionResponse mirrors a stored section with its subsections in order.
type SectionResponse struct {
	ID          int64                `json:"id"`
	Content     string               `json:"content"`
	Subsections []SubsectionResponse `json:"subsections,omitempty"`
}

// OsszegzesResponse mirrors the optional summary.
type OsszegzesResponse struct {
	Content string `json:"content"`
}

// TetelDetailsResponse is the full detail payload. Sections come back in
// render order; the derived reading estimate is included so clients do not
// have to recompute it.
type TetelDetailsResponse struct {
	Tetel          TetelRef           `json:"tetel"`
	Sections       []SectionResponse  `json:"sections"`
	Osszegzes      *OsszegzesResponse `json:"osszegzes,omitempty"`
	ReadingMinutes int                `json:"reading_minutes"`
}
