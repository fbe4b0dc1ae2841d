package models

// PivotLanguage is the intermediate language all translation is routed through.
const PivotLanguage = "en"

// UserProfile holds the per-user state that survives across turns: the
// detected conversation language and the most recently identified painting.
type UserProfile struct {
	Language          string `json:"language"`
	PaintingID        int    `json:"painting_id,omitempty"`
	PaintingTitle     string `json:"painting_title,omitempty"`
	PaintingAuthor    string `json:"painting_author,omitempty"`
	PaintingYear      string `json:"painting_year,omitempty"`
	PaintingStyle     string `json:"painting_style,omitempty"`
	PaintingTechnique string `json:"painting_technique,omitempty"`
}

// NewUserProfile returns a profile with the defaults applied for a user we
// have never seen before.
func NewUserProfile() *UserProfile {
	return &UserProfile{Language: PivotLanguage}
}

// HasPainting reports whether an image identification has completed in this
// conversation. Attribute lookups are only valid when it returns true.
func (p *UserProfile) HasPainting() bool {
	return p.PaintingID != 0
}

// SetPainting overwrites the painting attributes from a catalog record.
func (p *UserProfile) SetPainting(r *CatalogRecord) {
	p.PaintingID = r.PaintID
	p.PaintingTitle = r.Title
	p.PaintingAuthor = r.Author
	p.PaintingYear = r.Year
	p.PaintingStyle = r.Style
	p.PaintingTechnique = r.Technique
}

// ConversationData is reserved per-conversation scratch state. Nothing
// populates it yet; it is persisted alongside UserProfile for symmetry.
type ConversationData struct{}

// CatalogRecord is the canonical painting record. The backing store keeps
// one row per (paintid, tag) pair, so the tag list is queried separately
// from the scalar attributes.
type CatalogRecord struct {
	PaintID   int    `json:"paintid"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      string `json:"year"`
	Style     string `json:"style"`
	Technique string `json:"technique"`
	URL       string `json:"url"`
}

// Tag is a single classification label with its confidence. Tags are
// ephemeral; they are never persisted.
type Tag struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// TagNames extracts just the label names from a tag set.
func TagNames(tags []Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
