package domain

import "time"

// Product is a catalogue part. BasePriceCents is the canonical USD price; zero means unpriced.
type Product struct {
	ID             string         `json:"id"`
	OEM            string         `json:"oem"`
	Name           string         `json:"name"`
	NameAr         string         `json:"nameAr,omitempty"`
	CategoryID     string         `json:"categoryId,omitempty"`
	BasePriceCents int64          `json:"basePriceCents"`
	Images         []string       `json:"images,omitempty"`
	Stock          int            `json:"stock"`
	Specifications Specifications `json:"specifications"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Specifications is the free-form bag attached to a part.
type Specifications struct {
	OEMNumber       string   `json:"oemNumber,omitempty"`
	Condition       string   `json:"condition,omitempty"`
	Origin          string   `json:"origin,omitempty"`
	LeadTimeDays    int      `json:"leadTimeDays,omitempty"`
	DiagramURL      string   `json:"diagramUrl,omitempty"`
	ThumbnailURL    string   `json:"thumbnailUrl,omitempty"`
	AlternativeOEMs []string `json:"alternativeOems,omitempty"`
}

// LocalizedName picks the Arabic name when requested and present.
func (p Product) LocalizedName(arabic bool) string {
	if arabic && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// MainImage returns the diagram, then the thumbnail, then the first image.
func (p Product) MainImage() string {
	switch {
	case p.Specifications.DiagramURL != "":
		return p.Specifications.DiagramURL
	case p.Specifications.ThumbnailURL != "":
		return p.Specifications.ThumbnailURL
	case len(p.Images) > 0:
		return p.Images[0]
	}
	return ""
}

// Sort orders accepted by product listings.
const (
	SortNameAsc   = "name_asc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// ValidSort reports whether s is a known sort order.
func ValidSort(s string) bool {
	switch s {
	case SortNameAsc, SortPriceAsc, SortPriceDesc, SortNewest:
		return true
	}
	return false
}
