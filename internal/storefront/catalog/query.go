package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
)

// Query is the catalog URL state. Values are forwarded to the backend as is.
type Query struct {
	ModelID    string `json:"modelId,omitempty"`
	Year       int    `json:"year,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Q          string `json:"q,omitempty"`
	Sort       string `json:"sort,omitempty"`
	Brand      string `json:"brand,omitempty"`
}

// ParseQuery reads modelId, year, categoryId, q, sort and brand. A malformed year is dropped.
func ParseQuery(v url.Values) Query {
	q := Query{
		ModelID:    strings.TrimSpace(v.Get("modelId")),
		CategoryID: strings.TrimSpace(v.Get("categoryId")),
		Q:          v.Get("q"),
		Sort:       strings.TrimSpace(v.Get("sort")),
		Brand:      strings.TrimSpace(v.Get("brand")),
	}
	if y, err := strconv.Atoi(strings.TrimSpace(v.Get("year"))); err == nil && y > 0 {
		q.Year = y
	}
	return q
}

// Values is the inverse of ParseQuery, omitting empty fields.
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("modelId", q.ModelID)
	if q.Year > 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	set("categoryId", q.CategoryID)
	set("q", q.Q)
	set("sort", q.Sort)
	set("brand", q.Brand)
	return v
}

// SelectionURL is where the car selector sends the shopper.
func SelectionURL(brand, modelID string, year int) string {
	return "/catalog?" + Query{ModelID: modelID, Year: year, Brand: brand}.Values().Encode()
}

// Heading names the listing: the brand, else the selected category, else all parts.
func Heading(l lang.Lang, q Query, categories []domain.Category) string {
	if q.Brand != "" {
		if l == lang.English {
			return q.Brand + " parts"
		}
		return "قطع " + q.Brand
	}
	if q.CategoryID != "" {
		for _, c := range categories {
			if c.ID == q.CategoryID {
				return c.LocalizedName(l == lang.Arabic)
			}
		}
		return i18n.T(l, "nav.catalog")
	}
	return i18n.T(l, "catalog.allParts")
}
