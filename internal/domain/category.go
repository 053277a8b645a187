package domain

import "time"

type Category struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	NameAr       string    `json:"nameAr,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LocalizedName picks the Arabic name when requested and present.
func (c Category) LocalizedName(arabic bool) string {
	if arabic && c.NameAr != "" {
		return c.NameAr
	}
	return c.Name
}
