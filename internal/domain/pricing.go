package domain

import "time"

// ExchangeRate converts a base currency into a display currency.
type ExchangeRate struct {
	Base      string    `json:"base"`
	Quote     string    `json:"quote"`
	Rate      float64   `json:"rate"`
	Markup    float64   `json:"markup"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Effective is the multiplier applied to base prices.
func (r ExchangeRate) Effective() float64 {
	if r.Markup <= 0 {
		return r.Rate
	}
	return r.Rate * r.Markup
}
