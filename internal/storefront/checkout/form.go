// Package checkout validates the delivery form and turns a cart into an order.
package checkout

import (
	"regexp"
	"slices"
	"strings"

	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
)

// PhonePattern accepts Egyptian mobile numbers on 010, 011, 012 and 015.
var PhonePattern = regexp.MustCompile(`^01[0125]\d{8}$`)

// Governorates are the delivery destinations offered in the city picker.
var Governorates = []string{
	"القاهرة", "الجيزة", "الاسكندرية", "الدقهلية", "البحر الاحمر", "البحيرة",
	"الفيوم", "الغربية", "الاسماعيلية", "المنوفية", "المنيا", "القليوبية",
	"الوادي الجديد", "السويس", "اسوان", "اسيوط", "بني سويف", "بورسعيد",
	"دمياط", "الشرقية", "جنوب سيناء", "كفر الشيخ", "مطروح", "الاقصر",
	"قنا", "شمال سيناء",
}

// Form is the delivery details entered at checkout.
type Form struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `json:"address"`
	Notes    string `json:"notes,omitempty"`
}

// Validate returns nil when the form can be submitted.
func Validate(f Form, l lang.Lang) *storefront.FieldErrors {
	errs := &storefront.FieldErrors{}
	if strings.TrimSpace(f.FullName) == "" {
		errs.Add("fullName", i18n.T(l, "errors.nameRequired"))
	}
	if !PhonePattern.MatchString(f.Phone) {
		errs.Add("phone", i18n.T(l, "errors.phoneInvalid"))
	}
	if !slices.Contains(Governorates, f.City) {
		errs.Add("city", i18n.T(l, "errors.cityRequired"))
	}
	if strings.TrimSpace(f.Area) == "" {
		errs.Add("area", i18n.T(l, "errors.areaRequired"))
	}
	if strings.TrimSpace(f.Address) == "" {
		errs.Add("address", i18n.T(l, "errors.addressRequired"))
	}
	return errs.OrNil()
}

// ShippingAddress is the order payload for f. Blank notes are dropped.
func (f Form) ShippingAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName: f.FullName,
		Phone:    f.Phone,
		City:     f.City,
		Area:     f.Area,
		Address:  f.Address,
		Notes:    strings.TrimSpace(f.Notes),
	}
}
