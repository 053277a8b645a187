package checkout

import "autoparts-storefront/internal/domain"

// Selection tracks which saved address, if any, fills the checkout form.
type Selection struct {
	addresses []domain.SavedAddress
	selected  string
	Form      Form
}

// NewSelection preselects the default address, or the first one.
func NewSelection(addresses []domain.SavedAddress) *Selection {
	s := &Selection{addresses: addresses}
	for _, a := range addresses {
		if a.IsDefault {
			s.Select(a.ID)
			return s
		}
	}
	if len(addresses) > 0 {
		s.Select(addresses[0].ID)
	}
	return s
}

// Select fills the form from a saved address. Unknown ids are ignored.
func (s *Selection) Select(id string) bool {
	for _, a := range s.addresses {
		if a.ID != id {
			continue
		}
		s.selected = id
		s.Form = Form{
			FullName: a.Name,
			Phone:    a.Phone,
			City:     a.City,
			Area:     a.AddressLine2,
			Address:  a.AddressLine1,
			Notes:    s.Form.Notes,
		}
		return true
	}
	return false
}

// SelectNew switches to a blank form for a new address.
func (s *Selection) SelectNew() {
	s.selected = ""
	s.Form = Form{}
}

// Selected is the chosen saved address id; empty means a new address.
func (s *Selection) Selected() string { return s.selected }

func (s *Selection) IsNew() bool { return s.selected == "" }

func (s *Selection) Addresses() []domain.SavedAddress { return s.addresses }
