package domain

type VehicleBrand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VehicleModel is a model generation with an inclusive production year range.
type VehicleModel struct {
	ID        string `json:"id"`
	BrandID   string `json:"brandId"`
	BrandName string `json:"brandName,omitempty"`
	Name      string `json:"name"`
	Chassis   string `json:"chassis,omitempty"`
	YearFrom  int    `json:"yearFrom"`
	YearTo    int    `json:"yearTo"`
}

// Years lists the production years newest first.
func (m VehicleModel) Years() []int {
	if m.YearFrom == 0 || m.YearTo < m.YearFrom {
		return nil
	}
	years := make([]int, 0, m.YearTo-m.YearFrom+1)
	for y := m.YearTo; y >= m.YearFrom; y-- {
		years = append(years, y)
	}
	return years
}

// Covers reports whether year falls inside the model's production range.
func (m VehicleModel) Covers(year int) bool {
	return year >= m.YearFrom && year <= m.YearTo
}

// CompatibleVehicle describes one vehicle a part fits.
type CompatibleVehicle struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Chassis  string `json:"chassis,omitempty"`
	YearFrom int    `json:"yearFrom"`
	YearTo   int    `json:"yearTo"`
}
