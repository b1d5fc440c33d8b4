package models

// RatePreset is a bookable block of hours at a fixed price.
type RatePreset struct {
	Hours int     `json:"hours"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// StudioService is an entry of the service catalog.
type StudioService struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Summary      string       `json:"summary"`
	Description  string       `json:"description"`
	Icon         string       `json:"icon"`
	MinimumHours int          `json:"minimum_hours,omitempty"`
	Presets      []RatePreset `json:"presets,omitempty"`
	Action       string       `json:"action"`
}

// PresetFor returns the preset matching hours.
func (s StudioService) PresetFor(hours int) (RatePreset, bool) {
	for _, p := range s.Presets {
		if p.Hours == hours {
			return p, true
		}
	}
	return RatePreset{}, false
}
