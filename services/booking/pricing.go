package booking

import (
	"math"

	"wavehouse/models"
)

// MinimumStudioHours is the shortest studio access session.
const MinimumStudioHours = 4

var studioPresets = []models.RatePreset{
	{Hours: 4, Label: "4 Hours", Price: 100},
	{Hours: 6, Label: "6 Hours", Price: 130},
	{Hours: 8, Label: "8 Hours", Price: 160},
	{Hours: 12, Label: "12 Hours", Price: 230},
	{Hours: 24, Label: "Full Day (24hrs)", Price: 400},
}

// studioServices is the bookable catalog, in display order.
var studioServices = []models.StudioService{
	{
		ID:           models.ServiceStudioAccess,
		Name:         "Studio Access (No Engineer)",
		Summary:      "Book the studio and bring your own team",
		Description:  "Book the room by the block and bring your own engineer. Sessions start at **4 hours**.",
		Icon:         "music",
		MinimumHours: MinimumStudioHours,
		Presets:      studioPresets,
		Action:       "book",
	},
	{
		ID:          models.ServiceEngineerRequest,
		Name:        "Studio Session (With Engineer)",
		Summary:     "Book a session with one of our vetted engineers",
		Description: "Rates vary by engineer. Contact us to be matched based on your needs.",
		Icon:        "headphones",
		Action:      "engineer-request",
	},
	{
		ID:          models.ServiceMixingRequest,
		Name:        "Mixing Services",
		Summary:     "Send us your stems for professional mixing",
		Description: "Send us your session or stems for a professional mix. *Remote and in-studio options available.*",
		Icon:        "volume",
		Action:      "mixing-request",
	},
}

// Services returns a copy of the service catalog.
func Services() []models.StudioService {
	out := make([]models.StudioService, len(studioServices))
	copy(out, studioServices)
	return out
}

// ServiceByID finds a catalog entry.
func ServiceByID(id string) (models.StudioService, bool) {
	for _, s := range studioServices {
		if s.ID == id {
			return s, true
		}
	}
	return models.StudioService{}, false
}

// PriceFor returns the preset price of a studio session, 0 when hours match no preset.
func PriceFor(hours int) float64 {
	for _, p := range studioPresets {
		if p.Hours == hours {
			return p.Price
		}
	}
	return 0
}

// DepositFor returns the deposit owed for a price, rounded to cents.
func DepositFor(price, rate float64) float64 {
	if rate <= 0 || rate > 1 {
		rate = 1
	}
	return math.Round(price*rate*100) / 100
}
