package catalog

import (
	"bytes"
	"fmt"
	"html/template"

	"wavehouse/models"
	"wavehouse/services/booking"
	"wavehouse/services/storage"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer renders trusted page copy. Raw HTML in the source is dropped.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Item is a titled line with an icon.
type Item struct {
	Icon   string
	Title  string
	Detail string
}

type RuleGroup struct {
	Title string
	Rules []Item
}

type Contact struct {
	Location  string
	Phone     string
	Email     string
	Instagram string
	Twitter   string
}

// Service is a catalog entry with its description rendered.
type Service struct {
	models.StudioService
	DescriptionHTML template.HTML
}

// Page is everything the page shell renders.
type Page struct {
	About        template.HTML
	Highlights   []Item
	Services     []Service
	BookingSteps []string
	Gear         []Item
	Testimonial  template.HTML
	RuleGroups   []RuleGroup
	Overtime     template.HTML
	Contact      Contact
	Images       map[string]string
}

// Catalog serves the page content and the public service list.
type Catalog struct {
	page Page
}

// New renders the page content once. Images resolve through assets.
func New(assets storage.AssetResolver) (*Catalog, error) {
	about, err := RenderMarkdown(aboutMarkdown)
	if err != nil {
		return nil, err
	}
	quote, err := RenderMarkdown(testimonial)
	if err != nil {
		return nil, err
	}
	overtime, err := RenderMarkdown(overtimeMarkdown)
	if err != nil {
		return nil, err
	}

	var services []Service
	for _, s := range booking.Services() {
		desc, err := RenderMarkdown(s.Description)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", s.ID, err)
		}
		services = append(services, Service{StudioService: s, DescriptionHTML: desc})
	}

	imgs := make(map[string]string, len(images))
	for _, name := range images {
		imgs[name] = assets.ImageURL(name)
	}

	return &Catalog{page: Page{
		About:        about,
		Highlights:   highlights,
		Services:     services,
		BookingSteps: bookingSteps,
		Gear:         gear,
		Testimonial:  quote,
		RuleGroups:   ruleGroups,
		Overtime:     overtime,
		Contact:      contactInfo,
		Images:       imgs,
	}}, nil
}

// Page returns the rendered page content.
func (c *Catalog) Page() Page {
	return c.page
}

// Services returns the bookable services for the API.
func (c *Catalog) Services() []models.StudioService {
	return booking.Services()
}

// RenderMarkdown converts markdown to HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
