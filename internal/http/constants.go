package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageConnect     = "connect"
	PageClient      = "client"
	PageFreelancer  = "freelancer"
	PageMarketplace = "marketplace"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageConnect:     "connect-content",
	PageClient:      "client-content",
	PageFreelancer:  "freelancer-content",
	PageMarketplace: "marketplace-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to the marketplace for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "marketplace-content"
}
