package entity

type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ServiceCatalog is the marketing site's offering list. Static content, the
// site has no admin surface for editing it.
func ServiceCatalog() []Service {
	return []Service{
		{
			ID:          1,
			Title:       "Residential Electrical Services",
			Description: "Complete electrical solutions for your home including wiring, outlets, lighting, and electrical panel upgrades.",
			Icon:        "🏠",
		},
		{
			ID:          2,
			Title:       "Commercial Electrical Services",
			Description: "Professional electrical services for businesses, offices, and commercial properties.",
			Icon:        "🏢",
		},
		{
			ID:          3,
			Title:       "Emergency Electrical Repairs",
			Description: "24/7 emergency electrical services for urgent repairs and power restoration.",
			Icon:        "⚡",
		},
		{
			ID:          4,
			Title:       "Electrical Inspections",
			Description: "Comprehensive electrical safety inspections and code compliance assessments.",
			Icon:        "🔍",
		},
		{
			ID:          5,
			Title:       "Smart Home Installation",
			Description: "Modern smart home electrical systems including automation and energy management.",
			Icon:        "🏡",
		},
		{
			ID:          6,
			Title:       "Generator Installation",
			Description: "Backup power solutions including generator installation and maintenance.",
			Icon:        "🔋",
		},
	}
}
