package application

// BuiltinOfferingCatalog is the fixed catalog of bookable services. The
// list ships with the application and is not persisted or editable.
type BuiltinOfferingCatalog struct {
	offerings []ServiceOffering
}

// NewBuiltinOfferingCatalog returns the default service catalog.
func NewBuiltinOfferingCatalog() *BuiltinOfferingCatalog {
	return &BuiltinOfferingCatalog{offerings: []ServiceOffering{
		{ID: "svc-counseling-1", Title: "Individual Counseling", Provider: "Dr. Maya Chen", Category: "Counseling"},
		{ID: "svc-counseling-2", Title: "Stress Management Session", Provider: "Jordan Alvarez, LCSW", Category: "Counseling"},
		{ID: "svc-fitness-1", Title: "Personal Training Intro", Provider: "Campus Rec Center", Category: "Fitness"},
		{ID: "svc-fitness-2", Title: "Mobility Assessment", Provider: "Campus Rec Center", Category: "Fitness"},
		{ID: "svc-nutrition-1", Title: "Nutrition Consultation", Provider: "Priya Raman, RD", Category: "Nutrition"},
		{ID: "svc-nutrition-2", Title: "Meal Planning Workshop", Provider: "Priya Raman, RD", Category: "Nutrition"},
	}}
}

// Offerings returns the catalog in its fixed order.
func (c *BuiltinOfferingCatalog) Offerings() []ServiceOffering {
	if c == nil {
		return nil
	}
	out := make([]ServiceOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// Find looks an offering up by id.
func (c *BuiltinOfferingCatalog) Find(id string) (ServiceOffering, bool) {
	if c == nil {
		return ServiceOffering{}, false
	}
	for _, offering := range c.offerings {
		if offering.ID == id {
			return offering, true
		}
	}
	return ServiceOffering{}, false
}
