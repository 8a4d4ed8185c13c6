// Package species defines the core data model for HerpMatch.
// These types are the shared vocabulary across all modules.
package species

// Category is a species-type tag from the fixed closed set.
type Category string

const (
	CategoryLizard            Category = "lizard"
	CategoryGecko             Category = "gecko"
	CategoryLandTurtle        Category = "land-turtle"
	CategoryAquaticTurtle     Category = "aquatic-turtle"
	CategorySemiAquaticTurtle Category = "semi-aquatic-turtle"
	CategoryFrog              Category = "frog"
	CategorySalamander        Category = "salamander"
	CategoryChameleon         Category = "chameleon"
	CategorySnake             Category = "snake"
)

// Categories returns all allowed species categories in display order.
func Categories() []Category {
	return []Category{
		CategoryLizard,
		CategoryGecko,
		CategoryLandTurtle,
		CategoryAquaticTurtle,
		CategorySemiAquaticTurtle,
		CategoryFrog,
		CategorySalamander,
		CategoryChameleon,
		CategorySnake,
	}
}

// Valid reports whether c is one of the allowed categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ActivityPattern is when a species is primarily active. Empty means unknown.
type ActivityPattern string

const (
	ActivityNocturnal ActivityPattern = "nocturnal"
	ActivityDiurnal   ActivityPattern = "diurnal"
)

// ActivityPatterns returns the allowed non-empty activity patterns.
func ActivityPatterns() []ActivityPattern {
	return []ActivityPattern{ActivityNocturnal, ActivityDiurnal}
}

// Valid reports whether p is an allowed pattern. Empty is valid (absent).
func (p ActivityPattern) Valid() bool {
	return p == "" || p == ActivityNocturnal || p == ActivityDiurnal
}

// DietType is a species' feeding classification. Empty means unknown.
type DietType string

const (
	DietOmnivore  DietType = "omnivore"
	DietHerbivore DietType = "herbivore"
	DietCarnivore DietType = "carnivore"
)

// DietTypes returns the allowed non-empty diet types.
func DietTypes() []DietType {
	return []DietType{DietOmnivore, DietHerbivore, DietCarnivore}
}

// Valid reports whether d is an allowed diet type. Empty is valid (absent).
func (d DietType) Valid() bool {
	return d == "" || d == DietOmnivore || d == DietHerbivore || d == DietCarnivore
}

// Purpose is what a species is typically kept for. Empty means unknown.
type Purpose string

const (
	PurposeOrnamental Purpose = "ornamental"
	PurposePet        Purpose = "pet"
	PurposeBoth       Purpose = "both"
)

// Purposes returns the allowed non-empty keeping purposes.
func Purposes() []Purpose {
	return []Purpose{PurposeOrnamental, PurposePet, PurposeBoth}
}

// Valid reports whether p is an allowed purpose. Empty is valid (absent).
func (p Purpose) Valid() bool {
	return p == "" || p == PurposeOrnamental || p == PurposePet || p == PurposeBoth
}

// Species is one validated row of the dataset.
// Records are immutable once loaded; all grade fields are within their
// declared ranges by the time a Species leaves the dataset pipeline.
type Species struct {
	Name                string          `json:"name"`
	Category            Category        `json:"category"`
	Difficulty          int             `json:"difficulty"`           // 1-5, care difficulty
	InitialCost         int             `json:"initial_cost"`         // 1-5
	AdultSize           int             `json:"adult_size"`           // 1-3
	TemperatureHumidity int             `json:"temperature_humidity"` // 1-5, lower = easier
	ActivityPattern     ActivityPattern `json:"activity_pattern,omitempty"`
	DietType            DietType        `json:"diet_type,omitempty"`
	FeedingFrequency    int             `json:"feeding_frequency"` // 1-5
	Handling            int             `json:"handling"`          // 1-5, handling suitability
	EnclosureSize       int             `json:"enclosure_size"`    // 1-3
	AppearanceTags      []string        `json:"appearance_tags,omitempty"`
	Purpose             Purpose         `json:"purpose,omitempty"`
	PhotoURL            string          `json:"photo_url,omitempty"`
	PhotoPageURL        string          `json:"photo_page_url,omitempty"`
}

// HasTag reports whether the species carries the given normalized tag.
func (s *Species) HasTag(tag string) bool {
	for _, t := range s.AppearanceTags {
		if t == tag {
			return true
		}
	}
	return false
}
