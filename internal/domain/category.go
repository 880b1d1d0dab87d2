package domain

// Category is the blood pressure classification of a reading,
// following American Heart Association guidelines. The six cases are
// closed: a reading always classifies into exactly one of them.
type Category int

const (
	CategoryLow Category = iota + 1
	CategoryNormal
	CategoryElevated
	CategoryHigh1
	CategoryHigh2
	CategoryCrisis
)

// Classify maps a systolic/diastolic pair to its category.
//
// The cases MUST be evaluated from most severe to least severe; first
// match wins. Several thresholds overlap (e.g. diastolic 80 satisfies
// both High-1's 80-89 band and fails Elevated's <80 requirement), and
// the evaluation order is what resolves them: (120, 80) is High-1,
// not Elevated.
func Classify(systolic, diastolic int) Category {
	switch {
	case systolic > 180 || diastolic > 120:
		return CategoryCrisis
	case systolic >= 140 || diastolic >= 90:
		return CategoryHigh2
	case (systolic >= 130 && systolic <= 139) || (diastolic >= 80 && diastolic <= 89):
		return CategoryHigh1
	case systolic >= 120 && systolic <= 129 && diastolic < 80:
		return CategoryElevated
	case systolic < 90 || diastolic < 60:
		return CategoryLow
	default:
		return CategoryNormal
	}
}

// String returns the short name persisted in the CSV Category column.
func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "Low"
	case CategoryNormal:
		return "Normal"
	case CategoryElevated:
		return "Elevated"
	case CategoryHigh1:
		return "High-1"
	case CategoryHigh2:
		return "High-2"
	case CategoryCrisis:
		return "Crisis"
	}
	return "Unknown"
}

// DisplayName returns the full clinical name for reports.
func (c Category) DisplayName() string {
	switch c {
	case CategoryLow:
		return "Hypotension"
	case CategoryNormal:
		return "Normal"
	case CategoryElevated:
		return "Elevated"
	case CategoryHigh1:
		return "Hypertension Stage 1"
	case CategoryHigh2:
		return "Hypertension Stage 2"
	case CategoryCrisis:
		return "Hypertensive Crisis"
	}
	return "Unknown"
}

// Color returns the RGB chart color for this category's zone.
func (c Category) Color() (r, g, b int) {
	switch c {
	case CategoryLow:
		return 52, 152, 219 // blue
	case CategoryNormal:
		return 46, 204, 113 // green
	case CategoryElevated:
		return 243, 156, 18 // yellow/orange
	case CategoryHigh1:
		return 230, 126, 34 // orange
	case CategoryHigh2:
		return 231, 76, 60 // red
	case CategoryCrisis:
		return 192, 57, 43 // dark red
	}
	return 0, 0, 0
}

// ParseCategory converts a persisted short name back into a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Categories returns all categories in ascending severity order.
func Categories() []Category {
	return []Category{
		CategoryLow,
		CategoryNormal,
		CategoryElevated,
		CategoryHigh1,
		CategoryHigh2,
		CategoryCrisis,
	}
}
