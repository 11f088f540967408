package models

// OfferingView is the presentational record for one offering. Its field set
// is the contract consumed by schedule renderers.
type OfferingView struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Class      string `json:"class"`
	Room       string `json:"room"`
	Registered int    `json:"registered"`
	Available  int    `json:"available"`
	Instructor string `json:"instructor"`
}

type PayrollEntry struct {
	InstructorID int64   `json:"instructor_id"`
	Name         string  `json:"name"`
	Hours        int     `json:"hours"`
	Wages        float64 `json:"wages"`
}
