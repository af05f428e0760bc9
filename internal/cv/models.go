package cv

// ExtractedDocument is the analysis result produced by an OCR collaborator.
// Content holds the full text in reading order; Pages carry layout spans.
type ExtractedDocument struct {
	Content string `json:"content"`
	Pages   []Page `json:"pages"`
}

// Page is a single analysed page. Width and Height use the same unit as the
// span bounding boxes.
type Page struct {
	Spans  []Span  `json:"spans"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Span is a run of text on a page. BoundingBox.Y is measured from the
// bottom of the page, so larger values sit higher up.
type Span struct {
	Content     string      `json:"content"`
	BoundingBox BoundingBox `json:"boundingBox"`
	Appearance  Appearance  `json:"appearance"`
}

type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Appearance struct {
	FontSize float64 `json:"fontSize"`
}

// CVData is the structured record rendered into the branded documents.
type CVData struct {
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Summary        string              `json:"summary,omitempty"`
	WorkExperience []WorkExperience    `json:"workExperience"`
	Education      []Education         `json:"education"`
	Skills         map[string][]string `json:"skills"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type WorkExperience struct {
	Period      string   `json:"period"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description []string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Grade       string `json:"grade"`
}

// Fallback values substituted when a field cannot be resolved.
const (
	NameNotFound     = "Name Not Found"
	EmailNotFound    = "Email Not Found"
	PhoneNotFound    = "Phone Not Found"
	LocationNotFound = "Location Not Found"

	PeriodNotSpecified      = "Period not specified"
	RoleNotSpecified        = "Role not specified"
	CompanyNotSpecified     = "Company not specified"
	NoDescriptionProvided   = "No description provided"
	DegreeNotSpecified      = "Degree not specified"
	InstitutionNotSpecified = "Institution not specified"
)
