package domain

// RiskTier labels how damaging a given answer is for the brand's application.
type RiskTier string

const (
	RiskNone   RiskTier = "none"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Option is one selectable answer for a question.
type Option struct {
	Value ComplianceValue `json:"value"`
	Label string          `json:"label"`
	Risk  RiskTier        `json:"risk"`
}

// Question belongs to exactly one pillar.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Pillar is one of the 19 minimum standards. The catalog is immutable
// reference data loaded once at process start.
type Pillar struct {
	ID         string     `json:"id"` // "01".."19"
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Details    []string   `json:"details"`
	Exemptions string     `json:"exemptions,omitempty"`
	Questions  []Question `json:"questions"`
}

// HasOption reports whether value is a valid choice for the question.
func (q Question) HasOption(value ComplianceValue) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Plan is one of the fixed-price service tiers. Static configuration,
// not user data.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // EUR, whole units
	Features []string `json:"features"`
}

// BlogPost is a static news entry.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
	Category string `json:"category"`
}
