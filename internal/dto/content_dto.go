package dto

// PillarSummaryResponse is the list form of a pillar.
type PillarSummaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	QuestionCount int    `json:"question_count"`
}

// PillarResponse is the detail form of a pillar.
type PillarResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Details    []string `json:"details"`
	Exemptions string   `json:"exemptions,omitempty"`
}

// PillarExplainerResponse is the generated explainer for a pillar.
type PillarExplainerResponse struct {
	PillarID string `json:"pillar_id"`
	Text     string `json:"text"`
}

// BlogPostResponse is a published editorial article.
type BlogPostResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
	Category string `json:"category"`
}
