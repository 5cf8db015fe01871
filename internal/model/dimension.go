package model

// Category groups dimensions into the four assessment areas
type Category string

const (
	CategoryTechnical  Category = "technical"
	CategoryHuman      Category = "human"
	CategoryBusiness   Category = "business"
	CategoryAIAdoption Category = "ai_adoption"
)

// Categories lists all categories in assessment order
var Categories = []Category{CategoryTechnical, CategoryHuman, CategoryBusiness, CategoryAIAdoption}

// QuestionType defines how a question's answer is captured and scored
type QuestionType string

const (
	QuestionTypeScale          QuestionType = "scale"           // Numeric 0-10
	QuestionTypeYesNo          QuestionType = "yes_no"          // Boolean
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Single-select from Options
	QuestionTypeText           QuestionType = "text"            // Free text, never scored
)

// Question is one assessment question within a dimension
type Question struct {
	ID      string       `json:"id" bson:"id"` // Globally unique across the catalog
	Text    string       `json:"text" bson:"text"`
	Type    QuestionType `json:"type" bson:"type"`
	Options []string     `json:"options,omitempty" bson:"options,omitempty"` // Multiple choice only, ordered low to high maturity
	Weight  float64      `json:"weight" bson:"weight"`                       // Relative importance within the dimension
	// FollowUp is declared for forward compatibility; scoring and the flow
	// driver do not read it yet.
	FollowUp *FollowUpQuestion `json:"followUp,omitempty" bson:"followUp,omitempty"`
}

// FollowUpQuestion is a conditional follow-up gated on the parent answer
type FollowUpQuestion struct {
	Condition string   `json:"condition" bson:"condition"`
	Question  Question `json:"question" bson:"question"`
}

// MaturityIndicator lists observable traits at a given maturity level
type MaturityIndicator struct {
	Level      int      `json:"level" bson:"level"`
	Indicators []string `json:"indicators" bson:"indicators"`
}

// Dimension is one scored facet of organizational AI readiness
type Dimension struct {
	ID          string              `json:"id" bson:"id"`
	Name        string              `json:"name" bson:"name"`
	Category    Category            `json:"category" bson:"category"`
	Description string              `json:"description" bson:"description"`
	Weight      float64             `json:"weight" bson:"weight"` // Relative importance in category/overall scores
	Questions   []Question          `json:"questions" bson:"questions"`
	Metrics     []string            `json:"metrics" bson:"metrics"`
	Indicators  []MaturityIndicator `json:"maturityIndicators" bson:"maturityIndicators"`
}
