package model

import "time"

// Timeframe tags a recommendation with when it should be acted on.
// Assigned by the agent that produced it, not inferred from prose.
type Timeframe string

const (
	TimeframeImmediate Timeframe = "immediate"
	TimeframeShortTerm Timeframe = "short_term"
	TimeframeLongTerm  Timeframe = "long_term"
)

// Severity tags a risk with its priority tier
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Recommendation is an agent-produced action item with its timeframe
type Recommendation struct {
	Text      string    `json:"text" bson:"text"`
	Timeframe Timeframe `json:"timeframe" bson:"timeframe"`
	Dimension string    `json:"dimension" bson:"dimension"`
}

// Risk is an agent-identified risk with its severity
type Risk struct {
	Text      string   `json:"text" bson:"text"`
	Severity  Severity `json:"severity" bson:"severity"`
	Dimension string   `json:"dimension" bson:"dimension"`
}

// AgentAnalysis is the output of one agent for one orchestration run
type AgentAnalysis struct {
	AgentID         string             `json:"agentId" bson:"agentId"`
	DimensionScores map[string]float64 `json:"dimensionScores" bson:"dimensionScores"` // dimension id -> [0,1]
	Insights        []string           `json:"insights" bson:"insights"`
	Recommendations []Recommendation   `json:"recommendations" bson:"recommendations"`
	Risks           []Risk             `json:"risks" bson:"risks"`
	Opportunities   []string           `json:"opportunities" bson:"opportunities"`
	Confidence      float64            `json:"confidence" bson:"confidence"` // [0,1] aggregation weight
}

// CategoryScores holds the weighted score for each of the four categories
type CategoryScores struct {
	Technical  float64 `json:"technical" bson:"technical"`
	Human      float64 `json:"human" bson:"human"`
	Business   float64 `json:"business" bson:"business"`
	AIAdoption float64 `json:"ai_adoption" bson:"ai_adoption"`
}

// RecommendationBuckets groups recommendations by timeframe
type RecommendationBuckets struct {
	Immediate []string `json:"immediate" bson:"immediate"`
	ShortTerm []string `json:"shortTerm" bson:"shortTerm"`
	LongTerm  []string `json:"longTerm" bson:"longTerm"`
}

// RiskBuckets groups risks by severity
type RiskBuckets struct {
	High   []string `json:"high" bson:"high"`
	Medium []string `json:"medium" bson:"medium"`
	Low    []string `json:"low" bson:"low"`
}

// RoadmapPriority ranks roadmap phases
type RoadmapPriority string

const (
	PriorityCritical RoadmapPriority = "critical"
	PriorityHigh     RoadmapPriority = "high"
	PriorityMedium   RoadmapPriority = "medium"
	PriorityLow      RoadmapPriority = "low"
)

// RoadmapItem is one phase of the transformation roadmap
type RoadmapItem struct {
	Phase        int             `json:"phase" bson:"phase"`
	Name         string          `json:"name" bson:"name"`
	Description  string          `json:"description" bson:"description"`
	Duration     string          `json:"duration" bson:"duration"`
	Dependencies []string        `json:"dependencies" bson:"dependencies"`
	Outcomes     []string        `json:"outcomes" bson:"outcomes"`
	Investment   string          `json:"investment" bson:"investment"`
	Priority     RoadmapPriority `json:"priority" bson:"priority"`
}

// ROIEstimate projects returns at the one, three and five year horizons
type ROIEstimate struct {
	Year1 int64 `json:"year1" bson:"year1"`
	Year3 int64 `json:"year3" bson:"year3"`
	Year5 int64 `json:"year5" bson:"year5"`
}

// AssessmentResult is the full maturity report for one organization
type AssessmentResult struct {
	ID              string                `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID  string                `json:"organizationId" bson:"organizationId"`
	Timestamp       time.Time             `json:"timestamp" bson:"timestamp"`
	MaturityLevel   int                   `json:"overallMaturityLevel" bson:"overallMaturityLevel"` // [0,9]
	MaturityDetails MaturityLevel         `json:"maturityDetails" bson:"maturityDetails"`
	CategoryScores  CategoryScores        `json:"categoryScores" bson:"categoryScores"`
	DimensionScores map[string]float64    `json:"dimensionScores" bson:"dimensionScores"`
	TopStrengths    []string              `json:"topStrengths" bson:"topStrengths"`
	CriticalGaps    []string              `json:"criticalGaps" bson:"criticalGaps"`
	Recommendations RecommendationBuckets `json:"recommendations" bson:"recommendations"`
	Roadmap         []RoadmapItem         `json:"roadmap" bson:"roadmap"`
	EstimatedROI    ROIEstimate           `json:"estimatedROI" bson:"estimatedROI"`
	RiskAnalysis    RiskBuckets           `json:"riskAnalysis" bson:"riskAnalysis"`
}
