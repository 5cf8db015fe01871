package model

import "time"

// FlowState is one stage of the conversational assessment
type FlowState string

const (
	StateInitial            FlowState = "initial"
	StateGreeting           FlowState = "greeting"
	StateCollectingBasic    FlowState = "collecting_basic_info"
	StateCollectingCompany  FlowState = "collecting_company_info"
	StateCollectingGoals    FlowState = "collecting_challenges"
	StateAssessment         FlowState = "assessment"
	StatePerformingAnalysis FlowState = "performing_analysis"
	StateCompleted          FlowState = "completed"
)

// Channel identifies which front-end drives a session
type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelVoice Channel = "voice"
)

// Session holds the state of one conversational assessment walk.
// A session is advanced synchronously per inbound event; there is no
// concurrent mutation within a session.
type Session struct {
	ID             string              `json:"id" bson:"_id,omitempty"`
	OrganizationID string              `json:"organizationId" bson:"organizationId"`
	Channel        Channel             `json:"channel" bson:"channel"`
	State          FlowState           `json:"state" bson:"state"`
	ContactName    string              `json:"contactName" bson:"contactName"`
	Context        OrganizationContext `json:"context" bson:"context"`
	Responses      AnswerSet           `json:"responses" bson:"responses"`

	// Cursor into the catalog walk
	DimensionIndex int `json:"dimensionIndex" bson:"dimensionIndex"`
	QuestionIndex  int `json:"questionIndex" bson:"questionIndex"`
	CategoryIndex  int `json:"categoryIndex" bson:"categoryIndex"`

	Started   bool      `json:"started" bson:"started"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Progress is the state tuple consumed by progress displays
type Progress struct {
	CurrentCategory     int    `json:"currentCategory"`
	TotalCategories     int    `json:"totalCategories"`
	CurrentDimension    string `json:"currentDimension,omitempty"`
	CompletedDimensions int    `json:"completedDimensions"`
	TotalDimensions     int    `json:"totalDimensions"`
	AnsweredQuestions   int    `json:"answeredQuestions"`
	TotalQuestions      int    `json:"totalQuestions"`
}

// Reply is what the flow driver returns for each inbound event
type Reply struct {
	Message     string            `json:"message"`
	State       FlowState         `json:"state"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Question    *Question         `json:"question,omitempty"` // Set while walking the catalog
	Dimension   *Dimension        `json:"dimension,omitempty"`
	Progress    *Progress         `json:"progress,omitempty"`
	Result      *AssessmentResult `json:"result,omitempty"` // Set once analysis completes
}
