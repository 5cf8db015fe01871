package model

// Answer holds one typed response keyed by question id. Exactly one value
// field is meaningful, matching the question's type.
type Answer struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	// Scale holds 0-10 for scale questions
	Scale *int `json:"scale,omitempty" bson:"scale,omitempty"`
	// Bool holds the yes/no value
	Bool *bool `json:"bool,omitempty" bson:"bool,omitempty"`
	// Choice holds the selected option string for multiple choice
	Choice string `json:"choice,omitempty" bson:"choice,omitempty"`
	// Text holds a free-text response (excluded from scoring)
	Text string `json:"text,omitempty" bson:"text,omitempty"`
}

// AnswerSet maps question id to its recorded answer for one session
type AnswerSet map[string]Answer

// ScaleAnswer builds a scale answer clamped to [0,10]
func ScaleAnswer(questionID string, value int) Answer {
	if value < 0 {
		value = 0
	}
	if value > 10 {
		value = 10
	}
	return Answer{QuestionID: questionID, Scale: &value}
}

// BoolAnswer builds a yes/no answer
func BoolAnswer(questionID string, value bool) Answer {
	return Answer{QuestionID: questionID, Bool: &value}
}

// ChoiceAnswer builds a multiple-choice answer
func ChoiceAnswer(questionID, option string) Answer {
	return Answer{QuestionID: questionID, Choice: option}
}

// TextAnswer builds a free-text answer
func TextAnswer(questionID, text string) Answer {
	return Answer{QuestionID: questionID, Text: text}
}

// OrganizationContext describes the organization being assessed
type OrganizationContext struct {
	Company           string   `json:"company" bson:"company"`
	Industry          string   `json:"industry" bson:"industry"`
	Size              string   `json:"size" bson:"size"`
	Region            string   `json:"region" bson:"region"`
	CurrentChallenges []string `json:"currentChallenges" bson:"currentChallenges"`
}

// AssessmentData is the immutable input to one orchestration run
type AssessmentData struct {
	OrganizationID string              `json:"organizationId" bson:"organizationId"`
	Responses      AnswerSet           `json:"responses" bson:"responses"`
	Context        OrganizationContext `json:"context" bson:"context"`
}
