package model

// MaturityLevel describes one of the ten maturity stages (0-9)
type MaturityLevel struct {
	Level               int      `json:"level" bson:"level"`
	Name                string   `json:"name" bson:"name"`
	Description         string   `json:"description" bson:"description"`
	Characteristics     []string `json:"characteristics" bson:"characteristics"`
	Capabilities        []string `json:"capabilities" bson:"capabilities"`
	TypicalChallenges   []string `json:"typicalChallenges" bson:"typicalChallenges"`
	NextSteps           []string `json:"nextSteps" bson:"nextSteps"`
	EstimatedTimeToNext string   `json:"estimatedTimeToNext" bson:"estimatedTimeToNext"`
	RequiredInvestment  string   `json:"requiredInvestment" bson:"requiredInvestment"`
}
