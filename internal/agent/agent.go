// Package agent implements the four analysis agents. Each agent owns one
// category of the dimension catalog and derives its findings from the
// recorded answers alone, so a run over the same answers is deterministic.
package agent

import (
	"context"
	"fmt"

	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
	"aimaturity/internal/scoring"
)

// Policy holds the score cut-offs an agent applies to each dimension.
type Policy struct {
	// RiskBelow marks dimensions scoring under it as risks.
	RiskBelow float64
	// InsightAbove marks dimensions scoring over it as strengths.
	InsightAbove float64
}

// DefaultPolicy matches the shipped configuration defaults.
var DefaultPolicy = Policy{RiskBelow: 0.5, InsightAbove: 0.7}

// Agent analyzes one slice of an assessment
type Agent interface {
	// ID identifies the agent in results and metrics
	ID() string
	// Category is the catalog category this agent covers
	Category() model.Category
	// Analyze scores the agent's dimensions and derives findings
	Analyze(ctx context.Context, data model.AssessmentData) (model.AgentAnalysis, error)
}

// voice holds the phrasing one agent uses for its findings. Each entry is
// a format string taking the dimension name.
type voice struct {
	insight     string
	opportunity string
	leverage    string // long-term recommendation attached to a strength
	risk        string
	gapAction   string // recommendation attached to a weak dimension
}

type categoryAgent struct {
	id         string
	category   model.Category
	confidence float64
	policy     Policy
	voice      voice
}

// NewTechnical returns the agent covering the technical category
func NewTechnical(p Policy) Agent {
	return &categoryAgent{
		id:         "technical_readiness",
		category:   model.CategoryTechnical,
		confidence: 0.85,
		policy:     p,
		voice: voice{
			insight:     "%s is a solid technical foundation for AI workloads",
			opportunity: "Build advanced AI capabilities on top of the existing %s",
			leverage:    "Extend %s to support production machine learning workloads",
			risk:        "Weak %s will block AI initiatives before they reach production",
			gapAction:   "Invest in %s before scaling AI efforts",
		},
	}
}

// NewHuman returns the agent covering the human category
func NewHuman(p Policy) Agent {
	return &categoryAgent{
		id:         "human_capital",
		category:   model.CategoryHuman,
		confidence: 0.80,
		policy:     p,
		voice: voice{
			insight:     "The organization shows genuine strength in %s",
			opportunity: "Use the existing %s to champion AI adoption across teams",
			leverage:    "Formalize %s into an internal AI enablement program",
			risk:        "Low %s puts AI change management at risk",
			gapAction:   "Launch a targeted program to improve %s",
		},
	}
}

// NewBusiness returns the agent covering the business category
func NewBusiness(p Policy) Agent {
	return &categoryAgent{
		id:         "business_process",
		category:   model.CategoryBusiness,
		confidence: 0.82,
		policy:     p,
		voice: voice{
			insight:     "%s positions the business to capture value from AI quickly",
			opportunity: "Convert the mature %s into measurable AI-driven outcomes",
			leverage:    "Tie AI investment cases directly to %s",
			risk:        "Immature %s makes AI returns hard to realize and measure",
			gapAction:   "Align %s with the AI strategy before funding new pilots",
		},
	}
}

// NewAIAdoption returns the agent covering the ai_adoption category
func NewAIAdoption(p Policy) Agent {
	return &categoryAgent{
		id:         "ai_adoption",
		category:   model.CategoryAIAdoption,
		confidence: 0.88,
		policy:     p,
		voice: voice{
			insight:     "Current %s is ahead of most organizations at this stage",
			opportunity: "Scale the proven %s from pilots to core operations",
			leverage:    "Standardize %s so new AI use cases ship faster",
			risk:        "Gaps in %s expose the organization as AI usage grows",
			gapAction:   "Establish baseline %s before expanding the AI portfolio",
		},
	}
}

// All returns the full agent roster in category order
func All(p Policy) []Agent {
	return []Agent{NewTechnical(p), NewHuman(p), NewBusiness(p), NewAIAdoption(p)}
}

func (a *categoryAgent) ID() string               { return a.id }
func (a *categoryAgent) Category() model.Category { return a.category }

// Analyze scores every answered dimension in the agent's category and
// turns the low and high scorers into findings. Dimensions without a
// single scorable answer are omitted rather than reported as zero.
func (a *categoryAgent) Analyze(ctx context.Context, data model.AssessmentData) (model.AgentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return model.AgentAnalysis{}, err
	}

	analysis := model.AgentAnalysis{
		AgentID:         a.id,
		DimensionScores: make(map[string]float64),
		Confidence:      a.confidence,
	}

	scores := scoring.ScoreAllDimensions(data.Responses)
	for _, dim := range catalog.DimensionsByCategory(a.category) {
		if err := ctx.Err(); err != nil {
			return model.AgentAnalysis{}, err
		}
		score, ok := scores[dim.ID]
		if !ok {
			continue
		}
		analysis.DimensionScores[dim.ID] = score

		name := dim.Name
		switch {
		case score < a.policy.RiskBelow:
			analysis.Risks = append(analysis.Risks, model.Risk{
				Text:      fmt.Sprintf(a.voice.risk, name),
				Severity:  severityFor(score),
				Dimension: dim.ID,
			})
			analysis.Recommendations = append(analysis.Recommendations, model.Recommendation{
				Text:      fmt.Sprintf(a.voice.gapAction, name),
				Timeframe: timeframeFor(score),
				Dimension: dim.ID,
			})
		case score > a.policy.InsightAbove:
			analysis.Insights = append(analysis.Insights, fmt.Sprintf(a.voice.insight, name))
			analysis.Opportunities = append(analysis.Opportunities, fmt.Sprintf(a.voice.opportunity, name))
			analysis.Recommendations = append(analysis.Recommendations, model.Recommendation{
				Text:      fmt.Sprintf(a.voice.leverage, name),
				Timeframe: model.TimeframeLongTerm,
				Dimension: dim.ID,
			})
		}
	}

	return analysis, nil
}

// severityFor maps a weak dimension score to a risk severity. Scores
// under 0.3 are treated as blocking.
func severityFor(score float64) model.Severity {
	if score < 0.3 {
		return model.SeverityHigh
	}
	return model.SeverityMedium
}

// timeframeFor maps a weak dimension score to a recommendation timeframe
func timeframeFor(score float64) model.Timeframe {
	if score < 0.3 {
		return model.TimeframeImmediate
	}
	return model.TimeframeShortTerm
}
