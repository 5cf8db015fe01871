package orchestrator

import (
	"sort"
	"time"

	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
	"aimaturity/internal/scoring"
)

// synthesize merges the surviving agent analyses into the final report
func (o *orchestrator) synthesize(data model.AssessmentData, analyses []model.AgentAnalysis) *model.AssessmentResult {
	dimScores := aggregateScores(analyses)
	level := scoring.OverallMaturityLevel(dimScores)
	details, _ := catalog.MaturityLevel(level)

	result := &model.AssessmentResult{
		OrganizationID:  data.OrganizationID,
		Timestamp:       time.Now(),
		MaturityLevel:   level,
		MaturityDetails: details,
		CategoryScores: model.CategoryScores{
			Technical:  scoring.ScoreCategory(model.CategoryTechnical, dimScores),
			Human:      scoring.ScoreCategory(model.CategoryHuman, dimScores),
			Business:   scoring.ScoreCategory(model.CategoryBusiness, dimScores),
			AIAdoption: scoring.ScoreCategory(model.CategoryAIAdoption, dimScores),
		},
		DimensionScores: dimScores,
		TopStrengths:    o.strengths(dimScores),
		CriticalGaps:    o.gaps(dimScores),
		Recommendations: bucketRecommendations(analyses),
		Roadmap:         buildRoadmap(level),
		EstimatedROI:    o.estimateROI(level),
		RiskAnalysis:    bucketRisks(analyses),
	}
	return result
}

// aggregateScores folds the per-agent dimension scores into one map,
// weighting each agent's opinion by its confidence.
func aggregateScores(analyses []model.AgentAnalysis) map[string]float64 {
	sums := make(map[string]float64)
	weights := make(map[string]float64)
	for _, a := range analyses {
		for dim, score := range a.DimensionScores {
			sums[dim] += score * a.Confidence
			weights[dim] += a.Confidence
		}
	}

	out := make(map[string]float64, len(sums))
	for dim, sum := range sums {
		if weights[dim] > 0 {
			out[dim] = sum / weights[dim]
		}
	}
	return out
}

type scoredDimension struct {
	name  string
	score float64
}

// strengths lists dimension names scoring above the strength threshold,
// strongest first.
func (o *orchestrator) strengths(dimScores map[string]float64) []string {
	var picked []scoredDimension
	for id, score := range dimScores {
		if score <= o.thresholds.Strength {
			continue
		}
		if dim, ok := catalog.DimensionByID(id); ok {
			picked = append(picked, scoredDimension{name: dim.Name, score: score})
		}
	}
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].score != picked[j].score {
			return picked[i].score > picked[j].score
		}
		return picked[i].name < picked[j].name
	})
	return names(picked)
}

// gaps lists dimension names scoring below the critical-gap threshold,
// weakest first.
func (o *orchestrator) gaps(dimScores map[string]float64) []string {
	var picked []scoredDimension
	for id, score := range dimScores {
		if score >= o.thresholds.CriticalGap {
			continue
		}
		if dim, ok := catalog.DimensionByID(id); ok {
			picked = append(picked, scoredDimension{name: dim.Name, score: score})
		}
	}
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].score != picked[j].score {
			return picked[i].score < picked[j].score
		}
		return picked[i].name < picked[j].name
	})
	return names(picked)
}

func names(dims []scoredDimension) []string {
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = d.name
	}
	return out
}

// bucketRecommendations groups agent recommendations by their timeframe
// tag, dropping duplicate texts.
func bucketRecommendations(analyses []model.AgentAnalysis) model.RecommendationBuckets {
	var buckets model.RecommendationBuckets
	seen := make(map[string]bool)
	for _, a := range analyses {
		for _, rec := range a.Recommendations {
			if seen[rec.Text] {
				continue
			}
			seen[rec.Text] = true
			switch rec.Timeframe {
			case model.TimeframeImmediate:
				buckets.Immediate = append(buckets.Immediate, rec.Text)
			case model.TimeframeShortTerm:
				buckets.ShortTerm = append(buckets.ShortTerm, rec.Text)
			case model.TimeframeLongTerm:
				buckets.LongTerm = append(buckets.LongTerm, rec.Text)
			}
		}
	}
	return buckets
}

// bucketRisks groups agent risks by their severity tag, dropping
// duplicate texts.
func bucketRisks(analyses []model.AgentAnalysis) model.RiskBuckets {
	var buckets model.RiskBuckets
	seen := make(map[string]bool)
	for _, a := range analyses {
		for _, risk := range a.Risks {
			if seen[risk.Text] {
				continue
			}
			seen[risk.Text] = true
			switch risk.Severity {
			case model.SeverityHigh:
				buckets.High = append(buckets.High, risk.Text)
			case model.SeverityMedium:
				buckets.Medium = append(buckets.Medium, risk.Text)
			case model.SeverityLow:
				buckets.Low = append(buckets.Low, risk.Text)
			}
		}
	}
	return buckets
}

// buildRoadmap lays out the transformation phases. Organizations at
// level 3 or above have the foundation in place and skip phase one.
func buildRoadmap(level int) []model.RoadmapItem {
	var items []model.RoadmapItem

	if level < 3 {
		items = append(items, model.RoadmapItem{
			Phase:       1,
			Name:        "AI Foundation",
			Description: "Establish the data, infrastructure and governance basics AI work depends on",
			Duration:    "3 months",
			Outcomes: []string{
				"Data governance framework in place",
				"Cloud infrastructure ready for AI workloads",
				"Executive AI literacy established",
			},
			Investment: "$50K-$200K",
			Priority:   model.PriorityCritical,
		})
	}

	pilot := model.RoadmapItem{
		Phase:       2,
		Name:        "AI Pilot Projects",
		Description: "Run a small portfolio of high-value AI pilots with clear success metrics",
		Duration:    "6 months",
		Outcomes: []string{
			"Two to three pilots in production",
			"Measured ROI per pilot",
			"Internal AI delivery playbook",
		},
		Investment: "$200K-$500K",
		Priority:   model.PriorityHigh,
	}
	if len(items) > 0 {
		pilot.Dependencies = []string{"AI Foundation"}
	}
	items = append(items, pilot)

	items = append(items, model.RoadmapItem{
		Phase:       3,
		Name:        "AI Scaling",
		Description: "Industrialize the successful pilots and stand up MLOps for repeatable delivery",
		Duration:    "9 months",
		Dependencies: []string{
			"AI Pilot Projects",
		},
		Outcomes: []string{
			"MLOps pipeline in production",
			"AI embedded in core business processes",
			"Dedicated AI product teams",
		},
		Investment: "$500K-$2M",
		Priority:   model.PriorityHigh,
	})

	items = append(items, model.RoadmapItem{
		Phase:       4,
		Name:        "AI Transformation",
		Description: "Reshape products and operating model around AI as a core capability",
		Duration:    "18 months",
		Dependencies: []string{
			"AI Scaling",
		},
		Outcomes: []string{
			"AI-native product lines",
			"Organization-wide AI fluency",
			"Continuous model improvement loop",
		},
		Investment: "$2M-$10M",
		Priority:   model.PriorityMedium,
	})

	return items
}

// estimateROI projects dollar returns per horizon: level times the
// horizon factor times the horizon base.
func (o *orchestrator) estimateROI(level int) model.ROIEstimate {
	l := float64(level)
	return model.ROIEstimate{
		Year1: int64(l * o.roi.EfficiencyGain * float64(o.roi.Year1Base)),
		Year3: int64(l * (o.roi.EfficiencyGain + o.roi.RevenueImpact) * float64(o.roi.Year3Base)),
		Year5: int64(l * (o.roi.EfficiencyGain + 2*o.roi.RevenueImpact) * float64(o.roi.Year5Base)),
	}
}
