package scoring_test

import (
	"testing"

	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
	"aimaturity/internal/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func dim(id string) model.Dimension {
	d, ok := catalog.DimensionByID(id)
	if !ok {
		panic("unknown dimension " + id)
	}
	return *d
}

func TestScoreDimension(t *testing.T) {
	Convey("Given the technical infrastructure dimension", t, func() {
		infra := dim("tech_infrastructure")

		Convey("A scale answer maps to value/10", func() {
			s := scoring.ScoreDimension(infra, model.AnswerSet{
				"data_architecture": model.ScaleAnswer("data_architecture", 7),
			})
			So(s, ShouldAlmostEqual, 0.7, 1e-9)
		})

		Convey("Yes scores 1 and no scores 0", func() {
			yes := scoring.ScoreDimension(infra, model.AnswerSet{
				"api_integration": model.BoolAnswer("api_integration", true),
			})
			no := scoring.ScoreDimension(infra, model.AnswerSet{
				"api_integration": model.BoolAnswer("api_integration", false),
			})
			So(yes, ShouldAlmostEqual, 1.0)
			So(no, ShouldAlmostEqual, 0.0)
		})

		Convey("A choice scores by its position in the option list", func() {
			// "Hybrid cloud" is option 1 of 5: 1/4
			s := scoring.ScoreDimension(infra, model.AnswerSet{
				"cloud_adoption": model.ChoiceAnswer("cloud_adoption", "Hybrid cloud"),
			})
			So(s, ShouldAlmostEqual, 0.25, 1e-9)
		})

		Convey("An unknown choice scores as the lowest option", func() {
			s := scoring.ScoreDimension(infra, model.AnswerSet{
				"cloud_adoption": model.ChoiceAnswer("cloud_adoption", "Martian cloud"),
			})
			So(s, ShouldAlmostEqual, 0.0)
		})

		Convey("Answered questions combine by their weights", func() {
			// 0.3*0.5 + 0.4*0.8 + 0.3*1.0 over weight 1.0
			s := scoring.ScoreDimension(infra, model.AnswerSet{
				"cloud_adoption":    model.ChoiceAnswer("cloud_adoption", "Cloud-first"),
				"data_architecture": model.ScaleAnswer("data_architecture", 8),
				"api_integration":   model.BoolAnswer("api_integration", true),
			})
			So(s, ShouldAlmostEqual, 0.77, 1e-9)
		})

		Convey("Unanswered questions do not dilute the average", func() {
			// Only one of three questions answered; score is 0.8, not 0.8*0.4
			s := scoring.ScoreDimension(infra, model.AnswerSet{
				"data_architecture": model.ScaleAnswer("data_architecture", 8),
			})
			So(s, ShouldAlmostEqual, 0.8, 1e-9)
		})

		Convey("No answers at all scores zero", func() {
			So(scoring.ScoreDimension(infra, model.AnswerSet{}), ShouldEqual, 0)
		})
	})
}

func TestScoreAllDimensions(t *testing.T) {
	Convey("Given answers touching two dimensions", t, func() {
		answers := model.AnswerSet{
			"data_architecture":  model.ScaleAnswer("data_architecture", 6),
			"data_quality_score": model.ScaleAnswer("data_quality_score", 4),
		}
		scores := scoring.ScoreAllDimensions(answers)

		Convey("Then only touched dimensions appear", func() {
			So(scores, ShouldHaveLength, 2)
			So(scores["tech_infrastructure"], ShouldAlmostEqual, 0.6, 1e-9)
			So(scores["data_quality"], ShouldAlmostEqual, 0.4, 1e-9)
		})
	})
}

func TestScoreCategory(t *testing.T) {
	Convey("Given scores for two technical dimensions", t, func() {
		// tech_infrastructure weight 0.8, data_quality weight 0.9
		scores := map[string]float64{
			"tech_infrastructure": 1.0,
			"data_quality":        0.0,
		}

		Convey("Then the category average honors dimension weights", func() {
			s := scoring.ScoreCategory(model.CategoryTechnical, scores)
			So(s, ShouldAlmostEqual, 0.8/1.7, 1e-9)
		})

		Convey("And a category with no scored dimensions is zero", func() {
			So(scoring.ScoreCategory(model.CategoryHuman, scores), ShouldEqual, 0)
		})
	})
}

func TestOverallMaturityLevel(t *testing.T) {
	Convey("Given dimension scores", t, func() {
		Convey("The weighted average maps onto the 0-9 scale by truncation", func() {
			level := scoring.OverallMaturityLevel(map[string]float64{
				"tech_infrastructure": 0.57,
			})
			So(level, ShouldEqual, 5)
		})

		Convey("All-maximum answers clamp to the top level", func() {
			scores := make(map[string]float64)
			for _, d := range catalog.Dimensions {
				scores[d.ID] = 1.0
			}
			So(scoring.OverallMaturityLevel(scores), ShouldEqual, scoring.MaxLevel)
		})

		Convey("No scores at all means level zero", func() {
			So(scoring.OverallMaturityLevel(nil), ShouldEqual, 0)
		})
	})
}
