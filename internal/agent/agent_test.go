package agent_test

import (
	"context"
	"testing"

	"aimaturity/internal/agent"
	"aimaturity/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTechnicalAgent_Analyze(t *testing.T) {
	Convey("Given the technical agent with the default policy", t, func() {
		a := agent.NewTechnical(agent.DefaultPolicy)
		So(a.ID(), ShouldEqual, "technical_readiness")
		So(a.Category(), ShouldEqual, model.CategoryTechnical)

		Convey("When analyzing strong infrastructure answers", func() {
			data := model.AssessmentData{
				OrganizationID: "org-1",
				Responses: model.AnswerSet{
					"cloud_adoption":    model.ChoiceAnswer("cloud_adoption", "Cloud-native"),
					"data_architecture": model.ScaleAnswer("data_architecture", 9),
					"api_integration":   model.BoolAnswer("api_integration", true),
				},
			}
			res, err := a.Analyze(context.Background(), data)
			So(err, ShouldBeNil)

			Convey("Then it reports the dimension as a strength", func() {
				// weighted: 0.3*1.0 + 0.4*0.9 + 0.3*1.0 = 0.96
				So(res.DimensionScores["tech_infrastructure"], ShouldAlmostEqual, 0.96, 1e-9)
				So(res.Insights, ShouldNotBeEmpty)
				So(res.Opportunities, ShouldNotBeEmpty)
				So(res.Confidence, ShouldAlmostEqual, 0.85)
			})

			Convey("And strong dimensions get a long-term recommendation", func() {
				So(res.Recommendations, ShouldHaveLength, 1)
				So(res.Recommendations[0].Timeframe, ShouldEqual, model.TimeframeLongTerm)
				So(res.Recommendations[0].Dimension, ShouldEqual, "tech_infrastructure")
			})

			Convey("And unanswered dimensions are omitted, not zeroed", func() {
				_, ok := res.DimensionScores["data_quality"]
				So(ok, ShouldBeFalse)
				So(res.Risks, ShouldBeEmpty)
			})
		})

		Convey("When analyzing very weak data quality answers", func() {
			data := model.AssessmentData{
				OrganizationID: "org-2",
				Responses: model.AnswerSet{
					"data_governance":    model.BoolAnswer("data_governance", false),
					"data_quality_score": model.ScaleAnswer("data_quality_score", 1),
				},
			}
			res, err := a.Analyze(context.Background(), data)
			So(err, ShouldBeNil)

			Convey("Then it flags a blocking risk with an immediate action", func() {
				So(res.DimensionScores["data_quality"], ShouldAlmostEqual, 0.06, 1e-9)
				So(res.Risks, ShouldHaveLength, 1)
				So(res.Risks[0].Severity, ShouldEqual, model.SeverityHigh)
				So(res.Recommendations, ShouldHaveLength, 1)
				So(res.Recommendations[0].Timeframe, ShouldEqual, model.TimeframeImmediate)
				So(res.Insights, ShouldBeEmpty)
			})
		})

		Convey("When a dimension scores in the neutral band", func() {
			data := model.AssessmentData{
				OrganizationID: "org-3",
				Responses: model.AnswerSet{
					"data_architecture": model.ScaleAnswer("data_architecture", 6),
				},
			}
			res, err := a.Analyze(context.Background(), data)
			So(err, ShouldBeNil)

			Convey("Then it is scored but produces no findings", func() {
				So(res.DimensionScores["tech_infrastructure"], ShouldAlmostEqual, 0.6, 1e-9)
				So(res.Risks, ShouldBeEmpty)
				So(res.Insights, ShouldBeEmpty)
				So(res.Recommendations, ShouldBeEmpty)
			})
		})

		Convey("When a moderate gap sits between 0.3 and 0.5", func() {
			data := model.AssessmentData{
				OrganizationID: "org-4",
				Responses: model.AnswerSet{
					"data_quality_score": model.ScaleAnswer("data_quality_score", 4),
				},
			}
			res, err := a.Analyze(context.Background(), data)
			So(err, ShouldBeNil)

			Convey("Then the risk is medium with a short-term action", func() {
				So(res.DimensionScores["data_quality"], ShouldAlmostEqual, 0.4, 1e-9)
				So(res.Risks[0].Severity, ShouldEqual, model.SeverityMedium)
				So(res.Recommendations[0].Timeframe, ShouldEqual, model.TimeframeShortTerm)
			})
		})

		Convey("When the context is already canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := a.Analyze(ctx, model.AssessmentData{})
			So(err, ShouldEqual, context.Canceled)
		})
	})
}

func TestAll_Roster(t *testing.T) {
	Convey("Given the full agent roster", t, func() {
		agents := agent.All(agent.DefaultPolicy)
		So(agents, ShouldHaveLength, 4)

		Convey("Then each category is covered exactly once", func() {
			seen := make(map[model.Category]string)
			for _, a := range agents {
				seen[a.Category()] = a.ID()
			}
			So(seen, ShouldHaveLength, 4)
			So(seen[model.CategoryTechnical], ShouldEqual, "technical_readiness")
			So(seen[model.CategoryHuman], ShouldEqual, "human_capital")
			So(seen[model.CategoryBusiness], ShouldEqual, "business_process")
			So(seen[model.CategoryAIAdoption], ShouldEqual, "ai_adoption")
		})

		Convey("And each agent reports its own confidence", func() {
			for _, a := range agents {
				res, err := a.Analyze(context.Background(), model.AssessmentData{Responses: model.AnswerSet{}})
				So(err, ShouldBeNil)
				So(res.Confidence, ShouldBeBetween, 0.7, 0.95)
				So(res.AgentID, ShouldEqual, a.ID())
			}
		})
	})
}
