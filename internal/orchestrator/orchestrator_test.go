package orchestrator_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"aimaturity/internal/agent"
	"aimaturity/internal/cache"
	"aimaturity/internal/config"
	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

type stubAgent struct {
	id       string
	category model.Category
	analysis model.AgentAnalysis
	err      error
	panics   bool
	calls    atomic.Int32
}

func (s *stubAgent) ID() string               { return s.id }
func (s *stubAgent) Category() model.Category { return s.category }

func (s *stubAgent) Analyze(ctx context.Context, data model.AssessmentData) (model.AgentAnalysis, error) {
	s.calls.Add(1)
	if s.panics {
		panic("agent blew up")
	}
	if s.err != nil {
		return model.AgentAnalysis{}, s.err
	}
	a := s.analysis
	a.AgentID = s.id
	return a, nil
}

func newOrchestrator(agents ...agent.Agent) orchestrator.Orchestrator {
	return orchestrator.New(agents,
		cache.NewMemoryResultCache(16, 0),
		logger.NewNop(),
		metrics.New(),
		config.New())
}

func sampleData(org string) model.AssessmentData {
	return model.AssessmentData{
		OrganizationID: org,
		Responses: model.AnswerSet{
			"data_architecture": model.ScaleAnswer("data_architecture", 7),
		},
	}
}

func TestAssess_ConfidenceWeighting(t *testing.T) {
	Convey("Given two agents scoring the same dimension with different confidence", t, func() {
		confident := &stubAgent{id: "confident", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{"tech_infrastructure": 0.2},
				Confidence:      1.0,
			}}
		ignored := &stubAgent{id: "ignored", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{"tech_infrastructure": 0.8},
				Confidence:      0.0,
			}}
		o := newOrchestrator(confident, ignored)

		Convey("When assessing", func() {
			res, err := o.Assess(context.Background(), sampleData("org-w"))
			So(err, ShouldBeNil)

			Convey("Then a zero-confidence opinion carries no weight", func() {
				So(res.DimensionScores["tech_infrastructure"], ShouldAlmostEqual, 0.2, 1e-9)
			})
		})

		Convey("When both agents are equally confident", func() {
			a := &stubAgent{id: "a", category: model.CategoryTechnical,
				analysis: model.AgentAnalysis{
					DimensionScores: map[string]float64{"tech_infrastructure": 0.2},
					Confidence:      0.5,
				}}
			b := &stubAgent{id: "b", category: model.CategoryTechnical,
				analysis: model.AgentAnalysis{
					DimensionScores: map[string]float64{"tech_infrastructure": 0.8},
					Confidence:      0.5,
				}}
			res, err := newOrchestrator(a, b).Assess(context.Background(), sampleData("org-eq"))
			So(err, ShouldBeNil)

			Convey("Then the scores average evenly", func() {
				So(res.DimensionScores["tech_infrastructure"], ShouldAlmostEqual, 0.5, 1e-9)
			})
		})
	})
}

func TestAssess_CacheReplay(t *testing.T) {
	Convey("Given an orchestrator with a result cache", t, func() {
		a := &stubAgent{id: "only", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{"tech_infrastructure": 0.6},
				Confidence:      0.9,
			}}
		o := newOrchestrator(a)
		data := sampleData("org-cache")

		Convey("When the same input is assessed twice", func() {
			first, err := o.Assess(context.Background(), data)
			So(err, ShouldBeNil)
			second, err := o.Assess(context.Background(), data)
			So(err, ShouldBeNil)

			Convey("Then the agents run only once", func() {
				So(a.calls.Load(), ShouldEqual, 1)
			})

			Convey("And the replayed report matches, timestamp included", func() {
				So(second.MaturityLevel, ShouldEqual, first.MaturityLevel)
				So(second.Timestamp.Equal(first.Timestamp), ShouldBeTrue)
			})
		})

		Convey("When a different organization submits the same answers", func() {
			_, err := o.Assess(context.Background(), data)
			So(err, ShouldBeNil)
			_, err = o.Assess(context.Background(), sampleData("org-other"))
			So(err, ShouldBeNil)

			Convey("Then the cache does not cross organizations", func() {
				So(a.calls.Load(), ShouldEqual, 2)
			})
		})
	})
}

func TestAssess_PartialFailure(t *testing.T) {
	Convey("Given a roster where some agents fail", t, func() {
		ok := &stubAgent{id: "ok", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{"tech_infrastructure": 0.9},
				Confidence:      0.8,
			}}
		broken := &stubAgent{id: "broken", category: model.CategoryHuman,
			err: errors.New("model endpoint down")}
		panicky := &stubAgent{id: "panicky", category: model.CategoryBusiness, panics: true}

		o := newOrchestrator(ok, broken, panicky)

		Convey("When assessing", func() {
			res, err := o.Assess(context.Background(), sampleData("org-partial"))

			Convey("Then the surviving agent still yields a report", func() {
				So(err, ShouldBeNil)
				So(res, ShouldNotBeNil)
				So(res.DimensionScores, ShouldContainKey, "tech_infrastructure")
				So(res.DimensionScores, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a roster where every agent fails", t, func() {
		broken := &stubAgent{id: "broken", category: model.CategoryTechnical,
			err: errors.New("model endpoint down")}
		panicky := &stubAgent{id: "panicky", category: model.CategoryBusiness, panics: true}

		o := newOrchestrator(broken, panicky)

		Convey("When assessing", func() {
			res, err := o.Assess(context.Background(), sampleData("org-dead"))

			Convey("Then the run fails with the unavailability error", func() {
				So(err, ShouldEqual, orchestrator.ErrAssessmentUnavailable)
				So(res, ShouldBeNil)
			})
		})
	})
}

func TestAssess_ReportSynthesis(t *testing.T) {
	Convey("Given a mature organization", t, func() {
		strong := &stubAgent{id: "strong", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{
					"tech_infrastructure": 0.95,
					"data_quality":        0.95,
				},
				Confidence: 0.9,
			}}
		o := newOrchestrator(strong)

		res, err := o.Assess(context.Background(), sampleData("org-mature"))
		So(err, ShouldBeNil)

		Convey("Then the level and details line up", func() {
			So(res.MaturityLevel, ShouldEqual, 9)
			So(res.MaturityDetails.Level, ShouldEqual, 9)
			So(res.MaturityDetails.Name, ShouldNotBeEmpty)
		})

		Convey("And both dimensions are reported as strengths", func() {
			So(res.TopStrengths, ShouldHaveLength, 2)
			So(res.CriticalGaps, ShouldBeEmpty)
		})

		Convey("And the roadmap skips the foundation phase", func() {
			So(res.Roadmap, ShouldHaveLength, 3)
			So(res.Roadmap[0].Phase, ShouldEqual, 2)
			So(res.Roadmap[0].Dependencies, ShouldBeEmpty)
		})

		Convey("And the ROI scales with the level", func() {
			So(res.EstimatedROI.Year1, ShouldEqual, int64(900_000))
			So(res.EstimatedROI.Year3, ShouldEqual, int64(4_050_000))
			So(res.EstimatedROI.Year5, ShouldEqual, int64(9_000_000))
		})
	})

	Convey("Given an organization at the start of its journey", t, func() {
		weak := &stubAgent{id: "weak", category: model.CategoryTechnical,
			analysis: model.AgentAnalysis{
				DimensionScores: map[string]float64{
					"tech_infrastructure": 0.15,
					"data_quality":        0.25,
				},
				Confidence: 0.9,
				Risks: []model.Risk{
					{Text: "Weak infrastructure", Severity: model.SeverityHigh, Dimension: "tech_infrastructure"},
				},
				Recommendations: []model.Recommendation{
					{Text: "Fix the basics", Timeframe: model.TimeframeImmediate, Dimension: "tech_infrastructure"},
					{Text: "Fix the basics", Timeframe: model.TimeframeImmediate, Dimension: "data_quality"},
				},
			}}
		o := newOrchestrator(weak)

		res, err := o.Assess(context.Background(), sampleData("org-early"))
		So(err, ShouldBeNil)

		Convey("Then the foundation phase leads the roadmap", func() {
			So(res.Roadmap, ShouldHaveLength, 4)
			So(res.Roadmap[0].Name, ShouldEqual, "AI Foundation")
			So(res.Roadmap[0].Priority, ShouldEqual, model.PriorityCritical)
			So(res.Roadmap[1].Dependencies, ShouldResemble, []string{"AI Foundation"})
		})

		Convey("And the gaps are ordered weakest first", func() {
			So(res.CriticalGaps, ShouldResemble, []string{
				"Technical Infrastructure",
				"Data Quality & Governance",
			})
		})

		Convey("And duplicate recommendation texts collapse to one", func() {
			So(res.Recommendations.Immediate, ShouldResemble, []string{"Fix the basics"})
			So(res.RiskAnalysis.High, ShouldResemble, []string{"Weak infrastructure"})
		})
	})
}

func TestFingerprint(t *testing.T) {
	Convey("Given two submissions with identical content", t, func() {
		a := model.AssessmentData{
			OrganizationID: "org-1",
			Responses: model.AnswerSet{
				"q1": model.ScaleAnswer("q1", 7),
				"q2": model.BoolAnswer("q2", true),
				"q3": model.ChoiceAnswer("q3", "Cloud-first"),
			},
		}
		b := model.AssessmentData{
			OrganizationID: "org-1",
			Responses: model.AnswerSet{
				"q3": model.ChoiceAnswer("q3", "Cloud-first"),
				"q2": model.BoolAnswer("q2", true),
				"q1": model.ScaleAnswer("q1", 7),
			},
		}

		Convey("Then their fingerprints match", func() {
			So(orchestrator.Fingerprint(a), ShouldEqual, orchestrator.Fingerprint(b))
		})

		Convey("And changing one answer changes the fingerprint", func() {
			b.Responses["q1"] = model.ScaleAnswer("q1", 8)
			So(orchestrator.Fingerprint(a), ShouldNotEqual, orchestrator.Fingerprint(b))
		})

		Convey("And another organization never shares a key", func() {
			b.OrganizationID = "org-2"
			So(orchestrator.Fingerprint(a), ShouldNotEqual, orchestrator.Fingerprint(b))
		})
	})
}
