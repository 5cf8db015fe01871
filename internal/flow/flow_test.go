package flow_test

import (
	"context"
	"errors"
	"testing"

	"aimaturity/internal/agent"
	"aimaturity/internal/cache"
	"aimaturity/internal/catalog"
	"aimaturity/internal/config"
	"aimaturity/internal/flow"
	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func newDriver() *flow.Driver {
	orc := orchestrator.New(
		agent.All(agent.DefaultPolicy),
		cache.NewMemoryResultCache(16, 0),
		logger.NewNop(),
		metrics.New(),
		config.New())
	return flow.New(orc, logger.NewNop())
}

// answerFor fabricates a plausible reply for any question type
func answerFor(q *model.Question) string {
	switch q.Type {
	case model.QuestionTypeScale:
		return "7"
	case model.QuestionTypeYesNo:
		return "yes"
	case model.QuestionTypeMultipleChoice:
		return q.Options[len(q.Options)-1]
	default:
		return "we run a few chatbots in support"
	}
}

func TestDriver_FullConversation(t *testing.T) {
	Convey("Given a fresh chat session", t, func() {
		d := newDriver()
		ctx := context.Background()
		session := flow.NewSession(model.ChannelChat)
		So(session.State, ShouldEqual, model.StateInitial)

		Convey("When the conversation runs to the end", func() {
			reply := d.Handle(ctx, session, "hi")
			So(reply.State, ShouldEqual, model.StateCollectingBasic)

			reply = d.Handle(ctx, session, "Jane")
			So(reply.State, ShouldEqual, model.StateCollectingCompany)
			So(session.ContactName, ShouldEqual, "Jane")
			So(reply.Message, ShouldContainSubstring, "Jane")

			reply = d.Handle(ctx, session, "Acme, a small technology startup")
			So(reply.State, ShouldEqual, model.StateCollectingGoals)
			So(session.Context.Company, ShouldEqual, "Acme")
			So(session.Context.Size, ShouldEqual, "Small")
			So(session.Context.Industry, ShouldEqual, "Technology")

			reply = d.Handle(ctx, session, "we need to reduce costs")
			So(reply.State, ShouldEqual, model.StateAssessment)
			So(session.Context.CurrentChallenges, ShouldResemble, []string{"costs"})

			// the first assessment event starts the walk, it is not an answer
			reply = d.Handle(ctx, session, "Let's start!")
			So(reply.State, ShouldEqual, model.StateAssessment)
			So(reply.Question, ShouldNotBeNil)
			So(reply.Question.ID, ShouldEqual, "cloud_adoption")
			So(session.Responses, ShouldBeEmpty)

			for i := 0; reply.State == model.StateAssessment && reply.Question != nil; i++ {
				So(i, ShouldBeLessThan, catalog.TotalQuestions()+1)
				reply = d.Handle(ctx, session, answerFor(reply.Question))
			}

			Convey("Then it ends completed with every question answered", func() {
				So(reply.State, ShouldEqual, model.StateCompleted)
				So(session.State, ShouldEqual, model.StateCompleted)
				So(session.Responses, ShouldHaveLength, catalog.TotalQuestions())
			})

			Convey("And the reply carries the final report", func() {
				So(reply.Result, ShouldNotBeNil)
				So(reply.Result.MaturityLevel, ShouldBeBetweenOrEqual, 0, 9)
				So(reply.Message, ShouldContainSubstring, "Assessment complete")
			})
		})
	})
}

func TestDriver_Progress(t *testing.T) {
	Convey("Given a session mid-assessment", t, func() {
		d := newDriver()
		ctx := context.Background()
		session := flow.NewSession(model.ChannelChat)

		d.Handle(ctx, session, "hi")
		d.Handle(ctx, session, "Jane")
		d.Handle(ctx, session, "Acme")
		d.Handle(ctx, session, "costs")
		reply := d.Handle(ctx, session, "go")

		Convey("Then progress starts at zero over the full catalog", func() {
			So(reply.Progress, ShouldNotBeNil)
			So(reply.Progress.TotalCategories, ShouldEqual, 4)
			So(reply.Progress.TotalDimensions, ShouldEqual, len(catalog.Dimensions))
			So(reply.Progress.AnsweredQuestions, ShouldEqual, 0)
			So(reply.Progress.CurrentDimension, ShouldEqual, "Technical Infrastructure")
		})

		Convey("When the first dimension is answered", func() {
			for range catalog.Dimensions[0].Questions {
				reply = d.Handle(ctx, session, answerFor(reply.Question))
			}

			Convey("Then the cursor moved to the next dimension", func() {
				So(reply.Progress.CompletedDimensions, ShouldEqual, 1)
				So(reply.Progress.AnsweredQuestions, ShouldEqual, len(catalog.Dimensions[0].Questions))
				So(reply.Progress.CurrentDimension, ShouldNotEqual, "Technical Infrastructure")
			})
		})
	})
}

func TestDriver_AmbiguousYesNo(t *testing.T) {
	Convey("Given the walk sits on a yes/no question", t, func() {
		d := newDriver()
		ctx := context.Background()
		session := flow.NewSession(model.ChannelChat)
		session.State = model.StateAssessment
		session.Started = true
		session.DimensionIndex = 0
		session.QuestionIndex = 2 // api_integration

		Convey("When the reply is neither yes nor no", func() {
			reply := d.Handle(ctx, session, "maybe later")

			Convey("Then the question is re-asked instead of guessing", func() {
				So(reply.State, ShouldEqual, model.StateAssessment)
				So(reply.Message, ShouldContainSubstring, "yes or no")
				So(session.Responses, ShouldBeEmpty)
				So(session.QuestionIndex, ShouldEqual, 2)
			})
		})

		Convey("When the reply is a clear no", func() {
			reply := d.Handle(ctx, session, "no we don't")

			Convey("Then the answer is recorded and the walk advances", func() {
				So(session.Responses, ShouldContainKey, "api_integration")
				So(*session.Responses["api_integration"].Bool, ShouldBeFalse)
				So(reply.Question.ID, ShouldNotEqual, "api_integration")
			})
		})
	})
}

type failingOrchestrator struct{}

func (failingOrchestrator) Assess(ctx context.Context, data model.AssessmentData) (*model.AssessmentResult, error) {
	return nil, errors.New("every agent failed")
}

func TestDriver_AnalysisFallback(t *testing.T) {
	Convey("Given an orchestrator that cannot produce a report", t, func() {
		d := flow.New(failingOrchestrator{}, logger.NewNop())
		session := flow.NewSession(model.ChannelVoice)
		session.State = model.StatePerformingAnalysis

		Convey("When the analysis event fires", func() {
			reply := d.Handle(context.Background(), session, "")

			Convey("Then the session completes with the follow-up fallback", func() {
				So(reply.State, ShouldEqual, model.StateCompleted)
				So(session.State, ShouldEqual, model.StateCompleted)
				So(reply.Result, ShouldBeNil)
				So(reply.Message, ShouldContainSubstring, "team will follow up")
			})
		})
	})
}
