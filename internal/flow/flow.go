// Package flow implements the conversational state machine that walks a
// user through the assessment. Chat and voice are two front-ends over the
// same driver; both feed it one inbound event at a time, so a session is
// never mutated concurrently.
package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/internal/parse"
	"aimaturity/pkg/logger"
)

// fallbackMessage is returned when analysis fails; the conversation must
// end gracefully rather than hang.
const fallbackMessage = "I've completed the assessment analysis. Your organization shows strong potential for AI transformation. Our team will follow up with your detailed results."

// Driver advances assessment sessions through the conversation states
type Driver struct {
	orc orchestrator.Orchestrator
	log logger.Logger
}

// New creates a flow driver over the given orchestrator
func New(orc orchestrator.Orchestrator, log logger.Logger) *Driver {
	return &Driver{orc: orc, log: log.Named("flow")}
}

// NewSession creates a fresh session for the given channel
func NewSession(channel model.Channel) *model.Session {
	now := time.Now()
	return &model.Session{
		ID:             uuid.NewString(),
		OrganizationID: "org_" + uuid.NewString(),
		Channel:        channel,
		State:          model.StateInitial,
		Responses:      model.AnswerSet{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Handle processes one inbound event, mutates the session, and returns
// the reply to send back on the session's channel.
func (d *Driver) Handle(ctx context.Context, session *model.Session, input string) model.Reply {
	switch session.State {
	case model.StateInitial, model.StateGreeting:
		return d.greet(session)
	case model.StateCollectingBasic:
		return d.collectBasicInfo(session, input)
	case model.StateCollectingCompany:
		return d.collectCompanyInfo(session, input)
	case model.StateCollectingGoals:
		return d.collectChallenges(session, input)
	case model.StateAssessment:
		return d.assess(ctx, session, input)
	case model.StatePerformingAnalysis:
		return d.analyze(ctx, session)
	case model.StateCompleted:
		return model.Reply{
			Message:     "Your assessment is complete. Would you like to discuss the results with our team?",
			State:       model.StateCompleted,
			Suggestions: []string{"Book Consultation", "Email Results", "Start Over"},
		}
	default:
		session.State = model.StateGreeting
		return model.Reply{
			Message:     "I'm here to help you assess your AI maturity and create a transformation roadmap. Would you like to start the assessment?",
			State:       model.StateGreeting,
			Suggestions: []string{"Start Assessment", "Learn More", "Contact Us"},
		}
	}
}

func (d *Driver) greet(session *model.Session) model.Reply {
	session.State = model.StateCollectingBasic
	return model.Reply{
		Message:     "Welcome to the AI Maturity Assessment! I'm here to help you understand your organization's AI readiness and create a personalized transformation roadmap. Let's start with your name.",
		State:       model.StateCollectingBasic,
		Suggestions: []string{"Get Started", "Learn More", "Skip to Assessment"},
	}
}

func (d *Driver) collectBasicInfo(session *model.Session, input string) model.Reply {
	session.ContactName = extractName(input)
	session.State = model.StateCollectingCompany
	return model.Reply{
		Message:     fmt.Sprintf("Great to meet you, %s! To provide the most relevant AI transformation insights, could you tell me about your organization?", session.ContactName),
		State:       model.StateCollectingCompany,
		Suggestions: []string{"Small Business", "Enterprise", "Startup", "Non-Profit"},
	}
}

func (d *Driver) collectCompanyInfo(session *model.Session, input string) model.Reply {
	info := extractCompanyInfo(input)
	session.Context.Company = info.Company
	session.Context.Size = info.Size
	session.Context.Industry = info.Industry
	session.State = model.StateCollectingGoals
	return model.Reply{
		Message: fmt.Sprintf("Thank you! %s sounds like an exciting organization. What are your main challenges or goals regarding AI adoption?", info.Company),
		State:   model.StateCollectingGoals,
		Suggestions: []string{
			"Improving efficiency",
			"Reducing costs",
			"Enhancing customer experience",
			"Staying competitive",
		},
	}
}

func (d *Driver) collectChallenges(session *model.Session, input string) model.Reply {
	session.Context.CurrentChallenges = extractChallenges(input)
	session.State = model.StateAssessment
	return model.Reply{
		Message:     fmt.Sprintf("I understand. To help %s with %s, I'll guide you through our AI maturity assessment. It takes about 10-15 minutes and covers 4 key areas. Ready to begin?", session.Context.Company, session.Context.CurrentChallenges[0]),
		State:       model.StateAssessment,
		Suggestions: []string{"Let's start!", "Tell me more", "What areas?"},
		Progress:    d.progress(session),
	}
}

// assess walks the catalog one question at a time. The first event in
// this state starts the walk without consuming the input as an answer.
func (d *Driver) assess(ctx context.Context, session *model.Session, input string) model.Reply {
	if !session.Started {
		session.Started = true
		dim := &catalog.Dimensions[0]
		return d.askQuestion(session, dim, "Great! Let's begin with understanding your technical foundation. ")
	}

	dim := &catalog.Dimensions[session.DimensionIndex]
	question := dim.Questions[session.QuestionIndex]

	answer, ok := parse.Answer(input, question)
	if !ok {
		// Ambiguous yes/no; re-ask rather than guess
		return model.Reply{
			Message:     fmt.Sprintf("Sorry, I didn't catch that. %s Please answer yes or no.", question.Text),
			State:       model.StateAssessment,
			Suggestions: []string{"Yes", "No"},
			Question:    &question,
			Dimension:   dim,
			Progress:    d.progress(session),
		}
	}
	session.Responses[question.ID] = answer

	d.advance(session)

	if session.DimensionIndex >= len(catalog.Dimensions) {
		session.State = model.StatePerformingAnalysis
		return d.analyze(ctx, session)
	}

	next := &catalog.Dimensions[session.DimensionIndex]
	return d.askQuestion(session, next, "")
}

// advance moves the cursor to the next question, rolling over dimension
// and category boundaries.
func (d *Driver) advance(session *model.Session) {
	session.QuestionIndex++
	if session.QuestionIndex < len(catalog.Dimensions[session.DimensionIndex].Questions) {
		return
	}
	session.QuestionIndex = 0
	session.DimensionIndex++
	if session.DimensionIndex >= len(catalog.Dimensions) {
		return
	}
	category := catalog.Dimensions[session.DimensionIndex].Category
	for i, c := range model.Categories {
		if c == category {
			session.CategoryIndex = i
			return
		}
	}
}

func (d *Driver) askQuestion(session *model.Session, dim *model.Dimension, prefix string) model.Reply {
	question := dim.Questions[session.QuestionIndex]
	msg := prefix
	if c := questionContext(dim.ID); c != "" {
		msg += c + " "
	}
	msg += question.Text

	return model.Reply{
		Message:     msg,
		State:       model.StateAssessment,
		Suggestions: suggestionsFor(question),
		Question:    &question,
		Dimension:   dim,
		Progress:    d.progress(session),
	}
}

// analyze runs the orchestrator over the collected answers. On failure
// the session still completes with the fallback message.
func (d *Driver) analyze(ctx context.Context, session *model.Session) model.Reply {
	data := model.AssessmentData{
		OrganizationID: session.OrganizationID,
		Responses:      session.Responses,
		Context:        session.Context,
	}

	result, err := d.orc.Assess(ctx, data)
	session.State = model.StateCompleted
	if err != nil {
		d.log.Error(ctx, "assessment analysis failed",
			logger.String("session", session.ID), logger.Err(err))
		return model.Reply{
			Message:     fallbackMessage,
			State:       model.StateCompleted,
			Suggestions: []string{"Book Consultation", "Email Results"},
		}
	}

	return model.Reply{
		Message: fmt.Sprintf("Assessment complete! Your organization is at Level %d: %s. This places you %s. Would you like to see your detailed results and personalized roadmap?",
			result.MaturityLevel, result.MaturityDetails.Name, maturityContext(result.MaturityLevel)),
		State:       model.StateCompleted,
		Suggestions: []string{"Show Full Report", "Key Recommendations", "Next Steps", "Book Consultation"},
		Result:      result,
		Progress:    d.progress(session),
	}
}

func (d *Driver) progress(session *model.Session) *model.Progress {
	p := &model.Progress{
		CurrentCategory:     session.CategoryIndex,
		TotalCategories:     len(model.Categories),
		CompletedDimensions: session.DimensionIndex,
		TotalDimensions:     len(catalog.Dimensions),
		AnsweredQuestions:   len(session.Responses),
		TotalQuestions:      catalog.TotalQuestions(),
	}
	if session.DimensionIndex < len(catalog.Dimensions) {
		p.CurrentDimension = catalog.Dimensions[session.DimensionIndex].Name
	}
	return p
}

// questionContext adds a line of framing for selected dimensions
func questionContext(dimensionID string) string {
	switch dimensionID {
	case "tech_infrastructure":
		return "This helps us understand your technical foundation."
	case "data_quality":
		return "Data is the fuel for AI, so let's assess your data readiness."
	case "leadership_vision":
		return "Leadership commitment is crucial for AI success."
	case "skills_talent":
		return "Having the right skills is key to AI adoption."
	default:
		return ""
	}
}

func suggestionsFor(q model.Question) []string {
	switch q.Type {
	case model.QuestionTypeScale:
		return []string{"0", "3", "5", "7", "10"}
	case model.QuestionTypeYesNo:
		return []string{"Yes", "No"}
	case model.QuestionTypeMultipleChoice:
		return q.Options
	default:
		return nil
	}
}

func maturityContext(level int) string {
	switch {
	case level <= 2:
		return "in the early stages of AI adoption, with significant growth potential"
	case level <= 5:
		return "on a solid AI journey, ahead of many organizations"
	case level <= 7:
		return "among the AI leaders in your industry"
	default:
		return "at the forefront of AI innovation globally"
	}
}
