package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aimaturity/internal/cache"
	"aimaturity/internal/flow"
	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/internal/repository"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// AssessmentService drives conversational sessions and direct assessment
// runs, persisting completed reports.
type AssessmentService struct {
	driver   *flow.Driver
	orc      orchestrator.Orchestrator
	sessions cache.SessionCache
	results  repository.ResultRepo
	log      logger.Logger
	metrics  *metrics.Manager
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	driver *flow.Driver,
	orc orchestrator.Orchestrator,
	sessions cache.SessionCache,
	results repository.ResultRepo,
	log logger.Logger,
	m *metrics.Manager,
) *AssessmentService {
	return &AssessmentService{
		driver:   driver,
		orc:      orc,
		sessions: sessions,
		results:  results,
		log:      log.Named("assessment"),
		metrics:  m,
	}
}

// StartSession opens a conversational session on the given channel and
// returns it along with the opening message.
func (s *AssessmentService) StartSession(ctx context.Context, channel model.Channel) (*model.Session, model.Reply, error) {
	session := flow.NewSession(channel)
	reply := s.driver.Handle(ctx, session, "")

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, model.Reply{}, err
	}
	s.metrics.ActiveSessions.Inc()
	s.log.Info(ctx, "session started",
		logger.String("session", session.ID),
		logger.String("channel", string(channel)))
	return session, reply, nil
}

// HandleMessage advances the session with one inbound message. When the
// conversation completes with a report, the report is persisted.
func (s *AssessmentService) HandleMessage(ctx context.Context, sessionID, input string) (model.Reply, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Reply{}, err
	}
	if session == nil {
		return model.Reply{}, ErrSessionNotFound
	}

	wasCompleted := session.State == model.StateCompleted
	reply := s.driver.Handle(ctx, session, input)

	if err := s.sessions.Set(ctx, session); err != nil {
		return model.Reply{}, err
	}

	if session.State == model.StateCompleted && !wasCompleted {
		s.metrics.ActiveSessions.Dec()
		if reply.Result != nil {
			s.persist(ctx, reply.Result)
		}
	}
	return reply, nil
}

// GetSession returns the session, or ErrSessionNotFound
func (s *AssessmentService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// RunAssessment executes the orchestrator over a directly supplied answer
// map, bypassing the conversational flow, and persists the report.
func (s *AssessmentService) RunAssessment(ctx context.Context, data model.AssessmentData) (*model.AssessmentResult, error) {
	if data.OrganizationID == "" {
		data.OrganizationID = "org_" + uuid.NewString()
	}

	result, err := s.orc.Assess(ctx, data)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, result)
	return result, nil
}

// GetResult returns an organization's stored report, (nil, nil) if absent
func (s *AssessmentService) GetResult(ctx context.Context, organizationID string) (*model.AssessmentResult, error) {
	return s.results.Get(ctx, organizationID)
}

// ListResults returns the most recent stored reports
func (s *AssessmentService) ListResults(ctx context.Context, limit int64) ([]model.AssessmentResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.results.List(ctx, limit)
}

// persist stores the report; persistence failure must not fail the
// assessment itself, the caller already has the result.
func (s *AssessmentService) persist(ctx context.Context, result *model.AssessmentResult) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if err := s.results.Save(ctx, result); err != nil {
		s.log.Error(ctx, "failed to persist assessment result",
			logger.String("organization", result.OrganizationID), logger.Err(err))
	}
}
