// Package orchestrator fans an assessment out to the analysis agents,
// aggregates their output into a single report, and caches the result.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"aimaturity/internal/agent"
	"aimaturity/internal/cache"
	"aimaturity/internal/config"
	"aimaturity/internal/model"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
)

// ErrAssessmentUnavailable is returned when every agent failed and no
// report can be produced.
var ErrAssessmentUnavailable = errors.New("assessment unavailable: all agents failed")

// Orchestrator runs the full multi-agent assessment
type Orchestrator interface {
	// Assess produces a maturity report for the given data. Identical
	// input replays the cached report.
	Assess(ctx context.Context, data model.AssessmentData) (*model.AssessmentResult, error)
}

type orchestrator struct {
	agents       []agent.Agent
	results      cache.ResultCache
	log          logger.Logger
	metrics      *metrics.Manager
	thresholds   config.Thresholds
	roi          config.ROIFactors
	agentTimeout time.Duration
}

// New creates an orchestrator over the given agent roster
func New(agents []agent.Agent, results cache.ResultCache, log logger.Logger, m *metrics.Manager, cfg *config.Config) Orchestrator {
	return &orchestrator{
		agents:       agents,
		results:      results,
		log:          log.Named("orchestrator"),
		metrics:      m,
		thresholds:   cfg.Thresholds,
		roi:          cfg.ROI,
		agentTimeout: cfg.AgentTimeout,
	}
}

func (o *orchestrator) Assess(ctx context.Context, data model.AssessmentData) (*model.AssessmentResult, error) {
	start := time.Now()
	o.metrics.AssessmentsStarted.Inc()

	key := Fingerprint(data)
	if cached, err := o.results.Get(ctx, key); err != nil {
		o.log.Warn(ctx, "result cache lookup failed", logger.Err(err))
	} else if cached != nil {
		o.metrics.CacheHits.Inc()
		o.log.Debug(ctx, "serving cached assessment",
			logger.String("organization", data.OrganizationID))
		return cached, nil
	}
	o.metrics.CacheMisses.Inc()

	analyses := o.runAgents(ctx, data)
	if len(analyses) == 0 {
		o.metrics.AssessmentsFailed.Inc()
		return nil, ErrAssessmentUnavailable
	}

	result := o.synthesize(data, analyses)

	if err := o.results.Set(ctx, key, result); err != nil {
		o.log.Warn(ctx, "result cache store failed", logger.Err(err))
	}

	o.metrics.AssessmentsCompleted.Inc()
	o.metrics.ObserveOrchestration(start)
	o.log.Info(ctx, "assessment completed",
		logger.String("organization", data.OrganizationID),
		logger.Int("maturityLevel", result.MaturityLevel),
		logger.Int("agents", len(analyses)))

	return result, nil
}

// runAgents executes every agent concurrently and returns the analyses
// that succeeded. A failing or panicking agent is logged and skipped;
// it never takes the run down with it.
func (o *orchestrator) runAgents(ctx context.Context, data model.AssessmentData) []model.AgentAnalysis {
	var (
		mu       sync.Mutex
		analyses []model.AgentAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range o.agents {
		a := a
		g.Go(func() error {
			analysis, err := o.runAgent(gctx, a, data)
			if err != nil {
				o.metrics.AgentFailures.WithLabelValues(a.ID()).Inc()
				o.log.Error(gctx, "agent analysis failed",
					logger.String("agent", a.ID()), logger.Err(err))
				return nil
			}
			mu.Lock()
			analyses = append(analyses, analysis)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return analyses
}

// runAgent applies the per-agent timeout and converts a panic into an error
func (o *orchestrator) runAgent(ctx context.Context, a agent.Agent, data model.AssessmentData) (analysis model.AgentAnalysis, err error) {
	if o.agentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.agentTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent %s panicked: %v", a.ID(), r)
		}
	}()
	return a.Analyze(ctx, data)
}
