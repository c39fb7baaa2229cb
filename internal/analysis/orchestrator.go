// Package analysis drives the single-token workflow: extract from the
// scoring backend, reconcile missing fields, score, and build the
// presentation view model. The orchestrator is the only writer of the
// current analysis result.
package analysis

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/clients/scoring"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/ranking"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/reconcile"
)

// State names the orchestrator's position in the workflow.
type State string

const (
	StateIdle        State = "idle"
	StateExtracting  State = "extracting"
	StateReconciling State = "reconciling"
	StateScoring     State = "scoring"
	StateRendered    State = "rendered"
)

// Stage names the step a failure occurred in.
type Stage string

const (
	StageValidate Stage = "validate"
	StageExtract  Stage = "extract"
	StageScore    Stage = "score"
	StageRank     Stage = "rank"
)

// lowCoverageThreshold is the percentage below which a non-fatal warning is
// emitted. Analysis is never blocked on low coverage; defaults fill the gaps.
const lowCoverageThreshold = 10.0

// Collaborator is the scoring backend surface the orchestrator depends on.
// *scoring.Client satisfies it.
type Collaborator interface {
	Extract(ctx context.Context, address domain.TokenIdentifier) (*scoring.ExtractData, error)
	Score(ctx context.Context, token domain.ReconciledTokenRecord, metrics *domain.MetricsBundle) (*scoring.ScoreResult, error)
	Rank(ctx context.Context, tab domain.RankingTab, rows []domain.RankingRow) (*scoring.RankResult, error)
}

// Hooks are optional observation points for progressive disclosure. All
// callbacks are invoked synchronously from the run's goroutine and only for
// the run that currently owns the orchestrator (stale runs are silent).
// Callbacks must not call back into the orchestrator.
type Hooks struct {
	// OnState fires on every state transition.
	OnState func(State)
	// OnCoverage fires as soon as extraction returns, before scoring starts.
	OnCoverage func(percent float64, bucket domain.CoverageBucket)
	// OnWarning fires for non-fatal conditions such as low coverage.
	OnWarning func(message string)
}

// Orchestrator sequences extract → reconcile → score for one token at a
// time. A new submission supersedes the in-flight run: the old run's context
// is cancelled and its eventual completion is discarded ("cancel wins").
type Orchestrator struct {
	client Collaborator
	hooks  Hooks
	log    zerolog.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	current    *ScoreView
}

// New creates an orchestrator in the Idle state.
func New(client Collaborator, hooks Hooks, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		client: client,
		hooks:  hooks,
		log:    log.With().Str("component", "orchestrator").Logger(),
		state:  StateIdle,
	}
}

// State returns the current workflow state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Current returns the most recent rendered result, if any. Failed runs leave
// the previous result untouched.
func (o *Orchestrator) Current() *ScoreView {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Analyze runs the full single-token workflow. It blocks until the run
// completes, fails, or is superseded by a newer submission. Failures come
// back as *Notification; superseded runs return ErrSuperseded.
func (o *Orchestrator) Analyze(ctx context.Context, input string) (*ScoreView, error) {
	token, ok := domain.NewTokenIdentifier(input)
	if !ok {
		// Rejected before any network call; state stays Idle.
		return nil, &Notification{
			Kind:    KindValidation,
			Stage:   StageValidate,
			Message: "Please enter a token address",
		}
	}

	runCtx, gen := o.begin(ctx)
	defer o.cancelIfCurrent(gen)

	runLog := o.log.With().
		Str("run_id", uuid.NewString()).
		Str("token", token.String()).
		Logger()
	runLog.Info().Msg("Analysis started")

	// Extract.
	extracted, err := o.client.Extract(runCtx, token)
	if err != nil {
		return nil, o.fail(gen, runLog, StageExtract, err)
	}
	if !o.transition(gen, StateReconciling) {
		return nil, ErrSuperseded
	}

	// Reconcile. Coverage is disclosed to the caller before scoring starts.
	coverage := extracted.Coverage.Percentage
	o.notifyCoverage(gen, coverage)
	lowCoverage := coverage < lowCoverageThreshold
	if lowCoverage {
		runLog.Warn().Float64("coverage_pct", coverage).Msg("Low extraction coverage, continuing with defaults")
		o.notifyWarning(gen, "Limited data available. Running with defaults.")
	}

	reconciled := reconcile.Resolve(extracted.CombinedData)
	if reconciled.Address == "" {
		reconciled.Address = token.String()
	}

	if !o.transition(gen, StateScoring) {
		return nil, ErrSuperseded
	}

	// Score. Extract always completes before this point; scoring is never
	// issued speculatively.
	result, err := o.client.Score(runCtx, reconciled, extracted.ScoringData)
	if err != nil {
		return nil, o.fail(gen, runLog, StageScore, err)
	}

	view := buildScoreView(reconciled, coverage, lowCoverage, result.Outcome, result.Scores)
	if !o.render(gen, view) {
		return nil, ErrSuperseded
	}

	runLog.Info().
		Bool("passed_prefilter", view.Passed()).
		Float64("coverage_pct", view.CoveragePercent).
		Msg("Analysis rendered")

	return view, nil
}

// Rank submits rows for ranking and builds the comparison view. Ranking is
// independent of the single-token state machine and does not supersede it.
func (o *Orchestrator) Rank(ctx context.Context, tab domain.RankingTab, rows []domain.RankingRow) (ranking.RankingView, error) {
	result, err := o.client.Rank(ctx, tab, rows)
	if err != nil {
		return ranking.RankingView{}, classify(StageRank, err)
	}
	return ranking.BuildView(result.Tab, result.Rows), nil
}

// begin claims the orchestrator for a new run: cancels any in-flight run,
// bumps the generation and enters Extracting.
func (o *Orchestrator) begin(ctx context.Context) (context.Context, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}

	o.generation++
	gen := o.generation

	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.state = StateExtracting
	o.fireState(StateExtracting)

	return runCtx, gen
}

// cancelIfCurrent releases the run's context when it is still the owner.
func (o *Orchestrator) cancelIfCurrent(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen == o.generation && o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

// transition moves to the next state if the run still owns the orchestrator.
func (o *Orchestrator) transition(gen uint64, next State) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		return false
	}
	o.state = next
	o.fireState(next)
	return true
}

// render publishes a completed view. A stale run never overwrites the state
// produced by a newer one.
func (o *Orchestrator) render(gen uint64, view *ScoreView) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		return false
	}
	o.current = view
	o.state = StateRendered
	o.fireState(StateRendered)
	return true
}

// fail classifies the error, returns to Idle and reports the notification.
// Stale runs are discarded instead. The previous rendered result survives.
func (o *Orchestrator) fail(gen uint64, log zerolog.Logger, stage Stage, err error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		return ErrSuperseded
	}

	notification := classify(stage, err)
	log.Warn().
		Err(err).
		Str("stage", string(stage)).
		Str("kind", string(notification.Kind)).
		Msg("Analysis failed")

	o.state = StateIdle
	o.fireState(StateIdle)
	return notification
}

func (o *Orchestrator) notifyCoverage(gen uint64, pct float64) {
	o.mu.Lock()
	current := gen == o.generation
	hook := o.hooks.OnCoverage
	o.mu.Unlock()
	if current && hook != nil {
		hook(domain.ClampCoverage(pct), domain.BucketCoverage(pct))
	}
}

func (o *Orchestrator) notifyWarning(gen uint64, message string) {
	o.mu.Lock()
	current := gen == o.generation
	hook := o.hooks.OnWarning
	o.mu.Unlock()
	if current && hook != nil {
		hook(message)
	}
}

// fireState is called with the mutex held.
func (o *Orchestrator) fireState(s State) {
	if o.hooks.OnState != nil {
		o.hooks.OnState(s)
	}
}
