package demo

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
)

// maxTaxPercent is the audit tax ceiling; at or above it the audit check
// fails.
const maxTaxPercent = 3.0

// Server is a stub scoring service backed by the scenario fixtures. It
// speaks the real wire contract on /extract, /score and /rank and applies
// the real pre-filter thresholds, but computes no scores: passing tokens get
// their scenario's fixture scores, ranked rows get deterministic ones.
type Server struct {
	log       zerolog.Logger
	scenarios map[string]Scenario
	router    chi.Router
}

// NewServer builds the stub with all fixture scenarios loaded.
func NewServer(log zerolog.Logger) *Server {
	s := &Server{
		log:       log.With().Str("component", "demo-server").Logger(),
		scenarios: ScenarioByAddress(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Post("/extract", s.handleExtract)
	r.Post("/score", s.handleScore)
	r.Post("/rank", s.handleRank)

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	})
}

type extractRequest struct {
	TokenAddress string `json:"token_address"`
}

type extractResponse struct {
	Success bool         `json:"success"`
	Data    *extractData `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

type extractData struct {
	CombinedData domain.RawTokenRecord `json:"combined_data"`
	ScoringData  *domain.MetricsBundle `json:"scoring_data,omitempty"`
	Coverage     coveragePayload       `json:"coverage"`
}

type coveragePayload struct {
	Percentage float64 `json:"percentage"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TokenAddress == "" {
		writeValidationDetail(w, "token_address is required")
		return
	}

	scenario, ok := s.scenarios[req.TokenAddress]
	if !ok {
		// Logical failure, not a transport one: HTTP 200 with success=false.
		writeJSON(w, http.StatusOK, extractResponse{
			Success: false,
			Message: "No data found for token",
		})
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Success: true,
		Data: &extractData{
			CombinedData: scenario.Token,
			ScoringData:  scenario.Metrics,
			Coverage:     coveragePayload{Percentage: scenario.Coverage},
		},
	})
}

type scoreRequest struct {
	Token   domain.ReconciledTokenRecord `json:"token"`
	Metrics *domain.MetricsBundle        `json:"metrics,omitempty"`
}

type scoreResponse struct {
	PassedPrefilter      bool               `json:"passed_prefilter"`
	FailedChecks         []string           `json:"failed_checks"`
	Total                float64            `json:"total"`
	Momentum             float64            `json:"momentum"`
	SmartMoney           float64            `json:"smart_money"`
	Sentiment            float64            `json:"sentiment"`
	Event                float64            `json:"event"`
	NewScores            map[string]float64 `json:"new_scores,omitempty"`
	TrenchReportMarkdown string             `json:"trench_report_markdown,omitempty"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token.Address == "" {
		writeValidationDetail(w, "token.token_address is required")
		return
	}

	failed := evaluatePrefilter(req.Token)
	if len(failed) > 0 {
		s.log.Info().
			Str("token", req.Token.Address).
			Strs("failed_checks", failed).
			Msg("Pre-filter rejected token")
		writeJSON(w, http.StatusOK, scoreResponse{
			PassedPrefilter: false,
			FailedChecks:    failed,
		})
		return
	}

	scores := s.fixtureScores(req.Token.Address)
	writeJSON(w, http.StatusOK, scoreResponse{
		PassedPrefilter:      true,
		FailedChecks:         []string{},
		Total:                scores.Total,
		Momentum:             scores.Momentum,
		SmartMoney:           scores.SmartMoney,
		Sentiment:            scores.Sentiment,
		Event:                scores.Event,
		NewScores:            scores.Timeframes,
		TrenchReportMarkdown: scores.ReportMarkdown,
	})
}

// fixtureScores returns the scenario's canned scores, or a neutral bundle
// for tokens outside the fixture set that still clear the pre-filter.
func (s *Server) fixtureScores(address string) domain.ScoreBundle {
	if scenario, ok := s.scenarios[address]; ok && scenario.Scores.Total != 0 {
		return scenario.Scores
	}
	return domain.ScoreBundle{
		Total:      50,
		Momentum:   50,
		SmartMoney: 50,
		Sentiment:  50,
		Event:      50,
		Timeframes: map[string]float64{"5m": 50, "15m": 50, "30m": 50, "1h": 50},
	}
}

// evaluatePrefilter applies the product's safety thresholds to a reconciled
// record. The returned identifiers follow the canonical check order. An
// unknown bundle percentage does not fail the bundle check.
func evaluatePrefilter(t domain.ReconciledTokenRecord) []string {
	var failed []string

	if t.AgeMinutes < 60 {
		failed = append(failed, "age_gt_1h")
	}
	if t.Audit.IsHoneypot || t.Audit.HasBlacklist ||
		t.Audit.BuyTaxPercent >= maxTaxPercent || t.Audit.SellTaxPercent >= maxTaxPercent {
		failed = append(failed, "degen_audit_pass")
	}
	if t.LiquidityLockedPercent < 100 {
		failed = append(failed, "liquidity_locked_100")
	}
	if t.Volume5mUSD < 5000 {
		failed = append(failed, "volume_5m_usd_gte_5000")
	}
	if t.HoldersCount <= 100 {
		failed = append(failed, "holders_gt_100")
	}
	if t.LPCount <= 1 {
		failed = append(failed, "lp_count_gt_1")
	}
	if t.LPMcapRatio <= 0.02 {
		failed = append(failed, "lp_mcap_ratio_gt_002")
	}
	if t.Top10HoldersPercent >= 30 {
		failed = append(failed, "top10_pct_lt_30")
	}
	if t.BundlePercent != nil && *t.BundlePercent >= 40 {
		failed = append(failed, "bundle_pct_lt_40")
	}

	return failed
}

type rankRequest struct {
	Tab  domain.RankingTab   `json:"tab"`
	Rows []domain.RankingRow `json:"rows"`
}

type rankResponse struct {
	Tab  domain.RankingTab   `json:"tab"`
	Rows []domain.RankingRow `json:"rows"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Rows) == 0 {
		writeValidationDetail(w, "rows must not be empty")
		return
	}

	ranked := rankRows(req.Rows)
	writeJSON(w, http.StatusOK, rankResponse{Tab: req.Tab, Rows: ranked})
}

// rankRows orders rows by market-cap growth and assigns descending fixture
// scores. The ordering is stable so equal growth keeps submission order.
func rankRows(rows []domain.RankingRow) []domain.RankingRow {
	ranked := make([]domain.RankingRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].McChangePct > ranked[j].McChangePct
	})

	for i := range ranked {
		score := 95.0 - 5.0*float64(i)
		if score < 0 {
			score = 0
		}
		ranked[i].Score = floatPtr(score)
	}

	return ranked
}

// writeValidationDetail emits the list-shaped error body used for request
// validation failures.
func writeValidationDetail(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"detail": []map[string]string{{"msg": msg}},
	})
}

// writeDetail emits the string-shaped error body.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already gone; nothing useful left to send.
		return
	}
}
