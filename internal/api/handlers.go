package api

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/saminadamn/bp-debate-simulator/internal/adjudicator"
	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
	"github.com/saminadamn/bp-debate-simulator/internal/clash"
	"github.com/saminadamn/bp-debate-simulator/internal/events"
	"github.com/saminadamn/bp-debate-simulator/internal/feedback"
	"github.com/saminadamn/bp-debate-simulator/internal/prep"
	"github.com/saminadamn/bp-debate-simulator/internal/speech"
)

const feedbackMethodology = "Comprehensive analysis based on actual arguments and engagement patterns"

type adjudicateRequest struct {
	Motion     string      `json:"motion"`
	Speeches   []bp.Speech `json:"speeches"`
	UserRole   bp.Role     `json:"userRole"`
	UserSpeech *bp.Speech  `json:"userSpeech,omitempty"`
}

func (s *Server) adjudicate(w http.ResponseWriter, r *http.Request) {
	var req adjudicateRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := adjudicator.Adjudicate(req.Motion, req.Speeches, req.UserRole, req.UserSpeech)
	slog.Info("adjudicated", "round", result.RoundID, "clashes", len(result.Clashes))

	if err := s.publisher.Publish(events.SubjectRoundAdjudicated, events.RoundAdjudicated{
		RoundID:  result.RoundID,
		Motion:   req.Motion,
		UserRole: string(req.UserRole),
		Ranking:  teamCodes(result.Ranking),
	}); err != nil {
		slog.Warn("publish adjudication event", "error", err)
	}

	s.respond(w, http.StatusOK, result)
}

func teamCodes(teams []bp.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = string(t)
	}
	return out
}

type comprehensiveFeedbackRequest struct {
	Motion      string      `json:"motion"`
	Speeches    []bp.Speech `json:"speeches"`
	UserRole    bp.Role     `json:"userRole"`
	UserSpeech  string      `json:"userSpeech"`
	DebatePhase string      `json:"debatePhase"`
}

type comprehensiveFeedbackResponse struct {
	ClashPoints              []clash.Point            `json:"clashPoints"`
	TeamFeedback             []feedback.TeamFeedback  `json:"teamFeedback"`
	DebateProgression        feedback.Progression     `json:"debateProgression"`
	StrategicRecommendations feedback.Recommendations `json:"strategicRecommendations"`
	DebateQuality            feedback.DebateQuality   `json:"debateQuality"`
	Methodology              string                   `json:"methodology"`
}

func (s *Server) comprehensiveFeedback(w http.ResponseWriter, r *http.Request) {
	var req comprehensiveFeedbackRequest
	if !s.decode(w, r, &req) {
		return
	}

	gov := analysis.ProfileSide(benchSpeeches(req.Speeches, req.UserSpeech, req.UserRole, bp.Government), req.Motion)
	opp := analysis.ProfileSide(benchSpeeches(req.Speeches, req.UserSpeech, req.UserRole, bp.Opposition), req.Motion)
	clashes := clash.IdentifySignificant(req.Motion, gov, opp)

	slog.Info("comprehensive feedback", "phase", req.DebatePhase, "clashes", len(clashes))

	s.respond(w, http.StatusOK, comprehensiveFeedbackResponse{
		ClashPoints:              clashes,
		TeamFeedback:             feedback.BothTeams(req.Speeches, req.UserSpeech, req.UserRole, clashes),
		DebateProgression:        feedback.Progress(req.Speeches),
		StrategicRecommendations: feedback.Recommend(clashes, req.UserRole),
		DebateQuality:            feedback.Quality(),
		Methodology:              feedbackMethodology,
	})
}

// benchSpeeches collects one side's material for profiling: the AI
// speeches on that bench plus the user's transcript when they sit there.
func benchSpeeches(speeches []bp.Speech, userSpeech string, userRole bp.Role, side bp.Side) []bp.Speech {
	var out []bp.Speech
	for _, sp := range speeches {
		if sp.IsAI && sp.Role.Side() == side {
			out = append(out, sp)
		}
	}
	if userSpeech != "" && userRole.Side() == side {
		out = append(out, bp.Speech{Role: userRole, Content: userSpeech})
	}
	return out
}

type poiRequest struct {
	CurrentTranscript string `json:"currentTranscript"`
	Role              string `json:"role"`
	Motion            string `json:"motion"`
	TimeSpoken        int    `json:"timeSpoken"`
	SkillLevel        string `json:"skillLevel"`
}

func (s *Server) generatePOI(w http.ResponseWriter, r *http.Request) {
	var req poiRequest
	if !s.decode(w, r, &req) {
		return
	}

	gen := speech.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	poi, ok := gen.POI(req.CurrentTranscript, req.TimeSpoken, s.skillOrDefault(req.SkillLevel))
	if !ok {
		s.respond(w, http.StatusOK, map[string]any{"poi": nil})
		return
	}

	if s.ai != nil {
		prompt := speech.POIPrompt(req.CurrentTranscript, req.Role, req.Motion, req.TimeSpoken, s.skillOrDefault(req.SkillLevel))
		if generated, err := s.ai.Generate(r.Context(), prompt, 200); err == nil {
			poi = strings.TrimSpace(generated)
		} else {
			slog.Warn("poi generation fell back to template", "error", err)
		}
	}

	s.respond(w, http.StatusOK, map[string]any{"poi": poi})
}

type generateSpeechRequest struct {
	Motion           string          `json:"motion"`
	Role             bp.Role         `json:"role"`
	PreviousSpeeches []bp.Speech     `json:"previousSpeeches"`
	UserNotes        string          `json:"userNotes"`
	UserSkillLevel   string          `json:"userSkillLevel"`
	UserSpeech       string          `json:"userSpeech"`
	StructuredCase   json.RawMessage `json:"structuredCase,omitempty"`
}

func (s *Server) generateSpeech(w http.ResponseWriter, r *http.Request) {
	var req generateSpeechRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.UserSpeech == "" {
		s.respondError(w, http.StatusBadRequest, "User must speak first")
		return
	}

	skill := s.skillOrDefault(req.UserSkillLevel)
	ctx := s.speechContext(req, skill)

	gen := speech.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	generated := gen.Speech(req.Role, ctx)

	if s.ai != nil {
		state := speech.DebateState(req.Motion, req.PreviousSpeeches, req.UserSpeech, req.Role)
		prompt := speech.SpeechPrompt(ctx, req.Role.Name(), state)
		if aiSpeech, err := s.ai.Generate(r.Context(), prompt, 2000); err == nil {
			generated = aiSpeech
		} else {
			slog.Warn("speech generation fell back to template", "role", req.Role, "error", err)
		}
	}

	s.publishSpeech(req.Motion, req.Role, skill, false)

	s.respond(w, http.StatusOK, map[string]string{
		"speech":     generated,
		"skillLevel": skill,
	})
}

func (s *Server) generateEngagedSpeech(w http.ResponseWriter, r *http.Request) {
	var req generateSpeechRequest
	if !s.decode(w, r, &req) {
		return
	}

	skill := s.skillOrDefault(req.UserSkillLevel)
	ctx := s.speechContext(req, skill)

	gen := speech.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	result := gen.EngagedSpeech(req.Role, ctx)

	s.publishSpeech(req.Motion, req.Role, skill, true)

	s.respond(w, http.StatusOK, result)
}

func (s *Server) speechContext(req generateSpeechRequest, skill string) speech.Context {
	notes := req.UserNotes
	if notes == "" && len(req.StructuredCase) > 0 {
		// Clients that ran prep first send the processed case in place
		// of raw notes.
		notes = string(req.StructuredCase)
	}
	return speech.Context{
		Motion:        req.Motion,
		UserRole:      req.Role,
		UserSpeech:    req.UserSpeech,
		UserArguments: analysis.KeywordClassifier{}.Classify(req.UserSpeech),
		Previous:      req.PreviousSpeeches,
		SkillLevel:    skill,
		Notes:         notes,
	}
}

func (s *Server) publishSpeech(motion string, role bp.Role, skill string, engaged bool) {
	if err := s.publisher.Publish(events.SubjectSpeechGenerated, events.SpeechGenerated{
		Motion:     motion,
		Role:       string(role),
		SkillLevel: skill,
		Engaged:    engaged,
	}); err != nil {
		slog.Warn("publish speech event", "error", err)
	}
}

func (s *Server) skillOrDefault(skill string) string {
	if skill == "" {
		return s.defaultSkill
	}
	return skill
}

type prepNotesRequest struct {
	Notes      string  `json:"notes"`
	Motion     string  `json:"motion"`
	Role       bp.Role `json:"role"`
	Team       string  `json:"team"`
	SkillLevel string  `json:"skillLevel"`
}

func (s *Server) processPrepNotes(w http.ResponseWriter, r *http.Request) {
	var req prepNotesRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := prep.ProcessNotes(req.Notes, req.Motion, req.Role, s.skillOrDefault(req.SkillLevel))
	slog.Info("prep notes processed", "role", req.Role, "arguments", len(result.StructuredCase.MainArguments))

	s.respond(w, http.StatusOK, result)
}

type structureNotesRequest struct {
	Motion string          `json:"motion"`
	Role   bp.Role         `json:"role"`
	Notes  json.RawMessage `json:"notes"`
}

func (s *Server) structureNotes(w http.ResponseWriter, r *http.Request) {
	var req structureNotesRequest
	if !s.decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Motion) == "" {
		s.respondError(w, http.StatusBadRequest, "Motion is required and must be a non-empty string.")
		return
	}
	if !req.Role.Valid() {
		s.respondError(w, http.StatusBadRequest, "Invalid role provided. Accepted roles are: "+prep.AcceptedRoles()+".")
		return
	}
	var notes string
	if len(req.Notes) == 0 || json.Unmarshal(req.Notes, &notes) != nil {
		s.respondError(w, http.StatusBadRequest, "Notes must be a string.")
		return
	}

	s.respond(w, http.StatusOK, map[string]string{
		"structuredNotes": prep.StructuredNotes(req.Motion, req.Role, notes),
	})
}
