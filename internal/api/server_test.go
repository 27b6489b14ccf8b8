package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	return NewServer(0, "intermediate", nil, nil)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["status"]; got != "ok" {
		t.Errorf("status field = %v", got)
	}
}

func TestStatus(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bpsim/status", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	body := decodeBody(t, rec)
	if body["agent"] != "bpsim" {
		t.Errorf("agent = %v", body["agent"])
	}
}

func TestAdjudicateFullRound(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/adjudicate", map[string]any{
		"motion":   "This house would ban private schools",
		"userRole": "LO",
		"speeches": []map[string]any{
			{"role": "PM", "content": "We define this ban clearly. First argument: the mechanism works because enforcement is simple. The impact matters for vulnerable communities.", "isAI": true},
			{"role": "LO", "content": "However, the government's evidence is weak. My first argument concerns rights and freedom. Therefore the impact on people is significant.", "isAI": false},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)

	ranking, ok := body["ranking"].([]any)
	if !ok || len(ranking) != 4 {
		t.Fatalf("ranking = %v", body["ranking"])
	}
	if body["roundId"] == "" {
		t.Error("expected a round id")
	}
	if !strings.Contains(body["methodology"].(string), "Matrix-based") {
		t.Errorf("methodology = %v", body["methodology"])
	}
	scores, ok := body["teamScores"].(map[string]any)
	if !ok || len(scores) != 4 {
		t.Fatalf("teamScores = %v", body["teamScores"])
	}
}

func TestAdjudicateNoUserSpeechReturnsDefault(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/adjudicate", map[string]any{
		"motion":   "This house would ban private schools",
		"userRole": "LO",
		"speeches": []map[string]any{
			{"role": "PM", "content": "An AI speech.", "isAI": true},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)

	want := []string{"OG", "OO", "CG", "CO"}
	ranking := body["ranking"].([]any)
	for i, team := range want {
		if ranking[i] != team {
			t.Errorf("ranking[%d] = %v, want %s", i, ranking[i], team)
		}
	}
	if body["feedback"] != "Unable to analyze speech properly. Please try again." {
		t.Errorf("feedback = %v", body["feedback"])
	}
}

func TestComprehensiveFeedback(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/comprehensive-feedback", map[string]any{
		"motion":   "This house would ban fossil fuel advertising",
		"userRole": "LO",
		"userSpeech": "However, the government framework fails. The mechanism cannot be enforced " +
			"and the impact on vulnerable communities is severe because businesses will relocate.",
		"debatePhase": "opening",
		"speeches": []map[string]any{
			{"role": "PM", "content": "We define the ban and our framework rests on harm prevention. The mechanism works through enforcement and the impact protects people.", "isAI": true},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)

	if clashes, ok := body["clashPoints"].([]any); !ok || len(clashes) > 3 {
		t.Errorf("clashPoints = %v", body["clashPoints"])
	}
	teamFeedback, ok := body["teamFeedback"].([]any)
	if !ok || len(teamFeedback) != 2 {
		t.Fatalf("teamFeedback = %v", body["teamFeedback"])
	}
	first := teamFeedback[0].(map[string]any)
	if first["team"] != "Government" {
		t.Errorf("first team = %v", first["team"])
	}
	if body["methodology"] != feedbackMethodology {
		t.Errorf("methodology = %v", body["methodology"])
	}
	progression := body["debateProgression"].(map[string]any)
	if progression["totalSpeeches"] != float64(2) {
		t.Errorf("totalSpeeches = %v", progression["totalSpeeches"])
	}
}

func TestGeneratePOIOutsideWindow(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/generate-poi", map[string]any{
		"currentTranscript": "My first argument is about the economy",
		"role":              "PM",
		"motion":            "This house would ban private schools",
		"timeSpoken":        30,
		"skillLevel":        "beginner",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if poi, present := body["poi"]; !present || poi != nil {
		t.Errorf("poi = %v, want null", poi)
	}
}

func TestGeneratePOIBeginnerTemplate(t *testing.T) {
	beginnerTemplates := map[string]bool{
		"Can you give us a specific example of that?": true,
		"How do you know that's actually true?":       true,
		"What about people who disagree with you?":    true,
		"Isn't that just your opinion?":               true,
		"Can you prove that will really happen?":      true,
	}

	s := newTestServer()
	rec := postJSON(t, s, "/generate-poi", map[string]any{
		"currentTranscript": "My first argument is about fairness in the school system",
		"role":              "PM",
		"motion":            "This house would ban private schools",
		"timeSpoken":        120,
		"skillLevel":        "beginner",
	})

	body := decodeBody(t, rec)
	poi, ok := body["poi"].(string)
	if !ok {
		t.Fatalf("poi = %v", body["poi"])
	}
	if !beginnerTemplates[poi] {
		t.Errorf("poi %q is not a beginner template", poi)
	}
}

func TestGeneratePOITranscriptOverride(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/generate-poi", map[string]any{
		"currentTranscript": "For example, consider Finland's school reforms",
		"role":              "PM",
		"motion":            "This house would ban private schools",
		"timeSpoken":        120,
		"skillLevel":        "beginner",
	})

	body := decodeBody(t, rec)
	if body["poi"] != "Can you give us a different example that proves the same point?" {
		t.Errorf("poi = %v", body["poi"])
	}
}

func TestGenerateSpeechRequiresUserSpeech(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/generate-speech", map[string]any{
		"motion": "This house would ban private schools",
		"role":   "DPM",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "User must speak first" {
		t.Errorf("error = %v", decodeBody(t, rec)["error"])
	}
}

func TestGenerateSpeech(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/generate-speech", map[string]any{
		"motion":     "This house would ban private schools",
		"role":       "LO",
		"userSpeech": "We propose this ban because the economic harm to social mobility is severe.",
		"previousSpeeches": []map[string]any{
			{"role": "PM", "content": "We propose this ban because the economic harm to social mobility is severe.", "isAI": false},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	generated, ok := body["speech"].(string)
	if !ok || len(generated) < 200 {
		t.Errorf("speech too short or missing: %v", body["speech"])
	}
	if body["skillLevel"] != "intermediate" {
		t.Errorf("skillLevel = %v, want default intermediate", body["skillLevel"])
	}
}

func TestGenerateEngagedSpeech(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/generate-speech-with-engagement", map[string]any{
		"motion":     "This house would ban private schools",
		"role":       "LO",
		"userSpeech": "My first argument is economic. My second argument concerns rights and freedom.",
		"previousSpeeches": []map[string]any{
			{"role": "PM", "content": "My first argument is economic. My second argument concerns rights and freedom.", "isAI": false},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if generated, ok := body["speech"].(string); !ok || generated == "" {
		t.Error("expected a generated speech")
	}
	if state, ok := body["debateState"].(string); !ok || state == "" {
		t.Error("expected a debate state summary")
	}
	if _, ok := body["engagementQuality"].(map[string]any); !ok {
		t.Errorf("engagementQuality = %v", body["engagementQuality"])
	}
	if _, present := body["clashPoints"]; !present {
		t.Error("expected clashPoints field")
	}
}

func TestProcessPrepNotes(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/process-prep-notes", map[string]any{
		"notes":      "The economic argument matters because markets fail here. Rights are also at stake because freedom of choice erodes.",
		"motion":     "This house would ban private schools",
		"role":       "PM",
		"team":       "OG",
		"skillLevel": "intermediate",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)

	structured, ok := body["structuredCase"].(map[string]any)
	if !ok {
		t.Fatalf("structuredCase = %v", body["structuredCase"])
	}
	args := structured["mainArguments"].([]any)
	if len(args) < 2 || len(args) > 3 {
		t.Errorf("mainArguments count = %d", len(args))
	}
	if _, ok := body["strategicGuidance"].(map[string]any); !ok {
		t.Error("expected strategicGuidance")
	}
	duties, ok := body["roleSpecificDuties"].([]any)
	if !ok || len(duties) == 0 {
		t.Errorf("roleSpecificDuties = %v", body["roleSpecificDuties"])
	}
	if _, ok := body["qualityMetrics"].(map[string]any); !ok {
		t.Error("expected qualityMetrics")
	}
}

func TestStructureNotesValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr string
	}{
		{
			name:    "empty motion",
			payload: map[string]any{"motion": "  ", "role": "PM", "notes": "n"},
			wantErr: "Motion is required and must be a non-empty string.",
		},
		{
			name:    "unknown role",
			payload: map[string]any{"motion": "This house would ban x", "role": "Speaker", "notes": "n"},
			wantErr: "Invalid role provided. Accepted roles are: PM, LO, DPM, DLO, MG, MO, GW, OW.",
		},
		{
			name:    "missing notes",
			payload: map[string]any{"motion": "This house would ban x", "role": "PM"},
			wantErr: "Notes must be a string.",
		},
		{
			name:    "numeric notes",
			payload: map[string]any{"motion": "This house would ban x", "role": "PM", "notes": 42},
			wantErr: "Notes must be a string.",
		},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, "/structure-notes", tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := decodeBody(t, rec)["error"]; got != tt.wantErr {
				t.Errorf("error = %v, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestStructureNotes(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/structure-notes", map[string]any{
		"motion": "This house would ban private schools",
		"role":   "LO",
		"notes":  "Focus on parental choice and the failure of state capacity.",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	structured, ok := decodeBody(t, rec)["structuredNotes"].(string)
	if !ok {
		t.Fatal("expected structuredNotes string")
	}
	for _, section := range []string{
		"STRATEGIC PREPARATION NOTES",
		"MOTION ANALYSIS",
		"ROLE-SPECIFIC STRATEGY",
		"YOUR ORIGINAL NOTES",
	} {
		if !strings.Contains(structured, section) {
			t.Errorf("structured notes missing section %q", section)
		}
	}
}

func TestInvalidJSONReturns400(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/adjudicate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
