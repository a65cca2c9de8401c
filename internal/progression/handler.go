package progression

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesotracker/internal/telemetry/tracing"
	"github.com/2beens/mesotracker/pkg"
)

type SetsRequest struct {
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Week        int         `json:"week"`
	Feedback    []Feedback  `json:"feedback"`
}

type SetsResponse struct {
	MuscleGroup MuscleGroup      `json:"muscleGroup"`
	Week        int              `json:"week"`
	Sets        int              `json:"sets"`
	Landmarks   *VolumeLandmarks `json:"landmarks,omitempty"`
}

type PlanRequest struct {
	Exercises  []string   `json:"exercises"`
	Week       int        `json:"week"`
	TotalWeeks int        `json:"totalWeeks"`
	Feedback   []Feedback `json:"feedback"`
}

type PlanResponse struct {
	Week     int            `json:"week"`
	IsDeload bool           `json:"isDeload"`
	Plan     []ExercisePlan `json:"plan"`
}

type ClassifyResponse struct {
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
}

// Handler exposes the calculator over HTTP. None of the routes need a session.
type Handler struct {
	planner *Planner
}

func NewHandler(planner *Planner) *Handler {
	return &Handler{
		planner: planner,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	progressionRouter := router.PathPrefix("/progression").Subrouter()
	progressionRouter.HandleFunc("/landmarks", handler.HandleLandmarks).Methods("GET", "OPTIONS").Name("progression-landmarks")
	progressionRouter.HandleFunc("/sets", handler.HandleGetSets).Methods("GET", "OPTIONS").Name("progression-sets-get")
	progressionRouter.HandleFunc("/sets", handler.HandlePostSets).Methods("POST").Name("progression-sets-post")
	progressionRouter.HandleFunc("/plan", handler.HandlePlan).Methods("POST", "OPTIONS").Name("progression-plan")
	progressionRouter.HandleFunc("/classify", handler.HandleClassify).Methods("GET", "OPTIONS").Name("progression-classify")
}

func (handler *Handler) HandleLandmarks(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.landmarks")
	defer span.End()

	writeJSON(w, AllLandmarks())
}

func (handler *Handler) HandleGetSets(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.sets.get")
	defer span.End()

	group := strings.TrimSpace(r.URL.Query().Get("group"))
	if group == "" {
		http.Error(w, "error, group empty", http.StatusBadRequest)
		return
	}

	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		http.Error(w, "error, week must be a positive number", http.StatusBadRequest)
		return
	}

	writeJSON(w, setsResponse(ParseMuscleGroup(group), week, nil))
}

func (handler *Handler) HandlePostSets(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.sets.post")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("calculate sets, unmarshal json params: %s", err)
		http.Error(w, "calculate sets failed", http.StatusBadRequest)
		return
	}

	if req.MuscleGroup == "" {
		http.Error(w, "error, muscle group empty", http.StatusBadRequest)
		return
	}
	if req.Week < 1 {
		http.Error(w, "error, week must be a positive number", http.StatusBadRequest)
		return
	}
	if err := ValidateFeedback(req.Feedback); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, setsResponse(ParseMuscleGroup(string(req.MuscleGroup)), req.Week, req.Feedback))
}

func (handler *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.plan")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("plan week, unmarshal json params: %s", err)
		http.Error(w, "plan week failed", http.StatusBadRequest)
		return
	}

	if len(req.Exercises) == 0 {
		http.Error(w, "error, exercises empty", http.StatusBadRequest)
		return
	}
	if req.Week < 1 {
		http.Error(w, "error, week must be a positive number", http.StatusBadRequest)
		return
	}
	if req.TotalWeeks != 0 && req.TotalWeeks < req.Week {
		http.Error(w, "error, total weeks less than week", http.StatusBadRequest)
		return
	}
	if err := ValidateFeedback(req.Feedback); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, PlanResponse{
		Week:     req.Week,
		IsDeload: handler.planner.Deload.IsDeloadWeek(req.Week, req.TotalWeeks),
		Plan:     handler.planner.PlanWeek(req.Exercises, req.Week, req.TotalWeeks, req.Feedback),
	})
}

func (handler *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.classify")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	classifier := handler.planner.Classifier
	if classifier == nil {
		classifier = DefaultClassifier
	}

	writeJSON(w, ClassifyResponse{
		Name:        name,
		MuscleGroup: classifier.Classify(name),
	})
}

func setsResponse(mg MuscleGroup, week int, feedback []Feedback) SetsResponse {
	resp := SetsResponse{
		MuscleGroup: mg,
		Week:        week,
		Sets:        CalculateSets(mg, week, feedback),
	}
	if lm, ok := LandmarksFor(mg); ok {
		resp.Landmarks = &lm
	}
	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
