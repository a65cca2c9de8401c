package mesocycles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesotracker/internal/auth"
	"github.com/2beens/mesotracker/internal/progression"
	"github.com/2beens/mesotracker/internal/telemetry/tracing"
	"github.com/2beens/mesotracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=mesocycles_test

const dateLayout = "2006-01-02"

type mesocyclesService interface {
	CreateMesocycle(ctx context.Context, userID int, req CreateMesocycleRequest) (*MesocycleDetails, error)
	ListMesocycles(ctx context.Context, userID int) ([]Mesocycle, error)
	GetMesocycle(ctx context.Context, userID, id int) (*MesocycleDetails, error)
	ActivateMesocycle(ctx context.Context, userID, id int) error
	DeleteMesocycle(ctx context.Context, userID, id int) error
	PreviewWeek(ctx context.Context, userID, mesocycleID int) (*WeekPlan, error)
	ProgressWeek(ctx context.Context, userID, mesocycleID int) (*WeekDetails, error)
	AddFeedback(ctx context.Context, userID, weekID int, feedback []progression.Feedback) error
	ListFeedback(ctx context.Context, userID, weekID int) ([]progression.Feedback, error)
	SetWorkoutCompleted(ctx context.Context, userID, workoutID int, completed bool, date *time.Time) error
	UpdateSet(ctx context.Context, userID int, set Set) error
	AddSet(ctx context.Context, userID, exerciseID int) (*Set, error)
	DeleteSet(ctx context.Context, userID, setID int) error
}

type volumeAnalyzer interface {
	CompletionHeatmap(ctx context.Context, userID int, from, to time.Time) ([]HeatmapDay, error)
	WeeklyVolume(ctx context.Context, userID, mesocycleID int) (*VolumeReport, error)
}

type FeedbackRequest struct {
	Feedback []progression.Feedback `json:"feedback"`
}

type WorkoutCompletedRequest struct {
	Completed bool `json:"completed"`
	// Date is in YYYY-MM-DD format, optional
	Date string `json:"date,omitempty"`
}

type UpdateSetRequest struct {
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	IsCompleted bool    `json:"isCompleted"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service  mesocyclesService
	analyzer volumeAnalyzer
}

func NewHandler(service mesocyclesService, analyzer volumeAnalyzer) *Handler {
	return &Handler{
		service:  service,
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/mesocycles", handler.HandleCreate).Methods("POST", "OPTIONS").Name("mesocycles-create")
	router.HandleFunc("/mesocycles", handler.HandleList).Methods("GET", "OPTIONS").Name("mesocycles-list")
	router.HandleFunc("/mesocycles/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("mesocycles-get")
	router.HandleFunc("/mesocycles/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("mesocycles-delete")
	router.HandleFunc("/mesocycles/{id}/activate", handler.HandleActivate).Methods("PUT", "OPTIONS").Name("mesocycles-activate")
	router.HandleFunc("/mesocycles/{id}/progress", handler.HandleProgress).Methods("POST", "OPTIONS").Name("mesocycles-progress")
	router.HandleFunc("/mesocycles/{id}/progress/preview", handler.HandlePreview).Methods("GET", "OPTIONS").Name("mesocycles-preview")
	router.HandleFunc("/mesocycles/{id}/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("mesocycles-volume")
	router.HandleFunc("/weeks/{id}/feedback", handler.HandleAddFeedback).Methods("POST", "OPTIONS").Name("weeks-feedback-add")
	router.HandleFunc("/weeks/{id}/feedback", handler.HandleListFeedback).Methods("GET", "OPTIONS").Name("weeks-feedback-list")
	router.HandleFunc("/workouts/{id}/completed", handler.HandleWorkoutCompleted).Methods("PUT", "OPTIONS").Name("workouts-completed")
	router.HandleFunc("/exercises/{id}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("sets-add")
	router.HandleFunc("/sets/{id}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("sets-update")
	router.HandleFunc("/sets/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("sets-delete")
	router.HandleFunc("/stats/heatmap", handler.HandleHeatmap).Methods("GET", "OPTIONS").Name("stats-heatmap")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.create")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateMesocycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create mesocycle, unmarshal json params: %s", err)
		http.Error(w, "create mesocycle failed", http.StatusBadRequest)
		return
	}

	details, err := handler.service.CreateMesocycle(ctx, userID, req)
	if err != nil {
		writeServiceError(w, err, "create mesocycle")
		return
	}

	writeJSON(w, details, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.list")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	mesocycles, err := handler.service.ListMesocycles(ctx, userID)
	if err != nil {
		writeServiceError(w, err, "list mesocycles")
		return
	}

	writeJSON(w, mesocycles, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.get")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	details, err := handler.service.GetMesocycle(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "get mesocycle")
		return
	}

	writeJSON(w, details, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.delete")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteMesocycle(ctx, userID, id); err != nil {
		writeServiceError(w, err, "delete mesocycle")
		return
	}

	writeJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.activate")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := handler.service.ActivateMesocycle(ctx, userID, id); err != nil {
		writeServiceError(w, err, "activate mesocycle")
		return
	}

	pkg.WriteTextResponseOK(w, "activated")
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.progress")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	week, err := handler.service.ProgressWeek(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "progress week")
		return
	}

	writeJSON(w, week, http.StatusCreated)
}

func (handler *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.preview")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	plan, err := handler.service.PreviewWeek(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "preview week")
		return
	}

	writeJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.volume")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	report, err := handler.analyzer.WeeklyVolume(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "weekly volume")
		return
	}

	writeJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.feedback.add")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	weekID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add feedback, unmarshal json params: %s", err)
		http.Error(w, "add feedback failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.AddFeedback(ctx, userID, weekID, req.Feedback); err != nil {
		writeServiceError(w, err, "add feedback")
		return
	}

	writeJSON(w, req, http.StatusCreated)
}

func (handler *Handler) HandleListFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.feedback.list")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	weekID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	feedback, err := handler.service.ListFeedback(ctx, userID, weekID)
	if err != nil {
		writeServiceError(w, err, "list feedback")
		return
	}

	writeJSON(w, FeedbackRequest{Feedback: feedback}, http.StatusOK)
}

func (handler *Handler) HandleWorkoutCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.workout.completed")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workoutID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req WorkoutCompletedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("workout completed, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	var date *time.Time
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = &d
	}

	if err := handler.service.SetWorkoutCompleted(ctx, userID, workoutID, req.Completed, date); err != nil {
		writeServiceError(w, err, "set workout completed")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.set.add")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	set, err := handler.service.AddSet(ctx, userID, exerciseID)
	if err != nil {
		writeServiceError(w, err, "add set")
		return
	}

	writeJSON(w, set, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.set.update")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	setID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	set := Set{
		ID:          setID,
		Weight:      req.Weight,
		Reps:        req.Reps,
		IsCompleted: req.IsCompleted,
	}
	if err := handler.service.UpdateSet(ctx, userID, set); err != nil {
		writeServiceError(w, err, "update set")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.set.delete")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	setID, ok := idFromPath(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteSet(ctx, userID, setID); err != nil {
		writeServiceError(w, err, "delete set")
		return
	}

	writeJSON(w, DeleteResponse{DeletedID: setID}, http.StatusOK)
}

// HandleHeatmap serves completed workouts per day. Without params, the last year is returned.
func (handler *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mesocycles.heatmap")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	to := time.Now().UTC()
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		t, err := time.Parse(dateLayout, toParam)
		if err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
		to = t
	}
	from := to.AddDate(0, 0, -(maxHeatmapDays - 2))
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		f, err := time.Parse(dateLayout, fromParam)
		if err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
		from = f
	}

	heatmap, err := handler.analyzer.CompletionHeatmap(ctx, userID, from, to)
	if err != nil {
		writeServiceError(w, err, "completion heatmap")
		return
	}

	writeJSON(w, heatmap, http.StatusOK)
}

func requireUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func idFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrMesocycleNotFound),
		errors.Is(err, ErrWeekNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrSetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMesocycleComplete), errors.Is(err, ErrWeekExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, failed to "+op, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
