package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

type FlashcardSI interface {
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (models.ReviewState, error)
	FlashcardsToRepeat(ctx context.Context, req models.DueFlashcardsRequest) ([]models.DueFlashcard, error)
	FlashcardsByTopic(ctx context.Context, topicID string, page models.Page) ([]models.Flashcard, error)
	EntryTestFlashcards(ctx context.Context, subjectID string, page models.Page) ([]models.Flashcard, error)
}

type ProgressSI interface {
	Metric(ctx context.Context, userID int64, subjectID string) (models.SubjectProgress, error)
	Metrics(ctx context.Context, userID int64) ([]models.SubjectProgress, error)
	AddMetric(ctx context.Context, userID int64, req models.MetricRequest) (models.SubjectProgress, error)
	UpdateMetric(ctx context.Context, userID int64, subjectID string, req models.MetricRequest) (models.SubjectProgress, error)
	DeleteMetric(ctx context.Context, userID int64, subjectID string) (models.Metric, error)
}

type StudyPlanSI interface {
	CreatePlan(ctx context.Context, req models.CreatePlanRequest) (models.StudyPlan, error)
	Plans(ctx context.Context, userID int64) ([]models.StudyPlan, error)
	PlanBySubject(ctx context.Context, userID int64, subjectID string) (models.StudyPlan, error)
	UpdateTopicStatus(ctx context.Context, userID int64, planTopicID string, req models.UpdateTopicStatusRequest) (models.PlanTopic, error)
}

type AuthSI interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Tokens, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (models.Tokens, error)
	Logout(ctx context.Context, userID int64) error
	Me(ctx context.Context, userID int64) (models.User, error)
	Authenticate(token string) (int64, error)
}

type ServiceI interface {
	FlashcardSI
	ProgressSI
	StudyPlanSI
	AuthSI
}

type Handler struct {
	service ServiceI
	timeout time.Duration
	log     *zap.Logger
}

func NewHandler(service ServiceI, timeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		timeout: timeout,
		log:     log,
	}
}

// Routes builds the full HTTP surface with access logging and panic recovery.
// Catalog reads and the sign up/in endpoints are public; everything scoped to
// a user needs a bearer access token.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.accessLog)

	r.Get("/flashcards/topic/{topicId}", h.flashcardsByTopic)
	r.Get("/flashcards/entry-test", h.entryTestFlashcards)

	r.Post("/auth/signup", h.signUp)
	r.Post("/auth/signin", h.signIn)
	r.Post("/auth/refresh", h.refresh)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)

		r.Post("/flashcards/submit-answer", h.submitAnswer)
		r.Get("/flashcards/to-repeat", h.flashcardsToRepeat)

		r.Route("/progress-tracker/metrix", func(r chi.Router) {
			r.Get("/", h.metrics)
			r.Post("/", h.addMetric)
			r.Get("/{subjectId}", h.metric)
			r.Put("/{subjectId}", h.updateMetric)
			r.Delete("/{subjectId}", h.deleteMetric)
		})

		r.Route("/study-plans", func(r chi.Router) {
			r.Get("/", h.plans)
			r.Post("/generate-study-plan", h.createPlan)
			r.Get("/subject/{subjectId}", h.planBySubject)
			r.Patch("/topics/{topicId}", h.updateTopicStatus)
		})
	})

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(h.log)),
		handlers.PrintRecoveryStack(true),
	)

	return recovery(r)
}

func (h *Handler) context(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
