package routes

import (
	"net/http"

	"github.com/migranthealth/careconnect/internal/api/handlers"
	"github.com/migranthealth/careconnect/internal/api/middleware"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
)

// Handlers groups every route handler the API serves
type Handlers struct {
	User        *handlers.UserHandler
	Patient     *handlers.PatientHandler
	Record      *handlers.RecordHandler
	Doctor      *handlers.DoctorHandler
	Advisory    *handlers.AdvisoryHandler
	Voice       *handlers.VoiceHandler
	ABDM        *handlers.ABDMHandler
	Appointment *handlers.AppointmentHandler
}

// Router holds all route handlers
type Router struct {
	mux             *http.ServeMux
	handlers        Handlers
	allowedOrigins  []string
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(h Handlers, allowedOrigins []string, cacheMiddleware *middleware.CacheMiddleware, metrics *observability.Metrics) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		handlers:        h,
		allowedOrigins:  allowedOrigins,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", handlers.Health)

	// CRUD stub
	r.mux.HandleFunc("GET /api/patients", r.handlers.Patient.ListPatients)
	r.mux.HandleFunc("GET /api/users", r.handlers.User.ListUsers)
	r.mux.HandleFunc("POST /api/users", r.handlers.User.CreateUser)
	r.mux.HandleFunc("GET /api/users/{id}", r.handlers.User.GetUser)
	r.mux.HandleFunc("PUT /api/users/{id}", r.handlers.User.UpdateUser)
	r.mux.HandleFunc("DELETE /api/users/{id}", r.handlers.User.DeleteUser)

	// Provider portal
	r.mux.HandleFunc("GET /api/provider/patients", r.handlers.Patient.FilterPatients)

	// Patient app screens
	r.mux.HandleFunc("GET /api/records", r.handlers.Record.ListRecords)
	r.mux.HandleFunc("GET /api/doctors", r.handlers.Doctor.ListDoctors)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.handlers.Doctor.GetDoctor)
	r.mux.HandleFunc("POST /api/voice/commands", r.handlers.Voice.HandleCommand)

	// Prescription helpers
	r.mux.HandleFunc("POST /api/advisory/interactions", r.handlers.Advisory.CheckInteractions)
	r.mux.HandleFunc("POST /api/advisory/dosage", r.handlers.Advisory.CalculateDosage)
	r.mux.HandleFunc("GET /api/advisory/medications", r.handlers.Advisory.ListMedications)

	// ABDM and booking
	r.mux.HandleFunc("POST /api/abdm/qr", r.handlers.ABDM.GenerateQR)
	r.mux.HandleFunc("POST /api/abdm/share", r.handlers.ABDM.ShareRecords)
	r.mux.HandleFunc("POST /api/appointments", r.handlers.Appointment.BookAppointment)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.RecoveryMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
