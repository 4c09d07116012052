package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"gymverse/internal/adapters/email"
	"gymverse/internal/adapters/http/middleware"
	"gymverse/internal/adapters/storage"
	appointmentStore "gymverse/internal/adapters/storage/appointment"
	authStore "gymverse/internal/adapters/storage/auth"
	memberStore "gymverse/internal/adapters/storage/member"
	offerStore "gymverse/internal/adapters/storage/offer"
	planStore "gymverse/internal/adapters/storage/plan"
	trainerStore "gymverse/internal/adapters/storage/trainer"
)

// Stores holds all storage dependencies.
type Stores struct {
	KV               storage.KV
	PlanStore        planStore.Store
	TrainerStore     trainerStore.Store
	MemberStore      memberStore.Store
	AppointmentStore appointmentStore.Store
	OfferStore       offerStore.Store
	AuthStore        authStore.Store
}

// loadCSRFKey reads the CSRF secret from GYMVERSE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("GYMVERSE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("GYMVERSE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("GYMVERSE_ENV") == "production" {
		log.Fatal("GYMVERSE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key. Set GYMVERSE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(s.AuthStore, timeNow),
		middleware.RateLimit(limiter),
	)
}
