package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"gymverse/internal/adapters/http/middleware"
	appointmentStore "gymverse/internal/adapters/storage/appointment"
	planStore "gymverse/internal/adapters/storage/plan"
	"gymverse/internal/application/listutil"
	"gymverse/internal/application/orchestrators"
	"gymverse/internal/application/projections"
	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/plan"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// requireSession checks for a valid admin session and writes 401 when absent.
func requireSession(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// renderMarkdown converts a package description to sanitized HTML.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// --- Auth ---

// handleLogin handles POST /api/login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.LoginInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.LoginDeps{AuthStore: stores.AuthStore}
	sess, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		field := "user"
		if errors.Is(err, credential.ErrInvalidPassword) {
			field = "password"
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error(), "field": field})
		return
	}

	middleware.SetSessionCookie(w, sess, timeNow())
	writeJSON(w, http.StatusOK, map[string]any{"user": sess.User, "expiresAt": sess.ExpiresAt})
}

// handleLogout handles POST /api/logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}

	deps := orchestrators.LoginDeps{AuthStore: stores.AuthStore}
	if err := orchestrators.ExecuteLogout(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleSession handles GET /api/session — lets the panel check login state.
func handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          sess.User,
		"expiresAt":     sess.ExpiresAt,
	})
}

// handleChangePassword handles POST /api/password
func handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}

	var input orchestrators.ChangePasswordInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.ChangePasswordDeps{AuthStore: stores.AuthStore}
	if err := orchestrators.ExecuteChangePassword(r.Context(), input, deps); err != nil {
		badRequest(w, err)
		return
	}

	// The session was destroyed on the server; drop the cookie too.
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// --- Dashboard ---

// handleDashboard handles GET /api/dashboard
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}

	deps := projections.GetDashboardDeps{
		PlanStore:        stores.PlanStore,
		TrainerStore:     stores.TrainerStore,
		MemberStore:      stores.MemberStore,
		AppointmentStore: stores.AppointmentStore,
	}
	result, err := projections.QueryGetDashboard(r.Context(), deps, timeNow())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- Packages ---

// packageView is a Plan plus the rendered description for the website.
type packageView struct {
	plan.Plan
	DescHTML string `json:"descHtml"`
}

// handlePackages handles GET (public list) and POST (admin save) /api/packages
func handlePackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		query := projections.GetPackageListQuery{Search: r.URL.Query().Get("q")}
		plans, err := projections.QueryGetPackageList(ctx, query, stores.PlanStore)
		if err != nil {
			internalError(w, err)
			return
		}
		views := make([]packageView, 0, len(plans))
		for _, p := range plans {
			views = append(views, packageView{Plan: p, DescHTML: renderMarkdown(p.Desc)})
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	if r.Method == "POST" {
		if !requireSession(w, r) {
			return
		}
		var input orchestrators.SavePlanInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		deps := orchestrators.SavePlanDeps{PlanStore: stores.PlanStore}
		saved, err := orchestrators.ExecuteSavePlan(ctx, input, deps)
		if err != nil {
			badRequest(w, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePackageByID handles DELETE /api/packages/{id}
func handlePackageByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	deps := orchestrators.SavePlanDeps{PlanStore: stores.PlanStore}
	if err := orchestrators.ExecuteDeletePlan(r.Context(), r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Trainers ---

// handleTrainers handles GET (public list) and POST (admin save) /api/trainers
func handleTrainers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		query := projections.GetTrainerListQuery{Search: r.URL.Query().Get("q")}
		trainers, err := projections.QueryGetTrainerList(ctx, query, stores.TrainerStore)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, trainers)
		return
	}

	if r.Method == "POST" {
		if !requireSession(w, r) {
			return
		}
		var input orchestrators.SaveTrainerInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		deps := orchestrators.SaveTrainerDeps{TrainerStore: stores.TrainerStore}
		saved, err := orchestrators.ExecuteSaveTrainer(ctx, input, deps)
		if err != nil {
			badRequest(w, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleTrainerByID handles DELETE /api/trainers/{id}
func handleTrainerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	deps := orchestrators.SaveTrainerDeps{TrainerStore: stores.TrainerStore}
	if err := orchestrators.ExecuteDeleteTrainer(r.Context(), r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Members ---

// handleJoin handles POST /api/join from the public join form.
func handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.JoinMemberInput{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.FullName = r.FormValue("fullName")
		input.Email = r.FormValue("email")
		input.Phone = r.FormValue("phone")
		input.Gender = r.FormValue("gender")
		input.Age = r.FormValue("age")
		input.Plan = r.FormValue("plan")
		input.Notes = r.FormValue("notes")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	deps := orchestrators.JoinMemberDeps{MemberStore: stores.MemberStore}
	joined, err := orchestrators.ExecuteJoinMember(r.Context(), input, deps)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, joined)
}

// handleMembers handles GET /api/members (admin)
func handleMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	query := projections.GetMemberListQuery{Search: r.URL.Query().Get("q")}
	members, err := projections.QueryGetMemberList(r.Context(), query, stores.MemberStore)
	if err != nil {
		internalError(w, err)
		return
	}
	items, info := listutil.Paginate(members, listutil.ParsePageParams(r.URL.Query()))
	writeJSON(w, http.StatusOK, map[string]any{"members": items, "pageInfo": info})
}

// handleMemberByID handles DELETE /api/members/{id}
func handleMemberByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	deps := orchestrators.JoinMemberDeps{MemberStore: stores.MemberStore}
	if err := orchestrators.ExecuteDeleteMember(r.Context(), r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Appointments ---

// handleAppointments handles POST (public booking), GET (admin list), and
// DELETE (admin clear-all) /api/appointments
func handleAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		input := orchestrators.BookAppointmentInput{}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.MemberName = r.FormValue("memberName")
			input.Email = r.FormValue("email")
			input.Phone = r.FormValue("phone")
			input.Date = r.FormValue("date")
			input.Time = r.FormValue("time")
			input.Trainer = r.FormValue("trainer")
			input.Purpose = r.FormValue("purpose")
			input.Message = r.FormValue("message")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		deps := orchestrators.BookAppointmentDeps{AppointmentStore: stores.AppointmentStore}
		booked, err := orchestrators.ExecuteBookAppointment(ctx, input, deps)
		if err != nil {
			badRequest(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, booked)
		return
	}

	if r.Method == "GET" {
		if !requireSession(w, r) {
			return
		}
		query := projections.GetAppointmentListQuery{Search: r.URL.Query().Get("q")}
		result, err := projections.QueryGetAppointmentList(ctx, query, stores.AppointmentStore)
		if err != nil {
			internalError(w, err)
			return
		}
		items, info := listutil.Paginate(result.Appointments, listutil.ParsePageParams(r.URL.Query()))
		writeJSON(w, http.StatusOK, map[string]any{
			"appointments": items,
			"total":        result.Total,
			"statusCounts": result.StatusCounts,
			"pageInfo":     info,
		})
		return
	}

	if r.Method == "DELETE" {
		if !requireSession(w, r) {
			return
		}
		deps := statusDeps()
		if err := orchestrators.ExecuteClearAppointments(ctx, deps); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func statusDeps() orchestrators.AppointmentStatusDeps {
	return orchestrators.AppointmentStatusDeps{
		AppointmentStore: stores.AppointmentStore,
		EmailSender:      emailSender,
	}
}

// handleAppointmentByID handles DELETE /api/appointments/{id}
func handleAppointmentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	if err := orchestrators.ExecuteDeleteAppointment(r.Context(), r.PathValue("id"), statusDeps()); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAppointmentStatus handles POST /api/appointments/{id}/status
func handleAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}

	var input struct {
		Action string `json:"action"` // confirm, complete, cancel
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	deps := statusDeps()
	var err error
	var updated any
	switch input.Action {
	case "confirm":
		updated, err = orchestrators.ExecuteConfirmAppointment(r.Context(), id, deps)
	case "complete":
		updated, err = orchestrators.ExecuteCompleteAppointment(r.Context(), id, deps)
	case "cancel":
		updated, err = orchestrators.ExecuteCancelAppointment(r.Context(), id, deps)
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}
	if err != nil {
		if errors.Is(err, appointmentStore.ErrNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// --- Offers ---

// handleOffers handles GET (admin list) and POST (admin apply) /api/offers
func handleOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !requireSession(w, r) {
		return
	}

	if r.Method == "GET" {
		query := projections.GetOfferListQuery{Search: r.URL.Query().Get("q")}
		offers, err := projections.QueryGetOfferList(ctx, query, stores.OfferStore)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, offers)
		return
	}

	if r.Method == "POST" {
		var input orchestrators.ApplyOfferInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		deps := orchestrators.ApplyOfferDeps{
			PlanStore:  stores.PlanStore,
			OfferStore: stores.OfferStore,
		}
		entry, err := orchestrators.ExecuteApplyOffer(ctx, input, deps)
		if err != nil {
			if errors.Is(err, planStore.ErrNotFound) {
				http.Error(w, "Package not found", http.StatusNotFound)
				return
			}
			badRequest(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// --- Data management ---

func transferDeps() orchestrators.TransferDeps {
	return orchestrators.TransferDeps{
		PlanStore:        stores.PlanStore,
		TrainerStore:     stores.TrainerStore,
		MemberStore:      stores.MemberStore,
		AppointmentStore: stores.AppointmentStore,
		OfferStore:       stores.OfferStore,
	}
}

// handleExport handles GET /api/export
func handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	payload, err := orchestrators.ExecuteExport(r.Context(), transferDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="gymverse-export.json"`)
	writeJSON(w, http.StatusOK, payload)
}

// handleImport handles POST /api/import with the raw export JSON as body.
func handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		http.Error(w, "Request too large", http.StatusRequestEntityTooLarge)
		return
	}
	if err := orchestrators.ExecuteImport(r.Context(), data, transferDeps()); err != nil {
		if errors.Is(err, orchestrators.ErrInvalidImport) {
			badRequest(w, err)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWipe handles POST /api/wipe
func handleWipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireSession(w, r) {
		return
	}
	deps := orchestrators.WipeDataDeps{
		KV: stores.KV,
		Seed: orchestrators.SeedDefaultsDeps{
			PlanStore:    stores.PlanStore,
			TrainerStore: stores.TrainerStore,
			OfferStore:   stores.OfferStore,
		},
	}
	if err := orchestrators.ExecuteWipeData(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
