package web

import "net/http"

// registerRoutes wires every API endpoint. Handlers check the method and
// session themselves; public endpoints serve the website, the rest serve the
// admin panel.
func registerRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.HandleFunc("/api/session", handleSession)
	mux.HandleFunc("/api/password", handleChangePassword)

	// Dashboard
	mux.HandleFunc("/api/dashboard", handleDashboard)

	// Catalogue
	mux.HandleFunc("/api/packages", handlePackages)
	mux.HandleFunc("/api/packages/{id}", handlePackageByID)
	mux.HandleFunc("/api/trainers", handleTrainers)
	mux.HandleFunc("/api/trainers/{id}", handleTrainerByID)
	mux.HandleFunc("/api/offers", handleOffers)

	// Intake and admin lists
	mux.HandleFunc("/api/join", handleJoin)
	mux.HandleFunc("/api/members", handleMembers)
	mux.HandleFunc("/api/members/{id}", handleMemberByID)
	mux.HandleFunc("/api/appointments", handleAppointments)
	mux.HandleFunc("/api/appointments/{id}", handleAppointmentByID)
	mux.HandleFunc("/api/appointments/{id}/status", handleAppointmentStatus)

	// Data management
	mux.HandleFunc("/api/export", handleExport)
	mux.HandleFunc("/api/import", handleImport)
	mux.HandleFunc("/api/wipe", handleWipe)
}
