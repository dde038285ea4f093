package web

import (
	"net/http"

	"gums/internal/adapters/http/middleware"
)

// registerRoutes mounts every page and API endpoint on the mux.
// The login page is the only route open to anonymous visitors; everything
// else requires a session. Admin-only operations are enforced in-handler.
func registerRoutes(mux *http.ServeMux) {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	// Session
	mux.HandleFunc("/login", handleLogin)
	mux.Handle("/logout", authed(handleLogout))
	mux.Handle("/change-password", authed(handleChangePassword))

	// Pages
	mux.Handle("/", authed(handleHome))
	mux.Handle("/terms", authed(handleTermsPage))
	mux.Handle("/members", authed(handleMembersPage))
	mux.Handle("/member", authed(handleMemberProfilePage))
	mux.Handle("/configuration", authed(handleConfiguration))

	// API
	mux.Handle("/api/terms", authed(handleTerms))
	mux.Handle("/api/terms/delete", authed(handleDeleteTerm))
	mux.Handle("/api/terms/schedule", authed(handleTermSchedule))
	mux.Handle("/api/people", authed(handlePeople))
	mux.Handle("/api/people/status", authed(handlePersonStatus))
	mux.Handle("/api/people/delete", authed(handleDeletePerson))
	mux.Handle("/api/contacts", authed(handleContacts))
	mux.Handle("/api/contacts/remove", authed(handleRemoveContact))
	mux.Handle("/api/summary", authed(handleSummary))

	// Admin
	mux.Handle("/api/accounts", authed(handleAccounts))
	mux.Handle("/admin/perf", authed(handlePerfDashboard))
}
