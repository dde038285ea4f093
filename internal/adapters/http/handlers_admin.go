package web

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"gums/internal/application/faults"
	"gums/internal/application/orchestrators"
	unitConfigDomain "gums/internal/domain/unitconfig"
)

// parseConfigurationInput reads a configuration from a form or JSON body.
// ID and UpdatedAt are server-controlled and ignored on input.
func parseConfigurationInput(r *http.Request) (unitConfigDomain.UnitConfiguration, error) {
	var c unitConfigDomain.UnitConfiguration

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return c, faults.Validation(err)
		}
		c.UnitName = r.FormValue("UnitName")
		c.District = r.FormValue("District")
		c.ContactName = r.FormValue("ContactName")
		c.ContactEmail = r.FormValue("ContactEmail")
		c.ContactPhone = r.FormValue("ContactPhone")
		c.MeetingNight = r.FormValue("MeetingNight")
		c.MeetingVenue = r.FormValue("MeetingVenue")
		c.WelcomeMessage = r.FormValue("WelcomeMessage")
		return c, nil
	}

	var input struct {
		UnitName       string `json:"UnitName"`
		District       string `json:"District"`
		ContactName    string `json:"ContactName"`
		ContactEmail   string `json:"ContactEmail"`
		ContactPhone   string `json:"ContactPhone"`
		MeetingNight   string `json:"MeetingNight"`
		MeetingVenue   string `json:"MeetingVenue"`
		WelcomeMessage string `json:"WelcomeMessage"`
	}
	if err := strictDecode(r, &input); err != nil {
		return c, faults.Validation(err)
	}
	c.UnitName = input.UnitName
	c.District = input.District
	c.ContactName = input.ContactName
	c.ContactEmail = input.ContactEmail
	c.ContactPhone = input.ContactPhone
	c.MeetingNight = input.MeetingNight
	c.MeetingVenue = input.MeetingVenue
	c.WelcomeMessage = input.WelcomeMessage
	return c, nil
}

// handleConfiguration handles /configuration:
// GET renders the edit form (or JSON), POST/PUT replaces the singleton row.
func handleConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		config, err := stores.UnitConfigStore.Get(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeFault(w, faults.NotInitialized("unit configuration"))
				return
			}
			internalError(w, err)
			return
		}
		if isHTMLRequest(r) {
			renderTemplate(w, r, "configuration.html", map[string]any{
				"Config":    config,
				"CSRFToken": csrf.Token(r),
			})
			return
		}
		writeJSON(w, config)
		return
	}

	if r.Method == "POST" || r.Method == "PUT" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		c, err := parseConfigurationInput(r)
		if err != nil {
			writeFault(w, err)
			return
		}

		deps := orchestrators.UpdateConfigurationDeps{ConfigStore: stores.UnitConfigStore}
		if err := orchestrators.ExecuteUpdateConfiguration(ctx, orchestrators.UpdateConfigurationInput{Config: c}, deps); err != nil {
			writeFault(w, err)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/configuration", http.StatusSeeOther)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAccounts handles /api/accounts: GET (list, admin) and POST (create, admin).
func handleAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		accounts, err := stores.AccountStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		// Strip password hashes from the response
		type safeAccount struct {
			ID    string `json:"ID"`
			Email string `json:"Email"`
			Role  string `json:"Role"`
		}
		safe := []safeAccount{}
		for _, a := range accounts {
			safe = append(safe, safeAccount{ID: a.ID, Email: a.Email, Role: a.Role})
		}
		writeJSON(w, safe)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input orchestrators.CreateAccountInput
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Email = r.FormValue("Email")
			input.Password = r.FormValue("Password")
			input.Role = r.FormValue("Role")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "invalid JSON", http.StatusBadRequest)
				return
			}
		}

		deps := orchestrators.CreateAccountDeps{
			AccountStore: stores.AccountStore,
			EmailSender:  emailSender,
			UnitName:     accountUnitName(ctx),
			FromAddress:  emailFromAddress,
			ReplyTo:      emailReplyTo,
		}
		id, err := orchestrators.ExecuteCreateAccount(ctx, input, deps)
		if err != nil {
			if errors.Is(err, orchestrators.ErrEmailAlreadyExists) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			writeFault(w, err)
			return
		}

		writeJSONStatus(w, http.StatusCreated, map[string]string{"ID": id, "Email": input.Email, "Role": input.Role})
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// accountUnitName fetches the unit name for invitation emails.
// Missing configuration degrades to an empty name rather than failing the create.
func accountUnitName(ctx context.Context) string {
	config, err := stores.UnitConfigStore.Get(ctx)
	if err != nil {
		return ""
	}
	return config.UnitName
}

// handlePerfDashboard handles GET /admin/perf: timing stats for requests and queries.
func handlePerfDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusServiceUnavailable)
		return
	}

	window := time.Hour
	if v := r.URL.Query().Get("window_minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = time.Duration(n) * time.Minute
		}
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	snap := perfCollector.Snapshot(timeNow().Add(-window), topN)
	slog.Debug("perf_snapshot", "total_recorded", snap.TotalRecorded, "window", window)

	if isHTMLRequest(r) {
		renderTemplate(w, r, "perf.html", map[string]any{
			"Snapshot":      snap,
			"WindowMinutes": int(window / time.Minute),
		})
		return
	}
	writeJSON(w, snap)
}
