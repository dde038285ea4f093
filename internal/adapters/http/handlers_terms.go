package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gums/internal/application/faults"
	"gums/internal/application/orchestrators"
	"gums/internal/application/projections"
	termDomain "gums/internal/domain/term"
)

// handleTermsPage handles GET /terms: the schedule page with the admin form.
func handleTermsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetTermScheduleDeps{TermStore: stores.TermStore}
	schedule, err := projections.QueryGetTermSchedule(r.Context(), timeNow(), deps)
	if err != nil {
		writeFault(w, err)
		return
	}

	renderTemplate(w, r, "terms.html", map[string]any{
		"Schedule": schedule,
		"Draft":    termDomain.NewDefault(timeNow()),
	})
}

// parseTermInput reads a term from either a form submission or a JSON body.
// Dates arrive as YYYY-MM-DD; SubsAmount is in cents.
func parseTermInput(r *http.Request) (termDomain.Term, error) {
	var t termDomain.Term

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return t, faults.Validation(err)
		}
		t.ID = r.FormValue("ID")
		t.Name = r.FormValue("Name")
		var err error
		if t.StartDate, err = time.Parse(dateFormat, r.FormValue("StartDate")); err != nil {
			return t, faults.Validation(err)
		}
		if t.EndDate, err = time.Parse(dateFormat, r.FormValue("EndDate")); err != nil {
			return t, faults.Validation(err)
		}
		if v := r.FormValue("SubsAmount"); v != "" {
			if t.SubsAmount, err = strconv.Atoi(v); err != nil {
				return t, faults.Validation(err)
			}
		}
		return t, nil
	}

	var input struct {
		ID         string `json:"ID"`
		Name       string `json:"Name"`
		StartDate  string `json:"StartDate"`
		EndDate    string `json:"EndDate"`
		SubsAmount int    `json:"SubsAmount"`
	}
	if err := strictDecode(r, &input); err != nil {
		return t, faults.Validation(err)
	}
	t.ID = input.ID
	t.Name = input.Name
	t.SubsAmount = input.SubsAmount
	var err error
	if t.StartDate, err = time.Parse(dateFormat, input.StartDate); err != nil {
		return t, faults.Validation(err)
	}
	if t.EndDate, err = time.Parse(dateFormat, input.EndDate); err != nil {
		return t, faults.Validation(err)
	}
	return t, nil
}

// handleTerms handles /api/terms: GET (list), POST (create), PUT (update).
func handleTerms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		terms, err := stores.TermStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if terms == nil {
			terms = []termDomain.Term{}
		}
		writeJSON(w, terms)

	case "POST", "PUT":
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		t, err := parseTermInput(r)
		if err != nil {
			writeFault(w, err)
			return
		}
		if r.Method == "PUT" && t.ID == "" {
			http.Error(w, "ID is required for update", http.StatusBadRequest)
			return
		}

		deps := orchestrators.SaveTermDeps{TermStore: stores.TermStore}
		saved, err := orchestrators.ExecuteSaveTerm(ctx, orchestrators.SaveTermInput{Term: t}, deps)
		if err != nil {
			writeFault(w, err)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/terms", http.StatusSeeOther)
			return
		}
		if t.ID == "" {
			writeJSONStatus(w, http.StatusCreated, saved)
			return
		}
		writeJSON(w, saved)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleDeleteTerm handles POST or DELETE /api/terms/delete
func handleDeleteTerm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" && r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var id string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		id = r.FormValue("ID")
	} else {
		var input struct {
			ID string `json:"ID"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		id = input.ID
	}

	deps := orchestrators.DeleteTermDeps{TermStore: stores.TermStore}
	if err := orchestrators.ExecuteDeleteTerm(r.Context(), orchestrators.DeleteTermInput{TermID: id}, deps); err != nil {
		writeFault(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/terms", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTermSchedule handles GET /api/terms/schedule
// Buckets are computed against the server's current date on every request.
func handleTermSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetTermScheduleDeps{TermStore: stores.TermStore}
	result, err := projections.QueryGetTermSchedule(r.Context(), timeNow(), deps)
	if err != nil {
		writeFault(w, err)
		return
	}
	writeJSON(w, result)
}
