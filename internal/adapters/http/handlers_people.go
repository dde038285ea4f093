package web

import (
	"net/http"
	"strings"
	"time"

	"gums/internal/application/faults"
	"gums/internal/application/orchestrators"
	"gums/internal/application/projections"
	contactDomain "gums/internal/domain/contact"
	personDomain "gums/internal/domain/person"
)

// handleMembersPage handles GET /members: the member roster page.
func handleMembersPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	includeInactive := r.URL.Query().Get("all") == "1"
	var (
		people []personDomain.Person
		err    error
	)
	if includeInactive {
		people, err = stores.PersonStore.List(r.Context())
	} else {
		people, err = stores.PersonStore.ListActive(r.Context())
	}
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "members.html", map[string]any{
		"People":          people,
		"Sections":        personDomain.Sections,
		"IncludeInactive": includeInactive,
	})
}

// handleMemberProfilePage handles GET /member?id=X: one person with contacts.
func handleMemberProfilePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := projections.GetMemberProfileQuery{PersonID: r.URL.Query().Get("id")}
	deps := projections.GetMemberProfileDeps{
		PersonStore:  stores.PersonStore,
		ContactStore: stores.ContactStore,
	}

	result, err := projections.QueryGetMemberProfile(r.Context(), query, deps)
	if err != nil {
		writeFault(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "member_profile.html", result)
		return
	}
	writeJSON(w, result)
}

// parsePersonInput reads a person from either a form submission or a JSON body.
func parsePersonInput(r *http.Request) (personDomain.Person, error) {
	var p personDomain.Person

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return p, faults.Validation(err)
		}
		p.ID = r.FormValue("ID")
		p.Name = r.FormValue("Name")
		p.PersonType = r.FormValue("PersonType")
		p.Section = r.FormValue("Section")
		p.Status = r.FormValue("Status")
		if v := r.FormValue("DateOfBirth"); v != "" {
			dob, err := time.Parse(dateFormat, v)
			if err != nil {
				return p, faults.Validation(err)
			}
			p.DateOfBirth = dob
		}
		return p, nil
	}

	var input struct {
		ID          string `json:"ID"`
		Name        string `json:"Name"`
		PersonType  string `json:"PersonType"`
		Section     string `json:"Section"`
		Status      string `json:"Status"`
		DateOfBirth string `json:"DateOfBirth"`
	}
	if err := strictDecode(r, &input); err != nil {
		return p, faults.Validation(err)
	}
	p.ID = input.ID
	p.Name = input.Name
	p.PersonType = input.PersonType
	p.Section = input.Section
	p.Status = input.Status
	if input.DateOfBirth != "" {
		dob, err := time.Parse(dateFormat, input.DateOfBirth)
		if err != nil {
			return p, faults.Validation(err)
		}
		p.DateOfBirth = dob
	}
	return p, nil
}

// handlePeople handles /api/people: GET (list), POST (create), PUT (update).
func handlePeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		people, err := stores.PersonStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if people == nil {
			people = []personDomain.Person{}
		}
		writeJSON(w, people)

	case "POST", "PUT":
		p, err := parsePersonInput(r)
		if err != nil {
			writeFault(w, err)
			return
		}
		if r.Method == "PUT" && p.ID == "" {
			http.Error(w, "ID is required for update", http.StatusBadRequest)
			return
		}

		deps := orchestrators.SavePersonDeps{PersonStore: stores.PersonStore}
		saved, err := orchestrators.ExecuteSavePerson(ctx, orchestrators.SavePersonInput{Person: p}, deps)
		if err != nil {
			writeFault(w, err)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/members", http.StatusSeeOther)
			return
		}
		if p.ID == "" {
			writeJSONStatus(w, http.StatusCreated, saved)
			return
		}
		writeJSON(w, saved)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handlePersonStatus handles POST /api/people/status (deactivate / reactivate)
func handlePersonStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.SetPersonStatusInput
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.PersonID = r.FormValue("PersonID")
		input.Active = r.FormValue("Active") == "true"
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	deps := orchestrators.SetPersonStatusDeps{PersonStore: stores.PersonStore}
	if err := orchestrators.ExecuteSetPersonStatus(r.Context(), input, deps); err != nil {
		writeFault(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeletePerson handles POST or DELETE /api/people/delete
// Removes the person and their emergency contacts.
func handleDeletePerson(w http.ResponseWriter, r *http.Request) {
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
		id = r.FormValue("PersonID")
	} else {
		var input struct {
			PersonID string `json:"PersonID"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		id = input.PersonID
	}

	deps := orchestrators.DeletePersonDeps{
		PersonStore:  stores.PersonStore,
		ContactStore: stores.ContactStore,
	}
	if err := orchestrators.ExecuteDeletePerson(r.Context(), orchestrators.DeletePersonInput{PersonID: id}, deps); err != nil {
		writeFault(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleContacts handles /api/contacts:
// GET ?person_id=X lists a person's contacts in order,
// POST adds a contact, DELETE removes one.
func handleContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		personID := r.URL.Query().Get("person_id")
		if personID == "" {
			http.Error(w, "person_id is required", http.StatusBadRequest)
			return
		}
		contacts, err := stores.ContactStore.ListByPersonID(ctx, personID)
		if err != nil {
			internalError(w, err)
			return
		}
		if contacts == nil {
			contacts = []contactDomain.EmergencyContact{}
		}
		writeJSON(w, contacts)

	case "POST":
		var input orchestrators.AddContactInput
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.PersonID = r.FormValue("PersonID")
			input.Name = r.FormValue("Name")
			input.Phone = r.FormValue("Phone")
			input.Relationship = r.FormValue("Relationship")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		deps := orchestrators.AddContactDeps{
			ContactStore: stores.ContactStore,
			PersonStore:  stores.PersonStore,
		}
		added, err := orchestrators.ExecuteAddContact(ctx, input, deps)
		if err != nil {
			writeFault(w, err)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/member?id="+input.PersonID, http.StatusSeeOther)
			return
		}
		writeJSONStatus(w, http.StatusCreated, added)

	case "DELETE":
		var input orchestrators.RemoveContactInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		deps := orchestrators.RemoveContactDeps{ContactStore: stores.ContactStore}
		if err := orchestrators.ExecuteRemoveContact(ctx, input, deps); err != nil {
			writeFault(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleRemoveContact handles POST /api/contacts/remove (form submissions).
func handleRemoveContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.RemoveContactInput{
		PersonID:  r.FormValue("PersonID"),
		ContactID: r.FormValue("ContactID"),
	}
	deps := orchestrators.RemoveContactDeps{ContactStore: stores.ContactStore}
	if err := orchestrators.ExecuteRemoveContact(r.Context(), input, deps); err != nil {
		writeFault(w, err)
		return
	}
	http.Redirect(w, r, "/member?id="+input.PersonID, http.StatusSeeOther)
}

// handleSummary handles GET /api/summary: active membership counts.
func handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetMembershipSummaryDeps{PersonStore: stores.PersonStore}
	summary, err := projections.QueryGetMembershipSummary(r.Context(), deps)
	if err != nil {
		writeFault(w, err)
		return
	}
	writeJSON(w, summary)
}
