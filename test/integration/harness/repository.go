package harness

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

// Credentials accepted by FakeRepository
const (
	FakeEmail    = "surveyor@example.com"
	FakePassword = "correct horse"
	FakeToken    = "0123456789abcdef0123456789abcdef01234567"
	FakeUser     = "surveyor"
)

type fakeProject struct {
	country     string
	created     time.Time
	description string
	id          int
	lockedAt    time.Time
	lockedBy    string
	modified    time.Time
	name        string
	permission  string
}

// FakeRepository is an in-memory project repository server
type FakeRepository struct {
	files    map[int][]byte
	messages map[int][]string
	mu       sync.Mutex
	nextID   int
	projects map[int]*fakeProject
	server   *httptest.Server
}

// NewFakeRepository starts a repository server that is closed with the test
func NewFakeRepository(tb testing.TB) *FakeRepository {
	tb.Helper()

	r := &FakeRepository{
		files:    make(map[int][]byte),
		messages: make(map[int][]string),
		nextID:   1,
		projects: make(map[int]*fakeProject),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/user/auth-token/", r.handleLogin)
	mux.HandleFunc("GET /api/v1/user/auth-token/", r.authenticated(r.handleCheckToken))
	mux.HandleFunc("GET /api/v1/projects/", r.authenticated(r.handleList))
	mux.HandleFunc("POST /api/v1/projects/", r.authenticated(r.handleCreate))
	mux.HandleFunc("GET /api/v1/projects/{id}/download/ariane_tml/", r.authenticated(r.handleDownload))
	mux.HandleFunc("PUT /api/v1/projects/{id}/upload/ariane_tml/", r.authenticated(r.handleUpload))
	mux.HandleFunc("POST /api/v1/projects/{id}/acquire/", r.authenticated(r.handleAcquire))
	mux.HandleFunc("POST /api/v1/projects/{id}/release/", r.authenticated(r.handleRelease))

	r.server = httptest.NewServer(mux)
	tb.Cleanup(r.server.Close)
	return r
}

// URL returns the server's base address
func (r *FakeRepository) URL() string {
	return r.server.URL
}

// AddProject registers a project and returns its id
func (r *FakeRepository) AddProject(name, permission string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strconv.Itoa(r.addLocked(name, "", "FR", permission))
}

// SetFile stores a survey file for a project; an empty slice marks it as empty
func (r *FakeRepository) SetFile(projectID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, _ := strconv.Atoi(projectID)
	r.files[id] = append([]byte{}, data...)
}

// File returns the stored survey file of a project
func (r *FakeRepository) File(projectID string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, _ := strconv.Atoi(projectID)
	data, ok := r.files[id]
	return data, ok
}

// Messages returns the commit messages received for a project
func (r *FakeRepository) Messages(projectID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, _ := strconv.Atoi(projectID)
	return append([]string{}, r.messages[id]...)
}

// LockHolder returns who holds a project's lock, or ""
func (r *FakeRepository) LockHolder(projectID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, _ := strconv.Atoi(projectID)
	if p, ok := r.projects[id]; ok {
		return p.lockedBy
	}
	return ""
}

// LockAs makes user hold a project's lock
func (r *FakeRepository) LockAs(projectID, user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, _ := strconv.Atoi(projectID)
	if p, ok := r.projects[id]; ok {
		p.lockedBy = user
		p.lockedAt = time.Now().UTC()
	}
}

func (r *FakeRepository) addLocked(name, description, country, permission string) int {
	now := time.Now().UTC().Truncate(time.Second)
	id := r.nextID
	r.nextID++
	r.projects[id] = &fakeProject{
		country:     country,
		created:     now,
		description: description,
		id:          id,
		modified:    now,
		name:        name,
		permission:  permission,
	}
	return id
}

func (r *FakeRepository) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Token "+FakeToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
			return
		}
		next(w, req)
	}
}

func (r *FakeRepository) project(w http.ResponseWriter, req *http.Request) *fakeProject {
	id, err := strconv.Atoi(req.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found."})
		return nil
	}
	p, ok := r.projects[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found."})
		return nil
	}
	return p
}

func (r *FakeRepository) handleLogin(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Malformed request."})
		return
	}
	if body.Email != FakeEmail || body.Password != FakePassword {
		writeJSON(w, http.StatusUnauthorized, map[string][]string{"non_field_errors": {"Invalid credentials."}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": FakeToken})
}

func (r *FakeRepository) handleCheckToken(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"token": FakeToken})
}

func (r *FakeRepository) handleList(w http.ResponseWriter, _ *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]map[string]any, 0, len(r.projects))
	for id := 1; id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok {
			data = append(data, projectJSON(p))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (r *FakeRepository) handleCreate(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Country     string `json:"country"`
		Description string `json:"description"`
		Name        string `json:"name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name is required."})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.addLocked(body.Name, body.Description, body.Country, "ADMIN")
	writeJSON(w, http.StatusCreated, map[string]any{"data": projectJSON(r.projects[id])})
}

func (r *FakeRepository) handleDownload(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.project(w, req)
	if p == nil {
		return
	}
	data, ok := r.files[p.id]
	switch {
	case !ok:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No file."})
	case len(data) == 0:
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Project is empty."})
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func (r *FakeRepository) handleUpload(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.project(w, req)
	if p == nil {
		return
	}
	if p.lockedBy != FakeUser {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "You do not hold the project lock."})
		return
	}

	file, _, err := req.FormFile("artifact")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing artifact."})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unreadable artifact."})
		return
	}

	r.files[p.id] = data
	r.messages[p.id] = append(r.messages[p.id], req.FormValue("message"))
	p.modified = time.Now().UTC().Truncate(time.Second)
	writeJSON(w, http.StatusOK, map[string]any{"data": projectJSON(p)})
}

func (r *FakeRepository) handleAcquire(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.project(w, req)
	if p == nil {
		return
	}
	if p.permission == "READ_ONLY" || (p.lockedBy != "" && p.lockedBy != FakeUser) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Project is locked by another user."})
		return
	}
	p.lockedBy = FakeUser
	p.lockedAt = time.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{"data": projectJSON(p)})
}

func (r *FakeRepository) handleRelease(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.project(w, req)
	if p == nil {
		return
	}
	if p.lockedBy != FakeUser {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "You do not hold the project lock."})
		return
	}
	p.lockedBy = ""
	writeJSON(w, http.StatusOK, map[string]any{"data": projectJSON(p)})
}

func projectJSON(p *fakeProject) map[string]any {
	out := map[string]any{
		"active_mutex":  nil,
		"country":       p.country,
		"creation_date": p.created.Format(time.RFC3339),
		"description":   p.description,
		"id":            p.id,
		"modified_date": p.modified.Format(time.RFC3339),
		"name":          p.name,
		"permission":    p.permission,
	}
	if p.lockedBy != "" {
		out["active_mutex"] = map[string]any{
			"creation_date": p.lockedAt.Format(time.RFC3339),
			"modified_date": p.lockedAt.Format(time.RFC3339),
			"user":          p.lockedBy,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
