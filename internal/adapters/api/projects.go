package api

import (
	"context"
	"net/http"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
)

type mutexDTO struct {
	CreationDate apiTime `json:"creation_date"`
	ModifiedDate apiTime `json:"modified_date"`
	User         string  `json:"user"`
}

type projectDTO struct {
	ActiveMutex  *mutexDTO     `json:"active_mutex"`
	Country      string        `json:"country"`
	CreationDate apiTime       `json:"creation_date"`
	Description  string        `json:"description"`
	ID           flexibleID    `json:"id"`
	Latitude     flexibleFloat `json:"latitude"`
	Longitude    flexibleFloat `json:"longitude"`
	ModifiedDate apiTime       `json:"modified_date"`
	Name         string        `json:"name"`
	Permission   string        `json:"permission"`
}

type projectListResponse struct {
	Data []projectDTO `json:"data"`
}

type projectResponse struct {
	Data projectDTO `json:"data"`
}

type createProjectRequest struct {
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Name        string   `json:"name"`
}

func (p projectDTO) toDomain() domain.Project {
	project := domain.Project{
		Country:      p.Country,
		CreationDate: p.CreationDate.Time,
		Description:  p.Description,
		ID:           string(p.ID),
		Latitude:     p.Latitude.Value,
		Longitude:    p.Longitude.Value,
		ModifiedDate: p.ModifiedDate.Time,
		Name:         p.Name,
		Permission:   domain.Permission(p.Permission),
	}
	if p.ActiveMutex != nil {
		project.ActiveMutex = &domain.Mutex{
			CreationDate: p.ActiveMutex.CreationDate.Time,
			ModifiedDate: p.ActiveMutex.ModifiedDate.Time,
			User:         p.ActiveMutex.User,
		}
	}
	return project
}

// ListProjects returns the projects visible to the authenticated user,
// in server order
func (c *Client) ListProjects(ctx context.Context, creds domain.Credentials) ([]domain.Project, error) {
	const op = "list projects"
	if err := requireAuth(op, creds); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint(creds.ServerAddress, projectsPath), creds.Token, nil)
	if err != nil {
		return nil, errclass.FromError(op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	var payload projectListResponse
	if err := decodeJSON(op, resp, &payload); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(payload.Data))
	for _, p := range payload.Data {
		project := p.toDomain()
		if project.ID == "" {
			logging.Logger.Warn("Skipping project without id", "name", project.Name)
			continue
		}
		projects = append(projects, project)
	}

	logging.Logger.Debug("Listed projects", "count", len(projects))
	return projects, nil
}

// CreateProject creates a project and returns it with its server-assigned id
func (c *Client) CreateProject(ctx context.Context, creds domain.Credentials, project domain.NewProject) (*domain.Project, error) {
	const op = "create project"
	if err := requireAuth(op, creds); err != nil {
		return nil, err
	}
	if err := project.Validate(); err != nil {
		return nil, errclass.New(errclass.KindValidation, op, err.Error(), err)
	}

	// Validate has already rejected malformed coordinates
	latitude, _ := project.ParsedLatitude()
	longitude, _ := project.ParsedLongitude()

	body := createProjectRequest{
		Country:     project.CountryCode,
		Description: project.Description,
		Latitude:    latitude,
		Longitude:   longitude,
		Name:        project.Name,
	}
	req, err := c.newJSONRequest(ctx, http.MethodPost, endpoint(creds.ServerAddress, projectsPath), creds.Token, body)
	if err != nil {
		return nil, errclass.FromError(op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, statusError(op, resp)
	}

	var payload projectResponse
	if err := decodeJSON(op, resp, &payload); err != nil {
		return nil, err
	}
	created := payload.Data.toDomain()
	if created.ID == "" {
		return nil, errclass.New(errclass.KindServer, op, "created project has no id", nil)
	}

	logging.Logger.Info("Created project", "id", created.ID, "name", created.Name)
	return &created, nil
}
