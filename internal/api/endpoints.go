package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"oyokai/internal/models"
)

// --- Authentication ---

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, username, password string) (string, models.AuthUser, error) {
	env, err := c.Call(ctx, http.MethodPost, "/auth/login",
		map[string]string{"username": username, "password": password}, "")
	if err != nil {
		return "", models.AuthUser{}, err
	}
	if env.Token == "" || env.User == nil {
		return "", models.AuthUser{}, errors.New("réponse de connexion incomplète")
	}
	return env.Token, *env.User, nil
}

// Verify validates a stored token. Any failure means the token must be
// discarded.
func (c *Client) Verify(ctx context.Context, token string) (models.AuthUser, error) {
	env, err := c.Call(ctx, http.MethodGet, "/auth/verify", nil, token)
	if err != nil {
		return models.AuthUser{}, err
	}
	if env.User == nil {
		return models.AuthUser{}, errors.New("réponse de vérification incomplète")
	}
	return *env.User, nil
}

// --- Admin: dashboard and stats ---

func (c *Client) Dashboard(ctx context.Context, token string) (models.Dashboard, error) {
	env, err := c.Call(ctx, http.MethodGet, "/admin/dashboard", nil, token)
	if err != nil {
		return models.Dashboard{}, err
	}
	return dataAs[models.Dashboard](env)
}

func (c *Client) Stats(ctx context.Context, token, period string) (models.Stats, error) {
	env, err := c.Call(ctx, http.MethodGet, "/admin/stats?period="+url.QueryEscape(period), nil, token)
	if err != nil {
		return models.Stats{}, err
	}
	return dataAs[models.Stats](env)
}

// --- Admin: formations ---

func (c *Client) Formations(ctx context.Context, token, status string) ([]models.Formation, error) {
	endpoint := "/admin/formations"
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	env, err := c.Call(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.Formation](env)
}

func (c *Client) Formation(ctx context.Context, token string, id int) (models.Formation, error) {
	env, err := c.Call(ctx, http.MethodGet, fmt.Sprintf("/admin/formations/%d", id), nil, token)
	if err != nil {
		return models.Formation{}, err
	}
	return dataAs[models.Formation](env)
}

// CreateFormation returns the backend's success message.
func (c *Client) CreateFormation(ctx context.Context, token string, f models.Formation) (string, error) {
	env, err := c.Call(ctx, http.MethodPost, "/admin/formations", f, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) UpdateFormation(ctx context.Context, token string, f models.Formation) (string, error) {
	env, err := c.Call(ctx, http.MethodPut, fmt.Sprintf("/admin/formations/%d", f.ID), f, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ToggleFormation flips only the active flag; every other field is left
// to the backend untouched.
func (c *Client) ToggleFormation(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodPatch, fmt.Sprintf("/admin/formations/%d/toggle", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) DeleteFormation(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodDelete, fmt.Sprintf("/admin/formations/%d", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- Admin: testimonials moderation ---

func (c *Client) AllTestimonials(ctx context.Context, token string) ([]models.Testimonial, error) {
	env, err := c.Call(ctx, http.MethodGet, "/testimonials/all", nil, token)
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.Testimonial](env)
}

func (c *Client) ApproveTestimonial(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodPut, fmt.Sprintf("/testimonials/%d/approve", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) RejectTestimonial(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodPut, fmt.Sprintf("/testimonials/%d/reject", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- Admin: contacts ---

func (c *Client) AllContacts(ctx context.Context, token string) ([]models.Contact, error) {
	env, err := c.Call(ctx, http.MethodGet, "/contact/all", nil, token)
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.Contact](env)
}

func (c *Client) MarkContactRead(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodPut, fmt.Sprintf("/contact/%d/read", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- Admin: users ---

func (c *Client) Users(ctx context.Context, token string) ([]models.AdminUser, error) {
	env, err := c.Call(ctx, http.MethodGet, "/admin/users", nil, token)
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.AdminUser](env)
}

func (c *Client) CreateUser(ctx context.Context, token string, u models.UserRequest) (string, error) {
	env, err := c.Call(ctx, http.MethodPost, "/admin/users", u, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) ToggleUser(ctx context.Context, token string, id int) (string, error) {
	env, err := c.Call(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/toggle", id), nil, token)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- Public site ---

func (c *Client) PublicFormations(ctx context.Context) ([]models.Formation, error) {
	env, err := c.Call(ctx, http.MethodGet, "/formations", nil, "")
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.Formation](env)
}

func (c *Client) ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	env, err := c.Call(ctx, http.MethodGet, "/testimonials/approved", nil, "")
	if err != nil {
		return nil, err
	}
	return dataAs[[]models.Testimonial](env)
}

func (c *Client) SubmitTestimonial(ctx context.Context, t models.TestimonialRequest) (string, error) {
	env, err := c.Call(ctx, http.MethodPost, "/testimonials", t, "")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) SubmitContact(ctx context.Context, m models.ContactRequest) (string, error) {
	env, err := c.Call(ctx, http.MethodPost, "/contact", m, "")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
