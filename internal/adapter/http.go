package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

type httpUserDirectoryClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserDirectoryClient constructs an HTTP implementation of
// [UserDirectoryClient]. address may omit the scheme, "http://" is assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPUserDirectoryClient(address string, timeout time.Duration, logger *logger.Logger) (UserDirectoryClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid user directory address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpUserDirectoryClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}

func (c *httpUserDirectoryClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *httpUserDirectoryClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpUserDirectoryClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.logger.Debug().
		Int64("id", user.ID).
		Str("location", resp.Header().Get("Location")).
		Msg("user created")
	return user, nil
}

func (c *httpUserDirectoryClient) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Put(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpUserDirectoryClient) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(userPath(id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpUserDirectoryClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (c *httpUserDirectoryClient) Health(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if health.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}

	return nil
}
