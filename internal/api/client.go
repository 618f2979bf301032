// Package api implements the REST client for the flashcard service.
//
// Read operations are fail-soft: transport and HTTP failures are logged
// and a safe default comes back, keeping browse and review usable when
// the backend is not. Write and identity operations are fail-loud and
// propagate the server's message.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/hellodocs/flashdeck/internal/flashcard"
	"github.com/hellodocs/flashdeck/internal/progress"
	"github.com/hellodocs/flashdeck/internal/session"
)

// FallbackDifficultyLevels is returned when the difficulties endpoint is
// unreachable.
var FallbackDifficultyLevels = []string{
	flashcard.DifficultyBeginner,
	flashcard.DifficultyIntermediate,
	flashcard.DifficultyAdvanced,
}

type Client struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewClient creates a client for the service at baseURL, e.g.
// "http://localhost:8080/api". Every request inherits the timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	return &Client{
		httpClient: client,
		logger:     slog.Default(),
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// GetAll fetches the full flashcard collection. On any failure it returns
// an empty slice, never an error.
func (c *Client) GetAll(ctx context.Context) []flashcard.Flashcard {
	var cards []flashcard.Flashcard
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&cards).
		Get("/flashcards")
	if err != nil {
		c.logger.Warn("failed to fetch flashcards", "error", err)
		return []flashcard.Flashcard{}
	}
	if response.IsError() {
		c.logger.Warn("flashcards request rejected",
			"status", response.StatusCode(), "body", response.String())
		return []flashcard.Flashcard{}
	}
	return cards
}

// GetWithFilters fetches a filtered collection, sending only populated
// predicate fields as query parameters. The server owns the filtering
// semantics. Fail-soft like GetAll.
func (c *Client) GetWithFilters(ctx context.Context, opts flashcard.FilterOptions) []flashcard.Flashcard {
	request := c.httpClient.R().SetContext(ctx)
	if opts.DifficultyLevel != "" {
		request.SetQueryParam("difficultyLevel", opts.DifficultyLevel)
	}
	if opts.Category != "" {
		request.SetQueryParam("category", opts.Category)
	}
	if opts.Language != "" {
		request.SetQueryParam("language", opts.Language)
	}
	if opts.Tag != "" {
		request.SetQueryParam("tag", opts.Tag)
	}

	var cards []flashcard.Flashcard
	response, err := request.SetResult(&cards).Get("/flashcards")
	if err != nil {
		c.logger.Warn("failed to fetch filtered flashcards", "error", err)
		return []flashcard.Flashcard{}
	}
	if response.IsError() {
		c.logger.Warn("filtered flashcards request rejected",
			"status", response.StatusCode(), "body", response.String())
		return []flashcard.Flashcard{}
	}
	return cards
}

// GetByID returns the matching flashcard, or nil when it does not exist
// or the request fails.
func (c *Client) GetByID(ctx context.Context, id int) *flashcard.Flashcard {
	var card flashcard.Flashcard
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&card).
		Get("/flashcards/" + strconv.Itoa(id))
	if err != nil {
		c.logger.Warn("failed to fetch flashcard", "id", id, "error", err)
		return nil
	}
	if response.IsError() {
		return nil
	}
	return &card
}

// GetCategories returns the category labels, or an empty list on failure.
func (c *Client) GetCategories(ctx context.Context) []string {
	var categories []string
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&categories).
		Get("/flashcards/categories")
	if err != nil || response.IsError() {
		c.logger.Warn("failed to fetch categories", "error", err)
		return []string{}
	}
	return categories
}

// GetDifficultyLevels returns the difficulty labels, falling back to the
// canonical triple on failure.
func (c *Client) GetDifficultyLevels(ctx context.Context) []string {
	var levels []string
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&levels).
		Get("/flashcards/difficulties")
	if err != nil || response.IsError() {
		c.logger.Warn("failed to fetch difficulty levels", "error", err)
		return append([]string(nil), FallbackDifficultyLevels...)
	}
	return levels
}

// Create adds a new flashcard. Bearer-authenticated and fail-loud.
func (c *Client) Create(ctx context.Context, token string, card flashcard.Flashcard) (flashcard.Flashcard, error) {
	var created flashcard.Flashcard
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(card).
		SetResult(&created).
		Post("/flashcards")
	if err != nil {
		return flashcard.Flashcard{}, fmt.Errorf("httpClient.Post(/flashcards) > %w", err)
	}
	if response.IsError() {
		return flashcard.Flashcard{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return created, nil
}

// Delete removes a flashcard by id. Bearer-authenticated and fail-loud.
func (c *Client) Delete(ctx context.Context, token string, id int) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/flashcards/" + strconv.Itoa(id))
	if err != nil {
		return fmt.Errorf("httpClient.Delete(/flashcards/%d) > %w", id, err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Login exchanges credentials for a session. A non-success status yields
// an AuthenticationError carrying the server's response body.
func (c *Client) Login(ctx context.Context, username, password string) (session.Session, error) {
	var result authResponse
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return session.Session{}, fmt.Errorf("httpClient.Post(/auth/login) > %w", err)
	}
	if response.IsError() {
		return session.Session{}, &AuthenticationError{Message: response.String()}
	}
	return session.Session{
		Username: result.Username,
		Email:    result.Email,
		Role:     result.Role,
		Token:    result.Token,
	}, nil
}

// RegisterRequest is the registration profile sent to the backend.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns its session. A non-success
// status yields a RegistrationError carrying the server's response body.
func (c *Client) Register(ctx context.Context, profile RegisterRequest) (session.Session, error) {
	var result authResponse
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(profile).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return session.Session{}, fmt.Errorf("httpClient.Post(/auth/register) > %w", err)
	}
	if response.IsError() {
		return session.Session{}, &RegistrationError{Message: response.String()}
	}
	return session.Session{
		Username: result.Username,
		Email:    result.Email,
		Role:     result.Role,
		Token:    result.Token,
	}, nil
}

// CheckUsername reports whether the username is still available.
// Fail-soft: any failure reads as unavailable.
func (c *Client) CheckUsername(ctx context.Context, username string) bool {
	var result struct {
		Available bool `json:"available"`
	}
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/auth/check-username/" + username)
	if err != nil || response.IsError() {
		c.logger.Warn("failed to check username", "username", username, "error", err)
		return false
	}
	return result.Available
}

type progressBatchRequest struct {
	ProgressRecords []progress.Record `json:"progressRecords"`
}

// SendProgressBatch transmits guest progress records in one
// bearer-authenticated batch. Implements progress.BatchSender.
func (c *Client) SendProgressBatch(ctx context.Context, token string, records []progress.Record) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(progressBatchRequest{ProgressRecords: records}).
		Post("/user-progress/batch")
	if err != nil {
		return fmt.Errorf("httpClient.Post(/user-progress/batch) > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}
