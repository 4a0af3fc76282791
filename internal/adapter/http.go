package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/utils"
	"github.com/goldram69/gemdjsso/models"
)

const (
	opCreateAccount = "create_account"
	opUpdateAccount = "update_account"
	opFindAccount   = "find_account_by_external_id"
	opDeleteAccount = "delete_account"
)

type forumAdapter struct {
	client *utils.HTTPClient

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewForumAdapter constructs the REST implementation of [ForumAdapter].
//
// The forum URL, API key and API username are required; a missing one is
// a startup error wrapping [ErrInvalidConfig]. TLS verification stays on
// unless cfg.InsecureSkipVerify is set. m may be nil.
func NewForumAdapter(cfg config.Adapter, m *metrics.Metrics, log *logger.Logger) (ForumAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ForumURL)
	if err != nil {
		return nil, fmt.Errorf("%w: forum url: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: empty api key", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.APIUsername) == "" {
		return nil, fmt.Errorf("%w: empty api username", ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cfg.InsecureSkipVerify {
		log.Warn().Str("func", "adapter.NewForumAdapter").Msg("TLS verification of forum API is disabled")
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
		utils.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		utils.WithHeaders(map[string]string{
			"Api-Key":      cfg.APIKey,
			"Api-Username": cfg.APIUsername,
			"Content-Type": "application/json",
			"Accept":       "application/json",
		}),
	)

	return &forumAdapter{client: client, metrics: m, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// CreateAccount implements [ForumAdapter].
func (f *forumAdapter) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.CreateAccountResult, error) {
	var result models.CreateAccountResult

	resp, err := f.request(ctx, opCreateAccount, http.MethodPost, "/users.json", req, &result)
	if err != nil {
		var apiErr *RemoteAPIError
		if resp != nil && errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 &&
			looksTaken(errorText(resp.Body())) {
			apiErr.Cause = fmt.Errorf("%w: %w", ErrAccountTaken, apiErr.Cause)
		}
		return models.CreateAccountResult{}, err
	}

	if !result.Succeeded() {
		cause := fmt.Errorf("%w: %s", ErrCreateRejected, result.Message)
		if looksTaken(result.Message) {
			cause = fmt.Errorf("%w: %w: %s", ErrCreateRejected, ErrAccountTaken, result.Message)
		}
		return result, &RemoteAPIError{Op: opCreateAccount, Status: resp.StatusCode(), Cause: cause}
	}

	return result, nil
}

// UpdateAccount implements [ForumAdapter].
func (f *forumAdapter) UpdateAccount(ctx context.Context, remoteID int64, req models.UpdateAccountRequest) error {
	path := "/admin/users/" + strconv.FormatInt(remoteID, 10) + ".json"

	_, err := f.request(ctx, opUpdateAccount, http.MethodPut, path, req, nil)
	return err
}

// FindAccountByExternalID implements [ForumAdapter].
func (f *forumAdapter) FindAccountByExternalID(ctx context.Context, externalID string) (models.ForumAccount, bool, error) {
	var envelope struct {
		User *models.ForumAccount `json:"user"`
		models.ForumAccount
	}

	path := "/users/by-external/" + url.PathEscape(externalID) + ".json"

	_, err := f.request(ctx, opFindAccount, http.MethodGet, path, nil, &envelope)
	if err != nil {
		if IsNotFound(err) {
			return models.ForumAccount{}, false, nil
		}
		return models.ForumAccount{}, false, err
	}

	account := envelope.ForumAccount
	if envelope.User != nil {
		account = *envelope.User
	}
	if account.ID == 0 {
		return models.ForumAccount{}, false, &RemoteAPIError{
			Op:     opFindAccount,
			Status: http.StatusOK,
			Cause:  fmt.Errorf("%w: account without id", ErrMalformedResponse),
		}
	}

	return account, true, nil
}

// DeleteAccount implements [ForumAdapter].
func (f *forumAdapter) DeleteAccount(ctx context.Context, remoteID int64, opts models.DeleteOptions) error {
	query := url.Values{}
	query.Set("block_email", strconv.FormatBool(opts.BlockEmail))
	query.Set("block_urls", strconv.FormatBool(opts.BlockURLs))
	query.Set("delete_posts", strconv.FormatBool(opts.DeletePosts))

	path := "/admin/users/" + strconv.FormatInt(remoteID, 10) + ".json?" + query.Encode()

	_, err := f.request(ctx, opDeleteAccount, http.MethodDelete, path, nil, nil)
	return err
}

// request sends one call and converts every failure into *RemoteAPIError.
// The response is returned whenever one was received so callers can inspect
// the body of rejected calls.
func (f *forumAdapter) request(ctx context.Context, op, method, path string, body any, result any) (*resty.Response, error) {
	log := logger.FromContext(ctx)

	req := f.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		f.metrics.ObserveForumRequest(op, 0, time.Since(start))
		log.Err(err).Str("func", "*forumAdapter.request").Str("op", op).Msg("forum request failed")
		return nil, &RemoteAPIError{Op: op, Cause: err}
	}
	f.metrics.ObserveForumRequest(op, resp.StatusCode(), resp.Time())

	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() != http.StatusNotFound {
			log.Warn().Str("func", "*forumAdapter.request").
				Str("op", op).
				Int("status", resp.StatusCode()).
				Msg(err.Error())
		}
		return resp, &RemoteAPIError{Op: op, Status: resp.StatusCode(), Cause: err}
	}

	if result != nil {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			log.Err(err).Str("func", "*forumAdapter.request").Str("op", op).Msg("undecodable forum response")
			return resp, &RemoteAPIError{
				Op:     op,
				Status: resp.StatusCode(),
				Cause:  fmt.Errorf("%w: %v", ErrMalformedResponse, err),
			}
		}
	}

	return resp, nil
}
