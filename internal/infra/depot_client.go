package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the dépôt-vente backend. It is not configurable; the
// constructor parameter exists so tests can point the client at httptest.
const DefaultBaseURL = "https://depot-vente-api.losherrmannos.duckdns.org/api/"

// Error kinds of the remote API. Match them with errors.Is.
var (
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrNetworkFailure  = errors.New("network failure")
	ErrEmptyResponse   = errors.New("empty response")
	ErrDecodeFailure   = errors.New("decode failure")
	ErrServerError     = errors.New("server error")
)

// DepotError describes one failed call to the backend. Kind is one of the
// Err* values above; Status and Message are set for ErrServerError only.
type DepotError struct {
	Kind    error
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

// Error returns the text shown to the operator.
func (e *DepotError) Error() string {
	switch e.Kind {
	case ErrInvalidEndpoint:
		return "URL invalide"
	case ErrNetworkFailure:
		return fmt.Sprintf("Erreur réseau: %v", e.Err)
	case ErrEmptyResponse:
		return "Pas de données reçues"
	case ErrDecodeFailure:
		return fmt.Sprintf("Erreur de décodage: %v", e.Err)
	case ErrServerError:
		if e.Message != "" {
			return fmt.Sprintf("Erreur serveur %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("Erreur serveur: %d", e.Status)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *DepotError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusOf returns the HTTP status carried by a server error, or 0.
func StatusOf(err error) int {
	var de *DepotError
	if errors.As(err, &de) {
		return de.Status
	}
	return 0
}

type requestIDKey struct{}

// WithRequestID attaches a request id that the client forwards as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// DepotClient is a thin JSON client for the dépôt-vente backend.
// It never retries; every failure is returned to the caller as a *DepotError.
type DepotClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDepotClient(baseURL string, timeout time.Duration) *DepotClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DepotClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do sends body (if any) as JSON and decodes a 2xx response into out (if any).
func (c *DepotClient) Do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &DepotError{Kind: ErrEmptyResponse, Method: method, Path: path}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DepotError{Kind: ErrDecodeFailure, Method: method, Path: path, Err: err}
	}
	return nil
}

// Raw performs a request and returns the undecoded 2xx body.
// An empty body is reported as ErrEmptyResponse.
func (c *DepotClient) Raw(ctx context.Context, method, path string) ([]byte, error) {
	data, err := c.send(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &DepotError{Kind: ErrEmptyResponse, Method: method, Path: path}
	}
	return data, nil
}

func (c *DepotClient) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, &DepotError{Kind: ErrInvalidEndpoint, Method: method, Path: path, Err: err}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &DepotError{Kind: ErrDecodeFailure, Method: method, Path: path, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &DepotError{Kind: ErrInvalidEndpoint, Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Str("method", method).Str("path", path).Err(err).Msg("depot api unreachable")
		return nil, &DepotError{Kind: ErrNetworkFailure, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DepotError{Kind: ErrNetworkFailure, Method: method, Path: path, Err: err}
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("depot api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &DepotError{
			Kind:    ErrServerError,
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: serverMessage(data),
		}
	}
	return data, nil
}

// serverMessage extracts the optional {"message": "..."} error body.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	return body.Message
}
