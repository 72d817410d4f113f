package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"promarket/models"
)

// Client is the HTTP implementation of API.
type Client struct {
	BaseURL    string
	CookieName string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient builds a backend API client. cookieName is the session cookie the
// backend expects; it is forwarded verbatim on every cookie-authenticated
// call.
func NewClient(baseURL, cookieName string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		CookieName: cookieName,
		HTTPClient: http.DefaultClient,
		Logger:     logger,
	}
}

// envelope is the backend's uniform response shape. Payload fields stay raw
// until the caller picks the one its endpoint uses.
type envelope struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
	Booking json.RawMessage `json:"booking"`
	Data    json.RawMessage `json:"data"`
	URL     string          `json:"url"`
}

func (e *envelope) serverMessage() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Error != nil {
		return e.Error.Message
	}
	return ""
}

// do issues one backend request and decodes the response envelope. A non-2xx
// status or success=false becomes an APIError; transport failures are
// returned wrapped.
func (c *Client) do(ctx context.Context, sess Session, method, path string, body any, bearer bool) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	} else if sess.Token != "" {
		req.AddCookie(&http.Cookie{Name: c.CookieName, Value: sess.Token})
	}
	if sess.RequestID != "" {
		req.Header.Set("X-Request-ID", sess.RequestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		// An unparseable body still carries meaning through the status code.
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode backend response %s %s: %w", method, path, decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.serverMessage()}
		c.Logger.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("msg", apiErr.Message),
		)
		return nil, apiErr
	}
	return &env, nil
}

// FetchBooking loads one booking by ID.
func (c *Client) FetchBooking(ctx context.Context, sess Session, bookingID string) (*models.BookingDetail, error) {
	env, err := c.do(ctx, sess, http.MethodGet, "/api/bookings/"+bookingID, nil, false)
	if err != nil {
		return nil, err
	}
	var booking models.BookingDetail
	if err := json.Unmarshal(env.Booking, &booking); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}
	return &booking, nil
}

// SubmitQuote attaches the professional's quote to a booking.
func (c *Client) SubmitQuote(ctx context.Context, sess Session, bookingID string, in models.QuoteInput) error {
	_, err := c.do(ctx, sess, http.MethodPost, "/api/bookings/"+bookingID+"/quote", in, false)
	return err
}

// RespondToQuote accepts or rejects the quote on a booking.
func (c *Client) RespondToQuote(ctx context.Context, sess Session, bookingID string, action string) error {
	in := models.QuoteResponseInput{Action: action}
	_, err := c.do(ctx, sess, http.MethodPost, "/api/bookings/"+bookingID+"/respond", in, false)
	return err
}

// UpdateBookingStatus requests a lifecycle transition. The backend validates
// the transition; the gateway never assumes it succeeded.
func (c *Client) UpdateBookingStatus(ctx context.Context, sess Session, bookingID string, status string) error {
	in := models.StatusUpdateInput{Status: status}
	_, err := c.do(ctx, sess, http.MethodPut, "/api/bookings/"+bookingID+"/status", in, false)
	return err
}

// AccountStatus reports the professional's payment-processor account state.
func (c *Client) AccountStatus(ctx context.Context, sess Session) (*models.AccountStatus, error) {
	env, err := c.do(ctx, sess, http.MethodGet, "/api/stripe/connect/account-status", nil, false)
	if err != nil {
		return nil, err
	}
	var status models.AccountStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		return nil, fmt.Errorf("decode account status: %w", err)
	}
	return &status, nil
}

// PaymentStats returns the professional's earnings summary.
func (c *Client) PaymentStats(ctx context.Context, sess Session) (*models.PaymentStats, error) {
	env, err := c.do(ctx, sess, http.MethodGet, "/api/professional/payment-stats", nil, false)
	if err != nil {
		return nil, err
	}
	var stats models.PaymentStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, fmt.Errorf("decode payment stats: %w", err)
	}
	return &stats, nil
}

// Transactions returns the professional's most recent earnings records.
func (c *Client) Transactions(ctx context.Context, sess Session, limit int) ([]models.Transaction, error) {
	path := "/api/professional/transactions?limit=" + strconv.Itoa(limit)
	env, err := c.do(ctx, sess, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}
	var txns []models.Transaction
	if err := json.Unmarshal(env.Data, &txns); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txns, nil
}

// DashboardLink requests a processor-hosted dashboard URL. This is the one
// call that authenticates with a bearer header instead of the session cookie.
func (c *Client) DashboardLink(ctx context.Context, sess Session) (string, error) {
	env, err := c.do(ctx, sess, http.MethodGet, "/api/stripe/connect/dashboard-link", nil, true)
	if err != nil {
		return "", err
	}
	return env.URL, nil
}
