package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"mamahiam-storefront/internal/domain"
)

// ErrorKind buckets an order-submission failure into the user-facing
// categories the checkout view distinguishes.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindBadRequest
	KindValidation
	KindServer
	KindTimeout
)

// APIError is a classified order-submission failure. The cart is always left
// untouched by the caller so the user can retry.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("order submission failed: %s (status %d)", e.Message(), e.StatusCode)
	}
	return "order submission failed: " + e.Message()
}

// Message is the user-facing text for this failure class.
func (e *APIError) Message() string {
	switch e.Kind {
	case KindBadRequest:
		return "the order data is invalid, please review your input"
	case KindValidation:
		return "some fields could not be validated, please check them and try again"
	case KindServer:
		return "the server had a problem, please try again later"
	case KindTimeout:
		return "the connection timed out, please try again"
	default:
		return "something went wrong while sending your order, please try again"
	}
}

// CreateOrder submits the order. Exactly one request is made per call; there
// is no retry and no cancellation of an in-flight submission beyond the
// context.
func (c *Client) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderConfirmation, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		return nil, &APIError{Kind: kind, StatusCode: resp.StatusCode}
	}

	var envelope struct {
		Data confirmationPayload `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	conf := envelope.Data.toDomain()
	return &conf, nil
}

func classifyStatus(code int) (ErrorKind, bool) {
	switch {
	case code == http.StatusOK || code == http.StatusCreated:
		return 0, false
	case code == http.StatusBadRequest:
		return KindBadRequest, true
	case code == http.StatusUnprocessableEntity:
		return KindValidation, true
	case code >= http.StatusInternalServerError:
		return KindServer, true
	default:
		return KindGeneric, true
	}
}

func classifyTransport(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Kind: KindTimeout}
	}
	return &APIError{Kind: KindGeneric}
}

type confirmationPayload struct {
	Number          looseString        `json:"number"`
	CreatedAt       string             `json:"created_at"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Notes           string             `json:"notes"`
	TotalPrice      looseFloat         `json:"total_price"`
	Items           []confirmationLine `json:"items"`
}

type confirmationLine struct {
	ProductName string     `json:"product_name"`
	Qty         looseInt   `json:"qty"`
	UnitPrice   looseFloat `json:"unit_price"`
	LineTotal   looseFloat `json:"line_total"`
}

func (p confirmationPayload) toDomain() domain.OrderConfirmation {
	items := make([]domain.ConfirmationLine, 0, len(p.Items))
	for _, line := range p.Items {
		items = append(items, domain.ConfirmationLine{
			ProductName: line.ProductName,
			Qty:         int(line.Qty),
			UnitPrice:   float64(line.UnitPrice),
			LineTotal:   float64(line.LineTotal),
		})
	}
	return domain.OrderConfirmation{
		Number:          string(p.Number),
		CreatedAt:       p.CreatedAt,
		CustomerName:    p.CustomerName,
		CustomerPhone:   p.CustomerPhone,
		CustomerAddress: p.CustomerAddress,
		Notes:           p.Notes,
		TotalPrice:      float64(p.TotalPrice),
		Items:           items,
	}
}
