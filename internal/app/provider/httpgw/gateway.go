package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avorobev/payment-router/internal/app/config"
	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/provider"
)

const (
	quotesPath = `/api/quotes`
	ordersPath = `/api/orders`
)

var (
	ErrUnexpectedProviderStatus = errors.New("unexpected status from provider")
)

// Gateway adapts a remote payment provider HTTP API to the
// PaymentProvider contract. The per-request timeout is owned by the
// embedded client.
type Gateway struct {
	client http.Client

	name      string
	address   string
	supported map[entity.PaymentMethod]struct{}
}

func New(cfg config.ProviderConfig, timeout time.Duration) (*Gateway, error) {
	supported := make(map[entity.PaymentMethod]struct{}, len(cfg.Methods))
	for _, raw := range cfg.Methods {
		method, err := entity.ParsePaymentMethod(raw)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
		}
		supported[method] = struct{}{}
	}

	return &Gateway{
		client: http.Client{
			Timeout: timeout,
		},
		name:      cfg.Name,
		address:   cfg.Address,
		supported: supported,
	}, nil
}

func (g *Gateway) Name() string {
	return g.name
}

func (g *Gateway) SupportsMethod(method entity.PaymentMethod) bool {
	_, ok := g.supported[method]
	return ok
}

func (g *Gateway) Commission(ctx context.Context, order *entity.Order) (decimal.Decimal, error) {
	request := quoteRequest{
		PaymentMethod: order.PaymentMethod().String(),
		Amount:        order.Amount(),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error while encoding quote request: %w", err)
	}

	res, err := g.post(ctx, g.address+quotesPath, body)
	if err != nil {
		return decimal.Zero, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("quote request to %s returned %d: %w", g.name, res.StatusCode, ErrUnexpectedProviderStatus)
	}

	var response quoteResponse
	err = json.NewDecoder(res.Body).Decode(&response)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error while decoding quote response: %w", err)
	}

	return response.Commission, nil
}

func (g *Gateway) CreateOrder(ctx context.Context, order *entity.Order) (provider.Response, error) {
	request := createOrderRequest{
		PaymentMethod: order.PaymentMethod().String(),
		Amount:        order.Amount(),
	}
	for _, item := range order.Items() {
		request.Items = append(request.Items, orderItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	body, err := json.Marshal(request)
	if err != nil {
		return provider.Response{}, fmt.Errorf("error while encoding create order request: %w", err)
	}

	res, err := g.post(ctx, g.address+ordersPath, body)
	if err != nil {
		return provider.Response{}, err
	}

	return g.decodeResponse(res)
}

func (g *Gateway) CancelOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	res, err := g.post(ctx, fmt.Sprintf("%s%s/%s/cancel", g.address, ordersPath, providerRef), nil)
	if err != nil {
		return provider.Response{}, err
	}

	return g.decodeResponse(res)
}

func (g *Gateway) PayOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	res, err := g.post(ctx, fmt.Sprintf("%s%s/%s/pay", g.address, ordersPath, providerRef), nil)
	if err != nil {
		return provider.Response{}, err
	}

	return g.decodeResponse(res)
}

func (g *Gateway) GetOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s/%s", g.address, ordersPath, providerRef), nil)
	if err != nil {
		return provider.Response{}, fmt.Errorf("cannot create request for provider %s: %w", g.name, err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return provider.Response{}, fmt.Errorf("request to provider %s failed: %w", g.name, err)
	}

	return g.decodeResponse(res)
}

func (g *Gateway) ListOrders(ctx context.Context) ([]provider.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.address+ordersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request for provider %s: %w", g.name, err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to provider %s failed: %w", g.name, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list orders request to %s returned %d: %w", g.name, res.StatusCode, ErrUnexpectedProviderStatus)
	}

	var wireResponses []gatewayResponse
	err = json.NewDecoder(res.Body).Decode(&wireResponses)
	if err != nil {
		return nil, fmt.Errorf("error while decoding list orders response: %w", err)
	}

	responses := make([]provider.Response, 0, len(wireResponses))
	for _, wire := range wireResponses {
		responses = append(responses, wire.toResponse())
	}

	return responses, nil
}

func (g *Gateway) post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot create request for provider %s: %w", g.name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to provider %s failed: %w", g.name, err)
	}

	return res, nil
}

func (g *Gateway) decodeResponse(res *http.Response) (provider.Response, error) {
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return provider.Response{}, fmt.Errorf("request to %s returned %d: %w", g.name, res.StatusCode, ErrUnexpectedProviderStatus)
	}

	var wire gatewayResponse
	err := json.NewDecoder(res.Body).Decode(&wire)
	if err != nil {
		return provider.Response{}, fmt.Errorf("error while decoding provider response: %w", err)
	}

	return wire.toResponse(), nil
}
