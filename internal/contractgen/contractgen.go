// Package contractgen produces the human readable contract text attached to an accepted trade.
package contractgen

//go:generate mockgen -source=contractgen.go -destination=mock_contractgen.go -package=contractgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/trueqia/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Summary is what the contract is written about.
type Summary struct {
	TradeID    uuid.UUID `json:"trade_id"`
	OfferTitle string    `json:"offer_title"`
	FromUserID int       `json:"from_user_id"`
	ToUserID   int       `json:"to_user_id"`
	Tokens     int64     `json:"tokens"`
	ResolvedAt time.Time `json:"resolved_at"`
}

type Generator interface {
	Generate(ctx context.Context, summary Summary) (string, error)
}

// Pinger is implemented by generators that depend on a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TemplateGenerator writes a fixed template filled from the summary.
type TemplateGenerator struct{}

func (TemplateGenerator) Generate(_ context.Context, s Summary) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "TRADE AGREEMENT %s\n\n", s.TradeID)
	fmt.Fprintf(&b, "User #%d transfers %d tokens to user #%d", s.FromUserID, s.Tokens, s.ToUserID)
	fmt.Fprintf(&b, " in exchange for %q.\n", s.OfferTitle)
	fmt.Fprintf(&b, "Settled on %s.\n", s.ResolvedAt.UTC().Format(time.RFC3339))
	b.WriteString("Both parties accept the exchange as final.")
	return b.String(), nil
}

type contractResponse struct {
	Text string `json:"text"`
}

// HTTPGenerator asks the contract service for the text and falls back to
// another generator when the service cannot answer.
type HTTPGenerator struct {
	url       string
	healthURL string
	client    clients.HTTPClientI
	fallback  Generator
}

func NewHTTPGenerator(address string, client clients.HTTPClientI, fallback Generator) *HTTPGenerator {
	base := strings.TrimRight(address, "/")
	return &HTTPGenerator{
		url:       base + "/api/contracts",
		healthURL: base + "/health",
		client:    client,
		fallback:  fallback,
	}
}

// Ping reports whether the contract service answers on its health endpoint.
func (g *HTTPGenerator) Ping(ctx context.Context) error {
	statusCode, _, _, err := g.client.Get(ctx, g.healthURL, nil)
	if err != nil {
		return err
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}
	return nil
}

func (g *HTTPGenerator) Generate(ctx context.Context, s Summary) (string, error) {
	text, err := g.request(ctx, s)
	if err == nil {
		return text, nil
	}
	zap.L().Warn("contract service unavailable, using fallback",
		zap.String("trade_id", s.TradeID.String()), zap.Error(err))
	return g.fallback.Generate(ctx, s)
}

func (g *HTTPGenerator) request(ctx context.Context, s Summary) (string, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	statusCode, respBody, _, err := g.client.Post(ctx, g.url, nil, body)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var resp contractResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", errors.New("empty contract text")
	}
	return resp.Text, nil
}

// New picks the HTTP generator when a contract service address is configured.
func New(address string, client clients.HTTPClientI) Generator {
	if address == "" {
		return TemplateGenerator{}
	}
	return NewHTTPGenerator(address, client, TemplateGenerator{})
}
