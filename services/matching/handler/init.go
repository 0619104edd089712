package handler

import (
	"github.com/nats-io/nats.go"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
	natspkg "github.com/china630/bolt-usta-app/internal/pkg/nats"
	"github.com/china630/bolt-usta-app/services/matching"
)

// Handler exposes the matching service over NATS subscriptions and HTTP
type Handler struct {
	matchingUC matching.MatchingUC
	natsClient *natspkg.Client
	cfg        *models.Config
	subs       []*nats.Subscription
}

// NewHandler creates a new matching handler
func NewHandler(matchingUC matching.MatchingUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		matchingUC: matchingUC,
		natsClient: natsClient,
		cfg:        cfg,
		subs:       make([]*nats.Subscription, 0),
	}
}

// Close unsubscribes from all NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
}
