package usecase

import (
	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
)

// MatchingUC implements the matching use case interface
type MatchingUC struct {
	cfg        *models.Config
	orderRepo  matching.OrderRepo
	masterRepo matching.MasterRepo
	matchGW    matching.MatchingGW
}

// NewMatchingUC creates a new matching use case
func NewMatchingUC(
	cfg *models.Config,
	orderRepo matching.OrderRepo,
	masterRepo matching.MasterRepo,
	matchGW matching.MatchingGW,
) *MatchingUC {
	return &MatchingUC{
		cfg:        cfg,
		orderRepo:  orderRepo,
		masterRepo: masterRepo,
		matchGW:    matchGW,
	}
}
