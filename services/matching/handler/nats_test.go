package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching/mocks"
)

func setupNATSTest(t *testing.T) (*Handler, *mocks.MockMatchingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	matchingUC := mocks.NewMockMatchingUC(ctrl)
	return NewHandler(matchingUC, nil, &models.Config{}), matchingUC
}

func TestHandleOrderCreated(t *testing.T) {
	h, matchingUC := setupNATSTest(t)

	event := models.OrderCreatedEvent{
		OrderID:  "order-1",
		Status:   models.OrderStatusPending,
		Category: "plumbing",
		ClientLocation: &models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
		},
		CreatedAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	matchingUC.EXPECT().
		ProcessOrderCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, got models.OrderCreatedEvent) error {
			assert.Equal(t, "order-1", got.OrderID)
			assert.Equal(t, "plumbing", got.Category)
			return nil
		})

	assert.NoError(t, h.handleOrderCreated(payload))
}

func TestHandleOrderCreated_InvalidPayload(t *testing.T) {
	h, _ := setupNATSTest(t)

	err := h.handleOrderCreated([]byte("not json"))
	assert.Error(t, err)
}

func TestHandleMasterLocation(t *testing.T) {
	h, matchingUC := setupNATSTest(t)

	update := models.MasterLocationUpdate{
		MasterID: "master-1",
		IsActive: true,
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
		},
		Timestamp: time.Now(),
	}
	payload, err := json.Marshal(update)
	require.NoError(t, err)

	matchingUC.EXPECT().
		ProcessLocationUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, got models.MasterLocationUpdate) error {
			assert.Equal(t, "master-1", got.MasterID)
			assert.True(t, got.IsActive)
			return nil
		})

	assert.NoError(t, h.handleMasterLocation(payload))
}

func TestHandleMasterLocation_InvalidPayload(t *testing.T) {
	h, _ := setupNATSTest(t)

	err := h.handleMasterLocation([]byte("{broken"))
	assert.Error(t, err)
}
