package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
)

func TestRequeueOrder_Success(t *testing.T) {
	uc, orderRepo, _, matchGW := newTestUC(t)

	orderID := uuid.New().String()
	stuck := &models.Order{
		ID:         orderID,
		Category:   "plumbing",
		Status:     models.OrderStatusErrorMatching,
		RetryCount: 1,
	}
	requeued := &models.Order{
		ID:         orderID,
		Category:   "plumbing",
		Status:     models.OrderStatusPending,
		RetryCount: 2,
	}

	orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(stuck, nil)

	orderRepo.EXPECT().
		Requeue(gomock.Any(), orderID, 3).
		Return(requeued, nil)

	matchGW.EXPECT().
		PublishOrderCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.OrderCreatedEvent) error {
			assert.Equal(t, orderID, event.OrderID)
			assert.Equal(t, models.OrderStatusPending, event.Status)
			return nil
		})

	order, err := uc.RequeueOrder(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2, order.RetryCount)
}

func TestRequeueOrder_RejectsWrongStatus(t *testing.T) {
	uc, orderRepo, _, _ := newTestUC(t)

	orderID := uuid.New().String()
	orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusAssigned}, nil)

	order, err := uc.RequeueOrder(context.Background(), orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, matching.ErrOrderNotRequeueable)
}

func TestRequeueOrder_RejectsExhaustedRetries(t *testing.T) {
	uc, orderRepo, _, _ := newTestUC(t)

	orderID := uuid.New().String()
	orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{
			ID:         orderID,
			Status:     models.OrderStatusNoMasterFound,
			RetryCount: 3,
		}, nil)

	order, err := uc.RequeueOrder(context.Background(), orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, matching.ErrRetriesExhausted)
}

func TestRequeueOrder_UnknownOrder(t *testing.T) {
	uc, orderRepo, _, _ := newTestUC(t)

	orderID := uuid.New().String()
	orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(nil, matching.ErrOrderNotFound)

	order, err := uc.RequeueOrder(context.Background(), orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, matching.ErrOrderNotFound)
}
