package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
	"github.com/china630/bolt-usta-app/services/matching/mocks"
)

func setupHTTPTest(t *testing.T) (*Handler, *mocks.MockMatchingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	matchingUC := mocks.NewMockMatchingUC(ctrl)
	return NewHandler(matchingUC, nil, &models.Config{}), matchingUC
}

func echoContext(method, path, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramValue)
	return c, rec
}

func TestGetOrderMatch(t *testing.T) {
	h, matchingUC := setupHTTPTest(t)

	masterID := "master-1"
	matchingUC.EXPECT().
		GetOrderMatch(gomock.Any(), "order-1").
		Return(&models.Order{
			ID:       "order-1",
			Status:   models.OrderStatusAssigned,
			MasterID: &masterID,
		}, nil)

	c, rec := echoContext(http.MethodGet, "/orders/order-1/match", "order-1")

	err := h.GetOrderMatch(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "order-1")
	assert.Contains(t, rec.Body.String(), "master-1")
}

func TestGetOrderMatch_NotFound(t *testing.T) {
	h, matchingUC := setupHTTPTest(t)

	matchingUC.EXPECT().
		GetOrderMatch(gomock.Any(), "missing").
		Return(nil, matching.ErrOrderNotFound)

	c, _ := echoContext(http.MethodGet, "/orders/missing/match", "missing")

	err := h.GetOrderMatch(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestRequeueOrder(t *testing.T) {
	h, matchingUC := setupHTTPTest(t)

	matchingUC.EXPECT().
		RequeueOrder(gomock.Any(), "order-1").
		Return(&models.Order{
			ID:         "order-1",
			Status:     models.OrderStatusPending,
			RetryCount: 1,
		}, nil)

	c, rec := echoContext(http.MethodPost, "/orders/order-1/requeue", "order-1")

	err := h.RequeueOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.OrderStatusPending))
}

func TestRequeueOrder_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"order not found", matching.ErrOrderNotFound, http.StatusNotFound},
		{"wrong status", matching.ErrOrderNotRequeueable, http.StatusConflict},
		{"retries exhausted", matching.ErrRetriesExhausted, http.StatusConflict},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, matchingUC := setupHTTPTest(t)

			matchingUC.EXPECT().
				RequeueOrder(gomock.Any(), "order-1").
				Return(nil, tt.err)

			c, _ := echoContext(http.MethodPost, "/orders/order-1/requeue", "order-1")

			err := h.RequeueOrder(c)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}
