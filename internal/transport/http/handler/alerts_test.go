package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAlertSvc struct{ mock.Mock }

func (m *mockAlertSvc) Dispatch(ctx context.Context, req domain.AlertRequest) (*domain.DispatchResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*domain.DispatchResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAlertSvc) ListRecent(ctx context.Context, limit int32) ([]domain.AlertRecord, error) {
	args := m.Called(ctx, limit)
	if recs, _ := args.Get(0).([]domain.AlertRecord); recs != nil {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Dispatch tests ---

func TestDispatch_InvalidBody(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/sms", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.Dispatch(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Dispatch")
}

func TestDispatch_ValidationError(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("Dispatch", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("phone number and message required: %w", domain.ErrBadRequest))

	body, _ := json.Marshal(domain.AlertRequest{Message: "Help"})
	r := httptest.NewRequest(http.MethodPost, "/v1/sms", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Dispatch(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Error)
}

func TestDispatch_Success(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("Dispatch", mock.Anything, mock.MatchedBy(func(req domain.AlertRequest) bool {
		return req.PhoneNumber == "+1555" && req.Message == "Help"
	})).Return(&domain.DispatchResult{
		Success:   true,
		MessageID: "SM1",
		Status:    "queued",
		Message:   "SMS sent successfully",
	}, nil)

	body, _ := json.Marshal(domain.AlertRequest{PhoneNumber: "+1555", Message: "Help"})
	r := httptest.NewRequest(http.MethodPost, "/v1/sms", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Dispatch(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result domain.DispatchResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "SM1", result.MessageID)
	assert.Equal(t, "queued", result.Status)
	assert.Equal(t, "SMS sent successfully", result.Message)
}

func TestDispatch_DeliveryFailure(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("Dispatch", mock.Anything, mock.Anything).
		Return(nil, errors.New("SMS failed: gateway rejected message"))

	body, _ := json.Marshal(domain.AlertRequest{PhoneNumber: "+1555", Message: "Help"})
	r := httptest.NewRequest(http.MethodPost, "/v1/sms", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Dispatch(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Contains(t, env.Error, "SMS failed")
}

// --- List tests ---

func TestList_DefaultLimit(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("ListRecent", mock.Anything, int32(10)).Return([]domain.AlertRecord{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestList_ExplicitLimit(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	recs := []domain.AlertRecord{
		{AlertID: "01B", Status: domain.StatusSent},
		{AlertID: "01A", Status: domain.StatusFailed},
	}
	svc.On("ListRecent", mock.Anything, int32(5)).Return(recs, nil)

	r := httptest.NewRequest(http.MethodGet, "/v1/alerts?limit=5", nil)
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)

	var env AlertsEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Len(t, env.Alerts, 2)
	assert.Equal(t, "01B", env.Alerts[0].AlertID)
}

func TestList_NonNumericLimit_FallsBackToDefault(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("ListRecent", mock.Anything, int32(10)).Return([]domain.AlertRecord{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/v1/alerts?limit=abc", nil)
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

// Oversized limits are clamped instead of overflowing the store's int32.
func TestList_HugeLimit_Clamped(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("ListRecent", mock.Anything, int32(maxListLimit)).Return([]domain.AlertRecord{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/v1/alerts?limit=5000000000", nil)
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestList_StoreFailure(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc)

	svc.On("ListRecent", mock.Anything, int32(10)).Return(nil, errors.New("query failed"))

	r := httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
	rr := httptest.NewRecorder()
	h.List(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "Failed to fetch alerts", env.Error)
}
