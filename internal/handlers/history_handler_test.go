// internal/handlers/history_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mizuki1024/eitango-webapp/internal/handlers"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func Test_HistoryHandler_PostHistory(t *testing.T) {
	validBody := map[string]interface{}{
		"user_id": 1,
		"word_id": 42,
		"date":    "2026-08-30",
		"state":   2,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.MockHistoryService)
		expectedStatus int
	}{
		{
			name: "正常系: 履歴登録成功",
			body: validBody,
			setupMock: func(svc *mocks.MockHistoryService) {
				svc.On("Register", mock.Anything, int64(1), uint(42), mock.AnythingOfType("time.Time"), model.StateIncorrect).
					Return(&model.History{ID: 7}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: user_id がない",
			body:           map[string]interface{}{"word_id": 42, "date": "2026-08-30", "state": 2},
			setupMock:      func(svc *mocks.MockHistoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 日付の形式が不正",
			body:           map[string]interface{}{"user_id": 1, "word_id": 42, "date": "30/08/2026", "state": 2},
			setupMock:      func(svc *mocks.MockHistoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 解答状態が範囲外",
			body:           map[string]interface{}{"user_id": 1, "word_id": 42, "date": "2026-08-30", "state": 9},
			setupMock:      func(svc *mocks.MockHistoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           map[string]interface{}{"user_id": 1, "word_id": 42, "date": "2026-08-30", "state": 2, "bogus": true},
			setupMock:      func(svc *mocks.MockHistoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockHistoryService(t)
			tc.setupMock(mockService)

			handler := handlers.NewHistoryHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Post("/history", handler.PostHistory)

			rr := postJSON(t, router, "/history", tc.body)
			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.PostHistoryResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, uint(7), resp.HistoryID)
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}

func Test_HistoryHandler_GetHistory(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(svc *mocks.MockHistoryService)
		expectedStatus int
	}{
		{
			name: "正常系: 履歴一覧",
			path: "/history_v2?userId=1",
			setupMock: func(svc *mocks.MockHistoryService) {
				entries := []*model.HistoryEntryResponse{
					{HistoryID: 1, UserID: 1, WordID: 10, Date: "2026-08-30", State: 1, Word: "apple", JWord: "りんご", Type: "noun", Level: 1},
				}
				svc.On("GetHistory", mock.Anything, int64(1)).Return(entries, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: userId がない",
			path:           "/history_v2",
			setupMock:      func(svc *mocks.MockHistoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 履歴なし",
			path: "/history_v2?userId=1",
			setupMock: func(svc *mocks.MockHistoryService) {
				svc.On("GetHistory", mock.Anything, int64(1)).
					Return(nil, model.NewAppError("NOT_FOUND", "履歴が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockHistoryService(t)
			tc.setupMock(mockService)

			handler := handlers.NewHistoryHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Get("/history_v2", handler.GetHistory)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp struct {
					History []*model.HistoryEntryResponse `json:"history"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp.History, 1)
				assert.Equal(t, "apple", resp.History[0].Word)
			}
		})
	}
}

func Test_HistoryHandler_GetIncorrectWords(t *testing.T) {
	mockService := mocks.NewMockHistoryService(t)
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("GetIncorrectSince", mock.Anything, int64(2), since).
		Return([]*model.IncorrectWordResponse{
			{WordID: 10, Word: "apple", JWord: "りんご", Date: "2026-08-20"},
		}, nil).Once()

	handler := handlers.NewHistoryHandler(mockService, testLogger())
	router := chi.NewRouter()
	router.Get("/history/incorrect", handler.GetIncorrectWords)

	req := httptest.NewRequest(http.MethodGet, "/history/incorrect?userId=2&date=2026-08-01", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []*model.IncorrectWordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, uint(10), resp[0].WordID)
}
