// internal/handlers/word_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mizuki1024/eitango-webapp/internal/handlers"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service/mocks"
)

func Test_WordHandler_GetQuestions(t *testing.T) {
	questions := []*model.Question{
		{
			ID:   1,
			Word: "apple",
			Options: []model.Option{
				{Word: "apple", Meaning: "りんご"},
				{Word: "banana", Meaning: "バナナ"},
				{Word: "cherry", Meaning: "さくらんぼ"},
			},
			CorrectOption: 0,
		},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(svc *mocks.MockQuizService)
		expectedStatus int
		wantCount      int
	}{
		{
			name: "正常系: userId 指定あり",
			path: "/words/1?userId=5",
			setupMock: func(svc *mocks.MockQuizService) {
				svc.On("GetQuestionList", mock.Anything, 1, int64(5)).Return(questions, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantCount:      1,
		},
		{
			name: "正常系: userId 省略時はデフォルトユーザー",
			path: "/words/2",
			setupMock: func(svc *mocks.MockQuizService) {
				svc.On("GetQuestionList", mock.Anything, 2, int64(1)).Return(questions, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantCount:      1,
		},
		{
			name:           "異常系: level の形式が不正",
			path:           "/words/abc",
			setupMock:      func(svc *mocks.MockQuizService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: userId の形式が不正",
			path:           "/words/1?userId=zero",
			setupMock:      func(svc *mocks.MockQuizService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: レベルに単語がない",
			path: "/words/9",
			setupMock: func(svc *mocks.MockQuizService) {
				svc.On("GetQuestionList", mock.Anything, 9, int64(1)).
					Return(nil, model.NewAppError("NOT_FOUND", "指定されたレベルの単語が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockQuizService(t)
			tc.setupMock(mockService)

			handler := handlers.NewWordHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Get("/words/{level}", handler.GetQuestions)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp []*model.Question
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tc.wantCount)
			}
		})
	}
}
