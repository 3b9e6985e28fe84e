// internal/model/review.go
package model

// ReviewDateResponse は復習日選択画面の1行分です。
type ReviewDateResponse struct {
	Date     string `json:"date"`
	Mistakes int    `json:"mistakes"`
}

// 復習セッション開始リクエストDTO
type StartReviewRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

// 復習解答リクエストDTO
type ReviewAnswerRequest struct {
	Choice string `json:"choice" validate:"required"`
}

// ReviewQuestion は復習テストの1問分です。選択肢は日本語訳のみの
// 3択で、他の日付の間違い単語も誤答候補として混ざります。
type ReviewQuestion struct {
	Word    string   `json:"word"`
	Choices []string `json:"choices"`
}

// ReviewSessionResponse は復習セッションのスナップショットです。
// Score は Finished 状態でのみ設定されます。
type ReviewSessionResponse struct {
	SessionID    string          `json:"session_id"`
	Date         string          `json:"date"`
	State        string          `json:"state"`
	CorrectCount int             `json:"correct_count"`
	Remaining    int             `json:"remaining"`
	Total        int             `json:"total"`
	Score        *int            `json:"score,omitempty"`
	Question     *ReviewQuestion `json:"question,omitempty"`
}

// ReviewAnswerResponse は復習1問分の結果と次のスナップショットです。
type ReviewAnswerResponse struct {
	Correct bool                  `json:"correct"`
	Answer  string                `json:"answer"`
	Session ReviewSessionResponse `json:"session"`
}
