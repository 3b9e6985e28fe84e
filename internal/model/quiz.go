// internal/model/quiz.go
package model

// Option は3択問題の選択肢1つ分です。正解かどうかは
// (word, meaning) の組の同一性で判定します。
type Option struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// Question は出題1問分の一時的な派生値です。永続化されません。
// CorrectOption はシャッフル後に再計算された正解の位置です。
type Question struct {
	ID            uint     `json:"id"`
	Word          string   `json:"word"`
	Options       []Option `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

// クイズセッション開始リクエストDTO
type StartQuizRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	Level  *int   `json:"level" validate:"required,min=1"`
}

// クイズ解答リクエストDTO
type QuizAnswerRequest struct {
	Option *Option `json:"option" validate:"required"`
}

// QuizSessionResponse はセッションのスナップショットです。
type QuizSessionResponse struct {
	SessionID string    `json:"session_id"`
	Level     int       `json:"level"`
	State     string    `json:"state"`
	Answered  int       `json:"answered"`
	Question  *Question `json:"question,omitempty"`
}

// QuizAnswerResponse は1問分の解答結果と次のスナップショットです。
type QuizAnswerResponse struct {
	Correct       bool                `json:"correct"`
	CorrectOption Option              `json:"correct_option"`
	Session       QuizSessionResponse `json:"session"`
}
