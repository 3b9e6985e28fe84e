// internal/model/history.go
package model

import "time"

// AnswerState は解答イベントの結果を表す3値の状態コードです。
// 0=未学習 / 1=正解 / 2=不正解。履歴・リマインダー・復習の全体で
// この値をそのまま使うため、順序と値を変更してはいけません。
type AnswerState int

const (
	StateUnseen    AnswerState = 0
	StateCorrect   AnswerState = 1
	StateIncorrect AnswerState = 2
)

// Valid は状態コードが定義済みの3値のいずれかであるかを返します。
func (s AnswerState) Valid() bool {
	return s == StateUnseen || s == StateCorrect || s == StateIncorrect
}

// History は1回の解答イベントを表します。追記専用のログであり、
// 同じ (user, word) の組が日付違いで複数存在し得ます。
type History struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID int64       `gorm:"not null;index" json:"user_id"`
	WordID uint        `gorm:"not null;index" json:"word_id"`
	Date   time.Time   `gorm:"type:date;not null" json:"date"`
	State  AnswerState `gorm:"not null" json:"state"`
}

func (History) TableName() string {
	return "histories"
}

// HistoryEntry は履歴と単語をJOINした読み取り専用の行です。
type HistoryEntry struct {
	HistoryID uint
	UserID    int64
	WordID    uint
	Date      time.Time
	State     AnswerState
	Word      string
	JWord     string `gorm:"column:jword"`
	Type      string
	Level     int
}

// IncorrectWord は不正解履歴の (単語, 日付) の組です。
type IncorrectWord struct {
	WordID uint
	Word   string
	JWord  string `gorm:"column:jword"`
	Date   time.Time
}

// 履歴登録リクエストDTO
type PostHistoryRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	WordID *uint  `json:"word_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	State  *int   `json:"state" validate:"required,oneof=0 1 2"`
}

// PostHistoryResponse は履歴登録のレスポンスDTO
type PostHistoryResponse struct {
	Message   string `json:"message"`
	HistoryID uint   `json:"history_id"`
}

// HistoryEntryResponse は /history_v2 の1行分のレスポンスDTO
type HistoryEntryResponse struct {
	HistoryID uint   `json:"history_id"`
	UserID    int64  `json:"user_id"`
	WordID    uint   `json:"word_id"`
	Date      string `json:"date"`
	State     int    `json:"state"`
	Word      string `json:"word"`
	JWord     string `json:"jword"`
	Type      string `json:"type"`
	Level     int    `json:"level"`
}

// IncorrectWordResponse は /history/incorrect の1行分のレスポンスDTO
type IncorrectWordResponse struct {
	WordID uint   `json:"wordId"`
	Word   string `json:"word"`
	JWord  string `json:"jword"`
	Date   string `json:"date"`
}
