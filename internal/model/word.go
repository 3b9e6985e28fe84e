// internal/model/word.go
package model

// Word は難易度レベル別の単語カタログの1件を表します。
// カタログは読み取り専用で、ロード後に変更されることはありません。
type Word struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Word  string `gorm:"not null" json:"word"`               // 英単語
	JWord string `gorm:"column:jword;not null" json:"jword"` // 日本語訳
	Type  string `json:"type"`                               // 品詞タグ
	Level int    `gorm:"not null;index" json:"level"`        // 難易度レベル
}

func (Word) TableName() string {
	return "words"
}
