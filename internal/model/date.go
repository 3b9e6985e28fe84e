// internal/model/date.go
package model

import "time"

// DateLayout は履歴・リマインダーで使う日付（時刻なし）の書式です。
const DateLayout = "2006-01-02"

// DateOf は時刻成分を落としたカレンダー日付（UTC深夜0時）を返します。
// 履歴とリマインダーの日付比較はすべてこの表現で行います。
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate は "2006-01-02" 形式の文字列をカレンダー日付に変換します。
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
