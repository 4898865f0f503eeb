package utils

import "time"

const jstLayout = "2006-01-02 15:04:05"

// JST é o fuso fixo UTC+9, sem horário de verão
var JST = time.FixedZone("JST", 9*60*60)

// FormatJST formata o instante como "YYYY-MM-DD HH:MM:SS JST"
func FormatJST(t time.Time) string {
	return t.In(JST).Format(jstLayout) + " JST"
}
