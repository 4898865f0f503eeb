package notifying

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/metrics-relay/internal/domain"
	"github.com/vfg2006/metrics-relay/pkg/utils"
)

const (
	recordDivider  = "---"
	closingDivider = "==============================="
)

// FormatElapsed converte segundos em "H時間M分", ou apenas "M分" quando não há horas.
// Os segundos restantes são descartados.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%d時間%d分", hours, minutes)
	}
	return fmt.Sprintf("%d分", minutes)
}

// BuildMessage monta o texto completo da notificação para o Discord
func BuildMessage(now time.Time, records []domain.AccountMetricRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, ":clock1: **通知時刻**: `%s`\n", utils.FormatJST(now))

	for _, record := range records {
		b.WriteString(formatRecord(record))
	}

	b.WriteString(closingDivider)
	return b.String()
}

func formatRecord(r domain.AccountMetricRecord) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, ":bust_in_silhouette: **アカウント名**: `%s`\n", r.Name())
	fmt.Fprintf(&b, ":stopwatch: **経過時間**: `%s`\n", FormatElapsed(r.ElapsedTime))
	fmt.Fprintf(&b, ":eye: **インプレッション**: `%s`\n", utils.FormatThousands(r.Impressions))
	fmt.Fprintf(&b, ":arrow_upper_right: **増加数**: `%s`\n", utils.FormatThousands(r.IncreaseSinceLast))
	fmt.Fprintf(&b, ":heart: **いいね数**: `%s`\n", utils.FormatThousands(r.Likes))
	fmt.Fprintf(&b, ":speech_balloon: **コメント数**: `%s`\n", utils.FormatThousands(r.Comments))
	b.WriteString("\n")
	b.WriteString(recordDivider + "\n")

	return b.String()
}
