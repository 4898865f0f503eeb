package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatThousands formata um inteiro com vírgulas como separador de milhar (1,234,567)
func FormatThousands(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}
