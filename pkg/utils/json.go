package utils

import (
	"bytes"
	"encoding/json"
)

const maxLoggedPayload = 4096

// CompactJSON devolve o corpo em uma única linha para log, truncado em 4KB.
// Se não for JSON válido o texto original é mantido.
func CompactJSON(raw []byte) string {
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		out.Reset()
		out.Write(raw)
	}

	if out.Len() > maxLoggedPayload {
		return string(out.Bytes()[:maxLoggedPayload]) + "...(truncated)"
	}
	return out.String()
}
