package domain

const defaultAccountName = "N/A"

// AccountMetricRecord representa as métricas de uma conta recebidas no payload.
// Todos os campos são opcionais; contadores ausentes valem 0.
type AccountMetricRecord struct {
	AccountName       *string `json:"account_name,omitempty"`
	ElapsedTime       int64   `json:"elapsed_time"`
	Impressions       int64   `json:"impressions"`
	IncreaseSinceLast int64   `json:"increase_since_last"`
	Likes             int64   `json:"likes"`
	Comments          int64   `json:"comments"`
}

// Name retorna o nome da conta ou "N/A" quando o campo não foi enviado ou veio null
func (r AccountMetricRecord) Name() string {
	if r.AccountName == nil {
		return defaultAccountName
	}
	return *r.AccountName
}

// ReceiveDataRequest é o envelope aceito em POST /receive_data
type ReceiveDataRequest struct {
	Accounts []AccountMetricRecord `json:"accounts"`
}
