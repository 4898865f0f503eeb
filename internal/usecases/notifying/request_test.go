package notifying

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-relay/pkg/apiErrors"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
		wantCode    string
		wantLen     int
	}{
		{name: "lista válida", contentType: "application/json", body: `{"accounts":[{"account_name":"alice","elapsed_time":7265}]}`, wantLen: 1},
		{name: "lista vazia", contentType: "application/json", body: `{"accounts":[]}`, wantLen: 0},
		{name: "charset no content-type", contentType: "application/json; charset=utf-8", body: `{"accounts":[]}`, wantLen: 0},
		{name: "tipo +json", contentType: "application/vnd.api+json", body: `{"accounts":[{}]}`, wantLen: 1},
		{name: "chaves extras ignoradas", contentType: "application/json", body: `{"accounts":[],"source":"bot"}`, wantLen: 0},

		{name: "content-type texto", contentType: "text/plain", body: `{"accounts":[]}`, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},
		{name: "sem content-type", contentType: "", body: `{"accounts":[]}`, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},
		{name: "json malformado", contentType: "application/json", body: `{"accounts": [`, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},
		{name: "lixo após o JSON", contentType: "application/json", body: `{"accounts":[]} garbage`, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},
		{name: "valores concatenados", contentType: "application/json", body: `{"accounts":[]}{}`, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},
		{name: "corpo vazio", contentType: "application/json", body: ``, wantErr: ErrInvalidContentType, wantCode: apiErrors.ErrInvalidContentType},

		{name: "sem accounts", contentType: "application/json", body: `{"users":[]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "accounts string", contentType: "application/json", body: `{"accounts":"alice"}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "accounts objeto", contentType: "application/json", body: `{"accounts":{"account_name":"alice"}}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "accounts null", contentType: "application/json", body: `{"accounts":null}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "corpo é lista", contentType: "application/json", body: `[{"accounts":[]}]`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "corpo é string", contentType: "application/json", body: `"accounts"`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "corpo null", contentType: "application/json", body: `null`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "item não é objeto", contentType: "application/json", body: `{"accounts":[1,2]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "item null", contentType: "application/json", body: `{"accounts":[null]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "item null após objeto", contentType: "application/json", body: `{"accounts":[{"likes":1},null]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "item lista", contentType: "application/json", body: `{"accounts":[[]]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "item string", contentType: "application/json", body: `{"accounts":["alice"]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
		{name: "contador não inteiro", contentType: "application/json", body: `{"accounts":[{"likes":"dez"}]}`, wantErr: ErrInvalidShape, wantCode: apiErrors.ErrInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseRequest(tt.contentType, []byte(tt.body))

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, records, tt.wantLen)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var notifyErr *NotifyError
			require.True(t, errors.As(err, &notifyErr))
			assert.Equal(t, tt.wantCode, notifyErr.Code)
		})
	}
}

func TestParseRequest_DecodesRecordFields(t *testing.T) {
	body := `{"accounts":[{"account_name":"alice","elapsed_time":7265,"impressions":1234567,"increase_since_last":-3,"likes":10,"comments":2},{"likes":5}]}`

	records, err := ParseRequest("application/json", []byte(body))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "alice", records[0].Name())
	assert.EqualValues(t, 7265, records[0].ElapsedTime)
	assert.EqualValues(t, 1234567, records[0].Impressions)
	assert.EqualValues(t, -3, records[0].IncreaseSinceLast)
	assert.EqualValues(t, 10, records[0].Likes)
	assert.EqualValues(t, 2, records[0].Comments)

	assert.Equal(t, "N/A", records[1].Name())
	assert.EqualValues(t, 5, records[1].Likes)
	assert.Zero(t, records[1].ElapsedTime)
}

func TestParseRequest_NullAccountNameIsTreatedAsMissing(t *testing.T) {
	records, err := ParseRequest("application/json", []byte(`{"accounts":[{"account_name":null,"likes":3},{"account_name":""}]}`))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Nil(t, records[0].AccountName)
	assert.Equal(t, "N/A", records[0].Name())
	assert.EqualValues(t, 3, records[0].Likes)

	require.NotNil(t, records[1].AccountName)
	assert.Equal(t, "", records[1].Name())
}

func TestNotifyError_UnwrapsBaseAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNotifyError(ErrDelivery, apiErrors.ErrDeliveryFailed, "x")
	assert.False(t, errors.Is(err, cause))

	err.Cause = cause
	assert.True(t, errors.Is(err, ErrDelivery))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidShape))
}
