package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topicRequest struct {
	Topic string `json:"topic" validate:"notblank"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantErr     bool
		errContains string
		wantTopic   string
	}{
		{name: "valid json", body: `{"topic": "Photosynthesis"}`, wantTopic: "Photosynthesis"},
		{name: "unknown fields ignored", body: `{"topic": "Go", "extra": 1}`, wantTopic: "Go"},
		{name: "invalid json", body: `{"topic": "Go",}`, wantErr: true, errContains: "invalid character"},
		{name: "empty body", body: "", wantErr: true, errContains: "request body is empty"},
		{name: "wrong type", body: `{"topic": 42}`, wantErr: true, errContains: "cannot unmarshal"},
		{name: "trailing value", body: `{"topic": "a"} {"topic": "b"}`, wantErr: true, errContains: "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got topicRequest

			err := DecodeJSON(httptest.NewRecorder(), req, &got)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTopic, got.Topic)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	t.Parallel()

	body := `{"topic": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var got topicRequest

	err := DecodeJSON(httptest.NewRecorder(), req, &got)
	assert.Error(t, err)
}

func TestValidateRequest_NotBlank(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(topicRequest{Topic: "Go"}))
	assert.Error(t, ValidateRequest(topicRequest{Topic: ""}))
	assert.Error(t, ValidateRequest(topicRequest{Topic: "   \t\n"}))
}
