package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want Classification
	}{
		{"quota", "Quota exceeded for requests per minute", ClassRateLimit},
		{"rate", "429 RATE limited", ClassRateLimit},
		{"api key", "invalid API key provided", ClassCredential},
		{"api key case insensitive", "API_KEY_INVALID", ClassCredential},
		{"api without key", "api endpoint unreachable", ClassGeneric},
		{"key without api", "key rotation pending", ClassGeneric},
		{"rate wins over credential", "rate limit hit for this api key", ClassRateLimit},
		{"plain failure", "connection reset by peer", ClassGeneric},
		{"empty", "", ClassGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.msg))
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Run("rate limit", func(t *testing.T) {
		got := Describe(errors.New("quota exhausted"))
		assert.Equal(t, "Rate limit exceeded. Please try again in a few moments. Error: quota exhausted", got)
	})

	t.Run("credential", func(t *testing.T) {
		got := Describe(errors.New("bad api key"))
		assert.Equal(t, "API key issue. Please check your Gemini API key configuration. Error: bad api key", got)
	})

	t.Run("generic", func(t *testing.T) {
		got := Describe(errors.New("boom"))
		assert.Equal(t, "Error calling Gemini: boom", got)
	})
}
