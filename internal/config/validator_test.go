package config

import (
	"testing"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Struct Validation Tests
// =============================================================================

func TestCheckStruct(t *testing.T) {
	t.Parallel()

	t.Run("성공: 유효한 서버 설정", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{ListenPort: 8080, Environment: "production"}

		assert.NoError(t, checkStruct(validate, cfg, "웹 서버(server)"))
	})

	tests := []struct {
		name        string
		cfg         ServerConfig
		errContains string
	}{
		{
			name:        "실패: 포트 하한 미달",
			cfg:         ServerConfig{ListenPort: 0, Environment: "development"},
			errContains: "1에서 65535 사이",
		},
		{
			name:        "실패: 포트 상한 초과",
			cfg:         ServerConfig{ListenPort: 70000, Environment: "development"},
			errContains: "1에서 65535 사이",
		},
		{
			name:        "실패: 허용되지 않는 실행 환경",
			cfg:         ServerConfig{ListenPort: 8080, Environment: "local"},
			errContains: "development, staging, production",
		},
		{
			name:        "실패: 빈 실행 환경",
			cfg:         ServerConfig{ListenPort: 8080, Environment: ""},
			errContains: "development, staging, production",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkStruct(validate, &tt.cfg, "웹 서버(server)")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, apperrors.InvalidInput, apperrors.GetType(err))
		})
	}
}

// TestNewValidator_TagNameFunc 검증 에러 메시지에 JSON 필드명이 사용되는지 확인합니다.
func TestNewValidator_TagNameFunc(t *testing.T) {
	t.Parallel()

	type sample struct {
		MaxCount int `json:"max_count" validate:"min=1"`
	}

	v := newValidator()
	err := v.Struct(&sample{MaxCount: 0})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_count", "에러 메시지는 Go 필드명 대신 JSON 이름을 사용해야 합니다")
}
