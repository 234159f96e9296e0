// Package strutil 문자열 처리 유틸리티 함수들을 제공합니다.
package strutil

// MaskSensitiveData 민감한 문자열(API 키, 비밀번호 등)을 로그에 남길 수 있는 형태로 마스킹합니다.
//
// 값의 길이에 따라 노출 범위를 달리하여, 디버깅에 필요한 최소한의 식별 정보만 남깁니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
