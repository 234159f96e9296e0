package status

import "encoding/json"

// EchoEnvelope 에코(/api/echo) 응답
type EchoEnvelope struct {
	// 고정 메시지
	Message string `json:"message" example:"Echo endpoint"`
	// 요청 본문을 그대로 반영한 값 (스키마 검증 없음)
	// json.RawMessage를 사용하여 수신한 JSON을 재해석 없이 그대로 되돌려줍니다.
	Received json.RawMessage `json:"received" swaggertype:"object"`
	// 응답 생성 시각 (RFC3339)
	Timestamp string `json:"timestamp" example:"2025-12-01T14:00:00Z"`
}
