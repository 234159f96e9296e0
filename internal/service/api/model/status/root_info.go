package status

// RootInfo 루트(/) 엔드포인트 응답
type RootInfo struct {
	// 환영 메시지
	Message string `json:"message" example:"Welcome to DevOps Node.js Server"`
	// 서버 빌드 버전
	Version string `json:"version" example:"1.0.0"`
	// 실행 환경 이름 (development, staging, production)
	Environment string `json:"environment" example:"production"`
	// 응답 생성 시각 (RFC3339)
	Timestamp string `json:"timestamp" example:"2025-12-01T14:00:00Z"`
}
