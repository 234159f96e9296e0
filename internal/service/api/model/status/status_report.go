// Package status 상태 조회 API의 응답 모델을 정의합니다.
package status

// StatusReport 헬스체크 응답
//
// 컨테이너 오케스트레이터의 Liveness Probe가 주기적으로 수신하는 응답으로,
// 프로세스가 요청을 처리할 수 있는 한 status는 항상 healthy입니다.
type StatusReport struct {
	// 헬스체크 상태 (프로세스가 살아있는 동안 항상 healthy)
	Status string `json:"status" example:"healthy"`
	// 응답 생성 시각 (RFC3339)
	Timestamp string `json:"timestamp" example:"2025-12-01T14:00:00Z"`
	// 서비스 식별자
	Service string `json:"service" example:"node-devops-server"`
}
