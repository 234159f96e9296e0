package constants

// 클라이언트에게 노출되는 서비스 식별 상수입니다.
const (
	// ServiceName 응답 본문의 service 필드에 기록되는 서비스 식별자입니다.
	//
	// 배포 오케스트레이터와 모니터링 시스템이 이 값으로 서비스를 구분하므로,
	// 저장소 이름과 무관하게 변경 없이 유지해야 합니다.
	ServiceName = "node-devops-server"

	// WelcomeMessage 루트(/) 엔드포인트가 반환하는 환영 메시지입니다.
	WelcomeMessage = "Welcome to DevOps Node.js Server"

	// EchoMessage 에코(/api/echo) 엔드포인트가 반환하는 고정 메시지입니다.
	EchoMessage = "Echo endpoint"
)
