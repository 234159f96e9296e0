package status

// RuntimeInfo 런타임 정보(/api/info) 응답
//
// 모든 필드는 조회 시점의 프로세스 전역 카운터에서 계산되며,
// 요청 처리 과정에서 어떠한 공유 상태도 변경하지 않습니다.
type RuntimeInfo struct {
	// 서비스 식별자
	Service string `json:"service" example:"node-devops-server"`
	// 서버 빌드 버전
	Version string `json:"version" example:"1.0.0"`
	// 프로세스 시작 이후 경과 시간(초)
	UptimeSeconds float64 `json:"uptime_seconds" example:"3600.52"`
	// 메모리 영역별 사용량(바이트)
	Memory MemoryStats `json:"memory"`
	// 실행 중인 운영체제/아키텍처 (예: "linux/amd64")
	Platform string `json:"platform" example:"linux/amd64"`
	// 런타임 버전
	RuntimeVersion string `json:"runtime_version" example:"go1.24.0"`
}

// MemoryStats 메모리 영역별 사용량(바이트)
//
// runtime.MemStats에서 추출한 값으로, Node.js의 process.memoryUsage()가
// 반환하는 영역 구분(heap_total/heap_used/rss/external)과 대응됩니다.
type MemoryStats struct {
	// 런타임이 힙으로 예약한 전체 크기
	HeapTotal uint64 `json:"heap_total" example:"7913472"`
	// 현재 할당되어 사용 중인 힙 크기
	HeapUsed uint64 `json:"heap_used" example:"4251928"`
	// OS로부터 확보한 전체 메모리 크기
	RSS uint64 `json:"rss" example:"12845056"`
	// 힙 외부(스택, GC 메타데이터 등) 사용량
	External uint64 `json:"external" example:"1048576"`
}
