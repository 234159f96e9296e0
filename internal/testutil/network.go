// Package testutil 네트워크 기반 통합 테스트를 위한 보조 도구를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// healthProbeInterval 기동 완료 판정을 위한 헬스체크 폴링 간격
const healthProbeInterval = 25 * time.Millisecond

// GetFreePort OS가 할당해 주는 사용 가능한 TCP 포트 번호를 반환합니다.
//
// 반환 시점에 리스너를 닫으므로 다른 프로세스가 그 사이에 포트를 선점할 수
// 있습니다. 테스트 전용 도구이며 운영 코드에서 사용해서는 안 됩니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("임시 포트 할당 실패: %w", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer 서버의 헬스체크 엔드포인트(GET /health)가 200을 반환할 때까지 폴링합니다.
//
// 단순 TCP 연결 여부가 아니라 오케스트레이터의 Liveness Probe와 동일한 기준으로
// 기동 완료를 판정하므로, 라우팅과 미들웨어 체인까지 준비된 상태를 보장합니다.
func WaitForServer(port int, timeout time.Duration) error {
	client := &http.Client{Timeout: healthProbeInterval * 4}
	url := fmt.Sprintf("http://localhost:%d/health", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		time.Sleep(healthProbeInterval)
	}

	return fmt.Errorf("서버가 %v 내에 포트 %d의 헬스체크에 응답하지 않았습니다", timeout, port)
}
