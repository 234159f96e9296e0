package api

import (
	"github.com/darkkaiser/status-server/internal/service/api/handler/status"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 공통 엔드포인트들을 설정합니다:
//   - 상태 엔드포인트: 헬스체크(/health), 루트 정보(/), 런타임 정보(/api/info),
//     에코(/api/echo), 버전 정보(/version) (모두 인증 불필요)
//   - API 문서: Swagger UI (/swagger/*) 제공
func RegisterRoutes(e *echo.Echo, h *status.Handler) {
	registerStatusRoutes(e, h)
	registerSwaggerRoutes(e)
}

func registerStatusRoutes(e *echo.Echo, h *status.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/", h.RootHandler)
	e.GET("/api/info", h.RuntimeInfoHandler)
	e.POST("/api/echo", h.EchoHandler)
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	// Swagger UI 엔드포인트 설정
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
