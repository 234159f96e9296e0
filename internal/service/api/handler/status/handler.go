// Package status 상태 조회 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 루트 정보, 런타임 정보, 에코 등 인증이 필요 없는 API를 처리합니다.
// 모든 핸들러는 상태를 갖지 않으며, 응답은 호출 시점의 벽시계 시간과
// 프로세스 전역 카운터(시작 시간, 메모리 사용량)에만 의존합니다.
package status

import (
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/httputil"
	"github.com/darkkaiser/status-server/internal/service/api/model/status"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// Handler 상태 조회 엔드포인트 핸들러 (헬스체크, 루트 정보, 런타임 정보, 에코, 버전 정보)
type Handler struct {
	buildInfo version.Info

	environment string

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info, environment string) *Handler {
	return &Handler{
		buildInfo: buildInfo,

		environment: environment,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버의 생존 여부를 확인합니다.
// @Description 인증 없이 호출 가능하며, 컨테이너 오케스트레이터의 Liveness Probe에서 사용됩니다.
// @Description 프로세스가 요청을 처리할 수 있는 한 status는 항상 healthy입니다.
// @Tags Status
// @Produce json
// @Success 200 {object} status.StatusReport "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, status.StatusReport{
		Status:    constants.HealthStatusHealthy,
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   constants.ServiceName,
	})
}

// RootHandler godoc
// @Summary 서버 기본 정보
// @Description 환영 메시지, 서버 버전, 실행 환경 이름을 반환합니다.
// @Tags Status
// @Produce json
// @Success 200 {object} status.RootInfo "서버 기본 정보"
// @Router / [get]
func (h *Handler) RootHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgRootInfo)

	return c.JSON(http.StatusOK, status.RootInfo{
		Message:     constants.WelcomeMessage,
		Version:     h.buildInfo.Version,
		Environment: h.environment,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// RuntimeInfoHandler godoc
// @Summary 서버 런타임 정보
// @Description 가동 시간, 메모리 사용량, 플랫폼, 런타임 버전을 반환합니다.
// @Description 모든 값은 조회 시점에 프로세스 전역 카운터에서 계산됩니다.
// @Tags Status
// @Produce json
// @Success 200 {object} status.RuntimeInfo "런타임 정보"
// @Router /api/info [get]
func (h *Handler) RuntimeInfoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/info",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgRuntimeInfo)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return c.JSON(http.StatusOK, status.RuntimeInfo{
		Service:       constants.ServiceName,
		Version:       h.buildInfo.Version,
		UptimeSeconds: time.Since(h.serverStartTime).Seconds(),
		Memory: status.MemoryStats{
			HeapTotal: ms.HeapSys,
			HeapUsed:  ms.HeapAlloc,
			RSS:       ms.Sys,
			External:  ms.StackSys,
		},
		Platform:       runtime.GOOS + "/" + runtime.GOARCH,
		RuntimeVersion: runtime.Version(),
	})
}

// EchoHandler godoc
// @Summary 에코
// @Description 요청 본문으로 전달된 JSON 값을 그대로 반영하여 반환합니다.
// @Description 연결 상태와 페이로드 처리를 검증하기 위한 진단용 엔드포인트입니다.
// @Tags Status
// @Accept json
// @Produce json
// @Param body body object true "반영할 JSON 값 (스키마 제한 없음)"
// @Success 200 {object} status.EchoEnvelope "에코 결과"
// @Failure 400 {object} response.ErrorResponse "본문이 유효한 JSON이 아님"
// @Router /api/echo [post]
func (h *Handler) EchoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/echo",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgEcho)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestBodyReadFailed)
	}

	if len(body) == 0 {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestEmptyBody)
	}

	// 구문 검증만 수행하고, 통과한 본문은 재해석 없이 그대로 반영합니다.
	// 재마샬링을 거치지 않으므로 숫자 정밀도나 키 순서가 변형되지 않습니다.
	if !gjson.ValidBytes(body) {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)
	}

	return c.JSON(http.StatusOK, status.EchoEnvelope{
		Message:   constants.EchoMessage,
		Received:  body,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags Status
// @Produce json
// @Success 200 {object} status.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, status.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
