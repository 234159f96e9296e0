package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/status-server/internal/config"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service"
	"github.com/darkkaiser/status-server/internal/service/api"
	"github.com/darkkaiser/status-server/internal/service/monitor"
	applog "github.com/darkkaiser/status-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Status Server API
// @version 1.0.0
// @description 컨테이너 오케스트레이터와 모니터링 시스템이 사용하는 상태 조회 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 헬스체크 (Liveness Probe 용도)
// @description - 서버 기본/런타임 정보 조회
// @description - 에코 (연결 및 페이로드 진단)
// @description
// @description 모든 엔드포인트는 인증 없이 호출 가능합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____   _          _                 ____
 / ___| | |_  __ _ | |_  _   _  ___  / ___|   ___  _ __ __   __  ___  _ __
 \___ \ | __|/ _' || __|| | | |/ __| \___ \  / _ \| '__|\ \ / / / _ \| '__|
  ___) || |_| (_| || |_ | |_| |\__ \  ___) ||  __/| |    \ V / |  __/| |
 |____/  \__|\__,_| \__| \__,_||___/ |____/  \___||_|     \_/   \___||_|
                                                              %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 빌드 정보 조회 (ldflags 주입값 + 런타임 환경 정보)
	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version":     buildInfo.String(),
		"environment": appConfig.Server.Environment,
	}).Info("서버 초기화 시작")

	// 권장 설정 준수 여부 진단 (경고만 출력, 구동은 계속 진행)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	monitorService := monitor.NewService(appConfig)
	apiService := api.NewService(appConfig, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{monitorService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	// 종료 시그널 또는 API 서버의 복구 불가능한 오류(포트 바인딩 실패 등)를 대기한다.
	select {
	case <-termC:
		applog.WithComponent("main").Info("Shutdown signal received")
		cancel()             // Signal cancellation to context.Context
		serviceStopWG.Wait() // Block here until are workers are done

	case err := <-apiService.FatalErr():
		// 요청을 전혀 처리할 수 없는 상태이므로 남은 서비스를 정리하고 비정상 종료한다.
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("API 서버에서 복구 불가능한 오류가 발생하였습니다")

		cancel()
		serviceStopWG.Wait()

		log.Fatal("HTTP 서버를 시작할 수 없어 프로그램을 종료합니다")
	}
}
