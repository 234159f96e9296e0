// Package monitor 프로세스의 런타임 상태를 주기적으로 기록하는 서비스를 제공합니다.
//
// Cron 스케줄에 맞춰 가동 시간과 메모리 사용량 스냅샷을 로그로 남기며,
// 요청 처리 경로의 어떠한 상태도 변경하지 않는 순수 관측용 서비스입니다.
package monitor

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/darkkaiser/status-server/internal/config"
	"github.com/darkkaiser/status-server/pkg/cronx"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Monitor 서비스의 로깅용 컴포넌트 이름
const component = "monitor.service"

// Service 런타임 상태 스냅샷을 주기적으로 기록하는 서비스입니다.
type Service struct {
	monitorConfig config.MonitorConfig

	cron *cron.Cron

	processStartTime time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Monitor 서비스 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return &Service{
		monitorConfig: appConfig.Monitor,

		processStartTime: time.Now(),
	}
}

// Start 모니터 서비스를 시작하고 상태 스냅샷 작업을 Cron 엔진에 등록합니다.
//
// 설정에서 모니터가 비활성화된 경우에는 아무 작업도 등록하지 않고 즉시 종료 대기 상태로 전환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Monitor 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Monitor 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !s.monitorConfig.Enabled {
		applog.WithComponent(component).Info("Monitor 서비스가 설정에서 비활성화되어 있습니다")

		// 비활성화 상태에서도 생명주기 계약은 지켜야 하므로 종료 신호만 대기합니다.
		go func() {
			defer serviceStopWG.Done()
			<-serviceStopCtx.Done()
		}()

		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 스케줄러 전체가 중단되지 않도록 함
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 상태 스냅샷 작업 등록
	if _, err := s.cron.AddFunc(s.monitorConfig.TimeSpec, s.logRuntimeSnapshot); err != nil {
		serviceStopWG.Done()

		s.cron = nil

		applog.WithComponentAndFields(component, applog.Fields{
			"time_spec": s.monitorConfig.TimeSpec,
			"error":     err,
		}).Error("스케줄 등록 실패: 잘못된 Cron 표현식입니다")

		return err
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.monitorConfig.TimeSpec,
	}).Info("서비스 시작 완료: Monitor 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 모니터 서비스를 안전하게 중지합니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Monitor 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 작업 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Monitor 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// logRuntimeSnapshot 현재 가동 시간과 메모리 사용량을 구조화된 로그로 기록합니다.
//
// runtime.ReadMemStats는 읽기 전용 스냅샷만 수집하므로,
// 요청 처리에 영향을 주는 공유 상태 변경은 발생하지 않습니다.
func (s *Service) logRuntimeSnapshot() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	applog.WithComponentAndFields(component, applog.Fields{
		"uptime_seconds":  time.Since(s.processStartTime).Seconds(),
		"heap_total":      ms.HeapSys,
		"heap_used":       ms.HeapAlloc,
		"sys":             ms.Sys,
		"num_gc":          ms.NumGC,
		"num_goroutine":   runtime.NumGoroutine(),
		"gc_pause_total":  time.Duration(ms.PauseTotalNs).String(),
		"next_gc_target":  ms.NextGC,
		"last_gc_rfc3339": time.Unix(0, int64(ms.LastGC)).Format(time.RFC3339),
	}).Info("런타임 상태 스냅샷")
}
