package service

import (
	"context"
	"sync"
)

// Service 애플리케이션의 수명주기에 맞춰 시작/종료되는 백그라운드 서비스의 공통 인터페이스입니다.
//
// 구현체는 Start() 호출 시 자신의 작업 고루틴을 기동하고,
// serviceStopCtx가 취소되면 정리 작업을 마친 뒤 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
