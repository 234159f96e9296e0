package middleware

import (
	"io"

	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// 내부 로그 레벨과 gommon 로그 레벨 간의 변환 테이블입니다.
// 양쪽에 모두 존재하는 레벨만 매핑하며, 대응이 없는 레벨(Trace, Fatal, Panic)은
// 조회 실패로 처리합니다.
var (
	echoLevelOf = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}

	appLevelOf = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

// Logger gommon의 log.Logger 인터페이스를 서비스의 로그 시스템 위에서 구현하는 어댑터입니다.
//
// Echo는 프레임워크 내부 로그(기동 메시지, 라우팅 오류 등)를 자체 인터페이스로
// 출력하므로, 이 어댑터를 e.Logger에 지정하면 프레임워크 로그까지 레벨 라우팅과
// 파일 로테이션이 적용되는 단일 로그 파이프라인으로 합쳐집니다.
//
// e.Logger 할당이 성립하려면 인터페이스의 전체 메서드 집합을 빠짐없이 구현해야
// 합니다. 레벨/출력 계열은 위의 변환 테이블을 거치고, 기록 계열은 base 로거로
// 위임합니다.
type Logger struct {
	base *applog.Logger
}

// NewLogger base 로거를 감싸는 Echo용 로그 어댑터를 생성합니다.
func NewLogger(base *applog.Logger) Logger {
	return Logger{base: base}
}

// ===== 출력/포맷 설정 =====

func (l Logger) Output() io.Writer {
	return l.base.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

// Prefix Echo의 Prefix 기능은 사용하지 않으므로 항상 빈 문자열을 반환합니다.
func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

func (l Logger) SetHeader(string) {}

// ===== 레벨 변환 =====

// Level base 로거의 레벨을 gommon 레벨로 변환하여 반환합니다.
// 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := echoLevelOf[l.base.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel gommon 레벨을 base 로거의 레벨로 변환하여 설정합니다.
// 대응하는 레벨이 없으면(OFF 포함) 기존 레벨을 유지합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if appLvl, ok := appLevelOf[lvl]; ok {
		l.base.SetLevel(appLvl)
	}
}

// ===== 기록 메서드 (base 로거로 위임) =====

func (l Logger) Print(i ...interface{})                 { l.base.Print(i...) }
func (l Logger) Printf(format string, a ...interface{}) { l.base.Printf(format, a...) }
func (l Logger) Printj(j log.JSON)                      { l.entry(j).Print() }

func (l Logger) Debug(i ...interface{})                 { l.base.Debug(i...) }
func (l Logger) Debugf(format string, a ...interface{}) { l.base.Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON)                      { l.entry(j).Debug() }

func (l Logger) Info(i ...interface{})                 { l.base.Info(i...) }
func (l Logger) Infof(format string, a ...interface{}) { l.base.Infof(format, a...) }
func (l Logger) Infoj(j log.JSON)                      { l.entry(j).Info() }

func (l Logger) Warn(i ...interface{})                 { l.base.Warn(i...) }
func (l Logger) Warnf(format string, a ...interface{}) { l.base.Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON)                      { l.entry(j).Warn() }

func (l Logger) Error(i ...interface{})                 { l.base.Error(i...) }
func (l Logger) Errorf(format string, a ...interface{}) { l.base.Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON)                      { l.entry(j).Error() }

func (l Logger) Fatal(i ...interface{})                 { l.base.Fatal(i...) }
func (l Logger) Fatalf(format string, a ...interface{}) { l.base.Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON)                      { l.entry(j).Fatal() }

func (l Logger) Panic(i ...interface{})                 { l.base.Panic(i...) }
func (l Logger) Panicf(format string, a ...interface{}) { l.base.Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON)                      { l.entry(j).Panic() }

// entry gommon의 JSON 페이로드를 구조화 필드로 변환한 로그 엔트리를 반환합니다.
func (l Logger) entry(j log.JSON) *applog.Entry {
	return l.base.WithFields(applog.Fields(j))
}
