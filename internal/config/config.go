package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/darkkaiser/status-server/pkg/cronx"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "status-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 웹 서버 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultListenPort 웹 서버가 수신 대기하는 기본 포트
	DefaultListenPort = 3000

	// DefaultEnvironment 실행 환경 이름의 기본값
	DefaultEnvironment = "development"

	// ------------------------------------------------------------------------------------------------
	// 런타임 모니터 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultMonitorTimeSpec 런타임 상태 스냅샷을 기록하는 기본 주기 (매분 0초)
	DefaultMonitorTimeSpec = "0 * * * * *"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	Server  ServerConfig  `json:"server"`
	Monitor MonitorConfig `json:"monitor"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	// 웹 서버 설정 유효성 검사
	if err := c.Server.validate(); err != nil {
		return err
	}

	// 런타임 모니터 설정 유효성 검사
	if err := c.Monitor.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.Server.VerifyRecommendations()
}

// ServerConfig 웹 서버의 포트 및 실행 환경을 정의하는 설정 구조체
type ServerConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	Environment string `json:"environment" validate:"oneof=development staging production"`
}

func (c *ServerConfig) validate() error {
	return checkStruct(validate, c, "웹 서버(server)")
}

func (c *ServerConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// MonitorConfig 런타임 상태 스냅샷 기록 주기를 정의하는 설정 구조체
type MonitorConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec"`
}

func (c *MonitorConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	// Cron 표현식 검증 (모니터가 활성화된 경우)
	if err := cronx.Validate(c.TimeSpec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("런타임 모니터의 스케줄(monitor.time_spec) 설정이 유효하지 않습니다: '%s'", c.TimeSpec))
	}

	return nil
}

// defaults 모든 설정 항목의 기본값을 담은 AppConfig를 반환합니다.
// 설정 파일과 환경 변수가 모두 없어도 이 값만으로 서비스가 기동 가능해야 합니다.
func defaults() AppConfig {
	return AppConfig{
		Debug: false,
		Server: ServerConfig{
			ListenPort:  DefaultListenPort,
			Environment: DefaultEnvironment,
		},
		Monitor: MonitorConfig{
			Enabled:  true,
			TimeSpec: DefaultMonitorTimeSpec,
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 설정 소스는 다음의 우선순위로 병합됩니다. (뒤로 갈수록 높은 우선순위)
//  1. 구조체 기본값
//  2. JSON 설정 파일 (존재하는 경우에만)
//  3. STATUS_ 접두사 환경 변수
//  4. PORT / APP_ENV 단축 환경 변수
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(defaults(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	// 설정 파일은 선택 사항이므로, 파일이 존재하지 않는 경우에는 기본값으로 계속 진행합니다.
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (JSON 설정 덮어쓰기)
	// 접두사: STATUS_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: STATUS_SERVER__LISTEN_PORT -> server.listen_port
	if err := k.Load(env.Provider("STATUS_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "STATUS_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 단축 환경 변수 로드 (최우선 순위)
	// 배포 플랫폼들이 관례적으로 사용하는 평면 변수명을 계층 키에 매핑합니다.
	// PORT -> server.listen_port, APP_ENV -> server.environment
	aliases := map[string]interface{}{}
	if v := os.Getenv("PORT"); v != "" {
		aliases["server.listen_port"] = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		aliases["server.environment"] = v
	}
	if len(aliases) > 0 {
		if err := k.Load(confmap.Provider(aliases, "."), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
		}
	}

	// 5. 구조체 언마샬링 (Strict Validation 적용)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 6. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 값의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
