package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

// =============================================================================
// Unit Tests (Validation & Logic)
// =============================================================================

// TestSetup_Validation 옵션 유효성 검사 로직을 테이블 기반으로 테스트합니다.
func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Missing Name",
			opts:        Options{Dir: "logs"},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name: "Dir Conflicts with Existing File",
			opts: Options{
				Name: "check-file",
				Dir:  tempFile,
			},
			expectError: "이미 파일로 존재합니다",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState()

			_, err := Setup(tt.opts)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

// TestSetup_Defaults 필수값이 누락되었을 때 기본값이 올바르게 적용되는지 검증합니다.
func TestSetup_Defaults(t *testing.T) {
	resetGlobalState()
	tempDir := t.TempDir()

	opts := Options{
		Name: "defaults-app",
		Dir:  tempDir,
		// Level, MaxSizeMB, MaxBackups 생략 -> 기본값 적용 기대
	}

	cl, err := Setup(opts)
	require.NoError(t, err)
	defer cl.Close()

	// 1. 기본 로그 레벨 (InfoLevel)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	// 2. 로테이션 기본값 (내부 상태 확인을 위한 White-Box 접근)
	c, ok := cl.(*closer)
	require.True(t, ok)
	require.NotEmpty(t, c.closers)

	mainLogger, ok := c.closers[0].(*lumberjack.Logger)
	require.True(t, ok, "Main Logger는 lumberjack.Logger 타입이어야 합니다")

	assert.Equal(t, defaultMaxSizeMB, mainLogger.MaxSize)
	assert.Equal(t, defaultMaxBackups, mainLogger.MaxBackups)
}

// =============================================================================
// Integration Tests (File System & Concurrency)
// =============================================================================

// TestSetup_Basic Setup 함수가 로그 파일을 올바르게 생성하는지 검증합니다.
func TestSetup_Basic(t *testing.T) {
	tempDir := setupLogTest(t)

	opts := Options{
		Name:   "test-app-basic",
		Dir:    tempDir,
		MaxAge: 7,
	}

	cl, err := Setup(opts)
	require.NoError(t, err)
	defer cl.Close()

	// Lazy Creation: 로그를 기록해야 파일이 생성됨
	WithFields(Fields{"foo": "bar"}).Info("Hello World")

	content := readLogFile(t, tempDir, "test-app-basic.log")
	assert.Contains(t, content, "Hello World")
	assert.Contains(t, content, "foo=bar")
}

// TestSetup_Concurrency 멀티 고루틴 환경에서 Setup이 안전하게 한 번만 실행되는지 검증합니다.
func TestSetup_Concurrency(t *testing.T) {
	resetGlobalState()
	tempDir := t.TempDir()

	const concurrency = 10
	var wg sync.WaitGroup
	wg.Add(concurrency)

	results := make([]error, concurrency)
	closers := make([]interface{}, concurrency)

	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			defer wg.Done()
			// 약간의 딜레이를 주어 경합 유도
			if idx%2 == 0 {
				time.Sleep(1 * time.Millisecond)
			}
			c, err := Setup(Options{
				Name: "concurrent-app",
				Dir:  tempDir,
			})
			results[idx] = err
			closers[idx] = c
		}(i)
	}

	wg.Wait()

	// 모든 고루틴이 에러 없이 성공하고, 동일한 Closer 인스턴스를 반환해야 함
	var firstCloser interface{}
	for i := 0; i < concurrency; i++ {
		require.NoError(t, results[i])
		if firstCloser == nil {
			firstCloser = closers[i]
		} else {
			assert.Same(t, firstCloser, closers[i], "모든 Setup 호출은 동일한 인스턴스를 반환해야 합니다")
		}
	}

	if c, ok := firstCloser.(*closer); ok {
		c.Close()
	}
}

// TestSetup_LevelSeparation 로깅 레벨에 따라 올바르게 파일이 분리되는지 검증합니다.
func TestSetup_LevelSeparation(t *testing.T) {
	tempDir := setupLogTest(t)

	opts := Options{
		Name:              "test-app-levels",
		Dir:               tempDir,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		Level:             TraceLevel,
	}

	cl, err := Setup(opts)
	require.NoError(t, err)
	defer cl.Close()

	WithFields(Fields{"level": "debug"}).Debug("Debug Message")
	WithFields(Fields{"level": "info"}).Info("Info Message")
	WithFields(Fields{"level": "error"}).Error("Error Message")

	// Main: Info, Error (Debug 제외)
	mainContent := readLogFile(t, tempDir, "test-app-levels.log")
	assert.Contains(t, mainContent, "Info Message")
	assert.Contains(t, mainContent, "Error Message")
	assert.NotContains(t, mainContent, "Debug Message")

	// Critical: Error만
	critContent := readLogFile(t, tempDir, "test-app-levels.critical.log")
	assert.Contains(t, critContent, "Error Message")
	assert.NotContains(t, critContent, "Info Message")

	// Verbose: Debug만
	verbContent := readLogFile(t, tempDir, "test-app-levels.verbose.log")
	assert.Contains(t, verbContent, "Debug Message")
	assert.NotContains(t, verbContent, "Info Message")
}

// TestSetup_RestartAppendsLog 재시작(Setup 재호출) 시 로그 파일이 초기화되지 않고 이어지는지 검증합니다.
func TestSetup_RestartAppendsLog(t *testing.T) {
	tempDir := setupLogTest(t)

	appName := "test-app-restart"
	opts := Options{Name: appName, Dir: tempDir}

	// Run 1
	closer1, err := Setup(opts)
	require.NoError(t, err)
	logrus.Info("Run 1 Log")
	closer1.Close()

	resetGlobalState()

	// Run 2
	closer2, err := Setup(opts)
	require.NoError(t, err)
	defer closer2.Close()
	logrus.Info("Run 2 Log")

	content := readLogFile(t, tempDir, appName+".log")
	assert.Contains(t, content, "Run 1 Log")
	assert.Contains(t, content, "Run 2 Log")
}

// TestSetup_FailureIsSticky 최초 초기화 실패 시 재호출해도 동일한 에러를 반환하는지 검증합니다.
func TestSetup_FailureIsSticky(t *testing.T) {
	resetGlobalState()

	_, err1 := Setup(Options{}) // Name 누락으로 실패
	require.Error(t, err1)

	_, err2 := Setup(Options{Name: "valid-app", Dir: t.TempDir()})
	require.Error(t, err2, "실패 이후의 Setup 호출은 재시도 없이 최초 에러를 반환해야 합니다")
	assert.Equal(t, err1, err2)
}

// =============================================================================
// Helpers
// =============================================================================

func setupLogTest(t *testing.T) string {
	t.Helper()

	resetGlobalState()
	t.Cleanup(resetGlobalState)
	return t.TempDir()
}

func readLogFile(t *testing.T, dir, filename string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	return string(content)
}

func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}
