package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks
// =============================================================================

// MockCloser io.Closer 모의 구현체입니다.
type MockCloser struct {
	mock.Mock
}

func (m *MockCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSyncCloser io.Closer + Sync() 모의 구현체입니다.
type MockSyncCloser struct {
	MockCloser
}

func (m *MockSyncCloser) Sync() error {
	args := m.Called()
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

func TestCloser_Close(t *testing.T) {
	t.Run("성공: 모든 리소스가 정상적으로 닫힘", func(t *testing.T) {
		m1 := new(MockCloser)
		m2 := new(MockCloser)
		h := &hook{}

		m1.On("Close").Return(nil)
		m2.On("Close").Return(nil)

		c := &closer{
			closers: []io.Closer{m1, m2},
			hook:    h,
		}

		err := c.Close()

		assert.NoError(t, err)
		assert.True(t, h.closed, "Hook이 닫힘 상태로 전환되어야 합니다")
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
	})

	t.Run("실패: 일부 리소스 닫기 실패 시에도 나머지는 시도함", func(t *testing.T) {
		m1 := new(MockCloser)
		m2 := new(MockCloser) // 실패 대상
		m3 := new(MockCloser)

		errFail := errors.New("fail to close")

		m1.On("Close").Return(nil)
		m2.On("Close").Return(errFail)
		m3.On("Close").Return(nil)

		c := &closer{
			closers: []io.Closer{m1, m2, m3},
		}

		err := c.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, errFail)

		// 중간 실패와 무관하게 모든 Close가 호출되어야 함
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
		m3.AssertExpectations(t)
	})

	t.Run("중복 호출: Idempotency 보장", func(t *testing.T) {
		m1 := new(MockCloser)
		m1.On("Close").Return(nil).Once()

		c := &closer{
			closers: []io.Closer{m1},
		}

		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close(), "두 번째 호출은 즉시 nil을 반환해야 합니다")

		m1.AssertExpectations(t)
	})

	t.Run("Hook 비활성화: 파일 닫기 전 Hook 먼저 종료", func(t *testing.T) {
		h := &hook{}
		c := &closer{hook: h}

		err := c.Close()

		assert.NoError(t, err)
		assert.True(t, h.closed)
	})
}

func TestCloser_Sync(t *testing.T) {
	t.Run("Sync 지원 시 호출 확인", func(t *testing.T) {
		ms := new(MockSyncCloser)
		ms.On("Sync").Return(nil).Once()
		ms.On("Close").Return(nil).Once()

		c := &closer{
			closers: []io.Closer{ms},
		}

		assert.NoError(t, c.Close())
		ms.AssertExpectations(t)
	})

	t.Run("Sync 실패 시 무시하고 Close 진행", func(t *testing.T) {
		ms := new(MockSyncCloser)
		ms.On("Sync").Return(errors.New("sync failed")).Once()
		ms.On("Close").Return(nil).Once()

		c := &closer{
			closers: []io.Closer{ms},
		}

		assert.NoError(t, c.Close(), "Sync 에러는 무시되어야 합니다")
		ms.AssertExpectations(t)
	})
}

func TestCloser_NilSafe(t *testing.T) {
	t.Run("Nil 요소가 있어도 패닉 없이 동작", func(t *testing.T) {
		m1 := new(MockCloser)
		m1.On("Close").Return(nil)

		c := &closer{
			closers: []io.Closer{nil, m1, nil},
			hook:    nil,
		}

		assert.NoError(t, c.Close())
		m1.AssertExpectations(t)
	})
}
