package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/swork/digraph-animator/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App logging at debug level into a buffer. It
// returns the app, its output buffer and its log buffer.
func SetupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("DIGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
