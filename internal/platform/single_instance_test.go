package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName(t *testing.T) {
	for _, name := range []string{"", "SimpleTimer", "another app"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
		assert.Equal(t, port, portFromName(name))
	}
}

func TestAcquireSingleInstance_SecondLaunchActivatesFirst(t *testing.T) {
	appName := fmt.Sprintf("simpletimer-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	t.Cleanup(func() { _ = guard.Release() })

	activated := make(chan struct{}, 1)
	go guard.Serve(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(appName)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Nil(t, second)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", portFromName(appName)), guard.address)
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	guard.Serve(nil)
}

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir("/tmp/override")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override", dir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err = ConfigDir("")
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}
