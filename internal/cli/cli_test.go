package cli

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	grpcAdapter "github.com/quentinrf/berlin-clock/internal/adapters/grpc"
	"github.com/quentinrf/berlin-clock/internal/adapters/mock"
	"github.com/quentinrf/berlin-clock/internal/domain"
	"github.com/quentinrf/berlin-clock/internal/ports"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

// runWithStderr is run that also returns what went to stderr, logs included.
func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "13:17:01")
	require.NoError(t, err)
	assert.Equal(t, "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO\n", out)
}

func TestConvertCommand_EndOfDay(t *testing.T) {
	out, err := run(t, "convert", "24:00:00", "--pretty=never")
	require.NoError(t, err)
	assert.Equal(t, "Y\nRRRR\nRRRR\nOOOOOOOOOOO\nOOOO\n", out)
}

func TestConvertCommand_InvalidTime(t *testing.T) {
	out, err := run(t, "convert", "24:01:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "'24:01:00'")
	assert.Empty(t, out)
}

func TestConvertCommand_LogsAttempt(t *testing.T) {
	out, logs, err := runWithStderr(t, "convert", "13:17:01", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO\n", out)
	assert.Contains(t, logs, "converting time to Berlin clock")
	assert.Contains(t, logs, "13:17:01")

	_, logs, err = runWithStderr(t, "convert", "13:17:01")
	require.NoError(t, err)
	assert.NotContains(t, logs, "converting time")
}

func TestConvertCommand_Args(t *testing.T) {
	_, err := run(t, "convert")
	assert.Error(t, err)

	_, err = run(t, "convert", "12:00:00", "13:00:00")
	assert.Error(t, err)
}

func TestConvertCommand_BadPrettyMode(t *testing.T) {
	_, err := run(t, "convert", "12:00:00", "--pretty=sometimes")
	assert.ErrorContains(t, err, "unknown output mode")
}

func TestNowCommand(t *testing.T) {
	out, err := run(t, "now", "--at", "23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59\nO\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY\n", out)
}

func TestNowCommand_Timezone(t *testing.T) {
	out, err := run(t, "now", "--timezone", "UTC")
	require.NoError(t, err)
	assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")), 6)

	_, err = run(t, "now", "--timezone", "Nowhere/Special")
	assert.Error(t, err)
}

func TestEnvironmentBinding(t *testing.T) {
	t.Setenv("BERLINCLOCK_PRETTY", "always")

	out, err := run(t, "convert", "00:00:00")
	require.NoError(t, err)
	assert.Contains(t, out, "●")
	assert.NotContains(t, out, "OOOO")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "berlinclock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pretty: always\n"), 0o600))

	out, err := run(t, "convert", "00:00:00", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "○")

	// flags win over the config file
	out, err = run(t, "convert", "00:00:00", "--config", path, "--pretty=never")
	require.NoError(t, err)
	assert.Equal(t, "Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO\n", out)
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := run(t, "convert", "00:00:00", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func startServer(t *testing.T) string {
	t.Helper()

	clock := mock.NewFixedClock(time.Date(2025, 1, 1, 13, 17, 1, 0, time.UTC))
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	grpcAdapter.RegisterBerlinClockServer(srv, grpcAdapter.NewBerlinClockHandler(ports.NewConverter(clock)))
	go srv.Serve(lis)
	t.Cleanup(srv.GracefulStop)

	return lis.Addr().String()
}

func TestRemoteCommand(t *testing.T) {
	addr := startServer(t)

	out, err := run(t, "remote", "23:59:59", "--addr", addr)
	require.NoError(t, err)
	assert.Equal(t, "O\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY\n", out)

	out, err = run(t, "remote", "--now", "--addr", addr)
	require.NoError(t, err)
	assert.Equal(t, "13:17:01\nO\nRROO\nRRRO\nYYROOOOOOOO\nYYOO\n", out)
}

func TestRemoteCommand_InvalidTime(t *testing.T) {
	addr := startServer(t)

	_, err := run(t, "remote", "25:00:00", "--addr", addr)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "'25:00:00'")
}

func TestRemoteCommand_Args(t *testing.T) {
	_, err := run(t, "remote")
	assert.ErrorContains(t, err, "either a time or --now")

	_, err = run(t, "remote", "12:00:00", "--now")
	assert.ErrorContains(t, err, "either a time or --now")
}
