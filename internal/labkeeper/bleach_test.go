package labkeeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// presetServer serves a small preset file over HTTP for the native download
// fallback (curl and wget are marked missing in these tests).
func presetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func nativeOnlyRunner() *fakeRunner {
	f := newFakeRunner()
	f.missing["curl"] = true
	f.missing["wget"] = true
	return f
}

func TestBleachBitInstallFetchRunOrder(t *testing.T) {
	log, logPath := newTestLogger(t)
	srv := presetServer(t, http.StatusOK, "[bleachbit]\npreset=true\n")
	f := nativeOnlyRunner()
	f.missing["bleachbit"] = true

	b := &BleachBit{
		Log:       log,
		Exec:      f,
		ConfigDir: t.TempDir(),
		PresetURL: srv.URL + "/bleachbit.ini",
	}
	b.Setup(context.Background())

	// Install happens first, the clean run last.
	updateIdx := f.indexOf("apt-get update")
	installIdx := f.indexOf("apt-get -y install bleachbit")
	runIdx := f.indexOf("bleachbit --preset --clean")
	require.GreaterOrEqual(t, updateIdx, 0)
	assert.Greater(t, installIdx, updateIdx)
	assert.Greater(t, runIdx, installIdx)

	// The preset landed on disk with the served content.
	data, err := os.ReadFile(filepath.Join(b.ConfigDir, "bleachbit.ini"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "preset=true")

	// Three log lines in order: install, fetch, run.
	content := readLog(t, logPath)
	installLog := strings.Index(content, "BleachBit installed")
	fetchLog := strings.Index(content, "Preset fetched")
	runLog := strings.Index(content, "BleachBit cleanup completed")
	require.GreaterOrEqual(t, installLog, 0)
	assert.Greater(t, fetchLog, installLog)
	assert.Greater(t, runLog, fetchLog)
	assert.Contains(t, content, "blake3")
}

func TestBleachBitAlreadyInstalledSkipsInstall(t *testing.T) {
	log, logPath := newTestLogger(t)
	srv := presetServer(t, http.StatusOK, "x")
	f := nativeOnlyRunner()

	b := &BleachBit{Log: log, Exec: f, ConfigDir: t.TempDir(), PresetURL: srv.URL}
	b.Setup(context.Background())

	assert.False(t, f.ran("apt-get -y install bleachbit"))
	assert.Contains(t, readLog(t, logPath), "BleachBit already installed")
}

func TestBleachBitRunGatedOnFetch(t *testing.T) {
	log, logPath := newTestLogger(t)
	srv := presetServer(t, http.StatusInternalServerError, "boom")
	f := nativeOnlyRunner()

	b := &BleachBit{Log: log, Exec: f, ConfigDir: t.TempDir(), PresetURL: srv.URL}
	b.Setup(context.Background())

	assert.False(t, f.ran("bleachbit --preset --clean"))
	assert.Contains(t, readLog(t, logPath), "skipping BleachBit run")
}

func TestDownloadFilePrefersCurlThenWget(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "preset.ini")
	f := newFakeRunner()
	f.failures["curl -L --fail -sS -o "+dest+" http://example.invalid/p"] = true

	err := downloadFile(context.Background(), f, "http://example.invalid/p", dest)
	require.NoError(t, err)

	curlIdx := f.indexOf("curl -L --fail")
	wgetIdx := f.indexOf("wget -q -O")
	require.GreaterOrEqual(t, curlIdx, 0)
	assert.Greater(t, wgetIdx, curlIdx)
}
