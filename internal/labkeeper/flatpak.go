package labkeeper

import (
	"os/exec"
	"strings"
)

// FlatpakManager removes deny-listed sandboxed applications and prunes the
// runtimes nothing references anymore.
type FlatpakManager struct {
	Log  *Logger
	Exec Runner
}

// RemoveApps uninstalls every listed application ID that is currently
// installed. An absent app is a skip, a failed uninstall is logged and the
// next ID is processed; neither stops the run.
func (m *FlatpakManager) RemoveApps(ids []string) {
	if _, err := m.Exec.LookPath("flatpak"); err != nil {
		m.Log.Warnf("flatpak not available, skipping application removal")
		return
	}
	installed := m.installedApps()
	for _, id := range ids {
		if !installed[id] {
			m.Log.Infof("Flatpak %s not installed, skipping", id)
			continue
		}
		if err := m.Exec.Run(exec.Command("flatpak", "uninstall", "-y", id)); err != nil {
			m.Log.Errorf("Failed to remove flatpak %s: %v", id, err)
		} else {
			m.Log.Successf("Removed flatpak %s", id)
		}
	}

	// One prune pass after the whole list; its outcome does not gate the run.
	m.Log.Infof("Pruning unused flatpak runtimes")
	_ = m.Exec.Run(exec.Command("flatpak", "uninstall", "--unused", "-y"))
}

// installedApps returns the set of installed application IDs, one query for
// the whole removal list.
func (m *FlatpakManager) installedApps() map[string]bool {
	installed := make(map[string]bool)
	out, err := m.Exec.Output(exec.Command("flatpak", "list", "--app", "--columns=application"))
	if err != nil {
		return installed
	}
	for _, line := range strings.Split(out, "\n") {
		if id := strings.TrimSpace(line); id != "" {
			installed[id] = true
		}
	}
	return installed
}
