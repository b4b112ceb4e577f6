package labkeeper

import (
	"os/exec"
	"strings"
)

// DebManager purges deny-listed native packages together with their
// configuration data.
type DebManager struct {
	Log  *Logger
	Exec Runner
}

// PurgePackages checks each package against the local dpkg database and
// purges the installed ones. Absent packages are a skip; a failed purge is
// logged and the next package is processed.
func (m *DebManager) PurgePackages(pkgs []string) {
	for _, pkg := range pkgs {
		if !m.isInstalled(pkg) {
			m.Log.Infof("Package %s not installed, skipping", pkg)
			continue
		}
		if err := m.Exec.Run(exec.Command("apt-get", "-y", "purge", pkg)); err != nil {
			m.Log.Errorf("Failed to purge %s: %v", pkg, err)
		} else {
			m.Log.Successf("Purged %s", pkg)
		}
	}
}

func (m *DebManager) isInstalled(pkg string) bool {
	out, err := m.Exec.Output(exec.Command("dpkg-query", "-W", "-f=${Status}", pkg))
	return err == nil && strings.Contains(out, "install ok installed")
}
