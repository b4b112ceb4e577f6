package labkeeper

import (
	"os"
	"os/exec"
)

// SystemUpdater brings the base system, snaps and flatpaks up to date and
// drops the package caches afterwards.
type SystemUpdater struct {
	Log  *Logger
	Exec Runner
}

// UpgradeAll refreshes the package index and applies a full upgrade. Only the
// upgrade's exit status decides the logged outcome; the index refresh is not
// independently checked.
func (u *SystemUpdater) UpgradeAll() {
	// Subsequent package operations must never block on a prompt.
	os.Setenv("DEBIAN_FRONTEND", "noninteractive")

	u.Log.Infof("Refreshing package index")
	_ = u.Exec.Run(exec.Command("apt-get", "update"))

	u.Log.Infof("Applying full system upgrade")
	if err := u.Exec.Run(exec.Command("apt-get", "-y", "full-upgrade")); err != nil {
		u.Log.Errorf("System upgrade failed: %v", err)
	} else {
		u.Log.Successf("System upgraded")
	}
}

// RefreshSnapFlatpak updates all snaps and flatpaks when the respective tool
// exists; a missing tool is skipped silently. Completion is logged without
// consulting the exit status.
func (u *SystemUpdater) RefreshSnapFlatpak() {
	if _, err := u.Exec.LookPath("snap"); err == nil {
		_ = u.Exec.Run(exec.Command("snap", "refresh"))
		u.Log.Successf("Snap packages refreshed")
	}
	if _, err := u.Exec.LookPath("flatpak"); err == nil {
		_ = u.Exec.Run(exec.Command("flatpak", "update", "-y"))
		u.Log.Successf("Flatpak packages refreshed")
	}
}

// CleanCaches clears the apt download cache and purges packages nothing
// depends on anymore. Completion is logged without consulting the exit status.
func (u *SystemUpdater) CleanCaches() {
	_ = u.Exec.Run(exec.Command("apt-get", "clean"))
	_ = u.Exec.Run(exec.Command("apt-get", "-y", "autoremove", "--purge"))
	u.Log.Successf("Package caches cleaned")
}
