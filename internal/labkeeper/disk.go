package labkeeper

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// DiskSnapshot holds the root filesystem numbers shown in the run summary.
// Two snapshots are taken per run and only ever displayed side by side.
type DiskSnapshot struct {
	UsedPercent string
	Available   string
}

// snapshotDisk queries df for the root filesystem and falls back to a statfs
// computation when df is missing or its output changes shape.
func snapshotDisk(r Runner) DiskSnapshot {
	if _, err := r.LookPath("df"); err == nil {
		out, err := r.Output(exec.Command("df", "-h", "/"))
		if err == nil {
			if snap, ok := parseDfOutput(out); ok {
				return snap
			}
		}
	}
	return statfsSnapshot("/")
}

// parseDfOutput extracts Use% and Avail from `df -h /` output:
//
//	Filesystem      Size  Used Avail Use% Mounted on
//	/dev/sda2       234G  120G  103G  54% /
func parseDfOutput(out string) (DiskSnapshot, bool) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return DiskSnapshot{}, false
	}
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 5 || !strings.HasSuffix(fields[4], "%") {
		return DiskSnapshot{}, false
	}
	return DiskSnapshot{UsedPercent: fields[4], Available: fields[3]}, true
}

func statfsSnapshot(path string) DiskSnapshot {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskSnapshot{UsedPercent: "?", Available: "?"}
	}
	bsize := uint64(st.Bsize)
	used := (st.Blocks - st.Bfree) * bsize
	avail := st.Bavail * bsize
	pct := 0
	if used+avail > 0 {
		// df rounds the percentage up against the space visible to users.
		pct = int((used*100 + used + avail - 1) / (used + avail))
	}
	return DiskSnapshot{
		UsedPercent: fmt.Sprintf("%d%%", pct),
		Available:   humanSize(avail),
	}
}

func humanSize(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(b)/float64(div), "KMGTPE"[exp])
}
