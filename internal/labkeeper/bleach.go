package labkeeper

import (
	"context"
	"os/exec"
	"path/filepath"
)

// BleachBit installs the disk-cleaning utility when missing, refreshes its
// preset from the configured URL and runs a preset-driven clean.
type BleachBit struct {
	Log       *Logger
	Exec      Runner
	ConfigDir string
	PresetURL string
}

// Setup runs the three sub-steps in order. The clean run is gated on a
// fresh preset: a failed download skips the run entirely so BleachBit never
// executes against a missing or stale configuration.
func (b *BleachBit) Setup(ctx context.Context) {
	b.ensureInstalled()
	if err := b.fetchPreset(ctx); err != nil {
		b.Log.Errorf("Preset download failed, skipping BleachBit run: %v", err)
		return
	}
	b.run()
}

func (b *BleachBit) ensureInstalled() {
	if _, err := b.Exec.LookPath("bleachbit"); err == nil {
		b.Log.Infof("BleachBit already installed")
		return
	}
	b.Log.Infof("Installing BleachBit")
	_ = b.Exec.Run(exec.Command("apt-get", "update"))
	if err := b.Exec.Run(exec.Command("apt-get", "-y", "install", "bleachbit")); err != nil {
		b.Log.Errorf("BleachBit install failed: %v", err)
	} else {
		b.Log.Successf("BleachBit installed")
	}
}

func (b *BleachBit) fetchPreset(ctx context.Context) error {
	dest := filepath.Join(b.ConfigDir, "bleachbit.ini")
	if err := downloadFile(ctx, b.Exec, b.PresetURL, dest); err != nil {
		return err
	}
	if sum, err := blake3File(dest); err == nil {
		b.Log.Successf("Preset fetched (blake3 %s)", sum)
	} else {
		b.Log.Successf("Preset fetched")
	}
	return nil
}

func (b *BleachBit) run() {
	if err := b.Exec.Run(exec.Command("bleachbit", "--preset", "--clean")); err != nil {
		b.Log.Errorf("BleachBit run failed: %v", err)
	} else {
		b.Log.Successf("BleachBit cleanup completed")
	}
}
