package labkeeper

import "context"

// Pipeline is the full maintenance sequence for one lab machine: empty the
// target user's folders, remove deny-listed applications and packages, deep
// clean with BleachBit, then bring the whole system up to date. Every stage
// is best effort; a failure is logged and the next stage runs anyway.
type Pipeline struct {
	Log  *Logger
	Exec Runner

	TargetUser  string
	PurgeDirs   []string
	FlatpakApps []string
	DebPackages []string
	PresetURL   string
	BleachDir   string
}

func (p *Pipeline) Run(ctx context.Context) {
	start := snapshotDisk(p.Exec)
	p.Log.Infof("Starting lab maintenance for user %s", p.TargetUser)
	p.Log.Infof("Disk usage: %s used, %s available", start.UsedPercent, start.Available)

	purgeFolders(p.Log, p.PurgeDirs)

	fp := &FlatpakManager{Log: p.Log, Exec: p.Exec}
	fp.RemoveApps(p.FlatpakApps)

	deb := &DebManager{Log: p.Log, Exec: p.Exec}
	deb.PurgePackages(p.DebPackages)

	bb := &BleachBit{Log: p.Log, Exec: p.Exec, ConfigDir: p.BleachDir, PresetURL: p.PresetURL}
	bb.Setup(ctx)

	up := &SystemUpdater{Log: p.Log, Exec: p.Exec}
	up.UpgradeAll()
	up.RefreshSnapFlatpak()
	up.CleanCaches()

	end := snapshotDisk(p.Exec)
	p.Log.Successf("Maintenance finished")
	p.Log.Infof("Disk usage before: %s used, %s available", start.UsedPercent, start.Available)
	p.Log.Infof("Disk usage after:  %s used, %s available", end.UsedPercent, end.Available)
}
