package labkeeper

import (
	"os"
	"path/filepath"
	"strings"
)

// purgeFolders empties each deny-listed folder while keeping the folder
// entry itself. Missing folders are a warning, not an error; deletion is
// irreversible so an empty path is refused outright.
func purgeFolders(log *Logger, dirs []string) {
	for _, dir := range dirs {
		purgeFolder(log, dir)
	}
}

func purgeFolder(log *Logger, dir string) {
	if strings.TrimSpace(dir) == "" {
		log.Errorf("Refusing to purge an empty path")
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Warnf("Folder %s not found, skipping", dir)
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Errorf("Could not read %s: %v", dir, err)
		return
	}
	failed := 0
	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			log.Errorf("Could not remove %s: %v", target, err)
			failed++
		}
	}
	if failed == 0 {
		log.Successf("Emptied %s", dir)
	}
}
