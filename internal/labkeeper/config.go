package labkeeper

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config struct
type Config struct {
	Values map[string]string
}

// Load /etc/labkeeper.conf and apply defaults
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	// Attempt to read the file
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"'`)
			cfg.Values[key] = val
		}
		if err := scanner.Err(); err != nil {
			return cfg, err
		}
	}

	// Merge LABKEEPER_* env overrides
	mergeEnvOverrides(cfg)

	return cfg, nil
}

// Merge LABKEEPER_* env overrides
func mergeEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "LABKEEPER_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				cfg.Values[parts[0]] = parts[1]
			}
		}
	}
}

func initConfig(cfg *Config) {
	TargetUser = cfg.Values["LABKEEPER_USER"]
	if TargetUser == "" {
		TargetUser = "student"
	}

	LogFile = cfg.Values["LABKEEPER_LOG"]
	if LogFile == "" {
		LogFile = "/var/log/labkeeper.log"
	}

	PresetURL = cfg.Values["LABKEEPER_PRESET_URL"]
	if PresetURL == "" {
		PresetURL = defaultPresetURL
	}

	BleachDir = cfg.Values["LABKEEPER_BLEACHBIT_DIR"]
	if BleachDir == "" {
		BleachDir = "/root/.config/bleachbit"
	}

	Debug = cfg.Values["LABKEEPER_DEBUG"] == "1"

	// The deny-list is colon separated so paths may contain spaces.
	if dirs := cfg.Values["LABKEEPER_PURGE_DIRS"]; dirs != "" {
		PurgeDirs = nil
		for _, d := range strings.Split(dirs, ":") {
			if d = strings.TrimSpace(d); d != "" {
				PurgeDirs = append(PurgeDirs, d)
			}
		}
	} else {
		home := filepath.Join("/home", TargetUser)
		PurgeDirs = nil
		for _, d := range defaultUserDirs {
			PurgeDirs = append(PurgeDirs, filepath.Join(home, d))
		}
	}

	if apps := cfg.Values["LABKEEPER_FLATPAKS"]; apps != "" {
		FlatpakApps = strings.Fields(apps)
	} else {
		FlatpakApps = append([]string(nil), defaultFlatpaks...)
	}

	if pkgs := cfg.Values["LABKEEPER_PACKAGES"]; pkgs != "" {
		DebPackages = strings.Fields(pkgs)
	} else {
		DebPackages = append([]string(nil), defaultPackages...)
	}

	debugf("=> Target user: %s, log: %s\n", TargetUser, LogFile)
}
