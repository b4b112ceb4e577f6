package labkeeper

import (
	"runtime"

	"github.com/gookit/color"
)

// Global variables
var (
	TargetUser  string
	LogFile     string
	PresetURL   string
	BleachDir   string
	PurgeDirs   []string
	FlatpakApps []string
	DebPackages []string
	Debug       bool
	ConfigFile  = "/etc/labkeeper.conf"
	version     = "dev" //default version; overridden at build time
	arch        = runtime.GOARCH
	buildDate   = "unknown" // overridden at build time
	// Global executor (declared, to be assigned in Main)
	RootExec *Executor
)

// Built-in lists, used when the config file does not override them.
var (
	defaultPresetURL = "https://raw.githubusercontent.com/labkeeper/presets/main/bleachbit.ini"
	defaultUserDirs  = []string{"Downloads", "Documents", "Desktop", "Pictures", "Videos", "Music"}
	defaultFlatpaks  = []string{
		"com.valvesoftware.Steam",
		"com.discordapp.Discord",
		"com.spotify.Client",
		"org.telegram.desktop",
	}
	defaultPackages = []string{
		"aisleriot",
		"gnome-mahjongg",
		"gnome-mines",
		"gnome-sudoku",
		"transmission-gtk",
	}
)

// color helpers
var (
	colInfo    = color.Info // style provided by gookit/color
	colWarn    = color.Warn
	colError   = color.Error
	colSuccess = color.HEX("#1976D2")
	colArrow   = color.HEX("#FFEB3B")
)
