package labkeeper

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
)

// printHelp prints the commands table
func printHelp() {
	colSuccess.Println("Usage: labkeeper <command>")
	fmt.Println()
	color.Info.Println("Available Commands:")

	type cmdInfo struct {
		Cmd  string
		Desc string
	}
	cmds := []cmdInfo{
		{"run, r", "Run the maintenance pipeline (default, requires root)"},
		{"log, l", "View the maintenance log"},
		{"version, --version", "Version information"},
		{"help, -h", "Show this help"},
	}

	maxLen := 0
	for _, c := range cmds {
		if len(c.Cmd) > maxLen {
			maxLen = len(c.Cmd)
		}
	}
	columnWidth := maxLen + 4

	for _, c := range cmds {
		fmt.Print("  ")
		color.Bold.Print(c.Cmd)
		fmt.Print(strings.Repeat(" ", columnWidth-len(c.Cmd)))
		color.Info.Println(c.Desc)
	}
	fmt.Println()
}

// configPath honors the LABKEEPER_CONFIG override.
func configPath() string {
	if p := os.Getenv("LABKEEPER_CONFIG"); p != "" {
		return p
	}
	return ConfigFile
}

// Main is the CLI entrypoint for cmd/labkeeper.
func Main() {
	// 1. CONTEXT AND SIGNAL SETUP
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	// 2. SIGNAL HANDLING GOROUTINE
	// First signal cancels the context so the running external command's
	// process group is killed; a second signal forces immediate exit.
	go func() {
		select {
		case sig := <-sigs:
			colArrow.Print("\n-> ")
			color.Danger.Printf("Received %v. Cancelling gracefully\n", sig)
			cancel()
			select {
			case <-sigs:
				colArrow.Print("\n-> ")
				color.Danger.Println("Second interrupt received. Forcing immediate exit.")
				os.Exit(130)
			case <-time.After(2 * time.Second):
				colArrow.Print("\n-> ")
				color.Danger.Println("Graceful shutdown timeout. Exiting.")
				os.Exit(130)
			}
		case <-ctx.Done():
			return
		}
	}()

	// 3. CONFIGURATION
	cfg, err := loadConfig(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", configPath(), err)
	}
	initConfig(cfg)

	cmd := "run"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	// 4. MAIN LOGIC
	switch cmd {
	case "run", "r":
		// Hard precondition: everything past this point mutates the system.
		if err := requireRoot(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		RootExec = &Executor{Context: ctx}
		pipe := &Pipeline{
			Log:         NewLogger(LogFile),
			Exec:        RootExec,
			TargetUser:  TargetUser,
			PurgeDirs:   PurgeDirs,
			FlatpakApps: FlatpakApps,
			DebPackages: DebPackages,
			PresetURL:   PresetURL,
			BleachDir:   BleachDir,
		}
		pipe.Run(ctx)

	case "log", "l":
		os.Exit(runLogViewer(LogFile))

	case "version", "--version", "-v":
		fmt.Printf("labkeeper %s (%s) built %s\n", version, arch, buildDate)

	case "help", "--help", "-h":
		printHelp()

	default:
		fmt.Println("Unknown command:", cmd)
		printHelp()
		os.Exit(1)
	}
}
