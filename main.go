// ABOUTME: Entry point for the salespulse CLI
// ABOUTME: Routes flag-parsed subcommands into the cli package
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/harperreed/salespulse/cli"
	"github.com/harperreed/salespulse/store"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataPath := flag.String("data-path", "", "Local store path (default: ~/.local/share/salespulse/local)")
	logFile := flag.String("log-file", "", "Append logs to a rotating file instead of stderr")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("salespulse version %s\n", version)
		os.Exit(0)
	}

	// Best effort; a missing .env is fine
	_ = godotenv.Load()

	if *logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	path := *dataPath
	if path == "" {
		path = store.DefaultPath()
	}

	repo, err := store.Open(path)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer func() { _ = repo.Close() }()

	command := args[0]
	commandArgs := args[1:]

	var cmdErr error
	switch command {
	case "settings":
		cmdErr = routeSettings(repo, commandArgs)
	case "sync":
		cmdErr = cli.SyncCommand(repo, commandArgs)
	case "team":
		cmdErr = routeTeam(repo, commandArgs)
	case "salesperson":
		cmdErr = routeSalesperson(repo, commandArgs)
	case "habit":
		cmdErr = routeHabit(repo, commandArgs)
	case "goal":
		cmdErr = routeGoal(repo, commandArgs)
	case "feedback":
		cmdErr = cli.FeedbackCommand(repo, commandArgs)
	case "status":
		cmdErr = cli.StatusCommand(repo, commandArgs)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Fatalf("Command failed: %v", cmdErr)
	}
}

func routeSettings(repo store.Repository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("settings requires a subcommand: set, show, test, push, pull")
	}
	switch args[0] {
	case "set":
		return cli.SettingsSetCommand(repo, args[1:])
	case "show":
		return cli.SettingsShowCommand(repo, args[1:])
	case "test":
		return cli.SettingsTestCommand(repo, args[1:])
	case "push":
		return cli.SettingsPushCommand(repo, args[1:])
	case "pull":
		return cli.SettingsPullCommand(repo, args[1:])
	default:
		return fmt.Errorf("unknown settings subcommand: %s", args[0])
	}
}

func routeTeam(repo store.Repository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("team requires a subcommand: add, list")
	}
	switch args[0] {
	case "add":
		return cli.TeamAddCommand(repo, args[1:])
	case "list":
		return cli.TeamListCommand(repo, args[1:])
	default:
		return fmt.Errorf("unknown team subcommand: %s", args[0])
	}
}

func routeSalesperson(repo store.Repository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("salesperson requires a subcommand: add, list")
	}
	switch args[0] {
	case "add":
		return cli.SalespersonAddCommand(repo, args[1:])
	case "list":
		return cli.SalespersonListCommand(repo, args[1:])
	default:
		return fmt.Errorf("unknown salesperson subcommand: %s", args[0])
	}
}

func routeHabit(repo store.Repository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("habit requires a subcommand: add, list, complete")
	}
	switch args[0] {
	case "add":
		return cli.HabitAddCommand(repo, args[1:])
	case "list":
		return cli.HabitListCommand(repo, args[1:])
	case "complete":
		return cli.HabitCompleteCommand(repo, args[1:])
	default:
		return fmt.Errorf("unknown habit subcommand: %s", args[0])
	}
}

func routeGoal(repo store.Repository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("goal requires a subcommand: add, list, update")
	}
	switch args[0] {
	case "add":
		return cli.GoalAddCommand(repo, args[1:])
	case "list":
		return cli.GoalListCommand(repo, args[1:])
	case "update":
		return cli.GoalUpdateCommand(repo, args[1:])
	default:
		return fmt.Errorf("unknown goal subcommand: %s", args[0])
	}
}

func printUsage() {
	fmt.Println(`salespulse - local-first sales habit tracker with cloud mirror

Usage:
  salespulse [flags] <command> [args]

Commands:
  settings set -url <url> -key <key> [-aux <key>]   Store backend settings
  settings show                                     Show current settings
  settings test                                     Probe the backend connection
  settings push                                     Mirror settings to the cloud
  settings pull                                     Overwrite settings from the cloud
  sync                                              Mirror all local data to the cloud
  team add|list                                     Manage teams
  salesperson add|list                              Manage salespeople
  habit add|list|complete                           Manage habits
  goal add|list|update                              Manage goals
  feedback                                          Generate coaching feedback
  status [-watch]                                   Show backend connectivity

Flags:
  -version            Show version and exit
  -data-path <path>   Local store path
  -log-file <path>    Append logs to a rotating file`)
}
