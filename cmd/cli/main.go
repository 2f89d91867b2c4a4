package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	golog "github.com/ipfs/go-log/v2"

	"github.com/ayugram/ayu-settings/cmd"
	"github.com/ayugram/ayu-settings/config"
	"github.com/ayugram/ayu-settings/settings"
)

func main() {
	cfg := config.Load()

	global := flag.NewFlagSet("ayu", flag.ExitOnError)
	global.Usage = printUsage
	dataDir := global.String("data", cfg.DataDir, "Client data directory (holds tdata/)")
	logLevel := global.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	global.Parse(os.Args[1:])

	cfg.DataDir = *dataDir
	cfg.LogLevel = *logLevel
	setupLogging(cfg.LogLevel)

	args := global.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	store := settings.New(cfg.SettingsPath())
	defer store.Close()

	var err error
	switch args[0] {
	case "show":
		err = cmd.Show(store, args[1:], os.Stdout)
	case "get":
		err = cmd.Get(store, args[1:], os.Stdout)
	case "set":
		err = cmd.Set(store, args[1:], os.Stdout)
	case "ghost":
		err = cmd.Ghost(store, args[1:], os.Stdout)
	case "check":
		err = cmd.Check(store.Path(), os.Stdout)
	case "watch":
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		err = cmd.Watch(ctx, store, cfg.WatchDebounce, os.Stdout)
		stop()
	case "version":
		cmd.Version(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := golog.LevelFromString(level)
	if err != nil {
		lvl = golog.LevelError
	}
	golog.SetAllLoggers(lvl)
}

func printUsage() {
	fmt.Println("ayu - AyuGram settings tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ayu [flags] show [-json]")
	fmt.Println("  ayu [flags] get <key>...")
	fmt.Println("  ayu [flags] set <key> <value> [<key> <value>...]")
	fmt.Println("  ayu [flags] ghost [on|off|status]")
	fmt.Println("  ayu [flags] check")
	fmt.Println("  ayu [flags] watch")
	fmt.Println("  ayu version")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -data <dir>         Client data directory (default $AYU_DATA_DIR or .)")
	fmt.Println("  -log-level <level>  debug, info, warn, error (default $AYU_LOG_LEVEL or error)")
}
