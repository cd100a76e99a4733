package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ray-d-song/golist/pkg/config"
	"github.com/ray-d-song/golist/pkg/explorer"
	"github.com/ray-d-song/golist/pkg/session"
	"github.com/ray-d-song/golist/pkg/utils"
)

const (
	version = "0.1.0"
	license = "MIT"
	author  = "Ray-D-Song"
	url     = "https://github.com/ray-d-song/golist"
)

var (
	helpFlag     = flag.Bool("h", false, "Print help message")
	helpLongFlag = flag.Bool("help", false, "Print help message")
	versionFlag  = flag.Bool("v", false, "Print version information")
	historyFlag  = flag.Bool("r", false, "Print run history")
	batchFlag    = flag.Bool("b", false, "Run SCRIPT without the explorer and print the results")
	lexicalFlag  = flag.Bool("lexical", false, "Compare values as plain strings")
)

func main() {
	// initialize debug logger
	utils.InitDebugLogger()
	defer utils.CloseDebugLogger()

	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if *historyFlag {
		printHistory(cfg)
		os.Exit(0)
	}

	// Get the script to run
	var scriptPath string
	args := flag.Args()

	switch {
	case len(args) == 0:
		// No arguments, try the last run script. An empty session is fine too.
		if !*batchFlag {
			scriptPath, _ = cfg.GetLastRun()
		}
	case len(args) == 1 && isFile(args[0]):
		scriptPath = args[0]
	default:
		// Try to match the arguments against the history
		scriptPath = findScriptInHistory(cfg, args)
		if scriptPath == "" {
			printHelp()
			fmt.Fprintf(os.Stderr, "Error: No matching script found in history\n")
			os.Exit(1)
		}
	}

	order := session.OrderNatural
	if state, ok := cfg.GetState(scriptPath); ok && state.Order != "" {
		if saved, err := session.ParseOrder(state.Order); err == nil {
			order = saved
		}
	}
	if *lexicalFlag {
		order = session.OrderLexical
	}
	sess := session.New(session.WithOrder(order), session.WithScript(scriptPath))

	if *batchFlag {
		if scriptPath == "" {
			printHelp()
			fmt.Fprintf(os.Stderr, "Error: -b needs a SCRIPT\n")
			os.Exit(1)
		}
		if err := runBatch(sess, scriptPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if scriptPath != "" {
		if err := replay(sess, scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
			os.Exit(1)
		}

		// Set the last run script
		state, _ := cfg.GetState(scriptPath)
		cfg.SetState(scriptPath, state)
		cfg.SetLastRun(scriptPath)
		if err := cfg.Save(); err != nil {
			utils.DebugLog("[ERROR:main] Failed to save config: %v", err)
		}
	}

	// Start the explorer
	e := explorer.NewExplorer(sess, cfg, scriptPath)
	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
