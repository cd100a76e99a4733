package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ray-d-song/golist/pkg/config"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/ray-d-song/golist/pkg/session"
)

// isFile checks if a path is a file
func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// findScriptInHistory finds a script in the history
func findScriptInHistory(cfg *config.Config, args []string) string {
	// Check if the first argument is a number
	if len(args) == 1 {
		if num, err := strconv.Atoi(args[0]); err == nil {
			// The number is 1-indexed (as shown in the history output)
			files := getOrderedHistoryFiles(cfg)
			if num > 0 && num <= len(files) {
				return files[num-1]
			}
		}
	}

	// Pick the script matching the most arguments
	var bestMatch string
	var bestScore int

	for _, file := range getOrderedHistoryFiles(cfg) {
		score := 0
		for _, arg := range args {
			if strings.Contains(strings.ToLower(file), strings.ToLower(arg)) {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			bestMatch = file
		}
	}

	return bestMatch
}

// getOrderedHistoryFiles returns scripts from config sorted by path. The
// state kept for interactive sessions without a script is left out.
func getOrderedHistoryFiles(cfg *config.Config) []string {
	var files []string
	for file := range cfg.States {
		if file != "" {
			files = append(files, file)
		}
	}
	sort.Strings(files)
	return files
}

// loadScript parses the commands of a script file
func loadScript(path string) ([]parser.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.ParseScript(f)
}

// replay runs a script silently so the explorer opens on its result
func replay(sess *session.Session, path string) error {
	cmds, err := loadScript(path)
	if err != nil {
		return err
	}
	_, err = sess.Run(cmds)
	return err
}

// runBatch runs a script, printing each result, then prints every list
func runBatch(sess *session.Session, path string, w io.Writer) error {
	cmds, err := loadScript(path)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		result, err := sess.Exec(cmd)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Raw, err)
		}
		fmt.Fprintf(w, "> %s\n", cmd.Raw)
		if result != "" {
			fmt.Fprintln(w, result)
		}
	}

	fmt.Fprintln(w, "---")
	for _, name := range sess.Names() {
		l, _ := sess.List(name)
		fmt.Fprintf(w, "%s (%d): %s\n", name, l.Len(), session.FormatValues(l))
	}
	return nil
}

// printHelp prints the help message
func printHelp() {
	fmt.Println(`
Usages:
    golist             explore the last run script
    golist SCRIPT      run SCRIPT, then explore its lists
    golist STRINGS     run matched STRINGS from history
    golist NUMBER      run script from history
                       with associated NUMBER

Options:
    -b              run SCRIPT and print the results instead of exploring
    -lexical        compare values as plain strings
    -r              print run history
    -v              print version
    -h, --help      print this help

Commands:`)
	for _, verb := range parser.Verbs() {
		fmt.Printf("    %s\n", parser.Usage(verb))
	}
	fmt.Println(`
Key Bindings:
    Help             : ?
    Quit             : q
    Command line     : :
    Command history  : h
    Re-render        : r
    Search           : /
    Toggle order     : o
    Switch colorsch  : c`)
}

// printVersion prints the version information
func printVersion() {
	fmt.Printf("golist %s\n", version)
	fmt.Printf("%s License\n", license)
	fmt.Printf("Copyright (c) 2025 %s\n", author)
	fmt.Println(url)
}

// printHistory prints the run history
func printHistory(cfg *config.Config) {
	fmt.Println("Run history:")

	for i, file := range getOrderedHistoryFiles(cfg) {
		state := cfg.States[file]
		marker := " "
		if state.LastRun {
			marker = "*"
		}
		fmt.Printf("%3d %s %s (%d commands)\n", i+1, marker, file, len(state.History))
	}
}
