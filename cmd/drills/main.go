// Command drills runs the showcase demos of the drills packages and logs
// their results.
//
//	drills -demo vector -log-level debug -log-format json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/drills/internal/demo"
	"github.com/katalvlaran/drills/internal/logging"
)

// Exit codes.
const (
	exitOK     = 0
	exitDemo   = 1 // a demo failed or does not exist
	exitConfig = 2 // bad flags or logging config
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args, builds the logger on w and runs the selected demo.
func run(args []string, w io.Writer) int {
	var (
		name   string
		logCfg logging.Config
	)
	fs := flag.NewFlagSet("drills", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&name, "demo", demo.All, "Demo to run: "+demo.All+"|"+strings.Join(demo.Names(), "|")+".")
	fs.StringVar(&logCfg.Level, "log-level", "info", "Log level: debug|info|warn|error.")
	fs.StringVar(&logCfg.Format, "log-format", "text", "Log format: text|json.")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}

	log, err := logging.NewWriter(w, logCfg)
	if err != nil {
		fmt.Fprintln(w, "drills:", err)
		return exitConfig
	}

	if err := demo.Run(name, log); err != nil {
		log.Error("demo failed", "demo", name, "err", err)
		return exitDemo
	}
	return exitOK
}
