// scopegen renders oscilloscope vector signals for rotating wireframe solids
// to WAV and PNG files, or plays them live.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/vectorscope/internal/config"
	"github.com/Faultbox/vectorscope/internal/logger"
)

var printer = message.NewPrinter(language.English)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "solids":
		err = cmdSolids(args)
	case "params":
		err = cmdParams(args)
	case "render":
		err = cmdRender(args)
	case "snapshot", "png":
		err = cmdSnapshot(args)
	case "play":
		err = cmdPlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scopegen - oscilloscope vector signal generator

Usage:
  scopegen <command> [options]

Commands:
  solids                     Show the built-in solids and their traversals
  params  [-kind cube]       List tracer parameters by page
  render  [-o out.wav]       Render X/Y to a stereo WAV file
  snapshot [-o out.png]      Draw one period to a PNG image
  play    [-duration 10s]    Play X/Y on the default audio device

Common options:
  -config file     YAML config file
  -kind name       polyhedra or cube
  -solid n         polyhedra solid 0-4
  -freq hz         draw frequency
  -set name=value  set any parameter (repeatable)
  -spin deg/s      spin around Y
  -debug           debug logging

Examples:
  scopegen render -solid 2 -freq 80 -o octa.wav
  scopegen snapshot -kind cube -set AmpMod=127 -set AmpWave=0
  scopegen play -solid 4 -spin 45 -duration 30s`)
}

// setup parses the shared flags of a command and prepares logging.
func setup(name string, args []string) (*config.Config, *config.Flags, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.NewFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, err
	}
	return cfg, flags, nil
}
