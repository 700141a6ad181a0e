package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/flatlist/flatlist/internal/config"
	"github.com/flatlist/flatlist/internal/fake"
	"github.com/flatlist/flatlist/internal/ui"
	"github.com/flatlist/flatlist/internal/ui/common"
)

var Version string

func getVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "unknown"
}

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: flatlist [-v] [-c <config>] [-n <count>] [-H <item height>] [-s <seed>] [-l <log file>]")
	os.Exit(1)
}

type options struct {
	configPath string
	logFile    string
	count      int
	itemHeight int
	seed       int64
	hasCount   bool
	hasHeight  bool
	hasSeed    bool
}

func parseArgs(args []string) (*options, error) {
	opts, optind, err := getopt.Getopts(args, "vc:n:H:s:l:")
	if err != nil {
		return nil, err
	}
	if len(args[optind:]) > 0 {
		return nil, errors.New("unexpected arguments")
	}
	o := &options{}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			fmt.Println("flatlist " + getVersion())
			os.Exit(0)
		case 'c':
			o.configPath = opt.Value
		case 'l':
			o.logFile = opt.Value
		case 'n':
			o.count, err = strconv.Atoi(opt.Value)
			if err != nil || o.count < 0 {
				return nil, errors.Errorf("-n: invalid count %q", opt.Value)
			}
			o.hasCount = true
		case 'H':
			o.itemHeight, err = strconv.Atoi(opt.Value)
			if err != nil || o.itemHeight <= 0 {
				return nil, errors.Errorf("-H: invalid item height %q", opt.Value)
			}
			o.hasHeight = true
		case 's':
			o.seed, err = strconv.ParseInt(opt.Value, 10, 64)
			if err != nil {
				return nil, errors.Errorf("-s: invalid seed %q", opt.Value)
			}
			o.hasSeed = true
		}
	}
	return o, nil
}

func run(o *options) error {
	c, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.hasCount {
		c.Demo.Count = o.count
	}
	if o.hasHeight {
		c.List.ItemHeight = o.itemHeight
	}
	if o.hasSeed {
		c.Demo.Seed = o.seed
	}
	config.Current = c

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	common.DefaultPalette.Update(c.Colors)

	if o.logFile != "" {
		f, err := tea.LogToFile(o.logFile, "flatlist")
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	orders := fake.Generate(c.Demo.Count, c.Demo.Seed)
	log.Printf("generated %d orders with seed %d", len(orders), c.Demo.Seed)

	p := tea.NewProgram(ui.New(orders), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	o, err := parseArgs(os.Args)
	if err != nil {
		usage("error: " + err.Error())
		return
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
