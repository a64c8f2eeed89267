package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
	"github.com/tana-dev/tana/internal/archive"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/env"
	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/utils/debug"
	"github.com/tana-dev/tana/internal/utils/log"
)

type Option struct {
	Undo        bool   `short:"b" long:"undo" description:"Restore an archived batch"`
	DryRun      bool   `short:"n" long:"dry-run" description:"Show what would be archived without moving anything"`
	Yes         bool   `short:"y" long:"yes" description:"Skip confirmation prompts"`
	MinAge      int    `long:"min-age" description:"Override the minimum age in days a file must reach" default:"-1"`
	ArchiveRoot string `long:"archive-root" description:"Override the archive base directory"`
	Config      string `long:"config" description:"Path to config file" default:""`

	Ledger LedgerOption `group:"Ledger Options"`
	Meta   MetaOption   `group:"Meta Options"`
}

type LedgerOption struct {
	Batch   string `long:"batch" description:"Restore the batch with the given ID"`
	Last    bool   `long:"last" description:"Restore the most recent batch"`
	Batches bool   `long:"batches" description:"List recent archive batches"`
	Stats   bool   `long:"stats" description:"Show ledger statistics"`
	Prune   string `long:"prune" description:"Purge undone ledger records older than PERIOD (default: retention from config)" optional-value:"config" optional:"yes"`
}

type MetaOption struct {
	Info    bool   `long:"info" description:"Show the archive folder summary"`
	Demo    string `long:"demo" description:"Seed DIR with an aged playground folder (default: \"./tana-demo\")" optional-value:"./tana-demo" optional:"yes"`
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] dirs... | -b"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logDir := filepath.Dir(env.TANA_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
	}

	// Log everything until the config says otherwise, so problems in
	// the config itself still end up in the debug log.
	log.New(
		log.UseOutputPath(env.TANA_LOG_PATH),
		log.UseLevel(log.DebugLevel),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.Kitchen),
		log.AsDefault(),
	)

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started",
		"version", v.Version,
		"revision", v.Revision,
		"buildDate", v.BuildDate,
		"run_id", runID(),
	)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	if err := configureLogger(cfg.Logging); err != nil {
		slog.Warn("failed to configure logger", "error", err)
	}

	if opt.MinAge >= 0 {
		cfg.Core.MinAgeDays = opt.MinAge
	}
	if opt.ArchiveRoot != "" {
		root, err := config.ExpandPath(opt.ArchiveRoot)
		if err != nil {
			return err
		}
		cfg.Core.ArchiveRoot = root
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

// configureLogger replaces the startup logger with one honoring the
// configured level and rotation.
func configureLogger(cfg config.LoggingConfig) error {
	if !cfg.Enabled {
		log.New(log.UseOutput(io.Discard), log.AsDefault())
		return nil
	}

	w, err := log.NewRotateWriter(env.TANA_LOG_PATH, cfg.Rotation.MaxSize, cfg.Rotation.MaxFiles)
	if err != nil {
		return err
	}

	log.New(
		log.UseOutput(w),
		log.UseLevel(log.ParseLevel(cfg.Level)),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.Kitchen),
		log.AsDefault(),
	)
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.Meta.Debug != "":
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(os.Stdout, true)
		default:
			return debug.Logs(os.Stdout, false)
		}

	case c.option.Meta.Demo != "":
		return c.Demo(c.option.Meta.Demo)

	case c.option.Ledger.Prune != "":
		return c.Prune(c.option.Ledger.Prune)

	case c.option.Ledger.Batches:
		return c.Batches()

	case c.option.Ledger.Stats:
		return c.Stats()

	case c.option.Meta.Info:
		return c.Info()

	case c.option.Undo, c.option.Ledger.Batch != "", c.option.Ledger.Last:
		return c.Undo()

	default:
		return c.Archive(args)
	}
}

func (c *CLI) openLedger() (*ledger.Ledger, error) {
	path := env.TANA_LEDGER_PATH
	if c.config.Ledger.Path != "" {
		expanded, err := config.ExpandPath(c.config.Ledger.Path)
		if err != nil {
			return nil, fmt.Errorf("invalid ledger path: %w", err)
		}
		path = expanded
	}
	return ledger.Open(path)
}

func (c *CLI) newArchiver(lg *ledger.Ledger) *archive.Archiver {
	return archive.New(archive.Config{
		Ledger:       lg,
		Root:         c.config.Core.ArchiveRoot,
		MinAgeDays:   c.config.Core.MinAgeDays,
		FallbackCopy: true,
	})
}
