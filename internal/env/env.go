package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	TANA_CONFIG_PATH string

	TANA_LOG_PATH string

	// TANA_LEDGER_PATH is where the movement ledger database lives.
	// It must stay outside any archive root so that sweeping empty
	// archive folders can never touch it.
	TANA_LEDGER_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("TANA_CONFIG_PATH"); e != "" {
		TANA_CONFIG_PATH = e
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		TANA_CONFIG_PATH = filepath.Join(configDir, "tana", "config.yaml")
	}

	if e := os.Getenv("TANA_LOG_PATH"); e != "" {
		TANA_LOG_PATH = e
	} else {
		TANA_LOG_PATH = filepath.Join(dataDir(), "tana", "debug.log")
	}

	if e := os.Getenv("TANA_LEDGER_PATH"); e != "" {
		TANA_LEDGER_PATH = e
	} else {
		TANA_LEDGER_PATH = filepath.Join(dataDir(), "tana", "ledger.db")
	}
}

func dataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		dir = filepath.Join(homeDir, defaultXDGDataDirname)
	}
	return dir
}
