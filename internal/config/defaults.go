package config

import (
	"os"
	"path/filepath"
)

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	homedir, _ := os.UserHomeDir()

	return &Config{
		Core: Core{
			ArchiveRoot: filepath.Join(homedir, "Archive"),
			MinAgeDays:  30,
			Permissions: PermissionsConfig{
				AllowUnsafePaths: false,
			},
		},
		Scan: ScanConfig{
			Extensions: []string{},
			Exclude: ExcludeConfig{
				Files: []string{
					".DS_Store",
				},
				Globs:                 []string{},
				ProtectAccessedWithin: "",
			},
		},
		Ledger: LedgerConfig{
			Path:      "",
			Retention: "90d",
		},
		UI: UI{
			Paginator: "dots",
			Preview: PreviewConfig{
				SyntaxHighlight: true,
				Colorscheme:     "monokai",
			},
			Style: StyleConfig{
				ListView: ListViewConfig{
					IndentOnSelect: true,
					Cursor:         "#AD58B4",
					Selected:       "#5FB458",
				},
				DetailView: DetailViewConfig{
					Border: "#EEEEDD",
					InfoPane: InfoPaneConfig{
						ArchivedFrom: ColorConfig{
							Foreground: "#EEEEEE",
							Background: "#1C1C1C",
						},
						ArchivedAt: ColorConfig{
							Foreground: "#EEEEEE",
							Background: "#1C1C1C",
						},
					},
					PreviewPane: PreviewPaneConfig{
						Border: "#3C3C3C",
						Size: ColorConfig{
							Foreground: "#EEEEDD",
							Background: "#3C3C3C",
						},
						Scroll: ColorConfig{
							Foreground: "#EEEEDD",
							Background: "#3C3C3C",
						},
					},
				},
			},
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Rotation: RotationConfig{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
