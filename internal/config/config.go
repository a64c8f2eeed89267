package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"github.com/tana-dev/tana/internal/env"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core    Core          `yaml:"core"`
	Scan    ScanConfig    `yaml:"scan"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	UI      UI            `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

type Core struct {
	ArchiveRoot string            `yaml:"archive_root" validate:"required,dirPath"`
	MinAgeDays  int               `yaml:"min_age_days" validate:"gte=0"`
	Permissions PermissionsConfig `yaml:"permissions"`

	// ArchiveDir is the pre-1.0 name of archive_root. Kept so old
	// configs keep working; reading it prints a deprecation warning.
	ArchiveDir string `yaml:"archive_dir,omitempty" validate:"deprecated"`
}

type PermissionsConfig struct {
	AllowUnsafePaths bool `yaml:"allow_unsafe_paths"`
}

type ScanConfig struct {
	Extensions []string      `yaml:"extensions"`
	Exclude    ExcludeConfig `yaml:"exclude"`
}

type ExcludeConfig struct {
	Files []string `yaml:"files"`
	Globs []string `yaml:"globs"`

	// ProtectAccessedWithin keeps recently opened files out of every
	// scan, e.g. "1w". Empty disables the protection.
	ProtectAccessedWithin string `yaml:"protect_accessed_within" validate:"validPeriod"`
}

type LedgerConfig struct {
	// Path overrides the default ledger location. Must never point
	// inside the archive root, or undo cleanup could sweep it up.
	Path      string `yaml:"path"`
	Retention string `yaml:"retention" validate:"validPeriod"`
}

type UI struct {
	Paginator string        `yaml:"paginator_type" validate:"required,oneof=dots arabic"`
	Preview   PreviewConfig `yaml:"preview"`
	Style     StyleConfig   `yaml:"style"`
}

type PreviewConfig struct {
	SyntaxHighlight bool   `yaml:"syntax_highlight"`
	Colorscheme     string `yaml:"colorscheme"`
}

type StyleConfig struct {
	ListView   ListViewConfig   `yaml:"list_view"`
	DetailView DetailViewConfig `yaml:"detail_view"`
}

type ListViewConfig struct {
	IndentOnSelect bool   `yaml:"indent_on_select"`
	Cursor         string `yaml:"cursor" validate:"validColor"`
	Selected       string `yaml:"selected" validate:"validColor"`
}

type DetailViewConfig struct {
	Border      string            `yaml:"border" validate:"validColor"`
	InfoPane    InfoPaneConfig    `yaml:"info_pane"`
	PreviewPane PreviewPaneConfig `yaml:"preview_pane"`
}

type InfoPaneConfig struct {
	ArchivedFrom ColorConfig `yaml:"archived_from"`
	ArchivedAt   ColorConfig `yaml:"archived_at"`
}

type PreviewPaneConfig struct {
	Border string      `yaml:"border" validate:"validColor"`
	Size   ColorConfig `yaml:"size"`
	Scroll ColorConfig `yaml:"scroll"`
}

type ColorConfig struct {
	Foreground string `yaml:"fg" validate:"validColor"`
	Background string `yaml:"bg" validate:"validColor"`
}

type LoggingConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Level    string         `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `yaml:"max_size" validate:"validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

type configError struct {
	configPath string
	configDir  string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.TANA_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	// Ensure directory exists
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	// Create the config file if missing
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		// Write default config contents
		if err := p.writeConfigFileContents(newConfigFile); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) writeConfigFileContents(file *os.File) error {
	_, err := file.WriteString(p.getDefaultConfigContents())
	return err
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.TANA_CONFIG_PATH

	// Ensure directory exists before creating file
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return "", err
	}

	// Create file if missing
	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			parser:    p,
			configDir: filepath.Dir(path),
			err:       err,
		}
	}

	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

// readConfigFile overlays the file contents on top of the defaults, so
// a config that only sets a few keys still gets a fully populated tree.
func (p parser) readConfigFile(path string) (Config, error) {
	cfg := *NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			configDir:  filepath.Dir(path),
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("validation error: Field %s, %q is invalid\n", err.Field(), err.Value())
		}
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("validColor", validateColorCode)
	_ = validate.RegisterValidation("validPeriod", validatePeriod)
	_ = validate.RegisterValidation("dirPath", validateDirPath)
	_ = validate.RegisterValidation("deprecated", validateDeprecated)

	return parser{}
}

func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	var configPath string

	if path == "" {
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return cfg, parsingError{err: err}
		}
	} else {
		configPath = path
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	if cfg.Core.ArchiveDir != "" {
		// The old key wins only when the new one was left at its default.
		if cfg.Core.ArchiveRoot == NewDefaultConfig().Core.ArchiveRoot {
			cfg.Core.ArchiveRoot = cfg.Core.ArchiveDir
		}
		cfg.Core.ArchiveDir = ""
	}

	return cfg, nil
}
