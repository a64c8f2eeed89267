package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/quick"
	"github.com/alecthomas/chroma/styles"
	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/ledger"
)

var (
	_ list.DefaultItem = (*BatchItem)(nil)
	_ list.DefaultItem = (*RecordItem)(nil)
)

// BatchItem represents one archive batch in the batch list.
type BatchItem struct {
	summary ledger.BatchSummary
	status  ledger.Status
}

// NewBatchItem creates a new BatchItem for the given summary.
func NewBatchItem(summary ledger.BatchSummary, status ledger.Status) *BatchItem {
	return &BatchItem{summary: summary, status: status}
}

// Title returns the batch id, marked when the batch has already been
// partially restored.
func (b *BatchItem) Title() string {
	if b.status == ledger.StatusPartial {
		return b.summary.BatchID + " (partial)"
	}
	return b.summary.BatchID
}

// Description returns the file count and the relative move time.
func (b *BatchItem) Description() string {
	noun := "files"
	if b.summary.Files == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s • %s", b.summary.Files, noun, humanize.Time(b.summary.LastMove))
}

// FilterValue returns the string used for filtering the batch list.
func (b *BatchItem) FilterValue() string {
	return b.summary.BatchID
}

// BatchID returns the id of the underlying batch.
func (b *BatchItem) BatchID() string {
	return b.summary.BatchID
}

// RecordItem represents one archived file inside a batch.
type RecordItem struct {
	record          ledger.Record
	preview         string
	previewErr      error
	syntaxHighlight bool
	colorscheme     string
}

// NewRecordItem creates a new RecordItem with the given record and
// preview configuration.
func NewRecordItem(record ledger.Record, cfg config.UI) *RecordItem {
	return &RecordItem{
		record:          record,
		syntaxHighlight: cfg.Preview.SyntaxHighlight,
		colorscheme:     cfg.Preview.Colorscheme,
	}
}

// Title returns the file name as it was before archiving.
func (i *RecordItem) Title() string {
	name := filepath.Base(i.record.SourcePath)
	if _, err := os.Stat(i.record.DestPath); err != nil {
		return name + "?"
	}
	return name
}

// Description returns the file size and the directory it came from.
func (i *RecordItem) Description() string {
	if _, err := os.Stat(i.record.DestPath); os.IsNotExist(err) {
		return "(already might have been restored or removed)"
	}

	return fmt.Sprintf("%s • %s",
		i.Size(),
		filepath.Dir(i.record.SourcePath),
	)
}

// FilterValue returns the string used for filtering the record list.
func (i *RecordItem) FilterValue() string {
	return filepath.Base(i.record.SourcePath)
}

// Size returns the human-readable size of the archived file.
func (i *RecordItem) Size() string {
	fi, err := os.Stat(i.record.DestPath)
	if err != nil {
		return "(cannot be calculated)"
	}
	return humanize.Bytes(uint64(fi.Size()))
}

// Preview returns the current preview content and error if any.
func (i *RecordItem) Preview() (string, error) {
	return i.preview, i.previewErr
}

// LoadPreview loads the preview content of the file.
// It caches the result so subsequent calls return the cached content.
func (i *RecordItem) LoadPreview() error {
	if i.preview != "" || i.previewErr != nil {
		return i.previewErr
	}

	preview, err := i.generatePreview()
	if err != nil {
		i.previewErr = err
		return err
	}

	i.preview = preview
	return nil
}

// generatePreview creates a preview of the archived file content.
func (i *RecordItem) generatePreview() (string, error) {
	if _, err := os.Lstat(i.record.DestPath); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}

	mtype, err := mimetype.DetectFile(i.record.DestPath)
	if err != nil {
		return "", err
	}

	// Only preview text files
	if !mtype.Is("text/plain") && (mtype.Parent() == nil || !mtype.Parent().Is("text/plain")) {
		return "", fmt.Errorf("cannot preview %s files", mtype.String())
	}

	content, err := os.ReadFile(i.record.DestPath)
	if err != nil {
		return "", err
	}

	if !i.syntaxHighlight {
		return string(content), nil
	}

	return i.highlightContent(string(content))
}

// highlightContent applies syntax highlighting to the content.
func (i *RecordItem) highlightContent(content string) (string, error) {
	var lexer chroma.Lexer
	lexer = lexers.Get(filepath.Base(i.record.SourcePath))
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get(i.colorscheme)
	if style == nil || style.Name == "swapoff" {
		style = styles.Get("monokai")
	}

	var buf strings.Builder
	err := quick.Highlight(&buf, content, lexer.Config().Name, "terminal16m", style.Name)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Record returns the underlying ledger record.
func (i *RecordItem) Record() ledger.Record {
	return i.record
}
