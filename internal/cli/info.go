package cli

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/tana-dev/tana/internal/archive"
)

// Info reports what the archive root currently holds. No ledger is
// involved; the numbers come from walking the folder itself.
func (c *CLI) Info() error {
	archiver := archive.New(archive.Config{Root: c.config.Core.ArchiveRoot})

	info, err := archiver.Info()
	if err != nil {
		return err
	}

	if !info.Exists {
		fmt.Printf("Archive folder does not exist yet: %s\n", info.Path)
		fmt.Println("It will be created on the first archive run.")
		return nil
	}

	green := color.New(color.FgHiGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("Archive:"), info.Path)
	fmt.Printf("%s %d\n", green("Month folders:"), info.Folders)
	fmt.Printf("%s %d\n", green("Files:"), info.Files)
	fmt.Printf("%s %s\n", green("Total size:"), units.HumanSize(float64(info.TotalBytes)))
	return nil
}
