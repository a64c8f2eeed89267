package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/tana-dev/tana/internal/demo"
)

// Demo seeds a playground folder with files backdated across every age
// bucket, for trying out the tool without touching real data.
func (c *CLI) Demo(dir string) error {
	result, err := demo.Seed(dir, nil)
	if err != nil {
		return err
	}

	green := color.New(color.FgHiGreen).SprintFunc()
	fmt.Printf("%s %d files in %d folders\n", green("Seeded "+result.Root+":"), result.Files, result.Folders)
	fmt.Printf("Try: %s --dry-run %s\n", c.version.AppName, result.Root)
	return nil
}
