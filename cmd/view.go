package cmd

import (
	"fmt"
	"os"

	pio "github.com/hangxie/parquet-tools/io"

	"github.com/pqlens/pqlens/model"
	"github.com/pqlens/pqlens/tabular"
)

// ViewCmd is the kong command for viewing a parquet file
type ViewCmd struct {
	URI         string `arg:"" optional:"" default:".samples/weather.parquet" predictor:"file" help:"URI of Parquet file (local path, s3://, gs://, wasbs://, http://)."`
	Rows        int    `short:"n" default:"10" help:"Number of rows per page/display."`
	Interactive bool   `short:"i" help:"Enable interactive mode with arrow key navigation."`
	TableFormat string `short:"t" default:"grid" enum:"plain,simple,github,grid,fancy_grid,pipe,orgtbl,jira" help:"Table format style."`
	pio.ReadOption
}

// Validate rejects bad parameters before any file access is attempted
func (v ViewCmd) Validate() error {
	if v.Rows < 1 {
		return fmt.Errorf("invalid rows value %d, must be a positive integer", v.Rows)
	}
	return nil
}

// Run does the actual view job
func (v ViewCmd) Run() error {
	style, err := tabular.ParseStyle(v.TableFormat)
	if err != nil {
		return err
	}

	ds, err := model.Read(v.URI, v.ReadOption)
	if err != nil {
		return err
	}

	formatter := tabular.Default()

	if v.Interactive {
		return NewInteractiveViewer(ds, formatter, style, v.Rows).Run()
	}

	newDisplay(formatter, os.Stdout).showTable(ds, v.Rows, style)
	return nil
}
