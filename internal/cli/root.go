// Package cli wires the conversion pipeline behind a single cobra
// command: pick a reader for the source format, a writer for the
// destination format, and run the posts through.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsolberg/wp2md/internal/config"
	"github.com/hsolberg/wp2md/internal/model"
	"github.com/hsolberg/wp2md/internal/reader"
	"github.com/hsolberg/wp2md/internal/writer"
)

const version = "0.1"

// Execute loads the configuration and runs the root command.
func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	inputFormat := string(cfg.InputFormat)
	outputFormat := string(cfg.OutputFormat)

	cmd := &cobra.Command{
		Use:   "wp2md <blog.xml> <output_folder>",
		Short: "Convert a WordPress export into Markdown files",
		Long: `wp2md converts WordPress data from one giant xml file into a bunch of
Markdown files with front matter, ready for a static site generator.

The defaults are chosen to be useful if you just want a readable copy of
your blog: run "wp2md blog.xml out" and you end up with one file per
post, named after the post title.`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := model.ParseInputFormat(inputFormat)
			if err != nil {
				return err
			}
			out, err := model.ParseOutputFormat(outputFormat)
			if err != nil {
				return err
			}
			return runConvert(cmd, args[0], args[1], in, out, cfg.MyntLayout)
		},
	}

	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", inputFormat,
		"input format: pma_xml (PHPMyAdmin xml) or wp_rss (WordPress eXtended RSS)")
	cmd.Flags().StringVarP(&outputFormat, "output-format", "o", outputFormat,
		"output format: pelican, nikola, or mynt")

	return cmd
}

func runConvert(cmd *cobra.Command, source, dest string, in model.InputFormat, out model.OutputFormat, myntLayout string) error {
	if err := ensureDestDir(dest); err != nil {
		return err
	}

	postReader, err := reader.ForFormat(in)
	if err != nil {
		return err
	}
	postWriter, err := writer.ForFormat(out, myntLayout, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	src, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	posts, err := postReader.Read(src)
	if err != nil {
		return err
	}
	return postWriter.Write(posts, dest)
}

func ensureDestDir(dest string) error {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return os.MkdirAll(dest, 0o755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %q is not a directory", dest)
	}
	return nil
}
