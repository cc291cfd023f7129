package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wbrown/rgbpca"
)

type options struct {
	input    string
	output   string
	format   string
	parallel bool
	montage  string
	tile     int
	quiet    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.input, "input", "",
		"Path to the input image (prompted for when empty)")
	fs.StringVar(&o.output, "output", rgbpca.DefaultOutputDir,
		"Directory the reconstructed images are written to")
	fs.StringVar(&o.format, "format", "png",
		"Output format: png, jpg, gif, bmp or tiff")
	fs.BoolVar(&o.parallel, "parallel", false,
		"Compute the three reconstructions concurrently")
	fs.StringVar(&o.montage, "montage", "",
		"Also write a captioned side-by-side comparison to this path")
	fs.IntVar(&o.tile, "tile", 256,
		"Maximum width of each montage tile, 0 for full size")
	fs.BoolVar(&o.quiet, "quiet", false,
		"Do not print the statistics report")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// resolveInput returns the -input path, or prompts until an existing one
// is entered. A bad -input is treated like a bad answer to the prompt.
func resolveInput(o *options, stdin io.Reader, stdout io.Writer) (string, error) {
	if o.input != "" {
		err := rgbpca.CheckPath(o.input)
		if err == nil {
			return o.input, nil
		}
		if !errors.Is(err, rgbpca.ErrPathNotFound) {
			return "", err
		}
		fmt.Fprintln(stdout, rgbpca.PromptRetryPath)
	}
	return rgbpca.PromptPath(stdin, stdout)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("kltcolor", flag.ContinueOnError)
	fs.SetOutput(stdout)
	o, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	path, err := resolveInput(o, stdin, stdout)
	if err != nil {
		return err
	}

	analyzerOpts := []rgbpca.AnalyzerOption{
		rgbpca.WithOutputDir(o.output),
		rgbpca.WithFormat(o.format),
		rgbpca.WithParallel(o.parallel),
	}
	if !o.quiet {
		analyzerOpts = append(analyzerOpts, rgbpca.WithReport(stdout))
	}
	if o.montage != "" {
		analyzerOpts = append(analyzerOpts, rgbpca.WithMontage(o.montage, o.tile))
	}
	analyzer := rgbpca.NewAnalyzer(analyzerOpts...)

	if _, err := analyzer.Run(context.Background(), path); err != nil {
		return err
	}

	if !o.quiet {
		stats := analyzer.Stats()
		fmt.Fprintf(stdout, "Decode time: %v\n", stats.Decode)
		fmt.Fprintf(stdout, "Computation time: %v\n",
			stats.Moments+stats.Decompose+stats.Reconstruct)
		fmt.Fprintf(stdout, "Write time: %v\n", stats.Write)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("kltcolor: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
