// Command ctext renders color markup from its arguments, or prints the
// style and color matrix when run without any.
//
//	ctext '@*g{build passed} in @c{3.2s}'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/ctext"
)

var colorNames = []struct {
	letter byte
	name   string
}{
	{'k', "black"},
	{'r', "red"},
	{'g', "green"},
	{'y', "yellow"},
	{'b', "blue"},
	{'m', "magenta"},
	{'c', "cyan"},
	{'w', "white"},
}

func main() {
	colorFlag := flag.String("color", "auto", "when to color output: auto, always or never")
	verbose := flag.Bool("verbose", false, "log renderer activity to stderr")
	flag.Parse()

	if *verbose {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		})
		ctext.SetLogger(slog.New(handler))
	}

	var mode ctext.Mode
	switch *colorFlag {
	case "auto":
		mode = ctext.Auto
	case "always":
		mode = ctext.Always
	case "never":
		mode = ctext.Never
	default:
		fmt.Fprintf(os.Stderr, "ctext: unknown -color value %q\n", *colorFlag)
		os.Exit(2)
	}

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			if err := ctext.Cprint(os.Stdout, mode, arg); err != nil {
				fmt.Fprintf(os.Stderr, "ctext: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	if err := matrix(ctext.NewWriter(os.Stdout, mode)); err != nil {
		fmt.Fprintf(os.Stderr, "ctext: %v\n", err)
		os.Exit(1)
	}
}

// matrix writes one row per color showing the normal, bright, bold and
// underlined renditions next to the markup that produces them.
func matrix(w *ctext.Writer) error {
	for _, c := range colorNames {
		lower := c.letter
		upper := lower - 'a' + 'A'
		row := fmt.Sprintf("@%c{%-8s} @%c{bright} @*%c{bold} @_%c{underline}  ",
			lower, c.name, upper, lower, lower)
		legend := fmt.Sprintf("@@%c  @@%c  @@*%c  @@_%c\n",
			lower, upper, lower, lower)
		if err := w.WriteStrings(row, legend); err != nil {
			return err
		}
	}
	return w.WriteStrings("@*{bold} @_{underline} @.plain  @@*  @@_  @@.\n")
}
