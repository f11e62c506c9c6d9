// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

// irclog2html converts IRC log files to HTML for easy web reading.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wingedpig/irclog/internal/archive"
	"github.com/wingedpig/irclog/internal/config"
	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/style"
	"github.com/wingedpig/irclog/internal/version"
)

func main() {
	var (
		configPath  string
		styleName   string
		title       string
		prefix      string
		prevTitle   string
		prevURL     string
		indexTitle  string
		indexURL    string
		nextTitle   string
		nextURL     string
		searchbox   bool
		dircproxy   bool
		output      string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file (default: auto-detect)")
	flag.StringVar(&configPath, "c", "", "Path to config file (short)")
	flag.StringVar(&styleName, "style", "", "Output style; -s help lists the available styles")
	flag.StringVar(&styleName, "s", "", "Output style (short)")
	flag.StringVar(&title, "title", "", "Page title (default: same as file name)")
	flag.StringVar(&title, "t", "", "Page title (short)")
	flag.StringVar(&prefix, "prefix", "", "Prefix prepended to the page title")
	flag.StringVar(&prevTitle, "prev-title", "", "Title of the previous page")
	flag.StringVar(&prevURL, "prev-url", "", "URL of the previous page")
	flag.StringVar(&indexTitle, "index-title", "", "Title of the index page")
	flag.StringVar(&indexURL, "index-url", "", "URL of the index page")
	flag.StringVar(&nextTitle, "next-title", "", "Title of the next page")
	flag.StringVar(&nextURL, "next-url", "", "URL of the next page")
	flag.BoolVar(&searchbox, "searchbox", false, "Include a search box")
	flag.BoolVar(&searchbox, "S", false, "Include a search box (short)")
	flag.BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy +/- prefixes from messages")
	flag.StringVar(&output, "output", "", "Output file, or directory when converting several logs")
	flag.StringVar(&output, "o", "", "Output file (short)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (short)")

	// Both --color-x and --colour-x spellings set the same value.
	colourFlags := map[logparse.Kind]*string{}
	for _, c := range []struct {
		name string
		kind logparse.Kind
	}{
		{"part", logparse.Part},
		{"join", logparse.Join},
		{"server", logparse.Server},
		{"nickchange", logparse.NickChange},
		{"action", logparse.Action},
	} {
		v := new(string)
		flag.StringVar(v, "color-"+c.name, "", "Colour for "+c.name+" events (#rrggbb)")
		flag.StringVar(v, "colour-"+c.name, "", "Colour for "+c.name+" events (#rrggbb)")
		colourFlags[c.kind] = v
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("irclog2html %s\n", version.Version)
		os.Exit(0)
	}
	if styleName == "help" {
		printStyles()
		os.Exit(0)
	}

	cfg, err := config.Resolve(context.Background(), configPath)
	if err != nil {
		fatal("%v", err)
	}
	if styleName == "" {
		styleName = cfg.Style
	}
	if prefix == "" {
		prefix = cfg.Prefix
	}
	searchbox = searchbox || cfg.Searchbox
	dircproxy = dircproxy || cfg.DircProxy

	if _, err := style.New(styleName, io.Discard, style.Options{}); err != nil {
		fatal("%v", err)
	}

	colours := cfg.Colours.Map()
	for kind, v := range colourFlags {
		if *v == "" {
			continue
		}
		if colours == nil {
			colours = style.DefaultColours()
		}
		colours[kind] = *v
	}

	args := flag.Args()
	if len(args) == 0 {
		fatal("please specify a filename")
	}
	if len(args) > 1 && output != "" && !isDir(output) {
		fatal("-o must be a directory when converting several files")
	}

	nav := style.Nav{
		Prev:      style.Link{Title: prevTitle, URL: prevURL},
		Index:     style.Link{Title: indexTitle, URL: indexURL},
		Next:      style.Link{Title: nextTitle, URL: nextURL},
		Searchbox: searchbox,
	}

	for _, name := range args {
		pageTitle := title
		if pageTitle == "" {
			pageTitle = name
		}
		err := convert(name, output, styleName, prefix+pageTitle, nav, colours, dircproxy)
		if err != nil {
			fatal("%v", err)
		}
	}
}

// convert renders one log file. The name "-" reads standard input and
// writes standard output.
func convert(name, output, styleName, title string, nav style.Nav, colours map[logparse.Kind]string, dircproxy bool) error {
	var (
		in      io.ReadCloser
		out     *os.File
		outName string
		err     error
	)
	if name == "-" {
		in = io.NopCloser(os.Stdin)
		out = os.Stdout
	} else {
		lf := &archive.LogFile{Path: name, Name: filepath.Base(name)}
		in, err = lf.Open()
		if err != nil {
			return fmt.Errorf("cannot open %s for reading: %w", name, err)
		}
		outName = outputName(name, output)
		out, err = os.Create(outName)
		if err != nil {
			in.Close()
			return fmt.Errorf("cannot open %s for writing: %w", outName, err)
		}
	}
	defer in.Close()
	dest := outName
	if dest == "" {
		dest = "stdout"
	}

	bw := bufio.NewWriter(out)
	formatter, err := style.New(styleName, bw, style.Options{
		Filename: outName,
		Colours:  colours,
	})
	if err != nil {
		return err
	}

	p := logparse.New(in, dircproxy)
	if err := style.Convert(p, formatter, title, nav); err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if outName == "" {
		return nil
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", outName, err)
	}
	return archive.InstallCSS(filepath.Dir(outName))
}

// outputName picks the output path: the input with any .gz stripped and
// .html appended, placed per the -o flag.
func outputName(input, output string) string {
	picked := strings.TrimSuffix(input, ".gz") + ".html"
	switch {
	case output == "":
		return picked
	case isDir(output):
		return filepath.Join(output, filepath.Base(picked))
	default:
		return output
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func printStyles() {
	fmt.Println("The following styles are available for use with irclog2html:")
	for _, s := range style.Styles() {
		fmt.Println()
		fmt.Printf("  %s\n", s.Name)
		fmt.Printf("    %s\n", s.Description)
	}
	fmt.Println()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "irclog2html: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
