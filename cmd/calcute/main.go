package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zephyrtronium/calcute"
	"github.com/zephyrtronium/calcute/internal/tui"
)

func main() {
	log.SetFlags(0)
	var (
		inname, loc string
		interactive bool
		nl, echo    bool
		verbose     bool
	)
	flag.StringVar(&inname, "in", "", "input file of keys (default stdin if no args given)")
	flag.StringVar(&loc, "locale", "pt", "display locale, pt or en")
	flag.BoolVar(&interactive, "tui", false, "run the interactive keypad")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate calculations")
	flag.BoolVar(&echo, "echo", false, "print the keys before each result")
	flag.BoolVar(&verbose, "v", false, "log failures to stderr")
	flag.Parse()

	locale, ok := locales[loc]
	if !ok {
		log.Fatalf("unknown locale %q", loc)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	newEngine := func() *calcute.Engine {
		return calcute.NewEngine(calcute.WithLocale(locale), calcute.WithLogger(logger))
	}

	if interactive {
		m := tui.New(newEngine(), locale.Decimal, logger)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	var ins []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		b, err := io.ReadAll(f)
		if err != nil {
			log.Fatal(err)
		}
		if nl {
			ins = append(ins, strings.Split(strings.TrimRight(string(b), "\n"), "\n")...)
		} else {
			// Newlines are Equals keys when the input is one calculation.
			ins = append(ins, string(b))
		}
	}
	ins = append(ins, flag.Args()...)

	for _, keys := range ins {
		e := newEngine()
		var u calcute.Update
		for _, ev := range calcute.Events(keys) {
			u = e.Handle(ev)
		}
		if echo {
			fmt.Printf("%q : ", keys)
		}
		fmt.Println(u.Text)
	}
}

var locales = map[string]calcute.Locale{
	"pt": calcute.PortugueseBR,
	"en": calcute.English,
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
