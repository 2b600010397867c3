package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/chzyer/readline"

	"github.com/jcorbin/gobf/internal/cellio"
	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/jcorbin/gobf/internal/source"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		progText    string
		interactive bool
		numeric     bool
		configPath  string
		tapeLimit   int
		cellSize    int
		leftUnbound bool
		naiveLoops  bool
		eof         EOFMode
		trace       bool
		traceFile   string
		debug       bool
		timeout     time.Duration
	)
	flags := flag.NewFlagSet("gobf", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&progText, "e", "", "run the given program text instead of reading files")
	flags.BoolVar(&interactive, "i", false, "enter the program interactively, ending with a blank line then a single '.'")
	flags.BoolVar(&numeric, "numeric", false, "read and write cells as decimal numbers instead of characters")
	flags.StringVar(&configPath, "config", "", "read VM settings from a yaml file")
	flags.IntVar(&tapeLimit, "tape-limit", defaultTapeLimit, "maximum tape length, 0 for unbounded")
	flags.IntVar(&cellSize, "cell-size", defaultCellSize, "cell value modulus")
	flags.BoolVar(&leftUnbound, "left-unbound", false, "allow the tape to grow left of its first cell")
	flags.BoolVar(&naiveLoops, "naive-loops", false, "skip loops to the first ']' rather than the matching one")
	flags.TextVar(&eof, "eof", EOFError, "input behavior at end of file: error, zero, or keep")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.StringVar(&traceFile, "trace-file", "", "also write JSON trace logs to the given file")
	flags.BoolVar(&debug, "debug", false, "run under the interactive debugger")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	if err := flags.Parse(args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	logOpts := logio.Options{Level: slog.LevelInfo, Stderr: stderr}
	if trace {
		logOpts.Level = slog.LevelDebug
	}
	if traceFile != "" {
		f, err := os.Create(traceFile)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
		defer f.Close()
		logOpts.Trace = f
	}
	log := logio.New(logOpts)

	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			log.Error("invalid configuration", "error", err)
			return 1
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape-limit":
			cfg.TapeLimit = tapeLimit
		case "cell-size":
			cfg.CellSize = cellSize
		case "left-unbound":
			cfg.LeftUnbound = leftUnbound
		case "naive-loops":
			if naiveLoops {
				cfg.LoopScan = NaiveLoops
			} else {
				cfg.LoopScan = NestedLoops
			}
		case "numeric":
			if numeric {
				cfg.IO = cellio.Numbers
			} else {
				cfg.IO = cellio.Chars
			}
		case "eof":
			cfg.EOF = eof
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	con := newConsole(stdin, stdout)

	prog, err := con.acquire(progText, interactive, flags.Args())
	if err != nil {
		log.Error("unable to read program", "error", err)
		return 1
	}

	cio := cellio.New(con.in, stdout, cfg.IO)
	opts := []VMOption{
		WithConfig(cfg),
		WithInput(cio.Input),
		WithPrint(cio.Print),
	}
	if trace || traceFile != "" {
		opts = append(opts, WithLogf(logio.Logf(log, slog.LevelDebug)))
	}
	vm := New(prog.Text, opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if debug {
		err = con.debug(ctx, vm, prog, cio.Flush)
	} else {
		err = vm.Run(ctx)
	}
	if ferr := cio.Flush(); err == nil {
		err = ferr
	}

	if err != nil && !errors.Is(err, io.EOF) {
		var pe positioned
		if panicerr.IsPanic(err) {
			log.Error("run panicked", "error", err, "stack", panicerr.Stack(err))
		} else if errors.As(err, &pe) {
			log.Error("run failed", "at", prog.Locate(pe.Position()).String(), "error", err)
		} else {
			log.Error("run failed", "error", err)
		}
		return 1
	}
	return 0
}

// console shares one buffered reader over standard input between program
// entry, the debugger prompt, and program input, so that no line reader
// strands input read ahead of what it returned.
type console struct {
	in   *bufio.Reader
	out  io.Writer
	term bool
}

func newConsole(stdin io.Reader, stdout io.Writer) console {
	con := console{
		in:  bufio.NewReader(stdin),
		out: stdout,
	}
	if f, ok := stdin.(*os.File); ok && f == os.Stdin {
		con.term = readline.IsTerminal(int(f.Fd()))
	}
	return con
}

// lines returns a line reader for prompted entry. Only a terminal gets a
// line editor, since it reads ahead of the lines it returns; piped input is
// read line by line from the shared reader.
func (con console) lines(cfg readline.Config) (source.LineReader, func() error, error) {
	if !con.term {
		return source.Lines(con.in), func() error { return nil }, nil
	}
	rl, err := readline.NewEx(&cfg)
	if err != nil {
		return nil, nil, err
	}
	return rl, rl.Close, nil
}

// acquire reads the program from the command line text, the named files, or
// interactively from standard input when neither is given.
func (con console) acquire(text string, interactive bool, paths []string) (source.Program, error) {
	switch {
	case text != "":
		return source.FromText("<arg>", text), nil
	case len(paths) > 0 && !interactive:
		return source.ReadFiles(paths...)
	}

	lr, done, err := con.lines(readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       source.Terminator,
	})
	if err != nil {
		return source.Program{}, err
	}
	defer done()
	return source.ReadInteractive(lr)
}

func (con console) debug(ctx context.Context, vm *VM, prog source.Program, flush func() error) error {
	lr, done, err := con.lines(readline.Config{
		Prompt:          "(gobf) ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer done()
	db := debugger{
		vm:   vm,
		prog: prog,
		in:   lr,
		out:  con.out,

		flush: flush,
	}
	return db.run(ctx)
}
