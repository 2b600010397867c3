// gen_vm_expects generates free function wrappers for every builder method of
// a test case type, so that expectations may be passed as variadic arguments:
//
//	progTest("incr", "+", expectVMTape(1))
//
// Usage: go run scripts/gen_vm_expects.go [flags] [input.go [output.go]]
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	typeName = flag.String("type", "vmTestCase", "test case type whose methods to wrap")
	recvName = flag.String("recv", "vmt", "receiver name used by the methods")
	prefixes = flag.String("prefix", "expect", "comma separated method name prefixes to wrap")
	infix    = flag.String("infix", "VM", "inserted after the prefix in every wrapper name")
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit for generation")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// methodPattern matches single line builder method signatures that take at
// least one argument, capturing the prefix, the rest of the name, and the
// argument list.
func methodPattern() *regexp.Regexp {
	var alts []string
	for _, prefix := range strings.Split(*prefixes, ",") {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			alts = append(alts, regexp.QuoteMeta(prefix))
		}
	}
	typ := regexp.QuoteMeta(*typeName)
	return regexp.MustCompile(fmt.Sprintf(
		`^func \(%s %s\) (%s)([A-Z]\w*)\((.+?)\) %s \{$`,
		regexp.QuoteMeta(*recvName), typ, strings.Join(alts, "|"), typ))
}

func run(ctx context.Context) error {
	pattern := methodPattern()

	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_vm_expects.go")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := pattern.FindSubmatch(sc.Bytes()); len(match) > 0 {
			writeWrapper(&buf, string(match[1]), string(match[2]), string(match[3]))
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeWrapper(buf *bytes.Buffer, baseName, whatName, params string) {
	typ, recv := *typeName, *recvName

	fmt.Fprintf(buf, "func %s%s%s(%s) func(%s) %s {\n", baseName, *infix, whatName, params, typ, typ)
	fmt.Fprintf(buf, "\treturn func(%s %s) %s {\n", recv, typ, typ)
	fmt.Fprintf(buf, "\t\treturn %s.%s%s(", recv, baseName, whatName)
	for i, param := range strings.Split(params, ",") {
		if i > 0 {
			buf.WriteString(", ")
		}
		fields := strings.Fields(param)
		buf.WriteString(fields[0])
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			buf.WriteString("...")
		}
	}
	buf.WriteString(")\n")
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")
}
