// Command wiredump reads a single captured wire protocol message from a
// file (or stdin) and prints its debug dump. It is the trimmed-down
// descendant of the teacher's extensions/dump.go + cmd/dvara/main.go: the
// dependency-injection/metrics/replica-set wiring those pulled in belongs
// to the proxy layer this repository does not implement, but the habit of
// a tiny flag-parsing main that dumps a decoded operation is worth
// keeping.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mcuadros/mongowire/protocol"
	"github.com/mcuadros/mongowire/wirecompress"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("file", "", "path to a raw captured message; defaults to stdin")
	flag.Parse()

	var (
		r   io.Reader = os.Stdin
		err error
	)
	if *path != "" {
		f, ferr := os.Open(*path)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		r = f
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	msg, err := protocol.Scatter(buf)
	if err != nil {
		return err
	}

	if compressed, ok := msg.Variant.(*protocol.Compressed); ok {
		fmt.Printf("compressed with %s:\n", wirecompress.Name(compressed.CompressorID))
		inner, err := wirecompress.Unwrap(msg)
		if err != nil {
			return err
		}
		msg = inner
	}

	fmt.Print(protocol.Debug(msg))
	return nil
}
