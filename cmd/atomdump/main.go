package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/resonatelabs/atombuf"
	"github.com/resonatelabs/atombuf/urid"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to a raw atom buffer")
		offset      = flag.Int("offset", 0, "Byte offset of the first atom")
		uris        = flag.String("uris", "", "Extra URIs to map after the vocabulary (comma-separated)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: atomdump -file <buffer.bin> [-offset n] [-uris uri,...]")
		fmt.Fprintln(os.Stderr, "       atomdump -file <buffer.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
		os.Exit(1)
	}

	if err := run(*file, *offset, *uris, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrapMapper maps the vocabulary first, so a dump produced by a
// process that did the same gets its tags resolved to readable names.
// Buffers written under a different mapping still dump, just numerically.
func bootstrapMapper(extraURIs string) (*urid.Mapper, atombuf.URIDs) {
	mapper := urid.NewMapper()
	urids := atombuf.MapURIDs(mapper)
	if extraURIs != "" {
		for _, uri := range strings.Split(extraURIs, ",") {
			mapper.Map(strings.TrimSpace(uri))
		}
	}
	return mapper, urids
}

// parseRoots frames every top-level atom in the buffer. Dump files are
// usually longer than their content and a zeroed tail parses as an
// endless run of empty headers, so a zero type tag, the reserved
// "absent" value, ends the walk like a truncated atom does.
func parseRoots(d *dumper, r *atombuf.Reader) []*node {
	var roots []*node
	for {
		atom, err := r.NextAtom()
		if err != nil || atom.Type() == 0 {
			break
		}
		roots = append(roots, d.tree(atom))
	}
	return roots
}

func run(file string, offset int, extraURIs string, interactive bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if offset < 0 || offset > len(data) {
		return fmt.Errorf("offset %d outside buffer of %d bytes", offset, len(data))
	}

	// Files land in heap memory with no alignment promise; copy into an
	// aligned buffer before framing.
	buf := atombuf.NewAlignedBuf(len(data) - offset)
	copy(buf.Bytes(), data[offset:])

	mapper, urids := bootstrapMapper(extraURIs)
	d := &dumper{urids: urids, names: mapper}

	roots := parseRoots(d, buf.Read())
	if len(roots) == 0 {
		return fmt.Errorf("no atoms at offset %d", offset)
	}

	if interactive {
		return runInteractive(file, roots)
	}

	for _, root := range roots {
		for _, line := range root.lines(0, nil) {
			fmt.Println(line)
		}
	}
	return nil
}
