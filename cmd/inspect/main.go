package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"

	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/stream"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to an encoded buffer file")
		offset      = flag.Int("offset", 0, "Byte offset for the decode readout")
		width       = flag.Int("width", 0, "Bytes per hex row (0 = fit terminal)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <buffer.bin> [-offset n] [-width n]")
		fmt.Fprintln(os.Stderr, "       inspect -file <buffer.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*file, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, data, *offset, *width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, data []byte, offset, width int) error {
	if offset < 0 || offset > len(data) {
		return fmt.Errorf("offset %d out of range for %d-byte buffer", offset, len(data))
	}
	if width <= 0 {
		width = rowWidth()
	}

	fmt.Printf("Buffer: %s\n", file)
	fmt.Printf("Size: %d bytes\n\n", len(data))

	dump(os.Stdout, data, width)

	fmt.Printf("\nReadouts at offset %d:\n", offset)
	for _, line := range readouts(data, offset) {
		fmt.Printf("  %s\n", line)
	}
	return nil
}

// rowWidth picks a hex row width that fits the terminal, defaulting to 16
// when stdout is not a terminal. Each byte costs three columns of hex plus
// one of ASCII, and the offset gutter costs ten.
func rowWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 16
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 16
	}
	switch {
	case cols >= 10+32*4:
		return 32
	case cols >= 10+16*4:
		return 16
	default:
		return 8
	}
}

func dump(w *os.File, data []byte, width int) {
	for base := 0; base < len(data); base += width {
		end := base + width
		if end > len(data) {
			end = len(data)
		}
		row := data[base:end]

		var hex, ascii strings.Builder
		for _, b := range row {
			fmt.Fprintf(&hex, "%02X ", b)
			if b < 0x80 && unicode.IsPrint(rune(b)) {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		fmt.Fprintf(w, "%08X  %-*s %s\n", base, width*3, hex.String(), ascii.String())
	}
}

// readouts decodes each primitive wire form at the given offset and
// reports the result, or the decode failure, one line per form.
func readouts(data []byte, offset int) []string {
	rest := data[offset:]
	var lines []string

	add := func(name string, f func(*stream.Input) (string, error)) {
		v, err := f(stream.NewInput(rest))
		if err != nil {
			lines = append(lines, fmt.Sprintf("%-6s %v", name, err))
			return
		}
		lines = append(lines, fmt.Sprintf("%-6s %s", name, v))
	}

	add("bool", func(in *stream.Input) (string, error) {
		v, err := codec.ReadBool(in)
		return fmt.Sprintf("%v", v), err
	})
	add("u8", func(in *stream.Input) (string, error) {
		v, err := codec.ReadU8(in)
		return fmt.Sprintf("%d", v), err
	})
	add("u16", func(in *stream.Input) (string, error) {
		v, err := codec.ReadU16(in)
		return fmt.Sprintf("%d", v), err
	})
	add("u32", func(in *stream.Input) (string, error) {
		v, err := codec.ReadU32(in)
		return fmt.Sprintf("%d", v), err
	})
	add("u64", func(in *stream.Input) (string, error) {
		v, err := codec.ReadU64(in)
		return fmt.Sprintf("%d", v), err
	})
	add("i32", func(in *stream.Input) (string, error) {
		v, err := codec.ReadI32(in)
		return fmt.Sprintf("%d", v), err
	})
	add("usize", func(in *stream.Input) (string, error) {
		v, err := codec.ReadUsize(in)
		return fmt.Sprintf("%d", v), err
	})
	add("char", func(in *stream.Input) (string, error) {
		v, err := codec.ReadChar(in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q (%U)", v, v), nil
	})

	return lines
}
