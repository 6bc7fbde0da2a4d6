package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/stream"
	"github.com/wippyai/ctypes/template"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

type options struct {
	out    io.Writer
	json   bool
	styled bool
}

func (o options) name(s string) string {
	if o.styled {
		return nameStyle.Render(s)
	}
	return s
}

func (o options) typ(s string) string {
	if o.styled {
		return typeStyle.Render(s)
	}
	return s
}

func (o options) emit(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	var (
		endian      = flag.String("endian", "", "Byte order: little, big or net")
		arch        = flag.String("arch", "", "CPU architecture (x86, x86_64, arm64, mips, ...)")
		osName      = flag.String("os", "", "Operating system layer (linux, macos, windows, ...)")
		configFile  = flag.String("config", "", "YAML platform config with extra typedef layers")
		jsonOut     = flag.Bool("json", false, "Print JSON")
		list        = flag.Bool("list", false, "List every type name and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		platform.SetLogger(logger)
		stream.SetLogger(logger)
	}

	reg, err := resolve(*configFile, *endian, *arch, *osName)
	if err != nil {
		fail(err)
	}

	if *interactive {
		if err := runInteractive(reg); err != nil {
			fail(err)
		}
		return
	}

	opts := options{
		out:    os.Stdout,
		json:   *jsonOut,
		styled: !*jsonOut && term.IsTerminal(int(os.Stdout.Fd())),
	}

	args := flag.Args()
	if *list {
		args = []string{"list"}
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	if err := run(reg, opts, args[0], args[1:]); err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ctypes [flags] list")
	fmt.Fprintln(os.Stderr, "       ctypes [flags] describe <type>...")
	fmt.Fprintln(os.Stderr, "       ctypes [flags] pack <layout> <value>...")
	fmt.Fprintln(os.Stderr, "       ctypes [flags] unpack <layout> <hex>")
	fmt.Fprintln(os.Stderr, "       ctypes [flags] -i  (interactive mode)")
	fmt.Fprintln(os.Stderr, "\nA layout is a type name, a comma-separated type list, or a pack directive string.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

func fail(err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// resolve builds the registry from an optional config file, with non-empty
// flags overriding the file's profile.
func resolve(path, endian, arch, osName string) (*platform.Registry, error) {
	cfg := &platform.Config{}
	if path != "" {
		var err error
		if cfg, err = platform.LoadConfigFile(path); err != nil {
			return nil, err
		}
	}
	if endian != "" {
		cfg.Endian = endian
	}
	if arch != "" {
		cfg.Arch = arch
	}
	if osName != "" {
		cfg.OS = osName
	}
	return cfg.Resolve()
}

func run(reg *platform.Registry, opts options, cmd string, args []string) error {
	switch cmd {
	case "list":
		return listTypes(reg, opts)
	case "describe":
		if len(args) == 0 {
			return fmt.Errorf("describe needs at least one type name")
		}
		return describeTypes(reg, opts, args)
	case "pack":
		if len(args) == 0 {
			return fmt.Errorf("pack needs a layout")
		}
		return packValues(reg, opts, args[0], args[1:])
	case "unpack":
		if len(args) != 2 {
			return fmt.Errorf("unpack needs a layout and a hex string")
		}
		return unpackHex(reg, opts, args[0], args[1])
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func listTypes(reg *platform.Registry, opts options) error {
	names := reg.Names()
	if opts.json {
		infos := make([]typeInfo, 0, len(names))
		for _, name := range names {
			infos = append(infos, describe(name, reg.MustLookup(name)))
		}
		return opts.emit(map[string]any{"profile": reg.Profile().String(), "types": infos})
	}
	fmt.Fprintf(opts.out, "# %s (%d-bit, %s endian)\n", reg.Profile(), reg.Bits(), reg.Order())
	for _, name := range names {
		t := reg.MustLookup(name)
		fmt.Fprintf(opts.out, "%s %s %d\n", opts.name(fmt.Sprintf("%-24s", name)), opts.typ(fmt.Sprintf("%-12s", t.Name())), t.Size())
	}
	return nil
}

func describeTypes(reg *platform.Registry, opts options, names []string) error {
	infos := make([]typeInfo, 0, len(names))
	for _, name := range names {
		t, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		infos = append(infos, describe(name, t))
	}
	if opts.json {
		return opts.emit(infos)
	}
	for _, info := range infos {
		fmt.Fprintln(opts.out, info.text(opts))
	}
	return nil
}

// compileLayout reads "uint8,char[4]" as a type list and anything else as
// a single template entry.
func compileLayout(reg *platform.Registry, layout string) (*template.Template, error) {
	var specs []any
	for _, part := range strings.Split(layout, ",") {
		if part = strings.TrimSpace(part); part != "" {
			specs = append(specs, part)
		}
	}
	return template.New(specs, reg)
}

func packValues(reg *platform.Registry, opts options, layout string, args []string) error {
	tmpl, err := compileLayout(reg, layout)
	if err != nil {
		return err
	}
	values := make([]any, len(args))
	for i, a := range args {
		if values[i], err = parseValue(a); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	raw, err := tmpl.Pack(values...)
	if err != nil {
		return err
	}
	if opts.json {
		return opts.emit(map[string]any{"layout": tmpl.String(), "size": len(raw), "hex": hex.EncodeToString(raw)})
	}
	fmt.Fprintln(opts.out, hex.EncodeToString(raw))
	return nil
}

func unpackHex(reg *platform.Registry, opts options, layout, hexStr string) error {
	tmpl, err := compileLayout(reg, layout)
	if err != nil {
		return err
	}
	raw, err := hex.DecodeString(strings.Join(strings.Fields(hexStr), ""))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	vals, err := tmpl.Unpack(raw)
	if err != nil {
		return err
	}
	if opts.json {
		out := make([]any, len(vals))
		for i, v := range vals {
			out[i] = jsonValue(v)
		}
		return opts.emit(out)
	}
	names := tmpl.Names()
	for i, v := range vals {
		label := ""
		if i < len(names) {
			label = names[i]
		}
		fmt.Fprintf(opts.out, "%s = %v\n", opts.typ(label), v)
	}
	return nil
}
