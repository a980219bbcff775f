package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/snappier/internal/analyzer"
	"github.com/mcncl/snappier/internal/codec"
	"github.com/mcncl/snappier/internal/compressor"
	"github.com/mcncl/snappier/internal/config"
	"github.com/mcncl/snappier/internal/errors"
	"github.com/mcncl/snappier/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input        string   `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output       string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Decode       bool     `help:"Decode a compressed frame back to text." short:"u"`
	Keys         []string `help:"Comma-separated key table for the JSON token transform." short:"k" sep:","`
	AutoKeys     bool     `help:"Derive the key table from the input document." short:"a"`
	Transform    bool     `help:"Apply the JSON token transform before compressing." short:"t"`
	Compressor   string   `help:"Block compressor: snappy, s2 or zstd." short:"c"`
	Config       string   `help:"Path to a config file. Defaults to the nearest .snappier.yml." type:"path"`
	Verify       bool     `help:"Compress raw text when the transform would not round-trip."`
	ScanBoundary bool     `help:"Locate the end of compressed data by scanning for zero padding."`
	Base64       bool     `help:"Base64 encode output when encoding, decode input when decoding." short:"b"`
	Debug        bool     `help:"Enable debug logging." short:"d"`
	Version      bool     `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *slog.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cli := kong.Must(&CLI,
		kong.Name("snappier"),
		kong.Description("Compress text and JSON with an optional token transform"),
		kong.UsageOnError(),
	)

	// Parse the command line arguments
	_, err := cli.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("snappier version %s\n", Version)
		return
	}

	ctx, err := newContext()
	if err == nil {
		err = run(ctx)
	}
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: snappier --help\n")

		os.Exit(1)
	}
}

// newContext merges the config file with the command-line flags
func newContext() (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, cliOverrides())
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Debug:  cfg.Dev.Debug,
		Config: cfg,
		Logger: newLogger(cfg.Dev.Debug),
	}
	if configPath != "" {
		ctx.Logger.Debug("loaded config", "path", configPath)
	}
	return ctx, nil
}

// cliOverrides maps the flags onto the config layout
func cliOverrides() *config.Config {
	return &config.Config{
		CustomJSONCompressionLogic: CLI.Transform,
		Keys:                       CLI.Keys,
		AutoKeys:                   CLI.AutoKeys,
		VerifyTransform:            CLI.Verify,
		Compression: config.CompressionConfig{
			Algorithm:    CLI.Compressor,
			BoundaryScan: CLI.ScanBoundary,
		},
		Output: config.OutputConfig{
			Base64: CLI.Base64,
		},
		Dev: config.DevConfig{
			Debug: CLI.Debug,
		},
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// run executes the main program logic
func run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.NewConfig()
	}
	if ctx.Logger == nil {
		ctx.Logger = newLogger(ctx.Debug)
	}

	// 1. Read input
	data, err := readInput()
	if err != nil {
		return err
	}

	// 2. Build the codec
	c, closeCodec, err := newCodec(ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer closeCodec()

	// 3. Encode or decode, then write the result
	if CLI.Decode {
		text, err := decode(c, ctx.Config, data)
		if err != nil {
			return err
		}
		return writeOutput([]byte(text))
	}

	encoded, err := encode(c, ctx, string(data))
	if err != nil {
		return err
	}
	return writeOutput(encoded)
}

// newCodec builds a codec for cfg. The returned func releases compressor resources.
func newCodec(cfg *config.Config, logger *slog.Logger) (*codec.Codec, func(), error) {
	comp, err := compressor.New(cfg.Compression.Algorithm)
	if err != nil {
		return nil, nil, errors.NewConfigError(fmt.Sprintf("unknown compression algorithm %q", cfg.Compression.Algorithm), err)
	}

	closeFn := func() {}
	if closer, ok := comp.(io.Closer); ok {
		closeFn = func() { _ = closer.Close() }
	}

	c := codec.NewCodec(cfg.CustomJSONCompressionLogic,
		codec.WithCompressor(comp),
		codec.WithLogger(logger),
		codec.WithBoundaryScan(cfg.Compression.BoundaryScan),
		codec.WithVerify(cfg.VerifyTransform),
	)
	return c, closeFn, nil
}

func encode(c *codec.Codec, ctx *Context, text string) ([]byte, error) {
	keys := ctx.Config.Keys
	if c.TransformEnabled() && ctx.Config.AutoKeys && len(keys) == 0 {
		keys = suggestKeys(ctx, text)
	}

	encoded, err := c.Encode(text, keys)
	if err != nil {
		return nil, err
	}

	ctx.Logger.Debug("encoded input",
		"input_bytes", len(text),
		"output_bytes", len(encoded),
		"keys", len(keys),
	)

	if ctx.Config.Output.Base64 {
		return []byte(base64.StdEncoding.EncodeToString(encoded) + "\n"), nil
	}
	return encoded, nil
}

func decode(c *codec.Codec, cfg *config.Config, data []byte) (string, error) {
	if cfg.Output.Base64 {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return "", errors.NewInputError("input is not valid base64", err)
		}
		data = raw
	}
	return c.Decode(data)
}

// suggestKeys derives a key table from text. Text that is not JSON gets no keys.
func suggestKeys(ctx *Context, text string) []string {
	ir, err := parser.ParseString(text)
	if err != nil {
		ctx.Logger.Debug("skipping key derivation", "error", err)
		return nil
	}

	keys, err := analyzer.NewAnalyzerWithConfig(ctx.Config).Analyze(ir)
	if err != nil {
		ctx.Logger.Debug("skipping key derivation", "error", err)
		return nil
	}

	ctx.Logger.Debug("derived key table", "keys", strings.Join(keys, ","), "root_array", ir.RootIsArray)
	return keys
}

// readInput reads raw bytes from file or stdin
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		return readFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return data, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(fmt.Sprintf("file '%s' does not exist", path), errors.ErrFileNotFound)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to access file '%s'", path), err)
	}
	if info.IsDir() {
		return nil, errors.NewInputError(fmt.Sprintf("'%s' is a directory", path), errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(fmt.Sprintf("file '%s' is empty", path), errors.ErrFileEmpty)
	}
	return data, nil
}

// writeOutput writes data to file or stdout
func writeOutput(data []byte) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, data, 0o644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	if _, err := os.Stdout.Write(data); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
