// Command savecode converts snapshot JSON to save codes and back.
//
// Usage:
//
//	savecode encode < snapshot.json
//	savecode decode <code>
//	savecode decode < code.txt
//
// Settings come from the environment (or a .env file):
//
//	SAVECODE_LOG_LEVEL    zerolog level, default info
//	SAVECODE_COMPRESSION  none, s2, zstd or lz4, default none
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/arloliu/savecode"
	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/internal/config"
	"github.com/arloliu/savecode/snapshot"
)

const usage = "usage: savecode encode < snapshot.json | savecode decode [code]"

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	codec, err := savecode.New(savecode.WithLogger(logger), savecode.WithCompression(cfg.Compression))
	if err != nil {
		logger.Error().Err(err).Msg("configure codec")
		return 2
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	switch args[0] {
	case "encode":
		err = encode(codec, stdin, stdout, logger)
	case "decode":
		err = decode(codec, args[1:], stdin, stdout, logger)
	default:
		fmt.Fprintln(stderr, usage)
		return 2
	}

	if errors.Is(err, errs.ErrInvalidCode) {
		fmt.Fprintln(stderr, "invalid code")
		return 1
	}
	if err != nil {
		logger.Error().Err(err).Msg(args[0] + " failed")
		return 1
	}

	return 0
}

func encode(codec *savecode.Codec, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	// Fields absent from the input keep their fresh-run values.
	s := snapshot.Defaults()
	if err := json.Unmarshal(input, s); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	code, err := codec.Encode(s)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("symbols", len([]rune(code))).
		Str("fingerprint", fmt.Sprintf("%016x", savecode.Fingerprint(code))).
		Msg("encoded")

	_, err = fmt.Fprintln(stdout, code)

	return err
}

func decode(codec *savecode.Codec, args []string, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read code: %w", err)
		}
		code = string(input)
	}
	code = strings.TrimSpace(code)

	s, err := codec.Decode(code)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("fingerprint", fmt.Sprintf("%016x", savecode.Fingerprint(code))).
		Msg("decoded")

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))

	return err
}
