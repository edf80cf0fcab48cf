package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherlab/cipher"
	"github.com/katalvlaran/cipherlab/internal/config"
	"github.com/katalvlaran/cipherlab/internal/history"
)

// Streams bundles the process I/O.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// ErrMissingInput indicates a value that was neither given nor could be asked for.
var ErrMissingInput = errors.New("missing input")

type rootOptions struct {
	configPath string
	logLevel   string
	noInput    bool

	cipher  string
	message string
	key     string
	encrypt bool
	decrypt bool
	verbose bool
}

// cipherFlags are the flags that put the command into non-interactive mode.
var cipherFlags = []string{"cipher", "message", "key", "encrypt", "decrypt", "verbose"}

// NewRootCommand builds the cipherlab command tree on s.
func NewRootCommand(s Streams) *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "cipherlab",
		Short: "Classical ciphers: Playfair, Hill and Rail Fence",
		Long: `cipherlab encrypts and decrypts text with three classical ciphers.

Values not given as flags are asked for interactively. With --verbose the
intermediate key matrices and steps are printed.

Example:
  cipherlab --cipher=playfair --key=monarchy --message=instruments --encrypt
  cipherlab --cipher=hill --key=gybnqkurp --message=poh --decrypt
  cipherlab --cipher=railfence --key=3 --message="we are discovered" --encrypt --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCipher(cmd, o, s)
		},
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (default $CIPHERLAB_CONFIG or ~/.cipherlab/config.toml)")
	pf.StringVar(&o.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")

	f := root.Flags()
	f.StringVarP(&o.cipher, "cipher", "c", "", "cipher to use: playfair, hill or railfence")
	f.StringVarP(&o.message, "message", "m", "", "message to transform (letters and spaces)")
	f.StringVarP(&o.key, "key", "k", "", "key: letters for playfair/hill, a rail count for railfence")
	f.BoolVarP(&o.encrypt, "encrypt", "e", false, "encrypt the message")
	f.BoolVarP(&o.decrypt, "decrypt", "d", false, "decrypt the message")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "print every intermediate step")
	f.BoolVar(&o.noInput, "no-input", false, "never prompt; fail when a value is missing")
	root.MarkFlagsMutuallyExclusive("encrypt", "decrypt")

	root.AddCommand(newHistoryCommand(o, s), newConfigCommand(o, s))

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, s Streams) int {
	root := NewRootCommand(s)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(s.Err, "Error:", err)

		return 1
	}

	return 0
}

// session holds what one run needs after config and logging are set up.
type session struct {
	cfg      *config.Config
	log      *slog.Logger
	render   *renderer
	streams  Streams
	prompter Prompter
}

func newSession(o *rootOptions, s Streams) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger := newLogger(s.Err, level)
	logger.Debug("config loaded", slog.String("cipher", cfg.Cipher), slog.Bool("history", cfg.History.Enabled))

	return &session{
		cfg:     cfg,
		log:     logger,
		render:  newRenderer(s.Out, colorProfile(cfg.Output.Color, s.Out)),
		streams: s,
	}, nil
}

// prompt lazily opens the prompter: line editing on a terminal, plain line
// reads otherwise.
func (ss *session) prompt(noInput bool) (Prompter, error) {
	if ss.prompter != nil {
		return ss.prompter, nil
	}
	if noInput {
		return nil, ErrMissingInput
	}
	if isTerminal(ss.streams.In) && isTerminal(ss.streams.Out) {
		ss.prompter = NewLinePrompter()
	} else {
		ss.prompter = NewScanPrompter(ss.streams.In, ss.streams.Out)
	}

	return ss.prompter, nil
}

func (ss *session) close() {
	if ss.prompter != nil {
		_ = ss.prompter.Close()
	}
}

func runCipher(cmd *cobra.Command, o *rootOptions, s Streams) error {
	ss, err := newSession(o, s)
	if err != nil {
		return err
	}
	defer ss.close()

	interactive := true
	for _, name := range cipherFlags {
		if cmd.Flags().Changed(name) {
			interactive = false
		}
	}

	req, err := ss.collect(cmd, o, interactive)
	if err != nil {
		return err
	}

	return ss.execute(cmd, req)
}

// collect resolves every request field from flags, then config, then prompts,
// in the order cipher, key, message, verbose, direction.
func (ss *session) collect(cmd *cobra.Command, o *rootOptions, interactive bool) (cipher.Request, error) {
	var req cipher.Request
	flags := cmd.Flags()
	out := ss.streams.Out

	askFor := func(name string, q question, accept func(string) error) error {
		p, err := ss.prompt(o.noInput)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}

		return ask(p, out, ss.render, q, accept)
	}

	// cipher
	name := o.cipher
	if !flags.Changed("cipher") {
		name = ss.cfg.Cipher
	}
	if name != "" {
		kind, err := ParseCipher(name)
		if err != nil {
			return req, err
		}
		req.Cipher = kind
	} else {
		err := askFor("cipher", question{"Cipher technique to be used (playfair/hill/railfence)", "cipher> "},
			func(a string) error {
				kind, err := ParseCipher(a)
				req.Cipher = kind

				return err
			})
		if err != nil {
			return req, err
		}
	}

	// key
	if flags.Changed("key") {
		if err := ValidateKey(req.Cipher, o.key); err != nil {
			return req, err
		}
		req.Key = Normalize(req.Cipher, o.key)
	} else {
		title := "Key to be used in the cipher (letters only)"
		if req.Cipher.NumericKey() {
			title = "Key to be used in the cipher (number of rails)"
		}
		err := askFor("key", question{title, "key> "}, func(a string) error {
			if err := ValidateKey(req.Cipher, a); err != nil {
				return err
			}
			req.Key = Normalize(req.Cipher, a)
			if req.Cipher.NumericKey() {
				_, err := cipher.ValidateRailKey(req.Key)
				return err
			}

			return nil
		})
		if err != nil {
			return req, err
		}
	}

	// message
	if flags.Changed("message") {
		if err := ValidateMessage(o.message); err != nil {
			return req, err
		}
		req.Text = Normalize(req.Cipher, o.message)
	} else {
		err := askFor("message", question{"Message that is to be ciphered (letters and spaces only)", "message> "},
			func(a string) error {
				if err := ValidateMessage(a); err != nil {
					return err
				}
				req.Text = Normalize(req.Cipher, a)

				return nil
			})
		if err != nil {
			return req, err
		}
	}

	// verbose
	switch {
	case flags.Changed("verbose"):
		req.Verbose = o.verbose
	case ss.cfg.Verbose:
		req.Verbose = true
	case interactive && !o.noInput:
		err := askFor("verbose", question{"Use verbose mode (yes/no)?", "verbose> "}, func(a string) error {
			v, err := ParseAnswer(a)
			req.Verbose = v

			return err
		})
		if err != nil {
			return req, err
		}
	}

	// direction
	switch {
	case o.encrypt:
		req.Direction = cipher.Encrypt
	case o.decrypt:
		req.Direction = cipher.Decrypt
	case ss.cfg.Direction != "":
		d, err := cipher.ParseDirection(ss.cfg.Direction)
		if err != nil {
			return req, err
		}
		req.Direction = d
	default:
		err := askFor("encrypt", question{"Encrypt the message (yes/no)?", "encrypt/decrypt> "}, func(a string) error {
			enc, err := ParseAnswer(a)
			req.Direction = cipher.Decrypt
			if enc {
				req.Direction = cipher.Encrypt
			}

			return err
		})
		if err != nil {
			return req, err
		}
	}

	req.Hill = cipher.HillOptions{
		StrictKey:      ss.cfg.Hill.StrictKey,
		MinimalPadding: ss.cfg.Hill.MinimalPadding,
	}

	return req, nil
}

// execute runs req, records it and prints the outcome.
func (ss *session) execute(cmd *cobra.Command, req cipher.Request) error {
	var rec *history.Recorder
	if ss.cfg.History.Enabled {
		r, err := history.Open(ss.cfg.History.Path)
		if err != nil {
			ss.log.Warn("run history disabled", slog.String("path", ss.cfg.History.Path), slog.Any("err", err))
		} else {
			rec = r
			defer rec.Close()
		}
	}

	id := history.NewRunID()
	ss.log.Debug("running cipher",
		slog.String("run_id", id.String()),
		slog.String("cipher", string(req.Cipher)),
		slog.String("direction", string(req.Direction)),
		slog.Int("input_len", len(req.Text)),
		slog.Bool("verbose", req.Verbose))

	start := time.Now()
	res, err := cipher.Run(req)
	entry := history.Entry{
		RunID:     id,
		Cipher:    string(req.Cipher),
		Direction: string(req.Direction),
		InputLen:  len(req.Text),
		OutputLen: len(res.Text),
		Verbose:   req.Verbose,
		Outcome:   "ok",
		Duration:  time.Since(start),
	}
	if err != nil {
		entry.Outcome = cipher.Classify(err).String()
	}
	rec.Record(cmd.Context(), entry)

	if err != nil {
		ss.log.Debug("cipher failed", slog.String("run_id", id.String()), slog.String("class", entry.Outcome))

		return describe(req, err)
	}
	ss.render.result(ss.streams.Out, req, res)

	return nil
}

// describe turns an engine error into a message for the user.
func describe(req cipher.Request, err error) error {
	switch cipher.Classify(err) {
	case cipher.ClassInvalidKey:
		if req.Cipher == cipher.Hill {
			return fmt.Errorf("the key %q cannot be used with the Hill cipher: its matrix has no inverse modulo 26: %w", req.Key, err)
		}

		return fmt.Errorf("the key %q cannot be used with the %s cipher: %w", req.Key, req.Cipher, err)
	case cipher.ClassPrecondition:
		return fmt.Errorf("cannot %s this message: %w", req.Direction, err)
	default:
		return err
	}
}
