package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jtomasevic/graphedit/pkg/act"
	"github.com/jtomasevic/graphedit/pkg/act_log"
	"github.com/jtomasevic/graphedit/pkg/config"
	"github.com/jtomasevic/graphedit/pkg/edit_action"
)

type rootOptions struct {
	configPath string
	protocol   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "actfmt",
		Short:         "Read, normalize and compare rendered graph-edit acts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "experiment config (YAML)")
	cmd.PersistentFlags().StringVar(&opts.protocol, "protocol", "", "protocol vocabulary, overrides the config: A|suggestion|B|instruction")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newNormalizeCmd(opts), newMatchCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if o.protocol != "" {
		cfg.Protocol = o.protocol
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

type normalizeOptions struct {
	to       string
	distinct bool
	strict   bool
}

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	opts := &normalizeOptions{}
	cmd := &cobra.Command{
		Use:   "normalize [file...]",
		Short: "Parse rendered acts and write them back in canonical log text",
		Long: "Reads one rendered act per line (from files or stdin), checks it against\n" +
			"the protocol vocabulary and writes it back, optionally in another\n" +
			"protocol's edge style and without repeated acts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			from, err := cfg.Vocabulary()
			if err != nil {
				return err
			}
			to := from
			if opts.to != "" {
				if to, err = act.VocabularyFor(opts.to); err != nil {
					return err
				}
			}

			sink := act_log.NewInMemoryActLog()
			inputs, err := openInputs(cmd, args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				err := readActs(in, from, sink, opts.strict, logger)
				_ = in.Close()
				if err != nil {
					return err
				}
			}

			records := sink.All()
			if opts.distinct {
				records = sink.Distinct()
			}
			logger.Debug("normalized",
				zap.Int("read", sink.Len()),
				zap.Int("written", len(records)),
			)
			return act_log.WriteText(cmd.OutOrStdout(), records, to)
		},
	}
	cmd.Flags().StringVar(&opts.to, "to", "", "render edges in this protocol's style")
	cmd.Flags().BoolVar(&opts.distinct, "distinct", false, "drop repeated acts")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first line that does not parse")
	return cmd
}

func openInputs(cmd *cobra.Command, args []string) ([]io.ReadCloser, error) {
	if len(args) == 0 {
		return []io.ReadCloser{io.NopCloser(cmd.InOrStdin())}, nil
	}
	out := make([]io.ReadCloser, 0, len(args))
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			for _, o := range out {
				_ = o.Close()
			}
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func readActs(r io.Reader, vocab act.Vocabulary, sink act_log.ActLog, strict bool, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, err := vocab.Parse(text)
		if err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", line, err)
			}
			logger.Warn("line skipped", zap.Int("line", line), zap.Error(err))
			continue
		}
		if _, err := sink.Append(a, time.Time{}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func newMatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match EDIT EDIT",
		Short: "Run the partial-match comparator on two rendered edits or acts",
		Example: "  actfmt match 'ADD(1,?)' 'ADD(9,1)'\n" +
			"  actfmt match 'INSTRUCT_Y(ADD(1,2))' 'DO_X(ADD(2,1))'",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.load(); err != nil {
				return err
			}
			a, err := parseContent(args[0])
			if err != nil {
				return err
			}
			b, err := parseContent(args[1])
			if err != nil {
				return err
			}
			ok, err := act.PartialEquals(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return err
		},
	}
}

// parseContent accepts a bare edit or an act wrapping one; the act's edit is
// what gets compared.
func parseContent(s string) (act.Content, error) {
	if edit, err := edit_action.ParseEdit(s); err == nil {
		return edit, nil
	}
	a, err := act.Parse(s)
	if err != nil {
		return nil, err
	}
	return a.Content(), nil
}
