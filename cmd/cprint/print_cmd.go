package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/cprint"
)

// emitter is what to print, and how.
type emitter struct {
	cfg     cprint.Config
	args    []any
	newline bool
	dbg     bool
}

func emit[F cprint.WriteFunc](e emitter, fn F) error {
	if e.cfg.Policy == cprint.Try {
		return emitTry(e, fn)
	}
	m, err := cprint.Define(e.cfg, fn)
	if err != nil {
		return err
	}
	switch {
	case e.dbg:
		m.Dbg(e.args...)
	case e.newline:
		m.Println(e.args...)
	default:
		m.Print(e.args...)
	}
	m.Flush()
	return nil
}

func emitTry[F cprint.WriteFunc](e emitter, fn F) error {
	m, err := cprint.DefineTry(e.cfg, fn, cprint.WithLogger(logger))
	if err != nil {
		return err
	}
	switch {
	case e.dbg:
		_, err = m.Dbg(e.args...)
	case e.newline:
		err = m.Println(e.args...)
	default:
		err = m.Print(e.args...)
	}
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return m.Flush()
}

func loadConfig(path string) (cprint.Config, error) {
	if path == "" {
		return cprint.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cprint.Config{}, err
	}
	defer f.Close()
	return cprint.LoadConfig(f)
}

func newPrintCmd() *cobra.Command {
	var (
		configPath string
		writer     string
		policy     string
		render     string
		shapeName  string
		noNewline  bool
		dbg        bool
	)

	cmd := &cobra.Command{
		Use:   "print [flags] [args...]",
		Short: "Print arguments through a writer facade",
		Example: `  cprint print hello world                       # concat writer, ptrlen shape
  cprint print --writer fmt --shape str a b c    # one write per fragment
  cprint print --writer io --policy try --shape cstr hello
  cprint print --dbg first second                # debug print each argument`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("writer") {
				if cfg.Writer, err = cprint.ParseKind(writer); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("policy") {
				if cfg.Policy, err = cprint.ParsePolicy(policy); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("render") {
				cfg.Render = render
			}

			vals := make([]any, len(args))
			for i, a := range args {
				vals[i] = a
			}
			logger.Debug("printing", "writer", cfg.Writer, "policy", cfg.Policy, "shape", shapeName)
			return emitShape(shapeName, cmd.OutOrStdout(), emitter{
				cfg:     cfg,
				args:    vals,
				newline: !noNewline,
				dbg:     dbg,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with writer, policy and render")
	cmd.Flags().StringVarP(&writer, "writer", "w", string(cprint.Concat), "Writer facade: concat, fmt or io")
	cmd.Flags().StringVarP(&policy, "policy", "p", string(cprint.Expect), "Error policy: expect or try")
	cmd.Flags().StringVarP(&render, "render", "r", cprint.RenderGoSyntax, "Debug renderer: gosyntax or spew")
	cmd.Flags().StringVarP(&shapeName, "shape", "s", "ptrlen", "Write function shape (see 'cprint shapes')")
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not print a trailing newline")
	cmd.Flags().BoolVar(&dbg, "dbg", false, "Debug print each argument")

	return cmd
}
