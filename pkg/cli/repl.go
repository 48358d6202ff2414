package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bkane2/ulf-lib/pkg/semtype"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	replPrompt = "semtype> "
	replHelp   = `Enter a type to see its canonical form, or X ~ Y to compare two types.
Commands: :mode [strict|shallow|recursive], :help, :quit`
)

var errQuit = errors.New("quit")

type session struct {
	mode semtype.IgnoreExponent
}

func (a *app) replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse and compare types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := semtype.ParseIgnoreExponent(a.v.GetString(keyIgnore))
			if err != nil {
				return err
			}
			return a.repl(&session{mode: mode})
		},
	}
	cmd.Flags().StringP(keyIgnore, "i", semtype.Strict.String(), "exponent mode used by X ~ Y")
	return cmd
}

func (a *app) repl(s *session) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := a.v.GetString(keyHistory)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				a.log.Warn().Err(err).Str("file", history).Msg("could not save history")
			}
		}()
	}

	fmt.Fprintln(a.out, replHelp)
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		out, err := s.eval(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(a.err, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(a.out, out)
	}
}

// eval runs a single REPL line and returns the text to print.
func (s *session) eval(line string) (string, error) {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, ":") {
		fields := strings.Fields(strings.ToLower(line))
		switch fields[0] {
		case ":quit", ":q":
			return "", errQuit
		case ":help":
			return replHelp, nil
		case ":mode":
			if len(fields) > 1 {
				mode, err := semtype.ParseIgnoreExponent(fields[1])
				if err != nil {
					return "", err
				}
				s.mode = mode
			}
			return "mode " + s.mode.String(), nil
		default:
			return "", errors.Errorf("unknown command %s, try :help", fields[0])
		}
	}

	if lhs, rhs, ok := strings.Cut(line, "~"); ok {
		x, err := semtype.Parse(lhs)
		if err != nil {
			return "", err
		}
		y, err := semtype.Parse(rhs)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(semtype.Compatible(x, y, s.mode)), nil
	}

	t, err := semtype.Parse(line)
	if err != nil {
		return "", err
	}
	return semtype.Format(t), nil
}
