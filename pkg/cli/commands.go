package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bkane2/ulf-lib/pkg/semtype"
	"github.com/bkane2/ulf-lib/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TYPE...",
		Short: "Parse types and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := semtype.ParseAll(args)
			for i, it := range types {
				if it == nil {
					a.log.Debug().Str("input", args[i]).Msg("skipping invalid type")
					continue
				}
				if werr := a.write(it); werr != nil {
					return werr
				}
			}
			return err
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare X Y",
		Short: "Report whether two types are compatible",
		Long: "Report whether two types are compatible. Prints true or false and\n" +
			"exits with status 1 when the types do not match.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := semtype.ParseIgnoreExponent(a.v.GetString(keyIgnore))
			if err != nil {
				return err
			}
			x, err := semtype.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := semtype.Parse(args[1])
			if err != nil {
				return err
			}

			ok := semtype.Compatible(x, y, mode)
			a.log.Debug().Str("x", x.String()).Str("y", y.String()).Stringer("mode", mode).Bool("compatible", ok).Msg("compared")
			fmt.Fprintln(a.out, ok)
			if !ok {
				return ErrIncompatible
			}
			return nil
		},
	}
	cmd.Flags().StringP(keyIgnore, "i", semtype.Strict.String(), "exponent mode (strict, shallow, recursive)")
	return cmd
}

func (a *app) expandCmd() *cobra.Command {
	var (
		exp    string
		sub    string
		tense  string
		leaves bool
	)

	cmd := &cobra.Command{
		Use:   "expand DOMAIN [RANGE]",
		Short: "Construct a type from a domain, optional range and exponent",
		Long: "Construct a type from a domain, an optional range and an exponent.\n" +
			"The exponent is a number, a comma separated list (0,1,2) or a variable letter.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := semtype.Params{}
			var err error

			if params.Exp, err = parseExponentFlag(exp); err != nil {
				return err
			}
			if params.Sub, err = parseSubscriptFlag(sub); err != nil {
				return err
			}
			if params.Tense, err = parseTenseFlag(tense); err != nil {
				return err
			}

			domain, err := semtype.Parse(args[0])
			if err != nil {
				return err
			}
			params.Domain = domain
			if atom, ok := domain.(*semtype.Atomic); ok && len(args) == 1 {
				params.Domain = atom.Base()
			}
			if len(args) == 2 {
				if params.Range, err = semtype.Parse(args[1]); err != nil {
					return err
				}
			}

			out := semtype.Construct(params)
			if !leaves {
				return a.write(out)
			}
			for _, it := range semtype.Leaves(out) {
				if err := a.write(it); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&exp, "exp", "e", "1", "exponent: number, comma separated list or variable letter")
	flags.StringVar(&sub, "sub", "", "subscript (N, A, V, P)")
	flags.StringVar(&tense, "tense", "", "tense (U, T)")
	flags.BoolVar(&leaves, "leaves", false, "print the members of the resulting alternation one per line")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate files listing one type per line",
		Long:  "Validate files listing one type per line. Blank lines and lines starting with # are ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *multierror.Error
			for _, file := range args {
				count, err := a.checkFile(file)
				if err != nil {
					a.log.Error().Err(err).Str("file", file).Msg("check failed")
					result = multierror.Append(result, err)
					continue
				}
				fmt.Fprintf(a.out, "%s: %d types ok\n", file, count)
			}
			return result.ErrorOrNil()
		},
	}
}

func (a *app) checkFile(file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", file)
	}

	lines := util.SourceLines(string(data))
	a.log.Debug().Str("file", file).Int("lines", len(lines)).Msg("checking")
	if _, err := semtype.ParseAll(lines); err != nil {
		return 0, errors.Wrapf(err, "%s", file)
	}
	return len(lines), nil
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump TYPE",
		Short: "Print the internal structure of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := semtype.Parse(args[0])
			if err != nil {
				return err
			}
			dumper := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				DisableMethods:          true,
			}
			dumper.Fdump(a.out, t)
			return nil
		},
	}
}

// write prints t in the configured output format.
func (a *app) write(t semtype.Type) error {
	switch format := a.v.GetString(keyFormat); format {
	case "text":
		_, err := fmt.Fprintln(a.out, semtype.Format(t))
		return err
	case "json":
		data, err := json.Marshal(semtype.Describe(t))
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(semtype.Describe(t)); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func parseExponentFlag(text string) (semtype.Exponent, error) {
	text = strings.TrimSpace(text)
	if len(text) == 1 && isLetter(text[0]) {
		return semtype.Var(strings.ToUpper(text)[0]), nil
	}

	var values []int
	for _, it := range strings.Split(text, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(it))
		if err != nil || n < 0 {
			return nil, errors.Errorf("invalid exponent %q", it)
		}
		values = append(values, n)
	}
	if len(values) == 1 {
		return semtype.Exp(values[0]), nil
	}
	return semtype.Ints(values...), nil
}

func parseSubscriptFlag(text string) (semtype.Subscript, error) {
	if text == "" {
		return semtype.NoSubscript, nil
	}
	if len(text) == 1 {
		if sub, ok := semtype.ParseSubscript(strings.ToUpper(text)[0]); ok {
			return sub, nil
		}
	}
	return semtype.NoSubscript, errors.Errorf("invalid subscript %q", text)
}

func parseTenseFlag(text string) (semtype.Tense, error) {
	if text == "" {
		return semtype.NoTense, nil
	}
	if len(text) == 1 {
		if tense, ok := semtype.ParseTense(strings.ToUpper(text)[0]); ok {
			return tense, nil
		}
	}
	return semtype.NoTense, errors.Errorf("invalid tense %q", text)
}

func isLetter(chr byte) bool {
	return ('a' <= chr && chr <= 'z') || ('A' <= chr && chr <= 'Z')
}
