package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolvia/toolvia-go/internal/convert"
	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolvia",
		Short:         "Text and data utilities",
		Long:          `Hashes, encodings, generators, case conversion and formatting without a server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newHashCmd(),
		newCodecCmd("encode"),
		newCodecCmd("decode"),
		newUUIDCmd(),
		newPasswordCmd(),
		newCaseCmd(),
		newFormatCmd(),
	)
	return root
}

// inputText joins args, or reads stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func newHashCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "hash <algorithm> [text...]",
		Short: "Print the hex digest of text or stdin",
		Long:  `Algorithms: md5, sha1, sha224, sha256, sha384, sha512, sha3-224, sha3-256, sha3-384, sha3-512, ripemd160. With --all the algorithm argument is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewHashService(crypto.DefaultArgon2Params())
			out := cmd.OutOrStdout()

			if all {
				// Stdin is digested byte for byte, like the single-algorithm path.
				text := strings.Join(args, " ")
				if len(args) == 0 {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("reading stdin: %w", err)
					}
					text = string(b)
				}
				digests := svc.HashAll(model.TextRequest{Input: text})
				for _, a := range crypto.Algorithms {
					fmt.Fprintf(out, "%-10s %s\n", a, digests[string(a)].Hash)
				}
				return nil
			}

			if len(args) == 0 {
				return errors.New("algorithm is required")
			}
			if len(args) == 1 {
				// Stream stdin rather than buffering it.
				resp, err := svc.HashFile(args[0], "-", cmd.InOrStdin())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, resp.Hash)
				return nil
			}
			resp, err := svc.Hash(args[0], model.TextRequest{Input: strings.Join(args[1:], " ")})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, resp.Hash)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every supported digest")
	return cmd
}

func newCodecCmd(direction string) *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   direction + " <base64|hex|url|html> [text...]",
		Short: strings.ToUpper(direction[:1]) + direction[1:] + " text or stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args[1:])
			if err != nil {
				return err
			}

			req := model.EncodeDecodeRequest{Input: text}
			if cmd.Flags().Changed("separator") {
				req.Separator = &separator
			}

			svc := service.NewEncodingService()
			var resp model.EncodeDecodeResponse
			if direction == "encode" {
				resp, err = svc.Encode(args[0], req)
			} else {
				resp, err = svc.Decode(args[0], req)
			}
			if err != nil {
				return err
			}
			if !resp.Success {
				return errors.New(resp.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
			return nil
		},
	}
	if direction == "encode" {
		cmd.Flags().StringVar(&separator, "separator", " ", "separator between hex bytes")
	}
	return cmd
}

func newUUIDCmd() *cobra.Command {
	var (
		count     int
		uppercase bool
		noDashes  bool
	)
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService().UUIDs(model.UUIDRequest{
				Count:     &count,
				Uppercase: uppercase,
				NoDashes:  noDashes,
			})
			if err != nil {
				return err
			}
			for _, id := range resp.UUIDs {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs")
	cmd.Flags().BoolVar(&uppercase, "upper", false, "use uppercase hex digits")
	cmd.Flags().BoolVar(&noDashes, "no-dashes", false, "omit hyphens")
	return cmd
}

func newPasswordCmd() *cobra.Command {
	opts := crypto.DefaultOptions()
	var showStrength bool
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService().Password(model.PasswordRequest{
				Length:           &opts.Length,
				IncludeUppercase: &opts.Uppercase,
				IncludeLowercase: &opts.Lowercase,
				IncludeNumbers:   &opts.Numbers,
				IncludeSymbols:   &opts.Symbols,
				ExcludeAmbiguous: opts.ExcludeAmbiguous,
			})
			if err != nil {
				return err
			}
			if showStrength {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/4\n", resp.Password, resp.Strength)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Password)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	f.BoolVar(&opts.Uppercase, "upper", opts.Uppercase, "include uppercase letters")
	f.BoolVar(&opts.Lowercase, "lower", opts.Lowercase, "include lowercase letters")
	f.BoolVar(&opts.Numbers, "numbers", opts.Numbers, "include digits")
	f.BoolVar(&opts.Symbols, "symbols", opts.Symbols, "include symbols")
	f.BoolVar(&opts.ExcludeAmbiguous, "exclude-ambiguous", false, "leave out look-alike characters")
	f.BoolVar(&showStrength, "strength", false, "print the strength score after the password")
	return cmd
}

var caseOrder = []string{
	convert.LowerCase, convert.UpperCase, convert.TitleCase, convert.SentenceCase,
	convert.CamelCase, convert.PascalCase, convert.SnakeCase, convert.KebabCase, convert.ConstantCase,
}

func newCaseCmd() *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "case [text...]",
		Short: "Print text in every case variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			variants := service.NewConverterService(false).ConvertCase(model.TextRequest{Input: text})

			if only != "" {
				v, ok := variants[strings.ToLower(only)]
				if !ok {
					return fmt.Errorf("%w: case %q", convert.ErrUnsupportedOption, only)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			for _, name := range caseOrder {
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", name, variants[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "print a single variant, e.g. snakecase")
	return cmd
}

func newFormatCmd() *cobra.Command {
	var (
		indent int
		minify bool
	)
	cmd := &cobra.Command{
		Use:       "format <json|xml|html> [text...]",
		Short:     "Pretty-print or minify JSON, XML or HTML from text or stdin",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"json", "xml", "html"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args[1:])
			if err != nil {
				return err
			}

			svc := service.NewFormatService()
			req := model.FormatRequest{Input: text, IndentSize: &indent}
			var resp model.FormatResponse
			switch strings.ToLower(args[0]) {
			case "json":
				resp, err = pick(minify, svc.MinifyJSON, svc.FormatJSON)(req)
			case "xml":
				resp, err = pick(minify, svc.MinifyXML, svc.FormatXML)(req)
			case "html":
				if minify {
					resp = svc.MinifyHTML(req)
				} else {
					resp, err = svc.FormatHTML(req)
				}
			default:
				return fmt.Errorf("%w: format %q", convert.ErrUnsupportedOption, args[0])
			}
			if err != nil {
				return err
			}
			if !resp.IsValid {
				return errors.New(resp.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
			return nil
		},
	}
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces per indent level")
	cmd.Flags().BoolVar(&minify, "minify", false, "minify instead of pretty-printing")
	return cmd
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
