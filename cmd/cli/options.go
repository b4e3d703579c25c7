package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"calsdt/domain/element"
	"calsdt/internal/analysis"
	"calsdt/internal/errors"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// configFlags are the analysis options shared by analyze and check
type configFlags struct {
	configPath string
	menh       string
	mode       string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Analysis config file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&f.menh, "menh", "m", "", "User element: Kim, Moc, Thuy, Hoa, Tho (or 1-5)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Compatibility or AbsoluteBalance")
}

// load builds the analysis config: defaults, then the config file, then flags.
// Without --menh or a config file, an interactive stdin is asked for the menh.
func (f *configFlags) load(cmd *cobra.Command) (analysis.Config, error) {
	cfg := analysis.DefaultConfig()
	if f.configPath != "" {
		data, err := os.ReadFile(f.configPath)
		if err != nil {
			return cfg, errors.Wrapf(errors.ConfigInvalid(err.Error()), "failed to read %s", f.configPath)
		}
		switch strings.ToLower(filepath.Ext(f.configPath)) {
		case ".yaml", ".yml":
			cfg = analysis.DecodeYAML(data)
		default:
			cfg = analysis.DecodeJSON(data)
		}
	}

	if f.mode != "" {
		mode, err := analysis.ParseMode(f.mode)
		if err != nil {
			return cfg, errors.WithCode(errors.CodeInvalidInput, err)
		}
		cfg.Mode = mode
	}

	switch {
	case f.menh != "":
		menh, err := element.Parse(f.menh)
		if err != nil {
			return cfg, errors.WithCode(errors.CodeInvalidInput, err)
		}
		cfg.UserMenh = menh
	case f.configPath == "" && cfg.Mode == analysis.ModeCompatibility && isInteractive(cmd.InOrStdin()):
		menh, err := promptMenh(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return cfg, err
		}
		cfg.UserMenh = menh
	}
	return cfg, nil
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptMenh shows the numbered element menu until a valid choice is entered
func promptMenh(in io.Reader, out io.Writer) (element.Element, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Chon menh cua ban:")
		for i, e := range element.MenuChoices {
			fmt.Fprintf(out, "  %d. %s\n", i+1, e)
		}
		fmt.Fprint(out, "Lua chon (1-5): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.InvalidInput("no menh selected")
		}
		choice := strings.TrimSpace(scanner.Text())
		if len(choice) == 1 && choice[0] >= '1' && choice[0] <= '5' {
			return element.MenuChoices[choice[0]-'1'], nil
		}
		fmt.Fprintf(out, "Lua chon khong hop le: %q\n", choice)
	}
}
