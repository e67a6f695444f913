// Command kassemblix exercises the combinator toolkit from the shell:
// an arithmetic REPL, one-shot evaluation, and a token-stream dump with
// configurable tokenizer dialects.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	kx "github.com/sunke/kassemblix"
	"github.com/sunke/kassemblix/arith"
)

const (
	historyFile = ".kassemblix_history"
	promptMain  = "==> "
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Width(8)
)

var dialectFile string

var rootCmd = &cobra.Command{
	Use:   "kassemblix",
	Short: "backtracking parser-combinator toolkit",
	Long: `kassemblix drives the combinator toolkit from the shell.

Commands:
  repl    arithmetic read-eval-print loop
  eval    evaluate one arithmetic expression
  tokens  dump the token stream of a file or stdin`,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Arithmetic read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate one arithmetic expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := arith.Value(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src []byte
		var err error
		if len(args) == 1 {
			src, err = os.ReadFile(args[0])
		} else {
			src, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}
		return dumpTokens(string(src))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the toolkit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kassemblix v%s\n", kx.Version)
	},
}

func init() {
	tokensCmd.Flags().StringVar(&dialectFile, "dialect", "",
		"YAML dialect file (extra symbols, blanks-in-words)")
	rootCmd.AddCommand(replCmd, evalCmd, tokensCmd, versionCmd)
}

func dumpTokens(src string) error {
	tok := kx.NewTokenizer(src)
	if dialectFile != "" {
		d, err := kx.LoadDialect(dialectFile)
		if err != nil {
			return err
		}
		d.Apply(tok)
	}
	for {
		t, err := tok.NextToken()
		if err != nil {
			return err
		}
		switch t.Type() {
		case kx.TokenEnd:
			return nil
		case kx.TokenSkip:
			continue
		}
		fmt.Printf("%s %s\n", typeStyle.Render(t.Type().String()), t.Sval())
	}
}

func runRepl() error {
	fmt.Printf("kassemblix v%s arithmetic REPL\nCtrl+D exits. Type :quit to exit.\n", kx.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if strings.EqualFold(code, ":quit") {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		v, err := arith.Value(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
			continue
		}
		fmt.Println(resultStyle.Render(fmt.Sprintf("%g", v)))
		ln.AppendHistory(code)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}
