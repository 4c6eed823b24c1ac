package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/store"
	"github.com/akyairhashvil/wagetrack/internal/tracker"
	"github.com/akyairhashvil/wagetrack/internal/tui"
	"github.com/akyairhashvil/wagetrack/internal/util"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Open storage
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)
	kv, err := store.OpenSQLite(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	st := store.New(kv)
	defer st.Close()

	tr, err := tracker.New(ctx, st)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		runCommand(ctx, st, os.Args[1], os.Args[2:])
		return
	}

	// 2. Background schedule reconciliation: one delayed check shortly
	// after launch, then the regular cadence.
	reconciler := tracker.NewScheduler(config.ReconcileInterval, func(ctx context.Context) {
		_, err := tr.Reconcile(ctx)
		util.LogError("schedule reconciliation", err)
	}, tracker.WithInitialDelay(config.InitialReconcileDelay))
	go reconciler.Run(ctx)

	// 3. Start the TUI
	model := tui.NewMainModel(ctx, st, tr)
	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, st *store.Store, cmd string, args []string) {
	switch cmd {
	case "export":
		runExport(ctx, st, args)
	case "import":
		runImport(ctx, st, args)
	case "report":
		runReport(ctx, st, args)
	default:
		fmt.Printf("Unknown command %q. Commands: export, import, report.\n", cmd)
		os.Exit(1)
	}
}

func runExport(ctx context.Context, st *store.Store, args []string) {
	encrypt := false
	path := "wagetrack-backup.json"
	for _, arg := range args {
		if arg == "-encrypt" {
			encrypt = true
			continue
		}
		path = arg
	}

	var data []byte
	var err error
	if encrypt {
		pass, perr := promptForKey("Backup passphrase: ")
		if perr != nil || pass == "" {
			fmt.Println("A passphrase is required for an encrypted backup.")
			os.Exit(1)
		}
		data, err = st.ExportEncrypted(ctx, pass)
	} else {
		data, err = st.Export(ctx)
	}
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Backup written to %s\n", path)
}

func runImport(ctx context.Context, st *store.Store, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: wagetrack import <file>")
		os.Exit(1)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		os.Exit(1)
	}

	err = st.Import(ctx, data, "")
	if errors.Is(err, store.ErrBackupEncrypted) {
		for tries := 0; tries < 3; tries++ {
			pass, perr := promptForKey("Backup passphrase: ")
			if perr != nil || pass == "" {
				fmt.Println("Empty passphrase. Exiting.")
				os.Exit(1)
			}
			err = st.Import(ctx, data, pass)
			if !errors.Is(err, store.ErrWrongPassphrase) {
				break
			}
			fmt.Println("Incorrect passphrase.")
		}
	}
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Backup restored.")
}

func runReport(ctx context.Context, st *store.Store, args []string) {
	period := "week"
	if len(args) > 0 {
		period = args[0]
	}

	var path string
	var err error
	switch period {
	case "week":
		path, err = tui.GenerateWeeklyReport(ctx, st, time.Now())
	case "month":
		path, err = tui.GenerateMonthlyReport(ctx, st, time.Now())
	default:
		fmt.Printf("Unknown period %q. Use week or month.\n", period)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Report failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("PDF report generated: %s\n", path)
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
