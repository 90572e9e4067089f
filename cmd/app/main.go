package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/store"
	"github.com/warit/safeboard/internal/tui"
	"github.com/warit/safeboard/internal/util"
)

func main() {
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)
	dbPath := filepath.Join(dataRoot, config.DBFileName)
	_, statErr := os.Stat(dbPath)
	dbExists := statErr == nil

	db, err := store.Open(context.Background(), dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// A fresh board may opt into a layout-lock passphrase.
	if !dbExists && term.IsTerminal(int(os.Stdin.Fd())) {
		for {
			pass, perr := promptForKey("Set layout lock passphrase (leave empty to skip): ")
			if perr != nil {
				fmt.Printf("Alas, there's been an error: %v\n", perr)
				os.Exit(1)
			}
			if pass == "" {
				break
			}
			if verr := util.ValidatePassphrase(pass); verr != nil {
				fmt.Printf("Passphrase too weak: %v\n", verr)
				continue
			}
			util.MustSucceed("save passphrase hash", db.Set(config.KeyPassHash, util.HashPassphrase(pass)))
			break
		}
	}

	cfgPath := filepath.Join(dataRoot, config.ConfigFileName)
	cfg, cfgErr := config.LoadBoardConfig(cfgPath)
	if cfgErr != nil {
		fmt.Printf("Board config problem (using defaults): %v\n", cfgErr)
	}

	model := tui.NewMainModel(db, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Live-reload the config file so slogans and theme changes land on the
	// wall without a restart.
	stop := make(chan struct{})
	defer close(stop)
	if updates, werr := config.WatchBoardConfig(cfgPath, stop); werr == nil {
		go func() {
			for next := range updates {
				p.Send(tui.ConfigReloadedMsg(next))
			}
		}()
	} else {
		util.LogError("watch board config", werr)
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
