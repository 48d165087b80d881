package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrasemill/phrasemill/internal/server"
	phrasemill "github.com/phrasemill/phrasemill/pkg/phrasemill"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/config"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store/memstore"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store/sqlite"
)

var (
	serveAddr   string
	serveDBPath string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve starts the HTTP API for document upload and phrase extraction.

Documents and mined phrases are persisted to SQLite when a database path
is configured; otherwise results live in memory for the lifetime of the
process.

Example:
  phrasemill serve --addr :8080 --db phrases.db`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, else :8080)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database path (default from config; empty = in-memory)")
}

func runServe(cmd *cobra.Command, args []string) error {
	loader := &config.Loader{Path: cfgFile}
	comp, err := loader.Load()
	if err != nil {
		return err
	}

	var fileCfg config.File
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	addr := serveAddr
	if addr == "" {
		addr = fileCfg.Server.Addr
	}
	dbPath := serveDBPath
	if dbPath == "" {
		dbPath = fileCfg.Server.DBPath
	}

	var st store.Store
	if dbPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err = sqlite.Open(ctx, dbPath)
		cancel()
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Using SQLite database: %s\n", dbPath)
		}
	} else {
		st = memstore.New()
		if verbose {
			fmt.Fprintln(os.Stderr, "Persistence: in-memory")
		}
	}
	defer st.Close()

	p := phrasemill.New(phrasemill.Options{
		Lexicon:   comp.Lexicon,
		Splitter:  comp.Splitter,
		Validator: comp.Validator,
		Store:     st,
	})

	srv := server.New(server.Config{
		Addr:           addr,
		AllowedOrigins: fileCfg.Server.AllowedOrigins,
		MaxUploadBytes: fileCfg.Server.MaxUploadBytes,
		Mining:         comp.Mining,
	}, p, st)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
