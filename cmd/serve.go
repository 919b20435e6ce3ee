package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/llm"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/oraleval"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/server"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scoring API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			// No .env file is the normal case outside development.
			fmt.Fprintln(os.Stderr, "no .env file found, using system env")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			return fmt.Errorf("LLM configuration: %w", err)
		}
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
		if provider == nil {
			fmt.Fprintln(os.Stderr, "no LLM provider configured, oral evaluation uses the keyword fallback")
		}
		evaluator := oraleval.NewEvaluator(provider, oraleval.DefaultEvaluatorConfig())

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = os.Getenv("DIAG_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}

		var origins []string
		if v := os.Getenv("DIAG_CORS_ORIGINS"); v != "" {
			for _, o := range strings.Split(v, ",") {
				if o = strings.TrimSpace(o); o != "" {
					origins = append(origins, o)
				}
			}
		}

		srv := server.New(st, evaluator, server.Config{
			Addr:         addr,
			AllowOrigins: origins,
		})
		fmt.Fprintf(os.Stderr, "listening on %s (db: %s)\n", addr, dbPath)
		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DIAG_ADDR, default :8080)")
}
