// Command cli is a small client for the haushalt ledger API: snapshot
// export/import and forecast queries from the terminal.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "haushalt-cli",
		Short: "Haushalt ledger CLI tool",
		Long:  `A command line interface for interacting with the haushalt ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(exportCmd(), importCmd(), forecastCmd(), upcomingCmd(), summaryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the full ledger snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get("/v1/export")
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(body))
				return nil
			}
			if err := os.WriteFile(out, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("snapshot written to %s (%d bytes)\n", out, len(body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Write snapshot to file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the ledger state with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(baseURL+"/v1/import", "application/json", bytes.NewReader(data))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("import rejected (status %d): %s", resp.StatusCode, string(body))
			}
			fmt.Println("import OK")
			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	var horizon string
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project future cash flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get("/v1/forecast?horizon=" + horizon)
			if err != nil {
				return err
			}
			return printJSON(body)
		},
	}
	cmd.Flags().StringVar(&horizon, "horizon", "6m", "Forecast horizon: 5w, 6m or 2y")
	return cmd
}

func upcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming payments in the next 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get("/v1/payments/upcoming")
			if err != nil {
				return err
			}
			return printJSON(body)
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the household dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get("/v1/summary")
			if err != nil {
				return err
			}
			return printJSON(body)
		},
	}
}

func get(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func printJSON(body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}
