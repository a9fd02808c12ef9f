package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "koperasi-cli",
		Short: "Koperasi ledger CLI tool",
		Long:  `A command line interface for the koperasi goods ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the koperasi API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("KOPERASI_TOKEN"), "Bearer token (defaults to KOPERASI_TOKEN)")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(txCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(auditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and print a bearer token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"username": args[0], "password": password}
			resp := mustRequest(http.MethodPost, "/api/v1/auth/login", body)
			printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction ledger operations",
	}

	var (
		date     string
		kind     string
		item     string
		qty      int64
		price    int64
		discount int
		note     string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"date":             date,
				"kind":             kind,
				"item_name":        item,
				"quantity":         qty,
				"unit_price":       price,
				"discount_percent": discount,
				"note":             note,
			}
			resp := mustRequest(http.MethodPost, "/api/v1/transactions", body)
			printJSON(resp)
		},
	}
	addCmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&kind, "kind", "outbound", "Transaction kind: inbound or outbound")
	addCmd.Flags().StringVar(&item, "item", "", "Item name")
	addCmd.Flags().Int64Var(&qty, "qty", 1, "Quantity")
	addCmd.Flags().Int64Var(&price, "price", 0, "Unit price")
	addCmd.Flags().IntVar(&discount, "discount", 0, "Discount percent")
	addCmd.Flags().StringVar(&note, "note", "", "Optional note")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions newest-first",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(mustRequest(http.MethodGet, "/api/v1/transactions", nil))
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show ledger totals and balance",
		Run: func(cmd *cobra.Command, args []string) {
			raw := mustRequest(http.MethodGet, "/api/v1/transactions/summary", nil)

			var summary struct {
				TotalInbound  int64 `json:"total_inbound"`
				TotalOutbound int64 `json:"total_outbound"`
				Balance       int64 `json:"balance"`
			}
			if err := json.Unmarshal(raw, &summary); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Total inbound:  %s\n", formatRupiah(summary.TotalInbound))
			fmt.Printf("Total outbound: %s\n", formatRupiah(summary.TotalOutbound))
			fmt.Printf("Balance:        %s\n", formatRupiah(summary.Balance))
		},
	}

	cmd.AddCommand(addCmd, listCmd, summaryCmd)
	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User management operations (super admin only)",
	}

	var (
		name     string
		username string
		role     string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"name": name, "username": username, "role": role}
			printJSON(mustRequest(http.MethodPost, "/api/v1/users", body))
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Display name")
	addCmd.Flags().StringVar(&username, "username", "", "Username")
	addCmd.Flags().StringVar(&role, "role", "operator", "Role: operator, admin or super_admin")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(mustRequest(http.MethodGet, "/api/v1/users", nil))
		},
	}

	setRoleCmd := &cobra.Command{
		Use:   "set-role <id> <role>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"role": args[1]}
			printJSON(mustRequest(http.MethodPatch, "/api/v1/users/"+args[0], body))
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a user's active flag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(mustRequest(http.MethodPost, "/api/v1/users/"+args[0]+"/toggle", nil))
		},
	}

	cmd.AddCommand(addCmd, listCmd, setRoleCmd, toggleCmd)
	return cmd
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List audit records (super admin only)",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(mustRequest(http.MethodGet, "/api/v1/audit", nil))
		},
	}
}

// mustRequest performs an API call and exits on any failure.
func mustRequest(method, path string, body any) []byte {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(data))
		os.Exit(1)
	}

	return data
}

func printJSON(raw []byte) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(out))
}

// formatRupiah renders an amount as "Rp 1.234.567" with a leading minus for
// negative balances.
func formatRupiah(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "Rp " + strings.Join(groups, ".")
}
