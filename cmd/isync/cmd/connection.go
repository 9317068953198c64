package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func connectionCmd() *cobra.Command {
	connectionRoot := &cobra.Command{
		Use:   "connection",
		Short: "Manage the eBay connection",
		Long: "Inspect, establish, and tear down the eBay marketplace connection\n" +
			"used by publish operations.",
	}

	connectionRoot.AddCommand(
		connectionStatusCmd(),
		connectionConnectCmd(),
		connectionDisconnectCmd(),
	)

	return connectionRoot
}

func connectionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current eBay connection",
		Example: `  isync connection status
  isync connection status --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			conn, err := c.GetConnection(context.Background())
			if err != nil {
				return err
			}
			if conn == nil {
				fmt.Println("No eBay connection.")
				return nil
			}
			if jsonOutput() {
				return outputJSON(conn)
			}
			return printConnectionDetail(conn)
		},
	}
}

func connectionConnectCmd() *cobra.Command {
	var (
		accessToken string
		sandbox     bool
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect an eBay account",
		Long: "Verifies the supplied eBay user access token and stores the\n" +
			"connection, replacing any existing one.",
		Example: `  isync connection connect --token v^1.1#... --sandbox`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if accessToken == "" {
				return fmt.Errorf("--token is required")
			}
			c := newClient()
			conn, err := c.Connect(context.Background(), accessToken, sandbox)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(conn)
			}
			fmt.Printf("Connected: %s (%s)\n", conn.Name, conn.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&accessToken, "token", "", "eBay user access token")
	cmd.Flags().BoolVar(&sandbox, "sandbox", false, "use the eBay sandbox environment")

	return cmd
}

func connectionDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disconnect",
		Short:   "Disconnect the eBay account",
		Example: `  isync connection disconnect`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.Disconnect(context.Background()); err != nil {
				return err
			}
			fmt.Println("Disconnected.")
			return nil
		},
	}
}
