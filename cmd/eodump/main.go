// Command eodump decodes EO packets and inspects packet captures.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/huoshan017/eonet/capture"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
)

var verbose bool

var log = logrus.New()

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eodump",
		Short:         "Decode EO packets and captures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(newDecodeCmd(), newReplayCmd(), newConvertCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eodump:", err)
		os.Exit(1)
	}
}

// registryForSide returns the registry of packets sent by side.
func registryForSide(name string) (*packet.Registry, error) {
	side, ok := capture.ParseSide(name)
	if !ok {
		return nil, fmt.Errorf("unknown side %q, want server or client", name)
	}
	if side == capture.SideServer {
		return server.Registry, nil
	}
	return client.Registry, nil
}
