package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/huoshan017/eonet/packet"
)

var (
	decodeSide   string
	decodeFamily uint8
	decodeAction uint8
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode one packet body",
		Long: `Decode a packet body given as hex digits. Spaces are ignored.

Example:
  eodump decode --side server --family 34 --action 13 "06 0B 01"`,
		Args: cobra.ExactArgs(1),
		RunE: runDecode,
	}
	cmd.Flags().StringVar(&decodeSide, "side", "server", "Sender of the packet: server or client")
	cmd.Flags().Uint8Var(&decodeFamily, "family", 0, "Packet family")
	cmd.Flags().Uint8Var(&decodeAction, "action", 0, "Packet action")
	cmd.MarkFlagRequired("family")
	cmd.MarkFlagRequired("action")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	registry, err := registryForSide(decodeSide)
	if err != nil {
		return err
	}
	body, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
	if err != nil {
		return fmt.Errorf("parse body: %w", err)
	}

	family, action := packet.Family(decodeFamily), packet.Action(decodeAction)
	log.Debugf("decoding %d bytes as %v", len(body), packet.ID{Family: family, Action: action})
	p, err := registry.Deserialize(family, action, body)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v (%s)\n%s\n", packet.PacketID(p), humanize.Bytes(uint64(p.ByteSize())), formatPacket(p))
	if rest := len(body) - p.ByteSize(); rest > 0 {
		log.Warnf("%d trailing bytes not consumed", rest)
	}
	return nil
}

func formatPacket(p packet.Packet) string {
	return fmt.Sprintf("%+v", p)
}
