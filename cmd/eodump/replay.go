package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/huoshan017/eonet/capture"
)

var replayRaw bool

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <capture>",
		Short: "Print every record of a capture",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	cmd.Flags().BoolVar(&replayRaw, "raw", false, "Print bodies as hex instead of decoding them")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	player, err := capture.NewPlayer(f)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "capture taken on %v, %v records, %v compression\n",
		player.Side(), player.CodecType(), player.CompressType())

	var (
		count, failed int
		total         uint64
		first         time.Time
	)
	for {
		rec, err := player.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if count == 0 {
			first = rec.At()
		}
		count++
		total += uint64(len(rec.Body))

		dir := "<-"
		if rec.Outgoing {
			dir = "->"
		}
		offset := rec.At().Sub(first).Round(time.Millisecond)
		fmt.Fprintf(out, "#%d +%v %s %v %s\n", count, offset, dir, rec.ID(), humanize.Bytes(uint64(len(rec.Body))))
		if replayRaw {
			fmt.Fprintf(out, "  % X\n", rec.Body)
			continue
		}
		p, err := player.Packet(rec)
		if err != nil {
			failed++
			log.Warnf("record %d: %v", count, err)
			fmt.Fprintf(out, "  % X\n", rec.Body)
			continue
		}
		fmt.Fprintf(out, "  %s\n", formatPacket(p))
	}
	fmt.Fprintf(out, "%s records, %s of bodies, %d not decoded\n",
		humanize.Comma(int64(count)), humanize.Bytes(total), failed)
	return nil
}
