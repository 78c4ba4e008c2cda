package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/huoshan017/eonet/capture"
)

var (
	convertCompress string
	convertCodec    string
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a capture with another compression or record codec",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	cmd.Flags().StringVar(&convertCompress, "compress", "snappy", "Compression: none, zlib, gzip or snappy")
	cmd.Flags().StringVar(&convertCodec, "codec", "msgpack", "Record codec: msgpack, json, thrift or protobuf")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	compress, ok := capture.ParseCompressType(convertCompress)
	if !ok {
		return fmt.Errorf("unknown compression %q", convertCompress)
	}
	codec, ok := capture.ParseCodecType(convertCodec)
	if !ok {
		return fmt.Errorf("unknown codec %q", convertCodec)
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()
	player, err := capture.NewPlayer(in)
	if err != nil {
		return err
	}
	recs, err := player.All()
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	// stored timestamps are carried over
	i := 0
	clock := func() time.Time { return recs[i].At() }
	rec, err := capture.NewRecorder(out,
		capture.SetSide(player.Side()),
		capture.SetCompressType(compress),
		capture.SetCodecType(codec),
		capture.SetClock(clock),
	)
	if err != nil {
		return err
	}
	for ; i < len(recs); i++ {
		if err = rec.Record(recs[i].Outgoing, recs[i].ID(), recs[i].Body); err != nil {
			return err
		}
	}
	if err = rec.Close(); err != nil {
		return err
	}

	inInfo, _ := in.Stat()
	outInfo, _ := out.Stat()
	if inInfo != nil && outInfo != nil {
		log.Infof("converted %d records: %s -> %s", len(recs),
			humanize.Bytes(uint64(inInfo.Size())), humanize.Bytes(uint64(outInfo.Size())))
	}
	return nil
}
