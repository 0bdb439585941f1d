// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// jdwpdump prints the packets of a captured JDWP byte stream in a
// human-readable form.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skylot/jdwp"
)

type options struct {
	hexInput  bool
	idSize    int32
	verbosity int
}

func main() {
	opts := options{}

	root := &cobra.Command{
		Use:   "jdwpdump [capture file]",
		Short: "Print the packets of a captured JDWP byte stream",
		Long: "jdwpdump reads a captured JDWP byte stream from a file (or stdin) and\n" +
			"prints each packet's header, classification and, for composite event\n" +
			"packets, the decoded events.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return dump(cmd.OutOrStdout(), in, opts)
		},
		SilenceUsage: true,
	}
	root.Flags().BoolVar(&opts.hexInput, "hex", false, "treat the input as hex text instead of raw bytes")
	root.Flags().Int32Var(&opts.idSize, "id-size", 8, "byte width of all identifier types")
	root.Flags().CountVarP(&opts.verbosity, "verbose", "v", "increase codec trace verbosity")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dump(out io.Writer, in io.Reader, opts options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	if opts.hexInput {
		clean := strings.Map(func(r rune) rune {
			if strings.ContainsRune(" \t\r\n", r) {
				return -1
			}
			return r
		}, string(data))
		if data, err = hex.DecodeString(clean); err != nil {
			return errors.Wrap(err, "bad hex input")
		}
	}

	sizes := jdwp.IDSizes{
		FieldIDSize:         opts.idSize,
		MethodIDSize:        opts.idSize,
		ObjectIDSize:        opts.idSize,
		ReferenceTypeIDSize: opts.idSize,
		FrameIDSize:         opts.idSize,
	}
	codec, err := jdwp.NewCodec(sizes)
	if err != nil {
		return err
	}
	if opts.verbosity > 0 {
		cfg := zap.NewDevelopmentConfig()
		// zapr maps logr verbosity n to zap level -n; the codec traces at 2.
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-1 - opts.verbosity))
		zl, err := cfg.Build()
		if err != nil {
			return err
		}
		defer zl.Sync()
		codec = codec.WithLogger(zapr.NewLogger(zl))
	}

	if jdwp.DecodeHandshake(data[:min(len(data), 14)]) {
		fmt.Fprintln(out, "handshake")
		data = data[14:]
	}

	for n := 0; len(data) > 0; n++ {
		length, err := jdwp.ReadLength(data)
		if err != nil {
			return errors.Wrapf(err, "packet %d", n)
		}
		if int(length) < jdwp.PacketHeaderSize || int(length) > len(data) {
			return errors.Errorf("packet %d: bad length %d (%d bytes left)", n, length, len(data))
		}
		pkt := data[:length]
		data = data[length:]
		if err := printPacket(out, codec, n, pkt); err != nil {
			return errors.Wrapf(err, "packet %d", n)
		}
	}
	return nil
}

func printPacket(out io.Writer, codec *jdwp.Codec, n int, pkt []byte) error {
	id, _ := jdwp.ReadPacketID(pkt)
	body, err := jdwp.Body(pkt)
	if err != nil {
		return err
	}

	switch {
	case jdwp.IsReply(pkt):
		code, _ := jdwp.ReadErrorCode(pkt)
		fmt.Fprintf(out, "#%d reply id=%d len=%d err=%d", n, id, len(pkt), uint16(code))
		if code != jdwp.ErrNone {
			fmt.Fprintf(out, " (%s)", code.Text())
		}
		fmt.Fprintln(out)

	case jdwp.IsEvent(pkt):
		composite, err := codec.DecodeCompositeEvent(body)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "#%d event id=%d len=%d policy=%v\n", n, id, len(pkt), composite.SuspendPolicy)
		for _, ev := range composite.Events {
			fmt.Fprintf(out, "    %v request=%d %+v\n", ev.Kind(), ev.Request(), ev)
		}

	default:
		set, _ := jdwp.ReadCommandSet(pkt)
		cmd, _ := jdwp.ReadCommandID(pkt)
		fmt.Fprintf(out, "#%d command id=%d len=%d cmdSet=%d cmdID=%d\n", n, id, len(pkt), set, cmd)
	}

	if len(body) > 0 && !jdwp.IsEvent(pkt) {
		fmt.Fprintf(out, "    body: %s\n", hex.EncodeToString(body))
	}
	return nil
}
