// Command smpp-decode reads a pcap capture of TCP/2775 traffic, reassembles
// each TCP stream, and decodes the framed SMPP commands found in it. It
// exists for offline protocol debugging from a packet capture, not as a
// live capture tool.
package main

import (
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/google/gopacket/reassembly"
	"github.com/spf13/cobra"

	smppd "github.com/go-smpp/smppd"
)

var (
	pcapPath string
	port     int
)

func main() {
	root := &cobra.Command{
		Use:   "smpp-decode",
		Short: "Decode SMPP PDUs from a pcap capture of TCP traffic",
		RunE:  run,
	}
	root.Flags().StringVar(&pcapPath, "pcap", "", "path to a pcap file to decode (required)")
	root.Flags().IntVar(&port, "port", 2775, "TCP port carrying SMPP traffic")
	root.MarkFlagRequired("pcap")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	handle, err := pcap.OpenOffline(pcapPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", pcapPath, err)
	}
	defer handle.Close()

	if err := handle.SetBPFFilter(fmt.Sprintf("tcp port %d", port)); err != nil {
		return fmt.Errorf("set filter: %w", err)
	}

	streamFactory := &commandStreamFactory{}
	pool := reassembly.NewStreamPool(streamFactory)
	assembler := reassembly.NewAssembler(pool)

	src := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range src.Packets() {
		netLayer := packet.NetworkLayer()
		tcp, ok := packet.TransportLayer().(*layers.TCP)
		if netLayer == nil || !ok {
			continue
		}
		assembler.AssembleWithTimestamp(netLayer.NetworkFlow(), tcp, packet.Metadata().Timestamp)
	}
	assembler.FlushAll()
	return nil
}

// commandStreamFactory hands each new TCP stream a fresh commandStream that
// decodes SMPP frames as reassembled bytes arrive.
type commandStreamFactory struct{}

func (f *commandStreamFactory) New(netFlow, tcpFlow gopacket.Flow, tcp *layers.TCP, ac reassembly.AssemblerContext) reassembly.Stream {
	return &commandStream{net: netFlow, transport: tcpFlow}
}

// commandStream accumulates one direction's reassembled byte stream and
// peels off complete SMPP frames as enough bytes accumulate, using the same
// length-prefixed framing smppd.ReadFrom applies to a live socket.
type commandStream struct {
	net, transport gopacket.Flow
	buf            []byte
}

func (s *commandStream) Accept(tcp *layers.TCP, ci gopacket.CaptureInfo, dir reassembly.TCPFlowDirection, nextSeq reassembly.Sequence, start *bool, ac reassembly.AssemblerContext) bool {
	return true
}

func (s *commandStream) ReassembledSG(sg reassembly.ScatterGather, ac reassembly.AssemblerContext) {
	length, _ := sg.Lengths()
	data := sg.Fetch(length)
	s.buf = append(s.buf, data...)
	s.drain()
}

func (s *commandStream) ReassemblyComplete(ac reassembly.AssemblerContext) bool {
	return true
}

func (s *commandStream) drain() {
	for {
		if len(s.buf) < 4 {
			return
		}
		length := int(bigEndianU32(s.buf))
		if length < 16 || length > smppd.DefaultMaxCommandLength || len(s.buf) < length {
			return
		}
		cmd, err := smppd.ReadCommand(s.buf[:length])
		s.buf = s.buf[length:]
		if err != nil {
			fmt.Printf("%s->%s: decode error: %v\n", s.net, s.transport, err)
			continue
		}
		fmt.Printf("%s->%s: %s status=%s seq=%d\n", s.net, s.transport, cmd.ID, cmd.Status, cmd.Sequence)
	}
}

func bigEndianU32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
