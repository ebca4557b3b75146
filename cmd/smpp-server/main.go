// Command smpp-server is a minimal Message Centre for manual client testing:
// it accepts binds, answers enquire_link, and replies with a submit_sm_resp
// to every submit_sm received after a bind (a submit_sm before any bind gets
// a generic_nack with ESME_RINVBNDSTS). It is not a production MC.
package main

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	smppd "github.com/go-smpp/smppd"
	"github.com/go-smpp/smppd/conn"
)

var (
	addr         string
	msgIDCounter uint64
)

func main() {
	root := &cobra.Command{
		Use:   "smpp-server",
		Short: "A minimal SMPP Message Centre for manual testing",
		RunE:  run,
	}
	root.Flags().StringVar(&addr, "addr", ":2775", "address to listen on")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	log.WithField("addr", addr).Info("smpp-server listening")

	for {
		tcp, err := ln.Accept()
		if err != nil {
			log.WithError(err).Error("accept failed")
			continue
		}
		go serve(tcp, log.WithField("remote", tcp.RemoteAddr()))
	}
}

// serve dispatches every command conn.Conn surfaces as unsolicited (every
// inbound PDU here, since this MC never issues its own Request calls) from
// inside the Handler callback: conn.Conn already owns the socket's only
// reader goroutine, so a second read loop here would race it for bytes.
func serve(tcp net.Conn, log logrus.FieldLogger) {
	var bound bool
	done := make(chan struct{})
	var closeOnce sync.Once
	var c *conn.Conn

	h := conn.HandlerFunc(func(e conn.Event) {
		if e.Err != nil {
			log.WithError(e.Err).Info("connection closed")
			closeOnce.Do(func() { close(done) })
			return
		}
		switch e.Command.ID {
		case smppd.BindTransmitterID, smppd.BindReceiverID, smppd.BindTransceiverID:
			bound = true
			respID := e.Command.ID | 0x80000000
			_ = c.Send(smppd.NewCommand(respID, smppd.EsmeROk, e.Command.Sequence, &smppd.BindResponse{
				SystemID: mustSystemID("smpp-server"),
			}))
		case smppd.SubmitSMID:
			if !bound {
				_ = c.Send(smppd.NewCommand(smppd.GenericNackID, smppd.EsmeRInvBndSts, e.Command.Sequence, nil))
				return
			}
			msgIDCounter++
			_ = c.Send(smppd.NewCommand(smppd.SubmitSMRespID, smppd.EsmeROk, e.Command.Sequence, &smppd.SubmitSmResponse{
				MessageID: mustSystemID(fmt.Sprintf("%d", msgIDCounter)),
			}))
		case smppd.UnbindID:
			_ = c.Send(smppd.NewCommand(smppd.UnbindRespID, smppd.EsmeROk, e.Command.Sequence, nil))
			closeOnce.Do(func() { close(done) })
		default:
			log.WithFields(logrus.Fields{"command_id": e.Command.ID, "seq": e.Command.Sequence}).Debug("received")
		}
	})

	c = conn.New(tcp, h, smppd.Open, conn.Config{
		EnquireLinkInterval:        60 * time.Second,
		EnquireLinkResponseTimeout: 10 * time.Second,
		Logger:                     log,
	})
	<-done
	c.Close()
}

func mustSystemID(s string) smppd.COctetString {
	v, err := smppd.NewCOctetString(s, 0, 65)
	if err != nil {
		return smppd.COctetString{}
	}
	return v
}
