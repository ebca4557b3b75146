// Command smpp-cli is a manual-testing client: it binds to a Message
// Centre, sends one submit_sm, and prints the response. It exists for
// interactive protocol exploration, not as a production ESME.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	smppd "github.com/go-smpp/smppd"
	"github.com/go-smpp/smppd/conn"
)

var (
	host       string
	systemID   string
	password   string
	bindType   string
	dest       string
	message    string
	timeout    time.Duration
	noColor    bool
)

func main() {
	root := &cobra.Command{
		Use:   "smpp-cli",
		Short: "A manual-testing SMPP ESME client",
	}

	bindCmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind to a Message Centre and optionally submit one message",
		RunE:  runBind,
	}
	bindCmd.Flags().StringVar(&host, "host", "localhost:2775", "Message Centre host:port")
	bindCmd.Flags().StringVar(&systemID, "system-id", "", "system_id to bind with")
	bindCmd.Flags().StringVar(&password, "password", "", "password to bind with")
	bindCmd.Flags().StringVar(&bindType, "bind-type", "transceiver", "transmitter, receiver, or transceiver")
	bindCmd.Flags().StringVar(&dest, "dest", "", "destination address for an optional submit_sm")
	bindCmd.Flags().StringVar(&message, "message", "", "short message text for an optional submit_sm")
	bindCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "response timeout per request")
	bindCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(bindCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBind(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	tcp, err := net.Dial("tcp", host)
	if err != nil {
		return fmt.Errorf("dial %s: %w", host, err)
	}

	bindID, respID, _, err := bindCommandFor(bindType)
	if err != nil {
		tcp.Close()
		return err
	}

	h := conn.HandlerFunc(func(e conn.Event) {
		if e.Err != nil {
			printError(e.Err)
			return
		}
		printCommand(e.Command)
	})
	c := conn.New(tcp, h, smppd.Open, conn.Config{
		EnquireLinkInterval:        30 * time.Second,
		EnquireLinkResponseTimeout: 5 * time.Second,
	})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := c.Request(ctx, bindID, &smppd.BindRequest{
		SystemID:         mustCOctetString(systemID),
		Password:         mustCOctetString(password),
		InterfaceVersion: smppd.Smpp5_0,
	}, timeout)
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if resp.ID != respID || !resp.Status.IsOK() {
		return fmt.Errorf("bind rejected: status=%s", resp.Status)
	}
	printCommand(resp)

	if message == "" {
		fmt.Println(color.GreenString("bound; no message specified, idling"))
		select {}
	}

	submitCtx, submitCancel := context.WithTimeout(context.Background(), timeout)
	defer submitCancel()
	resp, err = c.Request(submitCtx, smppd.SubmitSMID, &smppd.SubmitSm{
		DestinationAddr: mustCOctetString(dest),
		ShortMessage:    mustOctetString(message),
	}, timeout)
	if err != nil {
		return fmt.Errorf("submit_sm: %w", err)
	}
	printCommand(resp)
	return nil
}

func bindCommandFor(kind string) (smppd.CommandID, smppd.CommandID, smppd.SessionState, error) {
	switch kind {
	case "transmitter":
		return smppd.BindTransmitterID, smppd.BindTransmitterRespID, smppd.BoundTx, nil
	case "receiver":
		return smppd.BindReceiverID, smppd.BindReceiverRespID, smppd.BoundRx, nil
	case "transceiver":
		return smppd.BindTransceiverID, smppd.BindTransceiverRespID, smppd.BoundTrx, nil
	default:
		return 0, 0, smppd.Closed, fmt.Errorf("unknown bind-type %q", kind)
	}
}

func mustCOctetString(s string) smppd.COctetString {
	v, err := smppd.NewCOctetString(s, 0, 256)
	if err != nil {
		return smppd.COctetString{}
	}
	return v
}

func mustOctetString(s string) smppd.OctetString {
	v, err := smppd.NewOctetString([]byte(s), 0, 254)
	if err != nil {
		return smppd.OctetString{}
	}
	return v
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
}

func printCommand(c smppd.Command) {
	width := terminalWidth()
	line := fmt.Sprintf("%s status=%s seq=%d", c.ID, c.Status, c.Sequence)
	if len(line) > width && width > 0 {
		line = line[:width]
	}
	fmt.Println(color.CyanString(line))
}

// terminalWidth reports the current terminal's column count, falling back
// to 80 when stdout is not a terminal (e.g. piped output).
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
