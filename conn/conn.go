// Package conn drives one SMPP session over a duplex byte stream: it
// multiplexes request/response pairs by sequence_number, auto-answers
// enquire_link, drives a keep-alive ticker, and surfaces unsolicited PDUs
// and fatal errors to a caller-supplied Handler.
//
// Grounded directly on the teacher's Agent/Client split (formerly
// agent.go/client.go): STUN's 12-byte transaction ID becomes SMPP's
// monotonic sequence_number; STUN's implicit fire-and-check correlation
// becomes SMPP's explicit pending-transaction table. The reader/writer/
// enquire-link-ticker goroutine shape, and the GC ticker clearing timed-out
// transactions, are the same shape the teacher used for STUN's single
// request timeout, generalized to SMPP's three concurrent tasks.
package conn

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	smppd "github.com/go-smpp/smppd"
)

// Error is the error type for constant errors in the conn package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrConnClosed means an action was attempted on a Conn that already
	// finished its close sequence.
	ErrConnClosed Error = "conn: connection closed"
	// ErrEnquireLinkTimeout means the keep-alive ticker's enquire_link
	// request received no response within its deadline.
	ErrEnquireLinkTimeout Error = "conn: enquire_link response timed out"
)

// EnquireLinkFailedError means a keep-alive round trip completed but with
// an unexpected status or command id.
type EnquireLinkFailedError struct {
	Response smppd.Command
}

func (e EnquireLinkFailedError) Error() string {
	return "conn: enquire_link round trip returned an unexpected response"
}

// Transport is the duplex byte stream a Conn drives. Grounded on the
// teacher's net.Conn-shaped client dependency, narrowed to what Conn
// actually needs so tests can supply a go.uber.org/mock double instead of
// a real socket.
type Transport interface {
	io.Reader
	io.Writer
	Close() error
}

// Event is delivered to a Handler for everything that is not a direct
// response to an in-flight request: unsolicited commands (deliver_sm,
// alert_notification, late responses past their deadline, ...) and fatal
// connection errors.
type Event struct {
	Command smppd.Command
	Err     error
}

// Handler receives unsolicited events from a Conn. Implementations must
// not block for long, since the reader goroutine delivers synchronously.
type Handler interface {
	Handle(Event)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(Event)

// Handle implements Handler.
func (f HandlerFunc) Handle(e Event) { f(e) }

// Config holds the tunables of a Conn's keep-alive and framing behavior.
type Config struct {
	// MaxCommandLength bounds an inbound command_length (0 selects
	// smppd.DefaultMaxCommandLength).
	MaxCommandLength int
	// EnquireLinkInterval is the period between keep-alive round trips (0
	// disables the ticker).
	EnquireLinkInterval time.Duration
	// EnquireLinkResponseTimeout bounds how long the ticker waits for the
	// matching enquire_link_resp before declaring the connection dead.
	EnquireLinkResponseTimeout time.Duration
	// TransactionGCInterval is how often the pending-transaction table is
	// swept for timed-out entries (0 selects a 1 second default).
	TransactionGCInterval time.Duration
	// Logger receives structured diagnostics; a discard logger is used if
	// nil.
	Logger logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.MaxCommandLength <= 0 {
		c.MaxCommandLength = smppd.DefaultMaxCommandLength
	}
	if c.TransactionGCInterval <= 0 {
		c.TransactionGCInterval = time.Second
	}
	if c.Logger == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		c.Logger = log
	}
	return c
}

// action is one unit of work submitted to the writer goroutine.
type action struct {
	write    smppd.Command
	waiter   *transaction // nil for fire-and-forget sends (responses, enquire_link_resp)
	deadline time.Duration
}

// transaction is a pending request awaiting its response, pooled to avoid
// an allocation per request under load — kept from the teacher's
// sync.Pool-backed transaction struct.
type transaction struct {
	seq      uint32
	result   chan smppd.Command
	err      chan error
	deadline time.Time
}

var transactionPool = sync.Pool{
	New: func() any { return &transaction{result: make(chan smppd.Command, 1), err: make(chan error, 1)} },
}

func newTransaction(seq uint32, timeout time.Duration) *transaction {
	t := transactionPool.Get().(*transaction)
	t.seq = seq
	t.deadline = time.Now().Add(timeout)
	return t
}

func releaseTransaction(t *transaction) {
	select {
	case <-t.result:
	default:
	}
	select {
	case <-t.err:
	default:
	}
	transactionPool.Put(t)
}

// Conn drives one bound or unbound SMPP session over a Transport.
type Conn struct {
	cfg  Config
	tr   Transport
	h    Handler
	seq  *smppdSeqAllocator
	acts chan action

	mu      sync.Mutex
	pending map[uint32]*transaction
	state   smppd.SessionState
	closed  chan struct{}
	closeMu sync.Once
}

// smppdSeqAllocator is a local, mutex-guarded copy of the root package's
// unexported sequence allocator, since conn needs the same
// monotonic-with-wraparound behavior but the root package does not export one.
type smppdSeqAllocator struct {
	mu   sync.Mutex
	next uint32
}

func newSeqAllocator() *smppdSeqAllocator { return &smppdSeqAllocator{next: 1} }

func (a *smppdSeqAllocator) Next() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.next
	if a.next >= 0x7FFFFFFF {
		a.next = 1
	} else {
		a.next++
	}
	return n
}

// New creates a Conn bound to tr and starts its reader, writer,
// enquire-link ticker, and GC ticker goroutines. state is the session's
// starting SessionState (smppd.Open for a freshly dialed ESME connection).
func New(tr Transport, h Handler, state smppd.SessionState, cfg Config) *Conn {
	cfg = cfg.withDefaults()
	c := &Conn{
		cfg:     cfg,
		tr:      tr,
		h:       h,
		seq:     newSeqAllocator(),
		acts:    make(chan action, 16),
		pending: make(map[uint32]*transaction),
		state:   state,
		closed:  make(chan struct{}),
	}
	go c.readLoop()
	go c.writeLoop()
	go c.gcLoop()
	if cfg.EnquireLinkInterval > 0 {
		go c.enquireLinkLoop()
	}
	return c
}

// State reports the connection's current SessionState.
func (c *Conn) State() smppd.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// setState is called only from the writer goroutine, per the single-writer
// invariant documented on session_state in the design.
func (c *Conn) setState(s smppd.SessionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Request sends body as a new command with a freshly allocated
// sequence_number and blocks until the matching response arrives, ctx is
// done, or timeout elapses. A late response that arrives after Request
// returns is delivered to the Handler as an unsolicited Event, per the
// "dropping the request future does not cancel the request on the wire"
// contract.
func (c *Conn) Request(ctx context.Context, id smppd.CommandID, body smppd.Body, timeout time.Duration) (smppd.Command, error) {
	seq := c.seq.Next()
	cmd := smppd.NewCommand(id, 0, seq, body)
	t := newTransaction(seq, timeout)

	c.mu.Lock()
	c.pending[seq] = t
	c.mu.Unlock()

	select {
	case c.acts <- action{write: cmd, waiter: t}:
	case <-c.closed:
		c.removePending(seq)
		releaseTransaction(t)
		return smppd.Command{}, ErrConnClosed
	case <-ctx.Done():
		c.removePending(seq)
		releaseTransaction(t)
		return smppd.Command{}, ctx.Err()
	}

	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case resp := <-t.result:
		releaseTransaction(t)
		return resp, nil
	case err := <-t.err:
		releaseTransaction(t)
		return smppd.Command{}, err
	case <-timeoutCh:
		c.removePending(seq)
		releaseTransaction(t)
		return smppd.Command{}, context.DeadlineExceeded
	case <-ctx.Done():
		c.removePending(seq)
		releaseTransaction(t)
		return smppd.Command{}, ctx.Err()
	case <-c.closed:
		releaseTransaction(t)
		return smppd.Command{}, ErrConnClosed
	}
}

// Send submits a fire-and-forget command (a response PDU, or any PDU the
// caller does not want to await) through the single writer goroutine.
func (c *Conn) Send(cmd smppd.Command) error {
	select {
	case c.acts <- action{write: cmd}:
		return nil
	case <-c.closed:
		return ErrConnClosed
	}
}

// Close shuts down the transport, cancels every pending waiter with
// ErrConnClosed, and marks the session Closed. It does not flush the
// writer: commands still queued for the writer goroutine when Close runs
// may be dropped unwritten.
func (c *Conn) Close() error {
	var err error
	c.closeMu.Do(func() {
		close(c.closed)
		err = c.tr.Close()
		c.mu.Lock()
		for seq, t := range c.pending {
			select {
			case t.err <- ErrConnClosed:
			default:
			}
			delete(c.pending, seq)
		}
		c.state = smppd.Closed
		c.mu.Unlock()
	})
	return err
}

func (c *Conn) removePending(seq uint32) {
	c.mu.Lock()
	delete(c.pending, seq)
	c.mu.Unlock()
}

// readLoop decodes framed commands and dispatches each either to its
// waiting transaction or to the Handler as unsolicited, per §4.H item 1.
func (c *Conn) readLoop() {
	for {
		cmd, _, err := smppd.ReadFrom(c.tr, c.cfg.MaxCommandLength)
		if err != nil {
			c.fatal(err)
			return
		}
		c.dispatch(cmd)
	}
}

func (c *Conn) dispatch(cmd smppd.Command) {
	if cmd.ID == smppd.EnquireLinkID {
		_ = c.Send(smppd.NewCommand(smppd.EnquireLinkRespID, 0, cmd.Sequence, nil))
	}
	c.mu.Lock()
	t, ok := c.pending[cmd.Sequence]
	if ok {
		delete(c.pending, cmd.Sequence)
	}
	c.mu.Unlock()
	if ok {
		select {
		case t.result <- cmd:
		default:
		}
		return
	}
	c.h.Handle(Event{Command: cmd})
}

// fatal cancels every pending waiter, notifies the Handler, and tears the
// connection down, per §5's "connection-wide fatal events cancel all
// pending waiters" rule.
func (c *Conn) fatal(err error) {
	c.cfg.Logger.WithError(err).Debug("conn: fatal error, closing connection")
	c.h.Handle(Event{Err: err})
	_ = c.Close()
}

// writeLoop serializes every action onto the transport in the order it was
// submitted, per §5's single-writer ordering guarantee.
func (c *Conn) writeLoop() {
	for {
		select {
		case a := <-c.acts:
			if _, err := a.write.WriteTo(c.tr); err != nil {
				if a.waiter != nil {
					select {
					case a.waiter.err <- err:
					default:
					}
				}
				c.fatal(err)
				return
			}
		case <-c.closed:
			return
		}
	}
}

// gcLoop periodically sweeps pending transactions whose deadline has
// passed, per §4.H's "expiry removes the pending entry" contract for
// requests whose caller gave up without the Request call itself observing
// the timeout (e.g. ctx cancellation raced the timer).
func (c *Conn) gcLoop() {
	ticker := time.NewTicker(c.cfg.TransactionGCInterval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			for seq, t := range c.pending {
				if !t.deadline.IsZero() && now.After(t.deadline) {
					delete(c.pending, seq)
				}
			}
			c.mu.Unlock()
		case <-c.closed:
			return
		}
	}
}

// enquireLinkLoop drives the keep-alive round trip described in §4.H item
// 3: on timeout or an unexpected response, the connection is closed.
func (c *Conn) enquireLinkLoop() {
	ticker := time.NewTicker(c.cfg.EnquireLinkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), c.cfg.EnquireLinkResponseTimeout)
			resp, err := c.Request(ctx, smppd.EnquireLinkID, nil, c.cfg.EnquireLinkResponseTimeout)
			cancel()
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					c.fatal(ErrEnquireLinkTimeout)
				} else if !errors.Is(err, ErrConnClosed) {
					c.fatal(err)
				}
				return
			}
			if resp.ID != smppd.EnquireLinkRespID || !resp.Status.IsOK() {
				c.fatal(EnquireLinkFailedError{Response: resp})
				return
			}
		case <-c.closed:
			return
		}
	}
}
