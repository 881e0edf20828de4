package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"shootinggallery/internal/clock"
	"shootinggallery/internal/game"
	"shootinggallery/internal/render"
	"shootinggallery/internal/targets"
	"shootinggallery/internal/wshub"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// sendLimit is how many control messages a client may leave unread.
const sendLimit = 256

// handlePlay upgrades to a websocket and runs one game session on it until
// either side hangs up.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Play] Request Received")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	s.sessions.Add(1)
	defer s.sessions.Done()

	client := wshub.NewClient(uuid.New().String(), conn, sendLimit)
	s.Hub.Register(client)
	s.Metrics.SessionOpened()
	defer s.Metrics.SessionClosed()
	log.Printf("[WS] Session %s opened\n", client.SessionID)

	err = s.play(r.Context(), client)
	s.Hub.Unregister(client.SessionID)
	if err != nil {
		log.Printf("[WS] Session %s ended: %v\n", client.SessionID, err)
		conn.Close(websocket.StatusInternalError, "session error")
		return
	}
	log.Printf("[WS] Session %s closed\n", client.SessionID)
	conn.Close(websocket.StatusNormalClosure, "")
}

// play wires a Session to the client and blocks until the connection ends.
// The session is only touched from loop.Run.
func (s *Server) play(ctx context.Context, client *wshub.Client) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	loop := game.NewLoop(64)
	sched := clock.NewTicker(ctx, loop.Post, s.Cfg.FrameRate)
	factory := targets.NewFactory(s.Cfg.Mode(), s.Assets.Visuals(), nil)
	log.Printf("[WS] Session %s uses %s scaling\n", client.SessionID, factory.Mode())
	session := game.NewSession(
		s.Cfg.Game(),
		factory,
		sched,
		newPresenter(client),
		game.Listeners{notifier{client}, s.Metrics},
	)

	client.Deliver(wshub.ServerMessage{
		Type:      wshub.MsgWelcome,
		SessionID: client.SessionID,
		Assets:    s.Assets.Manifest(),
	})
	width, height := float64(s.Cfg.SurfaceWidth), float64(s.Cfg.SurfaceHeight)
	loop.Post(ctx, func() { session.Resize(width, height) })

	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return client.WritePump(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return client.ReadPump(ctx, func(msg wshub.ClientMessage) {
			loop.Post(ctx, func() { apply(session, client.SessionID, msg) })
		})
	})
	return g.Wait()
}

func apply(session *game.Session, id string, msg wshub.ClientMessage) {
	switch msg.Type {
	case wshub.MsgStart, wshub.MsgRestart:
		if !session.Start() {
			log.Printf("[WS] %s: %s ignored, round %d still running\n", id, msg.Type, session.Round())
		}
	case wshub.MsgClick:
		session.Click(msg.X, msg.Y)
	case wshub.MsgResize:
		session.Resize(msg.W, msg.H)
	default:
		log.Printf("[WS] %s: unknown message type %q\n", id, msg.Type)
	}
}

// presenter records each snapshot as draw calls and ships them to the
// browser, along with a phase message whenever the phase changes.
type presenter struct {
	client *wshub.Client
	rec    *render.Recorder
	phase  game.Phase
}

func newPresenter(c *wshub.Client) *presenter {
	return &presenter{client: c, rec: render.NewRecorder()}
}

func (p *presenter) Redraw(snap game.Snapshot) {
	if snap.Phase != p.phase {
		if p.client.Deliver(wshub.ServerMessage{Type: wshub.MsgPhase, Phase: string(snap.Phase)}) {
			p.phase = snap.Phase
		}
	}
	render.Draw(p.rec, snap)
	frame := p.rec.Frame(snap.Width, snap.Height)
	p.client.Deliver(wshub.ServerMessage{Type: wshub.MsgFrame, Frame: &frame})
}

// notifier turns gameplay events into sound cues and the final result.
type notifier struct {
	client *wshub.Client
}

func (n notifier) OnStart(uint64) {}
func (n notifier) OnMiss(uint32)  {}

func (n notifier) OnHit(targets.Target) {
	n.client.Deliver(wshub.ServerMessage{Type: wshub.MsgSound, Sound: "hit"})
}

func (n notifier) OnGameOver(r game.Result) {
	n.client.Deliver(wshub.ServerMessage{Type: wshub.MsgSound, Sound: "over"})
	n.client.Deliver(wshub.ServerMessage{Type: wshub.MsgOver, Score: r.Score, Reason: string(r.Reason)})
}
