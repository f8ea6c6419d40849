package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/ivanrybin/mandelbrot_set"
)

// webServer creates the http server exposing svc on addr:
// GET /render answers a single PNG, /ws serves JSON render requests over a
// websocket and /irpc hands websocket connections to rpc, from which the irpc
// server accepts them.
func webServer(addr string, svc *renderService, rpc *WebsocketListener) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /render", renderHandler(svc))
	mux.HandleFunc("/ws", websocketHandler(svc))
	mux.HandleFunc("/irpc", irpcHandler(rpc))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// renderHandler answers GET /render?threads=8&iterations=100&resolution=300x200&ul=-2,1&lr=1,-1
func renderHandler(svc *renderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := queryRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		_, img, err := svc.RenderPNG(r.Context(), req)
		if err != nil {
			log.Printf("render request %q: %v", r.URL.RawQuery, err)
			http.Error(w, err.Error(), statusOf(err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(img)))
		if _, err := w.Write(img); err != nil {
			log.Printf("write response: %v", err)
		}
	}
}

func queryRequest(r *http.Request) (mandel.RenderRequest, error) {
	q := r.URL.Query()
	req := mandel.RenderRequest{
		Resolution: q.Get("resolution"),
		UpperLeft:  q.Get("ul"),
		LowerRight: q.Get("lr"),
		Region:     q.Get("region"),
		Palette:    q.Get("palette"),
	}
	var err error
	if req.Threads, err = queryInt(q.Get("threads"), "threads"); err != nil {
		return mandel.RenderRequest{}, err
	}
	if req.Iterations, err = queryInt(q.Get("iterations"), "iterations"); err != nil {
		return mandel.RenderRequest{}, err
	}
	return req, nil
}

func queryInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &mandel.ConfigError{Field: field, Msg: fmt.Sprintf("%q: want an integer", s)}
	}
	return n, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, mandel.ErrConfig):
		return http.StatusBadRequest
	case errors.Is(err, errBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// websocketHandler handles the http ws endpoint
// every JSON mandel.RenderRequest read from the client is answered with a
// mandel.RenderResponse followed, on success, by one binary PNG message
func websocketHandler(svc *renderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		for {
			var req mandel.RenderRequest
			if err := wsjson.Read(ctx, c, &req); err != nil {
				if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
					log.Printf("ws read from %s: %v", r.RemoteAddr, err)
				}
				return
			}
			if err := serveRenderRequest(ctx, c, svc, req); err != nil {
				log.Printf("ws write to %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}

func serveRenderRequest(ctx context.Context, c *websocket.Conn, svc *renderService, req mandel.RenderRequest) error {
	resp, img, err := svc.RenderPNG(ctx, req)
	if err != nil {
		log.Printf("ws render request: %v", err)
		return wsjson.Write(ctx, c, mandel.RenderResponse{Error: err.Error()})
	}

	if err := wsjson.Write(ctx, c, resp); err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageBinary, img)
}

// irpcHandler upgrades the request and passes the websocket to l, where it
// is accepted as a net.Conn
func irpcHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener implements net.Listener
// Accept returns the websockets passed in by irpcHandler as binary stream
// connections
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
