// server renders Mandelbrot images for network clients.
//
// GET /render takes the render parameters as query arguments and answers a
// PNG. /ws accepts a websocket on which clients send JSON render requests.
// The mandel.RenderService irpc service is served on a tcp port and on the
// /irpc websocket, see cmd/cliclient.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	mandel "github.com/ivanrybin/mandelbrot_set"
	"github.com/marben/irpc"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	rpcAddr := flag.String("rpc-addr", ":8081", "irpc tcp listen address")
	timeout := flag.Duration("timeout", 30*time.Second, "deadline of a single render")
	maxRenders := flag.Int("max-renders", 2, "renders running at the same time")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := newRenderService(*timeout, *maxRenders)

	// irpc server exposing svc as mandel.RenderService to every connection
	irpcServer := irpc.NewServer(
		irpc.WithServices(mandel.NewRenderServiceIrpcService(svc)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("got connection from: %s", ep.RemoteAddr())
		}),
	)

	// TCP
	tcpListener, err := net.Listen("tcp", *rpcAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	log.Printf("irpc listening on tcp %s", tcpListener.Addr())

	// WEBSOCKET
	// closed by irpcServer.Close
	wsListener := NewWSListener(context.Background(), *addr+"/irpc")
	httpServer := webServer(*addr, svc, wsListener)

	errCh := make(chan error, 3)
	go func() {
		log.Printf("listening on http://localhost%s", *addr)
		errCh <- fmt.Errorf("httpServer: %w", httpServer.ListenAndServe())
	}()
	// irpcServer serves both the tcp and the websocket listener
	go func() {
		errCh <- fmt.Errorf("server.Serve tcp: %w", irpcServer.Serve(tcpListener))
	}()
	go func() {
		errCh <- fmt.Errorf("server.Serve ws: %w", irpcServer.Serve(wsListener))
	}()

	select {
	case err := <-errCh:
		irpcServer.Close()
		httpServer.Close()
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpc close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
