package main

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/coder/websocket"
	mandel "github.com/ivanrybin/mandelbrot_set"
	"github.com/marben/irpc"
)

// maxImageBytes bounds a websocket message accepted from the server.
const maxImageBytes = 256 << 20

// dial connects to addr, a tcp host:port or a ws:// or wss:// url of the
// server's /irpc endpoint.
func dial(ctx context.Context, addr string) (net.Conn, error) {
	if !strings.HasPrefix(addr, "ws://") && !strings.HasPrefix(addr, "wss://") {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	}
	c, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, err
	}
	// the whole irpc response arrives in one message
	c.SetReadLimit(maxImageBytes)
	return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
}

// fetchImage asks the render service at addr for req and returns the
// response header with the PNG bytes.
func fetchImage(ctx context.Context, addr string, req mandel.RenderRequest) (mandel.RenderResponse, []byte, error) {
	conn, err := dial(ctx, addr)
	if err != nil {
		return mandel.RenderResponse{}, nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := mandel.NewRenderServiceIrpcClient(ep)
	if err != nil {
		return mandel.RenderResponse{}, nil, fmt.Errorf("NewRenderServiceIrpcClient: %w", err)
	}

	resp, img, err := client.RenderPNG(ctx, req)
	if err != nil {
		return resp, nil, fmt.Errorf("client.RenderPNG: %w", err)
	}
	if len(img) != resp.Bytes {
		return resp, nil, fmt.Errorf("read image: got %d bytes, announced %d", len(img), resp.Bytes)
	}
	return resp, img, nil
}
