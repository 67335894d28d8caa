// Command feedhandler joins a UDP multicast market-data feed, decodes every
// ITCH message it carries, maintains a live order book per security, and
// fans the decoded stream out to WebSocket clients.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feedhandler/mdfeed/internal/api"
	"github.com/feedhandler/mdfeed/internal/config"
	"github.com/feedhandler/mdfeed/internal/dispatch"
	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/orderbook"
	"github.com/feedhandler/mdfeed/internal/session"
	"github.com/feedhandler/mdfeed/internal/symbol"
)

func main() {
	cfg := config.Load()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("feed handler starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received signal %v, shutting down...", sig)
		cancel()
	}()

	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)
	symbols := symbol.NewTable()
	mgr := session.NewManager(symbols, cfg.SendBufferSize)

	consumer := func(locate uint16, msg any) {
		if sd, ok := msg.(itch.StockDirectoryMessage); ok {
			symbols.Learn(sd)
		}
		mgr.Broadcast(locate, []any{msg})
	}
	disp := dispatch.New(market, &errs, consumer)

	conn, err := joinMulticast(cfg.McastGroup, cfg.McastPort, cfg.McastInterface)
	if err != nil {
		log.Fatalf("multicast join failed: %v", err)
	}
	defer conn.Close()
	log.Printf("joined multicast group %s:%d", cfg.McastGroup, cfg.McastPort)

	go receiveLoop(ctx, conn, disp)

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", session.Handler(mgr))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","clients":%d,"symbols":%d}`, mgr.ClientCount(), symbols.Count())
	})

	apiServer := api.NewServer(market, &errs, mgr, symbols)
	apiServer.Register(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.WSPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("WebSocket server listening on ws://%s/feed", addr)
	log.Printf("Health check: http://%s/health", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	log.Println("feed handler stopped")
}

// joinMulticast opens a UDP socket bound to the multicast group/port the
// feed is published on. iface, if non-empty, pins the join to a specific
// network interface rather than letting the kernel pick a default route.
func joinMulticast(group string, port int, iface string) (*net.UDPConn, error) {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", group, port))
	if err != nil {
		return nil, fmt.Errorf("resolve multicast address: %w", err)
	}

	var ifi *net.Interface
	if iface != "" {
		ifi, err = net.InterfaceByName(iface)
		if err != nil {
			return nil, fmt.Errorf("lookup interface %s: %w", iface, err)
		}
	}

	conn, err := net.ListenMulticastUDP("udp", ifi, addr)
	if err != nil {
		return nil, fmt.Errorf("listen multicast: %w", err)
	}
	if err := conn.SetReadBuffer(8 * 1024 * 1024); err != nil {
		log.Printf("warning: could not set read buffer: %v", err)
	}
	return conn, nil
}

// receiveLoop reads datagrams off the multicast socket and dispatches each
// one. A single datagram may carry many ITCH messages under MoldUDP64
// framing; Dispatch handles the whole batch synchronously so book mutation
// never races decode.
func receiveLoop(ctx context.Context, conn *net.UDPConn, disp *dispatch.Dispatcher) {
	buf := make([]byte, 65536)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(time.Second))
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			log.Printf("multicast read error: %v", err)
			continue
		}

		if err := disp.Dispatch(buf[:n]); err != nil {
			log.Printf("dispatch error: %v", err)
		}
	}
}
