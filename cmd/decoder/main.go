// Command decoder connects to the feed handler's WebSocket in binary mode,
// subscribes to symbols, and prints every ITCH message in human-readable form.
//
// Usage:
//
//	decoder                              # connect to localhost:8100, subscribe to all
//	decoder -url ws://host:8100/feed     # custom endpoint
//	decoder -symbols AAPL,NEXO           # subscribe to specific symbols
//	decoder -json                        # request JSON format instead (pass-through print)
//	decoder -stats 10                    # print message rate stats every N seconds
//	decoder -hex                         # also dump raw hex alongside decoded output
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/feedhandler/mdfeed/internal/itch"
)

func main() {
	url := flag.String("url", "ws://localhost:8100/feed", "WebSocket endpoint")
	symbols := flag.String("symbols", "*", "Comma-separated symbols or * for all")
	useJSON := flag.Bool("json", false, "Request JSON format instead of binary")
	statsInterval := flag.Int("stats", 0, "Print message rate stats every N seconds (0 = off)")
	showHex := flag.Bool("hex", false, "Print raw hex dump alongside decoded output")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	log.Printf("connecting to %s", *url)
	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	log.Println("connected")

	format := "binary"
	if *useJSON {
		format = "json"
	}
	sendControl(conn, map[string]any{"action": "format", "format": format})

	symList := strings.Split(*symbols, ",")
	sendControl(conn, map[string]any{"action": "subscribe", "symbols": symList})
	log.Printf("subscribed to %s in %s mode", *symbols, format)

	var msgCount uint64
	if *statsInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(*statsInterval) * time.Second)
			defer ticker.Stop()
			var last uint64
			for range ticker.C {
				cur := atomic.LoadUint64(&msgCount)
				delta := cur - last
				rate := float64(delta) / float64(*statsInterval)
				log.Printf("[stats] %d msgs total | %.1f msgs/sec", cur, rate)
				last = cur
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		log.Println("shutting down...")
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(200 * time.Millisecond)
		os.Exit(0)
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("read: %v", err)
		}

		atomic.AddUint64(&msgCount, 1)

		if msgType == websocket.TextMessage || *useJSON {
			fmt.Println(string(data))
			continue
		}

		decodeBinaryFrames(data, *showHex)
	}
}

func sendControl(conn *websocket.Conn, msg map[string]any) {
	data, _ := json.Marshal(msg)
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Fatalf("send control: %v", err)
	}
}

// decodeBinaryFrames parses one or more 2-byte-length-prefixed ITCH messages
// from a single WebSocket binary frame and prints each via itch.Decode.
func decodeBinaryFrames(data []byte, showHex bool) {
	if len(data) < 2 {
		fmt.Printf("??? short frame (%d bytes)\n", len(data))
		return
	}

	frameLen := int(binary.BigEndian.Uint16(data[0:2]))
	if frameLen+2 == len(data) {
		body := data[2:]
		if showHex {
			printHex(data)
		}
		decodeMessage(body)
		return
	}

	offset := 0
	decoded := false
	for offset+2 < len(data) {
		frameLen := int(binary.BigEndian.Uint16(data[offset : offset+2]))
		if frameLen <= 0 || offset+2+frameLen > len(data) {
			break
		}
		body := data[offset+2 : offset+2+frameLen]
		if showHex {
			printHex(data[offset : offset+2+frameLen])
		}
		decodeMessage(body)
		offset += 2 + frameLen
		decoded = true
	}

	if !decoded {
		if showHex {
			printHex(data)
		}
		decodeMessage(data)
	}
}

// decodeMessage decodes one ITCH message body (type tag plus payload) using
// the shared decoder and prints its JSON rendering.
func decodeMessage(body []byte) {
	if len(body) == 0 {
		return
	}

	msg, err := itch.Decode(body[0], body[1:])
	if err != nil {
		fmt.Printf("DECODE ERROR  type=%c (0x%02x) len=%d  err=%v\n", body[0], body[0], len(body), err)
		if msg == nil {
			return
		}
	}

	out, err := itch.EncodeJSON(msg)
	if err != nil {
		fmt.Printf("UNKNOWN  type=%c (0x%02x) len=%d\n", body[0], body[0], len(body))
		return
	}
	fmt.Println(string(out))
}

func printHex(data []byte) {
	var sb strings.Builder
	sb.WriteString("         hex: ")
	for i, b := range data {
		if i > 0 && i%16 == 0 {
			sb.WriteString("\n              ")
		}
		fmt.Fprintf(&sb, "%02x ", b)
	}
	fmt.Println(sb.String())
}
