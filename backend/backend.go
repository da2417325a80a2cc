// Package backend relays log entries to a coordinating process.
//
// When a command runs in backend mode its console output is suppressed
// and every log entry is instead written as a framed JSON packet:
//
//	\x00DRUSH_BACKEND:{"packet":"log","type":"notice",...}\x00
//
// The coordinating process reads its child's output, extracts the
// packets with Parse and re-logs them locally. Packets are encoded with
// zap's JSON encoder.
package backend

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
)

// Packet framing.
const (
	packetPrefix = "\x00DRUSH_BACKEND:"
	packetSuffix = "\x00"
)

// ChannelLog is the channel used for log entries.
const ChannelLog = "log"

// packetKey names the channel inside a packet.
const packetKey = "packet"

// Writer writes backend packets to an io.Writer. Packets are only
// written while the settings source reports backend mode. Writer is safe
// for concurrent use.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	source env.Source
	enc    zapcore.Encoder
}

// NewWriter creates a transport writing to w.
func NewWriter(w io.Writer, src env.Source) *Writer {
	if src == nil {
		src = env.Static{}
	}
	return &Writer{
		w:      w,
		source: src,
		enc: zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			MessageKey:     core.PacketMessage,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
		}),
	}
}

// Send writes entry as a packet on channel. It is a no-op outside
// backend mode.
func (t *Writer) Send(channel string, entry *core.Entry) error {
	if entry == nil || !t.source.Settings().Backend {
		return nil
	}

	data, err := t.encode(channel, entry)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err = io.WriteString(t.w, packetPrefix+data+packetSuffix+"\n")
	return err
}

func (t *Writer) encode(channel string, entry *core.Entry) (string, error) {
	packet := entry.Packet()
	delete(packet, core.PacketMessage)

	keys := make([]string, 0, len(packet))
	for k := range packet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zapcore.Field, 0, len(keys)+1)
	fields = append(fields, zap.String(packetKey, channel))
	for _, k := range keys {
		if k == packetKey {
			continue
		}
		fields = append(fields, zap.Any(k, packet[k]))
	}

	buf, err := t.enc.EncodeEntry(zapcore.Entry{Message: entry.Message}, fields)
	if err != nil {
		return "", fmt.Errorf("encode backend packet: %w", err)
	}
	defer buf.Free()
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Packet is a decoded backend packet.
type Packet struct {
	Channel string
	Data    core.Context
}

// Parse extracts the packets from a child process's output. Text
// outside packets is ignored.
func Parse(r io.Reader) ([]Packet, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read backend output: %w", err)
	}

	var packets []Packet
	for {
		start := bytes.Index(data, []byte(packetPrefix))
		if start < 0 {
			return packets, nil
		}
		data = data[start+len(packetPrefix):]
		end := bytes.Index(data, []byte(packetSuffix))
		if end < 0 {
			return packets, fmt.Errorf("unterminated backend packet")
		}

		var fields map[string]any
		if err := json.Unmarshal(data[:end], &fields); err != nil {
			return packets, fmt.Errorf("decode backend packet: %w", err)
		}
		channel, _ := fields[packetKey].(string)
		delete(fields, packetKey)
		packets = append(packets, Packet{Channel: channel, Data: core.Context(fields)})
		data = data[end+len(packetSuffix):]
	}
}
