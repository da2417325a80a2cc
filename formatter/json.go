package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/philipp01105/drushlog/core"
)

// JSONFormatter formats an entry's packet (context plus type, message,
// timestamp and memory) as a single JSON line. Keys are written in
// sorted order so output is stable.
type JSONFormatter struct {
	// TimestampFormat, when set, renders the timestamp as a string in
	// this layout instead of fractional Unix seconds.
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWith(entry, f.FormatEntry), nil
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) bool {
	packet := entry.Packet()
	if f.TimestampFormat != "" {
		packet[core.PacketTimestamp] = entry.Time.Format(f.TimestampFormat)
	}

	keys := make([]string, 0, len(packet))
	for k := range packet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		appendJSONString(buf, k)
		buf.WriteString(`":`)
		appendJSONValue(buf, packet[k])
	}
	buf.WriteString("}\n")
	return true
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONValue writes a JSON-encoded context value to the buffer
func appendJSONValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		buf.WriteByte('"')
		appendJSONString(buf, val)
		buf.WriteByte('"')
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), val))
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), val, 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), val, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), val, 'f', -1, 64))
	case time.Time:
		buf.WriteByte('"')
		buf.Write(val.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case time.Duration:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case error:
		buf.WriteByte('"')
		appendJSONString(buf, val.Error())
		buf.WriteByte('"')
	default:
		if data, err := json.Marshal(val); err == nil {
			buf.Write(data)
			return
		}
		buf.WriteByte('"')
		appendJSONString(buf, fmt.Sprintf("%v", val))
		buf.WriteByte('"')
	}
}
