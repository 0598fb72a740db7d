// Package preview implements a live-preview sink for the tev image viewer
// (https://github.com/Tom94/tev)'s TCP IPC protocol: as blocks finish
// rendering, their pixels are streamed to a running tev instance so the
// image fills in live instead of only appearing once the render is done.
package preview

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// packet type tags from tev's IPC protocol.
const (
	packetCloseImage  uint8 = 2
	packetCreateImage uint8 = 4
	packetUpdateImage uint8 = 5
)

// TevClient owns the TCP connection to a tev instance and encodes the
// packets it understands. A nil or unconnected client is valid to call: every
// send on it returns an error, which TevProgress answers by disabling itself,
// so communication errors disable the sink and never fail the render.
type TevClient struct {
	conn net.Conn
}

// DialTev connects to a tev instance's IPC port (default "127.0.0.1:14158").
func DialTev(addr string) (*TevClient, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("preview: dialing tev at %s: %w", addr, err)
	}
	return &TevClient{conn: conn}, nil
}

func (c *TevClient) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *TevClient) send(payload []byte) error {
	if c == nil || c.conn == nil {
		return fmt.Errorf("preview: tev client not connected")
	}
	var buf bytes.Buffer
	// length includes the 4-byte length field itself.
	binary.Write(&buf, binary.LittleEndian, int32(len(payload)+4))
	buf.Write(payload)
	_, err := c.conn.Write(buf.Bytes())
	return err
}

func writeCString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

func (c *TevClient) sendCloseImage(imageName string) error {
	var buf bytes.Buffer
	buf.WriteByte(packetCloseImage)
	writeCString(&buf, imageName)
	return c.send(buf.Bytes())
}

func (c *TevClient) sendCreateImage(imageName string, width, height int32, channelNames []string) error {
	var buf bytes.Buffer
	buf.WriteByte(packetCreateImage)
	buf.WriteByte(0) // grabFocus = false
	writeCString(&buf, imageName)
	binary.Write(&buf, binary.LittleEndian, width)
	binary.Write(&buf, binary.LittleEndian, height)
	binary.Write(&buf, binary.LittleEndian, int32(len(channelNames)))
	for _, name := range channelNames {
		writeCString(&buf, name)
	}
	return c.send(buf.Bytes())
}

// sendUpdateImage streams an interleaved-channel rectangle of pixel data,
// matching tev's multi-channel update packet: channelOffsets/channelStrides
// describe how to read each channel out of data (here: offsets 0,1,2 and
// strides of 3, for tightly interleaved RGB floats).
func (c *TevClient) sendUpdateImage(imageName string, channelNames []string, x, y, width, height int32, data []float32) error {
	var buf bytes.Buffer
	buf.WriteByte(packetUpdateImage)
	buf.WriteByte(0) // grabFocus = false
	writeCString(&buf, imageName)
	binary.Write(&buf, binary.LittleEndian, int32(len(channelNames)))
	for _, name := range channelNames {
		writeCString(&buf, name)
	}
	binary.Write(&buf, binary.LittleEndian, x)
	binary.Write(&buf, binary.LittleEndian, y)
	binary.Write(&buf, binary.LittleEndian, width)
	binary.Write(&buf, binary.LittleEndian, height)
	for i := range channelNames {
		binary.Write(&buf, binary.LittleEndian, int64(i))
	}
	for range channelNames {
		binary.Write(&buf, binary.LittleEndian, int64(len(channelNames)))
	}
	for _, v := range data {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return c.send(buf.Bytes())
}
