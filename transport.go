package syslog

import (
	"net"
)

// Transport is the connectionless send primitive the dispatcher ships
// records through. Open binds to an ephemeral local endpoint; SendTo is
// fire-and-forget with per-call addressing; Close releases the handle.
type Transport interface {
	Open() error
	SendTo(p []byte, addr *net.UDPAddr) error
	Close() error
}

// udpTransport is the production Transport on a kernel UDP socket.
type udpTransport struct {
	conn *net.UDPConn
}

func (t *udpTransport) Open() error {
	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return err
	}
	t.conn = conn
	return nil
}

func (t *udpTransport) SendTo(p []byte, addr *net.UDPAddr) error {
	_, err := t.conn.WriteToUDP(p, addr)
	return err
}

func (t *udpTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
