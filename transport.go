package statsd

/*

Copyright (c) 2017 Andrey Smirnov

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

import (
	"net"

	"github.com/pkg/errors"
)

// Transport delivers single datagram to the destination
//
// No response is expected, Send should not retry.
type Transport interface {
	Send(dest Destination, payload []byte) error
}

// TransportFunc adapts plain function to Transport
type TransportFunc func(dest Destination, payload []byte) error

// Send implements Transport
func (f TransportFunc) Send(dest Destination, payload []byte) error {
	return f(dest, payload)
}

// UDPTransport sends each datagram over new connectionless socket
//
// Address is resolved on every send, so DNS changes are picked up immediately.
type UDPTransport struct {
	// Network is "udp" (default), "udp4" or "udp6"
	Network string
}

// Send implements Transport
func (t UDPTransport) Send(dest Destination, payload []byte) error {
	network := t.Network
	if network == "" {
		network = "udp"
	}

	sock, err := net.Dial(network, dest.String())
	if err != nil {
		return errors.Wrap(err, "error connecting to server")
	}

	_, err = sock.Write(payload)
	_ = sock.Close()

	return errors.Wrap(err, "error writing to socket")
}
