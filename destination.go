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
	"strconv"

	"github.com/pkg/errors"
)

// Destination is statsd server datagram endpoint
type Destination struct {
	Host string
	Port int
}

// DefaultDestination is localhost:8125
var DefaultDestination = Destination{Host: DefaultHost, Port: DefaultPort}

// String returns destination in "host:port" form
func (d Destination) String() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// ParseDestination parses "host:port" address
//
// Missing port defaults to 8125, missing host to localhost. Host is not resolved,
// bad host surfaces as transport failure on first send.
func ParseDestination(addr string) (Destination, error) {
	if _, port, _ := net.SplitHostPort(addr); len(port) == 0 {
		addr = net.JoinHostPort(addr, strconv.Itoa(DefaultPort))
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Destination{}, errors.Wrapf(err, "error parsing statsd address %q", addr)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return Destination{}, errors.Wrapf(err, "error parsing statsd port %q", port)
	}

	return Destination{Host: host, Port: portNum}, nil
}
