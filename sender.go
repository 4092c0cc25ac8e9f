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
	"fmt"
	"sync/atomic"
)

// send delivers batch of samples to the client destination
//
// Sampling decision is made once for the whole batch. Every datagram is sent
// independently, failure of one doesn't stop the rest.
func (c *Client) send(batch []Sample, rate float64) {
	sampled := rate < 1
	if sampled && c.options.Random() > rate {
		return
	}

	for _, s := range batch {
		payload := appendLine(make([]byte, 0, len(c.options.MetricPrefix)+len(s.Name)+len(s.Value)+24),
			c.options.MetricPrefix, s, rate, sampled)

		if err := c.deliver(payload); err != nil {
			atomic.AddInt64(c.failedSends, 1)
			c.reportError(&SendError{Destination: c.dest, Payload: string(payload), Err: err})
		}
	}
}

// deliver hands payload over to the transport, transport panics are turned into errors
func (c *Client) deliver(payload []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()

	return c.options.Transport.Send(c.dest, payload)
}

func (c *Client) reportError(err error) {
	if c.options.ErrorHandler != nil {
		c.options.ErrorHandler(err)
		return
	}

	if c.options.Logger != nil {
		c.options.Logger.Printf("[STATSD] %s", err)
	}
}
