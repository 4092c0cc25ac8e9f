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
	"sync/atomic"
	"time"
)

// Client sends metrics to the fixed Destination
//
// Client holds no connection, it is safe for concurrent use.
type Client struct {
	dest    Destination
	options ClientOptions

	failedSends *int64
}

// NewClient creates new statsd client bound to host:port
//
// Client settings could be controlled via functions of type Option
func NewClient(host string, port int, options ...Option) *Client {
	return NewClientTo(Destination{Host: host, Port: port}, options...)
}

// NewClientTo creates new statsd client bound to dest
func NewClientTo(dest Destination, options ...Option) *Client {
	c := &Client{
		dest:        dest,
		options:     defaultOptions(),
		failedSends: new(int64),
	}

	for _, option := range options {
		option(&c.options)
	}

	return c
}

// Destination returns destination client is bound to
func (c *Client) Destination() Destination {
	return c.dest
}

// CloneWithDestination returns a clone of the client sending to dest
//
// Original client is not affected, so this is safe way to redirect some
// of the calls while other goroutines keep using the original.
func (c *Client) CloneWithDestination(dest Destination) *Client {
	clone := *c
	clone.dest = dest

	return &clone
}

// CloneWithPrefix returns a clone of the original client with different metricPrefix.
func (c *Client) CloneWithPrefix(prefix string) *Client {
	clone := *c
	clone.options.MetricPrefix = prefix

	return &clone
}

// GetFailedSends returns number of datagrams which failed to be sent
//
// Counter is shared between the client and its clones.
func (c *Client) GetFailedSends() int64 {
	return atomic.LoadInt64(c.failedSends)
}

// Timing tracks a duration event, the time delta must be given in milliseconds
func (c *Client) Timing(stat string, ms int64, rate float64) {
	c.send([]Sample{{Name: stat, Value: formatTiming(ms)}}, rate)
}

// TimingDuration tracks a duration event, duration is truncated to milliseconds
func (c *Client) TimingDuration(stat string, delta time.Duration, rate float64) {
	c.Timing(stat, int64(delta/time.Millisecond), rate)
}

// Gauge sets constant value for the interval
func (c *Client) Gauge(stat string, value int64, rate float64) {
	c.send([]Sample{{Name: stat, Value: formatGauge(value)}}, rate)
}

// FGauge sends a floating point value for a gauge
func (c *Client) FGauge(stat string, value float64, rate float64) {
	c.send([]Sample{{Name: stat, Value: formatFGauge(value)}}, rate)
}

// Increment increments a counter metric by one
//
// Often used to note a particular event
func (c *Client) Increment(stat string, rate float64) {
	c.UpdateMulti([]string{stat}, 1, rate)
}

// IncrementMulti increments every counter in stats by one
func (c *Client) IncrementMulti(stats []string, rate float64) {
	c.UpdateMulti(stats, 1, rate)
}

// Decrement decrements a counter metric by one
func (c *Client) Decrement(stat string, rate float64) {
	c.UpdateMulti([]string{stat}, -1, rate)
}

// DecrementMulti decrements every counter in stats by one
func (c *Client) DecrementMulti(stats []string, rate float64) {
	c.UpdateMulti(stats, -1, rate)
}

// Update changes a counter by arbitrary delta
func (c *Client) Update(stat string, delta int64, rate float64) {
	c.UpdateMulti([]string{stat}, delta, rate)
}

// UpdateMulti changes every counter in stats by the same delta
//
// All the counters share single sampling decision.
func (c *Client) UpdateMulti(stats []string, delta int64, rate float64) {
	value := formatCounter(delta)

	batch := make([]Sample, len(stats))
	for i, stat := range stats {
		batch[i] = Sample{Name: stat, Value: value}
	}

	c.send(batch, rate)
}

// FUpdate changes a counter by floating point delta
func (c *Client) FUpdate(stat string, delta float64, rate float64) {
	c.FUpdateMulti([]string{stat}, delta, rate)
}

// FUpdateMulti changes every counter in stats by the same floating point delta
func (c *Client) FUpdateMulti(stats []string, delta float64, rate float64) {
	value := formatFCounter(delta)

	batch := make([]Sample, len(stats))
	for i, stat := range stats {
		batch[i] = Sample{Name: stat, Value: value}
	}

	c.send(batch, rate)
}

// Send transmits pre-formatted samples, Value should already carry type suffix
//
// Samples are sent in slice order, one datagram each.
func (c *Client) Send(batch []Sample, rate float64) {
	c.send(batch, rate)
}
