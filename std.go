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
	"sync"
	"sync/atomic"
	"time"
)

// process-wide state used by package-level functions
var (
	stdLock        sync.RWMutex
	stdDestination = DefaultDestination
	stdOptions     = defaultOptions()
	stdFailedSends int64
)

// SetDestination configures process-wide statsd server, defaults to localhost:8125
//
// Destination is not validated, bad host surfaces as transport failure on send.
func SetDestination(host string, port int) {
	stdLock.Lock()
	stdDestination = Destination{Host: host, Port: port}
	stdLock.Unlock()
}

// CurrentDestination returns process-wide statsd server
func CurrentDestination() Destination {
	stdLock.RLock()
	defer stdLock.RUnlock()

	return stdDestination
}

// WithDestination runs fn with process-wide destination temporarily set to dest
//
// Previous destination is restored when fn returns or panics.
//
// Override is process-wide: package-level calls from other goroutines made while fn
// runs go to dest as well, and overlapping WithDestination calls may restore each
// other's values. Use Client.CloneWithDestination when that matters.
func WithDestination(dest Destination, fn func()) {
	stdLock.Lock()
	saved := stdDestination
	stdDestination = dest
	stdLock.Unlock()

	defer func() {
		stdLock.Lock()
		stdDestination = saved
		stdLock.Unlock()
	}()

	fn()
}

// Configure applies options to the package-level functions
func Configure(options ...Option) {
	stdLock.Lock()
	defer stdLock.Unlock()

	for _, option := range options {
		option(&stdOptions)
	}
}

// GetFailedSends returns number of datagrams package-level functions failed to send
func GetFailedSends() int64 {
	return atomic.LoadInt64(&stdFailedSends)
}

// std snapshots process-wide state into a client
func std() *Client {
	stdLock.RLock()
	defer stdLock.RUnlock()

	return &Client{
		dest:        stdDestination,
		options:     stdOptions,
		failedSends: &stdFailedSends,
	}
}

// Timing tracks a duration event in milliseconds, see Client.Timing
func Timing(stat string, ms int64, rate float64) {
	std().Timing(stat, ms, rate)
}

// TimingDuration tracks a duration event, see Client.TimingDuration
func TimingDuration(stat string, delta time.Duration, rate float64) {
	std().TimingDuration(stat, delta, rate)
}

// Gauge sets gauge value, see Client.Gauge
func Gauge(stat string, value int64, rate float64) {
	std().Gauge(stat, value, rate)
}

// FGauge sets floating point gauge value
func FGauge(stat string, value float64, rate float64) {
	std().FGauge(stat, value, rate)
}

// Increment increments a counter by one
func Increment(stat string, rate float64) {
	std().Increment(stat, rate)
}

// IncrementMulti increments counters by one
func IncrementMulti(stats []string, rate float64) {
	std().IncrementMulti(stats, rate)
}

// Decrement decrements a counter by one
func Decrement(stat string, rate float64) {
	std().Decrement(stat, rate)
}

// DecrementMulti decrements counters by one
func DecrementMulti(stats []string, rate float64) {
	std().DecrementMulti(stats, rate)
}

// Update changes a counter by delta
func Update(stat string, delta int64, rate float64) {
	std().Update(stat, delta, rate)
}

// UpdateMulti changes counters by delta
func UpdateMulti(stats []string, delta int64, rate float64) {
	std().UpdateMulti(stats, delta, rate)
}

// FUpdate changes a counter by floating point delta
func FUpdate(stat string, delta float64, rate float64) {
	std().FUpdate(stat, delta, rate)
}

// Send transmits pre-formatted samples
func Send(batch []Sample, rate float64) {
	std().Send(batch, rate)
}
