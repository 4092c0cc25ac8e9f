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
	"log"
	"math/rand"
	"os"
)

// Default settings
const (
	DefaultHost         = "localhost"
	DefaultPort         = 8125
	DefaultMetricPrefix = ""
	DefaultLogPrefix    = "[STATSD] "
)

// NoSampling is a sample rate which sends every metric
const NoSampling = 1.0

// SomeLogger defines logging interface that allows using 3rd party loggers
// (e.g. github.com/sirupsen/logrus) with this Statsd client.
type SomeLogger interface {
	Printf(fmt string, args ...interface{})
}

// ClientOptions are statsd client settings
type ClientOptions struct {
	// MetricPrefix is prepended to every metric name
	//
	// Prefix should include trailing dot (if required)
	MetricPrefix string

	// Logger is used to report transport failures when ErrorHandler is not set
	Logger SomeLogger

	// ErrorHandler receives every failed datagram send as *SendError
	//
	// If nil, failures are logged via Logger
	ErrorHandler func(err error)

	// Random returns uniform random value in [0,1), used for sampling
	Random func() float64

	// Transport delivers formatted datagrams
	Transport Transport
}

// Option is type for option transport
type Option func(*ClientOptions)

func defaultOptions() ClientOptions {
	return ClientOptions{
		MetricPrefix: DefaultMetricPrefix,
		Logger:       log.New(os.Stderr, DefaultLogPrefix, log.LstdFlags),
		Random:       rand.Float64,
		Transport:    UDPTransport{},
	}
}

// MetricPrefix is prepended to every metric being sent
//
// Usually prefix is the name of the application
func MetricPrefix(prefix string) Option {
	return func(c *ClientOptions) {
		c.MetricPrefix = prefix
	}
}

// Logger is used to report transport failures
func Logger(logger SomeLogger) Option {
	return func(c *ClientOptions) {
		c.Logger = logger
	}
}

// ErrorHandler sets callback which receives every failed send
//
// Handler is called synchronously from the metric method, it should not block.
func ErrorHandler(handler func(err error)) Option {
	return func(c *ClientOptions) {
		c.ErrorHandler = handler
	}
}

// RandomSource replaces random generator used for sampling decisions
//
// Function should return values in [0,1), e.g. (*rand.Rand).Float64
func RandomSource(random func() float64) Option {
	return func(c *ClientOptions) {
		c.Random = random
	}
}

// WithTransport replaces default UDP transport
func WithTransport(transport Transport) Option {
	return func(c *ClientOptions) {
		c.Transport = transport
	}
}
