/*
Package statsd implements a small fire-and-forget statsd client.

Every metric is formatted into the statsd line format and sent as its own UDP datagram,
no buffering, no background goroutines, no connection state. Metrics are best-effort:
none of the metric methods ever return an error, transport failures are handed over
to the ErrorHandler (by default, logged via Logger).

Wire format is:

	<metric-name>:<value>|<c|g|ms>[|@<sample-rate>]

Two ways to pick a destination:

 * package-level functions (Increment, Gauge, Timing, ...) send to the process-wide
   destination (localhost:8125 unless changed with SetDestination); WithDestination
   overrides it for the duration of a callback
 * Client is bound to a fixed Destination which is passed explicitly to the transport,
   it never touches process-wide state

Sampling is decided once per call: when sample rate is below 1, single random draw
decides whether the whole batch of metrics is sent (each line annotated with |@rate)
or dropped.

Example:

	statsd.SetDestination("example.com", 8125)
	statsd.Increment("my.counter", 1)

	custom := statsd.NewClient("other.example.com", 2222)
	custom.IncrementMulti([]string{"my.other.counter", "my.third.counter"}, 0.5)

*/
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
