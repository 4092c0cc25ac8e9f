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

import "strconv"

// Sample is metric name with formatted value (including type suffix)
type Sample struct {
	Name  string
	Value string
}

func formatCounter(delta int64) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, delta, 10)
	buf = append(buf, "|c"...)

	return string(buf)
}

func formatFCounter(delta float64) string {
	buf := make([]byte, 0, 32)
	buf = strconv.AppendFloat(buf, delta, 'f', -1, 64)
	buf = append(buf, "|c"...)

	return string(buf)
}

func formatGauge(value int64) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, value, 10)
	buf = append(buf, "|g"...)

	return string(buf)
}

func formatFGauge(value float64) string {
	buf := make([]byte, 0, 32)
	buf = strconv.AppendFloat(buf, value, 'f', -1, 64)
	buf = append(buf, "|g"...)

	return string(buf)
}

func formatTiming(ms int64) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, ms, 10)
	buf = append(buf, "|ms"...)

	return string(buf)
}

// appendLine appends "<prefix><name>:<value>[|@<rate>]" to buf
func appendLine(buf []byte, prefix string, s Sample, rate float64, sampled bool) []byte {
	buf = append(buf, prefix...)
	buf = append(buf, s.Name...)
	buf = append(buf, ':')
	buf = append(buf, s.Value...)

	if sampled {
		buf = append(buf, "|@"...)
		buf = strconv.AppendFloat(buf, rate, 'f', -1, 64)
	}

	return buf
}
