/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.err
- Outcome counters: <operation> with an outcome tag
*/
package metrics

import (
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// latencySampleRate is the share of bumps whose own latency is recorded
const latencySampleRate = 0.0001

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// withPodName tags metrics with the pod name, default true
	withPodName bool
}

// WithoutPodName drops the pod tag. Pod names produce a lot of custom
// metrics, use it where grouping by pod is unnecessary.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	// "host:" removes the tags datadog associates with the agent host
	ddTags := []string{"host:", "env:" + envName(), "app:" + appName()}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+os.Getenv("PODNAME"))
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

func envName() string {
	if name := viper.GetString("env_name"); name != "" {
		return name
	}
	return os.Getenv("ENV_NAME")
}

func appName() string {
	if name := viper.GetString("app_name"); name != "" {
		return name
	}
	return os.Getenv("APP_NAME")
}

// Metrics prefixes keys with the package name and keeps a failing bump from
// taking the caller down.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// recoverBump counts a panicking bump instead of propagating it
func (mt *Metrics) recoverBump(name, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(name+".panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// bumpLatency records a small sample of bump latencies
func (mt *Metrics) bumpLatency(typ string, start time.Time) {
	if rand.Float64() < latencySampleRate {
		mt.datadog.BumpHistogram("bump.latency", float64(time.Since(start)/time.Millisecond), 1, "name", mt.pkgName, "type", typ)
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpavg", key, tags)
	defer mt.bumpLatency("bumpavg", time.Now())
	mt.datadog.BumpAvg(mt.key(key), val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum", key, tags)
	defer mt.bumpLatency("bumpsum", time.Now())
	mt.datadog.BumpSum(mt.key(key), val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram", key, tags)
	defer mt.bumpLatency("bumphistogram", time.Now())
	mt.datadog.BumpHistogram(mt.key(key), val, 1, tags...)
}

// BumpTime starts a timer that is recorded when End is called:
//
//	defer met.BumpTime("settle.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		mt:    mt,
		key:   key,
		tags:  tags,
		ddEnd: mt.datadog.BumpTime(mt.key(key), 1, tags...),
	}
}

type timeTracker struct {
	mt    *Metrics
	key   string
	tags  []string
	ddEnd Ender
}

func (t *timeTracker) End() {
	defer t.mt.recoverBump("bumptime", t.key, t.tags)
	defer t.mt.bumpLatency("bumptime", time.Now())
	t.ddEnd.End()
}
