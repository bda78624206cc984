// Package humanize renders timestamps and byte counts for command output.
// All functions are pure except FormatNow, which reads the cached clock.
package humanize

import (
	"fmt"
	"strconv"
	"time"

	"github.com/agilira/go-timecache"
)

// ErrBeforeEpoch is the text FormatSystemTime renders for times before 1970.
const ErrBeforeEpoch = "duration since epoch err"

// Civil is a calendar date and wall clock time.
type Civil struct {
	Year, Month, Day     int64
	Hour, Minute, Second int64
}

// TimeTuple converts Unix seconds, shifted by tzOffset hours, to a civil
// date. The conversion is the integer algorithm from
// http://ptspts.blogspot.com/2009/11/how-to-convert-unix-timestamp-to-civil.html
// and is defined for non-negative shifted timestamps.
func TimeTuple(ts, tzOffset int64) Civil {
	ts += tzOffset * 3600
	s := ts % 86400
	ts /= 86400

	h := s / 3600
	m := s / 60 % 60
	s %= 60

	x := (ts*4+102032)/146097 + 15
	b := ts + 2442113 + x - x/4
	c := (b*20 - 2442) / 7305
	d := b - 365*c - c/4
	e := d * 1000 / 30601
	f := d - e*30 - e*601/1000
	if e < 14 {
		c -= 4716
		e--
	} else {
		c -= 4715
		e -= 13
	}
	return Civil{Year: c, Month: e, Day: f, Hour: h, Minute: m, Second: s}
}

// FormatTime renders Unix seconds as "YYYY-MM-DD HH:MM:SS".
func FormatTime(ts, tzOffset int64) string {
	t := TimeTuple(ts, tzOffset)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// FormatSystemTime renders t in UTC. Times before the epoch render as
// ErrBeforeEpoch.
func FormatSystemTime(t time.Time) string {
	secs := t.Unix()
	if secs < 0 {
		return ErrBeforeEpoch
	}
	return FormatTime(secs, 0)
}

// FormatNow renders the current time, shifted by tzOffset hours.
func FormatNow(tzOffset int64) string {
	return FormatTime(timecache.CachedTimeNano()/int64(time.Second), tzOffset)
}

var units = [...]string{"", "K", "M", "G", "T", "P", "E"}

// HumanReadable renders a byte count with one decimal and a binary unit
// suffix: 512 → "512", 1536 → "1.5K", 1<<30 → "1.0G". Counts below 1024 are
// printed as is.
func HumanReadable(size uint64) string {
	if size < 1024 {
		return strconv.FormatUint(size, 10)
	}

	group := 0
	for group < len(units)-1 && size>>(10*(group+1)) > 0 {
		group++
	}
	scaled := float64(size) / float64(uint64(1)<<(10*group))
	return strconv.FormatFloat(scaled, 'f', 1, 64) + units[group]
}
