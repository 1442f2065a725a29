// Package bucket truncates timestamps to fixed-width, UTC-aligned windows
// used by the aggregator to group raw events.
package bucket

import "time"

// Truncate floors t to the start of its bucket: bucket(t) =
// floor(epoch_minutes / bucketMinutes) * bucketMinutes, interpreted in UTC.
// An event at exactly a bucket boundary belongs to that bucket, never the
// previous one.
func Truncate(t time.Time, bucketMinutes int) time.Time {
	if bucketMinutes <= 0 {
		bucketMinutes = 5
	}
	u := t.UTC()
	epochMinutes := u.Unix() / 60
	bucketStartMinutes := (epochMinutes / int64(bucketMinutes)) * int64(bucketMinutes)
	return time.Unix(bucketStartMinutes*60, 0).UTC()
}

// FromMillis converts a client-reported millisecond epoch timestamp to a
// time.Time, used as the bucketing key for every raw event kind.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
