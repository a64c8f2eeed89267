package scan

// Bucket is one of the four fixed age ranges used for display grouping.
// Boundaries are inclusive on the lower end: a 30-day-old file is still
// in the first bucket, a 31-day-old file is in the second.
type Bucket int

const (
	BucketUnder30 Bucket = iota
	BucketUnder60
	BucketUnder90
	BucketOver90
)

// BucketFor categorizes an age in whole days into its bucket.
func BucketFor(ageDays int) Bucket {
	switch {
	case ageDays <= 30:
		return BucketUnder30
	case ageDays <= 60:
		return BucketUnder60
	case ageDays <= 90:
		return BucketUnder90
	default:
		return BucketOver90
	}
}

func (b Bucket) String() string {
	switch b {
	case BucketUnder30:
		return "0-30 days"
	case BucketUnder60:
		return "31-60 days"
	case BucketUnder90:
		return "61-90 days"
	case BucketOver90:
		return "90+ days"
	default:
		return "unknown"
	}
}

// Buckets returns all buckets in display order.
func Buckets() []Bucket {
	return []Bucket{BucketUnder30, BucketUnder60, BucketUnder90, BucketOver90}
}
