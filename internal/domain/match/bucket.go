package match

// Bucket names a status section.
type Bucket string

const (
	BucketLive      Bucket = "live"
	BucketScheduled Bucket = "scheduled"
	BucketFinished  Bucket = "finished"
	BucketOther     Bucket = "other"
)

// DisplayOrder is the order sections are rendered in.
var DisplayOrder = []Bucket{BucketLive, BucketScheduled, BucketFinished, BucketOther}

type Buckets struct {
	Live      []Match
	Scheduled []Match
	Finished  []Match
	Other     []Match
}

type Section struct {
	Bucket  Bucket
	Matches []Match
}

func BucketOf(status Status) Bucket {
	switch {
	case status.IsLive():
		return BucketLive
	case status == StatusScheduled:
		return BucketScheduled
	case status == StatusFinished:
		return BucketFinished
	default:
		return BucketOther
	}
}

// BucketByStatus partitions items into disjoint buckets, keeping each
// match's relative order.
func BucketByStatus(items []Match) Buckets {
	var out Buckets
	for _, item := range items {
		switch BucketOf(item.Status) {
		case BucketLive:
			out.Live = append(out.Live, item)
		case BucketScheduled:
			out.Scheduled = append(out.Scheduled, item)
		case BucketFinished:
			out.Finished = append(out.Finished, item)
		default:
			out.Other = append(out.Other, item)
		}
	}
	return out
}

func (b Buckets) Get(bucket Bucket) []Match {
	switch bucket {
	case BucketLive:
		return b.Live
	case BucketScheduled:
		return b.Scheduled
	case BucketFinished:
		return b.Finished
	default:
		return b.Other
	}
}

func (b Buckets) Total() int {
	return len(b.Live) + len(b.Scheduled) + len(b.Finished) + len(b.Other)
}

// Sections returns the non-empty buckets in DisplayOrder.
func (b Buckets) Sections() []Section {
	out := make([]Section, 0, len(DisplayOrder))
	for _, bucket := range DisplayOrder {
		items := b.Get(bucket)
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Bucket: bucket, Matches: items})
	}
	return out
}
