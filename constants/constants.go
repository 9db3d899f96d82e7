package constants

import (
	"os"
	"strconv"
)

// MaxDots is the default cap on duration dots. Engraving practice
// rarely goes past two; four matches everything notatable in the
// grammar down to the shortest type.
const MaxDots = 4

// MaxDivisions caps the per-measure divisions value so tick counts
// stay within what notation software accepts.
const MaxDivisions = 1024

// MaxTupletNesting bounds how deep tuplets may nest.
const MaxTupletNesting = 2

// MaxTupletActual bounds the actual-notes value the ratio resolver
// will consider before giving up.
const MaxTupletActual = 15

func GetMaxDots() int {
	if v := os.Getenv("PARTWISE_MAX_DOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return MaxDots
}

func GetServeAddr() string {
	if addr := os.Getenv("PARTWISE_SERVE_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func GetScoreBucket() string {
	bucket := os.Getenv("PARTWISE_SCORE_BUCKET")
	if bucket == "" {
		panic("PARTWISE_SCORE_BUCKET environment variable is not set!")
	}
	return bucket
}

func GetBucketEndpoint() string {
	return os.Getenv("PARTWISE_BUCKET_ENDPOINT")
}

func GetBucketRegion() string {
	if region := os.Getenv("PARTWISE_BUCKET_REGION"); region != "" {
		return region
	}
	return "us-east-1"
}
