// Package bucket publishes rendered scores to an S3 bucket.
package bucket

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/mxml"
)

func newClient() (*s3.S3, error) {
	config := &aws.Config{
		Region: aws.String(constants.GetBucketRegion()),
	}
	if endpoint := constants.GetBucketEndpoint(); endpoint != "" {
		config.Endpoint = &endpoint
		config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("could not create an S3 session: %w", err)
	}
	return s3.New(sess), nil
}

// ObjectKey builds the bucket key for a score: a date, a slug of the
// title and a short random suffix so republished scores never collide.
func ObjectKey(score *model.Score) string {
	slug := strings.ToLower(strings.TrimSpace(score.Title))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "untitled"
	}
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%s-%s.musicxml", time.Now().Format("2006-01-02"), slug, suffix)
}

// PublishScore renders a score and uploads it, returning the object
// key it was stored under.
func PublishScore(score *model.Score) (string, error) {
	out, err := mxml.ToXML(score, true)
	if err != nil {
		return "", err
	}

	client, err := newClient()
	if err != nil {
		return "", err
	}

	key := ObjectKey(score)
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(constants.GetScoreBucket()),
		Key:         aws.String(key),
		Body:        strings.NewReader(out),
		ContentType: aws.String("application/vnd.recordare.musicxml+xml"),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload score: %w", err)
	}
	return key, nil
}
