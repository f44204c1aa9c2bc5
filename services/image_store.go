package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore uploads image payloads to S3 and hands back a public URL. The
// rest of the system only ever stores that URL string.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	region  string
	cdnBase string
}

func NewImageStore(ctx context.Context, bucket, region, cdnBase string) (*ImageStore, error) {
	if bucket == "" {
		// image uploads disabled; callers keep working without URLs
		return nil, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &ImageStore{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		region:  region,
		cdnBase: strings.TrimSuffix(cdnBase, "/"),
	}, nil
}

// UploadBase64 accepts a "data:<mime>;base64,<data>" payload, stores it
// under the given prefix and returns the public URL.
func (s *ImageStore) UploadBase64(ctx context.Context, base64Data, prefix string) (string, error) {
	parts := strings.SplitN(base64Data, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image/") {
		return "", fmt.Errorf("%w: not a base64 image payload", ErrValidation)
	}

	mediaType := strings.SplitN(parts[0], ":", 2)[1]
	contentType := strings.SplitN(mediaType, ";", 2)[0]

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: decode image: %v", ErrValidation, err)
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: upload image: %v", ErrStorage, err)
	}

	if s.cdnBase != "" {
		return fmt.Sprintf("%s/%s", s.cdnBase, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
