package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/fitreni/coach-scheduler/internal/config"
)

// maxWidth caps content images; the marketing pages never render wider.
const maxWidth = 1600

const webpQuality = 82

// Uploader converts admin-supplied images to webp and stores them in S3.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: cfg.S3BaseURL,
	}
}

// Upload decodes src (jpeg or png), downscales it to maxWidth if
// needed, re-encodes as webp and stores it under a generated key.
// Returns the public URL.
func (u *Uploader) Upload(ctx context.Context, src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("content/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
