// Package storage puts room images in the S3 bucket, either directly or through presigned
// upload URLs the app PUTs to.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
)

// DefaultContentType is used when an upload does not name one.
const DefaultContentType = "image/jpeg"

// S3API is the subset of the S3 client Images calls.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, opts ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketCors(ctx context.Context, in *s3.PutBucketCorsInput, opts ...func(*s3.Options)) (*s3.PutBucketCorsOutput, error)
}

// Presigner signs PUT requests; *s3.PresignClient satisfies it.
type Presigner interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Upload is where an image lives (or will live once the client PUTs it).
type Upload struct {
	UploadURL string `json:"uploadUrl,omitempty"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// Images stores room photos under rooms/ in one bucket.
type Images struct {
	client    S3API
	presigner Presigner
	bucket    string
	region    string
	expiry    time.Duration
	now       func() time.Time
	log       logrus.FieldLogger
}

// Options configures Images.
type Options struct {
	Bucket string
	Region string
	// Expiry bounds presigned URLs; zero means one hour.
	Expiry time.Duration
	Now    func() time.Time
}

// NewImages binds a client and presigner to a bucket.
func NewImages(client S3API, presigner Presigner, opts Options, log logrus.FieldLogger) *Images {
	if opts.Expiry <= 0 {
		opts.Expiry = time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Images{
		client:    client,
		presigner: presigner,
		bucket:    opts.Bucket,
		region:    opts.Region,
		expiry:    opts.Expiry,
		now:       opts.Now,
		log:       log,
	}
}

// NewS3Images wires Images to a real S3 client.
func NewS3Images(client *s3.Client, opts Options, log logrus.FieldLogger) *Images {
	return NewImages(client, s3.NewPresignClient(client), opts, log)
}

func (i *Images) key(fileName string) (string, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: fileName is required", models.ErrValidation)
	}
	return "rooms/" + strconv.FormatInt(i.now().UnixMilli(), 10) + "_" + name, nil
}

// PublicURL is the virtual-hosted URL of key.
func (i *Images) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", i.bucket, i.region, key)
}

func (i *Images) failed(op, key string, err error) error {
	i.log.WithError(err).WithFields(logrus.Fields{"op": op, "bucket": i.bucket, "key": key}).Error("❌ object store call failed")
	return fmt.Errorf("%w: %s %s: %w", models.ErrDataUnavailable, op, key, err)
}

// UploadURL presigns a PUT of fileName for the client to upload to directly.
func (i *Images) UploadURL(ctx context.Context, fileName, contentType string) (*Upload, error) {
	key, err := i.key(fileName)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	req, err := i.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(i.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(i.expiry))
	if err != nil {
		return nil, i.failed("presign", key, err)
	}
	return &Upload{UploadURL: req.URL, PublicURL: i.PublicURL(key), Key: key}, nil
}

// Upload decodes base64 image data and stores it. A data-URL prefix
// ("data:image/png;base64,") is accepted.
func (i *Images) Upload(ctx context.Context, data, fileName, contentType string) (*Upload, error) {
	if comma := strings.IndexByte(data, ','); strings.HasPrefix(data, "data:") && comma >= 0 {
		data = data[comma+1:]
	}
	body, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(body) == 0 {
		return nil, fmt.Errorf("%w: image data must be non-empty base64", models.ErrValidation)
	}
	key, err := i.key(fileName)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	_, err = i.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(i.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, i.failed("put", key, err)
	}
	i.log.WithFields(logrus.Fields{"key": key, "bytes": len(body)}).Info("🖼️ image uploaded")
	return &Upload{PublicURL: i.PublicURL(key), Key: key}, nil
}

// ── Bucket setup ───────────────────────────────────────────────────────────

// corsRules let the mobile app PUT to presigned URLs from any origin.
var corsRules = []types.CORSRule{{
	AllowedHeaders: []string{"*"},
	AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD"},
	AllowedOrigins: []string{"*"},
	ExposeHeaders:  []string{"ETag", "x-amz-server-side-encryption", "x-amz-request-id"},
	MaxAgeSeconds:  aws.Int32(3600),
}}

// EnsureBucket creates the bucket when it does not exist yet.
func (i *Images) EnsureBucket(ctx context.Context) error {
	_, err := i.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(i.bucket)})
	if err == nil {
		i.log.WithField("bucket", i.bucket).Info("✓ bucket exists")
		return nil
	}
	var nf *types.NotFound
	if !errors.As(err, &nf) {
		return i.failed("head-bucket", i.bucket, err)
	}

	in := &s3.CreateBucketInput{Bucket: aws.String(i.bucket)}
	// us-east-1 rejects an explicit location constraint.
	if i.region != "" && i.region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(i.region),
		}
	}
	_, err = i.client.CreateBucket(ctx, in)
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return i.failed("create-bucket", i.bucket, err)
	}
	i.log.WithField("bucket", i.bucket).Info("🪣 bucket created")
	return nil
}

// ConfigureCORS replaces the bucket's CORS configuration.
func (i *Images) ConfigureCORS(ctx context.Context) error {
	_, err := i.client.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(i.bucket),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: corsRules},
	})
	if err != nil {
		return i.failed("put-bucket-cors", i.bucket, err)
	}
	i.log.WithField("bucket", i.bucket).Info("✅ bucket CORS applied")
	return nil
}
