package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamjam-resort-api/models"
)

type fakeS3 struct {
	puts      []*s3.PutObjectInput
	bodies    [][]byte
	putErr    error
	headErr   error
	created   []*s3.CreateBucketInput
	createErr error
	cors      []*s3.PutBucketCorsInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = append(f.created, in)
	return &s3.CreateBucketOutput{}, f.createErr
}

func (f *fakeS3) PutBucketCors(_ context.Context, in *s3.PutBucketCorsInput, _ ...func(*s3.Options)) (*s3.PutBucketCorsOutput, error) {
	f.cors = append(f.cors, in)
	return &s3.PutBucketCorsOutput{}, nil
}

type fakePresigner struct {
	in      *s3.PutObjectInput
	expires time.Duration
}

func (p *fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	o := s3.PresignOptions{}
	for _, fn := range opts {
		fn(&o)
	}
	p.in, p.expires = in, o.Expires
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *in.Key, Method: "PUT"}, nil
}

var uploadTime = time.UnixMilli(1735689600000)

func newTestImages(client *fakeS3, presigner *fakePresigner, region string) *Images {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewImages(client, presigner, Options{
		Bucket: "jamjam-resort-images",
		Region: region,
		Expiry: 15 * time.Minute,
		Now:    func() time.Time { return uploadTime },
	}, log)
}

func TestImages_UploadURL(t *testing.T) {
	p := &fakePresigner{}
	img := newTestImages(&fakeS3{}, p, "ap-south-1")

	up, err := img.UploadURL(context.Background(), "deluxe.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "rooms/1735689600000_deluxe.png", up.Key)
	assert.Equal(t, "https://signed.example/rooms/1735689600000_deluxe.png", up.UploadURL)
	assert.Equal(t, "https://jamjam-resort-images.s3.ap-south-1.amazonaws.com/rooms/1735689600000_deluxe.png", up.PublicURL)
	assert.Equal(t, "image/png", *p.in.ContentType)
	assert.Equal(t, 15*time.Minute, p.expires)

	_, err = img.UploadURL(context.Background(), "  ", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestImages_Upload(t *testing.T) {
	client := &fakeS3{}
	img := newTestImages(client, &fakePresigner{}, "ap-south-1")
	data := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

	t.Run("plain base64 defaults to jpeg", func(t *testing.T) {
		up, err := img.Upload(context.Background(), data, "../pool.jpg", "")
		require.NoError(t, err)
		assert.Equal(t, "rooms/1735689600000_pool.jpg", up.Key)
		assert.Empty(t, up.UploadURL)
		require.Len(t, client.puts, 1)
		assert.Equal(t, DefaultContentType, *client.puts[0].ContentType)
		assert.Equal(t, []byte("jpeg bytes"), client.bodies[0])
	})

	t.Run("data url", func(t *testing.T) {
		_, err := img.Upload(context.Background(), "data:image/png;base64,"+data, "a.png", "image/png")
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg bytes"), client.bodies[1])
	})

	t.Run("bad data", func(t *testing.T) {
		_, err := img.Upload(context.Background(), "%%%", "a.png", "")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := newTestImages(&fakeS3{putErr: errors.New("access denied")}, &fakePresigner{}, "ap-south-1")
		_, err := failing.Upload(context.Background(), data, "a.png", "")
		assert.ErrorIs(t, err, models.ErrDataUnavailable)
	})
}

func TestImages_EnsureBucket(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		client := &fakeS3{}
		require.NoError(t, newTestImages(client, nil, "ap-south-1").EnsureBucket(context.Background()))
		assert.Empty(t, client.created)
	})

	t.Run("missing", func(t *testing.T) {
		client := &fakeS3{headErr: &types.NotFound{}}
		require.NoError(t, newTestImages(client, nil, "ap-south-1").EnsureBucket(context.Background()))
		require.Len(t, client.created, 1)
		assert.Equal(t, types.BucketLocationConstraint("ap-south-1"), client.created[0].CreateBucketConfiguration.LocationConstraint)
	})

	t.Run("us-east-1 has no constraint", func(t *testing.T) {
		client := &fakeS3{headErr: &types.NotFound{}}
		require.NoError(t, newTestImages(client, nil, "us-east-1").EnsureBucket(context.Background()))
		require.Len(t, client.created, 1)
		assert.Nil(t, client.created[0].CreateBucketConfiguration)
	})

	t.Run("already owned", func(t *testing.T) {
		client := &fakeS3{headErr: &types.NotFound{}, createErr: &types.BucketAlreadyOwnedByYou{}}
		assert.NoError(t, newTestImages(client, nil, "ap-south-1").EnsureBucket(context.Background()))
	})

	t.Run("forbidden", func(t *testing.T) {
		client := &fakeS3{headErr: errors.New("forbidden")}
		assert.ErrorIs(t, newTestImages(client, nil, "ap-south-1").EnsureBucket(context.Background()), models.ErrDataUnavailable)
	})
}

func TestImages_ConfigureCORS(t *testing.T) {
	client := &fakeS3{}
	require.NoError(t, newTestImages(client, nil, "ap-south-1").ConfigureCORS(context.Background()))
	require.Len(t, client.cors, 1)
	rule := client.cors[0].CORSConfiguration.CORSRules[0]
	assert.Equal(t, []string{"*"}, rule.AllowedOrigins)
	assert.Contains(t, rule.AllowedMethods, "PUT")
	assert.Equal(t, int32(3600), *rule.MaxAgeSeconds)
}
