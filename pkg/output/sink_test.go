package output

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/glimmer/pkg/config"
)

func TestFileSink_Put(t *testing.T) {
	dir := t.TempDir()
	sink := FileSink{Dir: dir}

	if err := sink.Put(context.Background(), "scene/a.png", []byte("data"), "image/png"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "scene", "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestFileSink_RejectsBadKeys(t *testing.T) {
	sink := FileSink{Dir: t.TempDir()}
	for _, key := range []string{"", "/abs.png", "../escape.png", "a/../../b.png"} {
		if err := sink.Put(context.Background(), key, nil, "image/png"); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Put(%q) = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (FileSink{Dir: t.TempDir()}).Put(ctx, "a.png", nil, "image/png"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

type fakeS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected a deadline on the upload context")
	}
	f.input = input
	f.body, _ = io.ReadAll(input.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Put(t *testing.T) {
	fake := &fakeS3{}
	uploader := newS3Uploader(fake, "frames", "renders/", nil)

	if err := uploader.Put(context.Background(), "cornell/render.png", []byte("png"), "image/png"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if aws.StringValue(fake.input.Bucket) != "frames" {
		t.Errorf("Bucket = %q", aws.StringValue(fake.input.Bucket))
	}
	if aws.StringValue(fake.input.Key) != "renders/cornell/render.png" {
		t.Errorf("Key = %q", aws.StringValue(fake.input.Key))
	}
	if aws.StringValue(fake.input.ContentType) != "image/png" || aws.Int64Value(fake.input.ContentLength) != 3 {
		t.Errorf("Unexpected headers: %v", fake.input)
	}
	if string(fake.body) != "png" {
		t.Errorf("Body = %q", fake.body)
	}
}

func TestS3Uploader_Error(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	uploader := newS3Uploader(fake, "frames", "", nil)

	err := uploader.Put(context.Background(), "a.png", []byte("x"), "image/png")
	if err == nil || !strings.Contains(err.Error(), "failed to upload a.png") {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestNewS3Uploader(t *testing.T) {
	if _, err := NewS3Uploader(config.S3Config{}, nil); err == nil {
		t.Error("Expected an error without a bucket")
	}

	u, err := NewS3Uploader(config.S3Config{
		Bucket:    "frames",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	}, nil)
	if err != nil {
		t.Fatalf("NewS3Uploader failed: %v", err)
	}
	if u.bucket != "frames" {
		t.Errorf("Bucket = %q", u.bucket)
	}
}
