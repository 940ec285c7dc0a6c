package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "faculty_42_export.json", FileName("42"))
	assert.Equal(t, "faculty_3f2a-uuid_export.json", FileName(" 3f2a-uuid "))
	assert.Equal(t, "faculty___etc_export.json", FileName("../etc"))
	assert.Equal(t, "faculty_a_b_export.json", FileName(`a\b`))
}

func TestFileSink_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	sink := NewFileSink(dir)

	loc, err := sink.Write(context.Background(), FileName("7"), []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, "faculty_7_export.json", filepath.Base(loc))
	assert.True(t, filepath.IsAbs(loc))

	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(got))

	fi, err := os.Stat(loc)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestFileSink_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	loc, err := sink.Write(context.Background(), "../../escape.json", []byte("{}"))
	require.NoError(t, err)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(abs, "escape.json"), loc)
}

func TestFileSink_Overwrites(t *testing.T) {
	sink := NewFileSink(t.TempDir())
	ctx := context.Background()

	_, err := sink.Write(ctx, "x.json", []byte("first"))
	require.NoError(t, err)
	loc, err := sink.Write(ctx, "x.json", []byte("second"))
	require.NoError(t, err)

	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSink(t.TempDir()).Write(ctx, "x.json", nil)
	require.ErrorIs(t, err, context.Canceled)
}

type fakePutter struct {
	key, bucket, ctype string
	body               []byte
	err                error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	f.ctype = aws.ToString(in.ContentType)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func stubAWS(t *testing.T, putter *fakePutter, capture *s3.Options, load *awsconfig.LoadOptions) {
	t.Helper()
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(load))
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(_ aws.Config, optFns ...func(*s3.Options)) putObjectAPI {
		for _, fn := range optFns {
			fn(capture)
		}
		return putter
	}
}

func TestS3Sink_Write(t *testing.T) {
	putter := &fakePutter{}
	var opts s3.Options
	var lo awsconfig.LoadOptions
	stubAWS(t, putter, &opts, &lo)

	sink, err := NewS3Sink(context.Background(), S3Config{
		Bucket:       "exports",
		Prefix:       "faculty",
		Region:       "eu-central-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", lo.Region)
	assert.NotNil(t, lo.Credentials)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loc, err := sink.Write(context.Background(), FileName("9"), []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "s3://exports/faculty/faculty_9_export.json", loc)
	assert.Equal(t, "exports", putter.bucket)
	assert.Equal(t, "faculty/faculty_9_export.json", putter.key)
	assert.Equal(t, "application/json", putter.ctype)
	assert.Equal(t, `{"a":1}`, string(putter.body))
}

func TestS3Sink_DefaultEndpoint(t *testing.T) {
	var opts s3.Options
	var lo awsconfig.LoadOptions
	stubAWS(t, &fakePutter{}, &opts, &lo)

	_, err := NewS3Sink(context.Background(), S3Config{Bucket: "b", Region: "us-east-1"})
	require.NoError(t, err)
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
	assert.Nil(t, lo.Credentials)
}

func TestS3Sink_Errors(t *testing.T) {
	_, err := NewS3Sink(context.Background(), S3Config{})
	require.Error(t, err)

	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewS3Sink(context.Background(), S3Config{Bucket: "b"})
	require.ErrorContains(t, err, "load-fail")

	boom := errors.New("access denied")
	sink := &S3Sink{api: &fakePutter{err: boom}, bucket: "b"}
	_, err = sink.Write(context.Background(), "x.json", nil)
	require.ErrorIs(t, err, boom)
}
