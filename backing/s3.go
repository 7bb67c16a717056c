package backing

import (
	"context"
	"errors"
	"io/ioutil"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 stores data in AWS S3. Keys iterate in S3's listing order
// (lexicographic by object key). Len and Key list the entire bucket, so
// index-based iteration is likely a very slow operation; use with caution.
type S3 struct {
	bucket  string
	client  *s3.Client
	context context.Context
}

// S3Args are the arguments for creating a new S3 backing.
type S3Args struct {
	Bucket  string          // Required. The name of the S3 bucket to use.
	Client  *s3.Client      // Optional. The S3 client to use. If not provided, a client will be automatically configured from your environment.
	Context context.Context // Optional. The context to use for S3 operations. If not provided, defaults to context.Background().
}

// NewS3 creates a new backing which stores data in AWS S3.
func NewS3(args S3Args) (*S3, error) {
	if args.Bucket == "" {
		return nil, errors.New("backing: bucket is required")
	}
	if args.Context == nil {
		args.Context = context.Background()
	}
	if args.Client == nil {
		cfg, err := config.LoadDefaultConfig(args.Context)
		if err != nil {
			return nil, err
		}
		args.Client = s3.NewFromConfig(cfg)
	}
	return &S3{client: args.Client, context: args.Context, bucket: args.Bucket}, nil
}

// list returns every object key in the bucket, in listing order.
func (s *S3) list() ([]Key, error) {
	var keys []Key
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{Bucket: &s.bucket})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(s.context)
		if err != nil {
			return nil, err
		}
		for _, c := range output.Contents {
			keys = append(keys, Key(*c.Key))
		}
	}
	return keys, nil
}

// Len returns the number of objects in the bucket.
func (s *S3) Len() (int, error) {
	keys, err := s.list()
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Key returns the object key at the given index of the bucket listing.
func (s *S3) Key(i int) (Key, bool, error) {
	keys, err := s.list()
	if err != nil {
		return "", false, err
	}
	if i < 0 || i >= len(keys) {
		return "", false, nil
	}
	return keys[i], true, nil
}

// Get returns the value for the given key.
func (s *S3) Get(key Key) (string, bool, error) {
	r, err := s.client.GetObject(s.context, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var missing *types.NoSuchKey
	if errors.As(err, &missing) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set sets the value for the given key.
func (s *S3) Set(key Key, value string) error {
	_, err := s.client.PutObject(s.context, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(value),
	})
	return err
}

// Del deletes the key-value pair for the given key.
func (s *S3) Del(key Key) error {
	_, err := s.client.DeleteObject(s.context, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
