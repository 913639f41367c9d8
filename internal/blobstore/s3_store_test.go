package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bankpulse/internal/blobstore/blobstore_mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Store_ListFollowsContinuationTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := blobstore_mocks.NewMockS3API(ctrl)

	gomock.InOrder(
		client.EXPECT().ListObjectsV2(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
				assert.Equal(t, "bank-bucket", aws.ToString(in.Bucket))
				assert.Equal(t, "bankpulse/chunks", aws.ToString(in.Prefix))
				assert.Nil(t, in.ContinuationToken)
				return &s3.ListObjectsV2Output{
					Contents:              []types.Object{{Key: aws.String("bankpulse/chunks/chunk_00000.csv")}},
					IsTruncated:           aws.Bool(true),
					NextContinuationToken: aws.String("page-2"),
				}, nil
			}),
		client.EXPECT().ListObjectsV2(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
				assert.Equal(t, "page-2", aws.ToString(in.ContinuationToken))
				return &s3.ListObjectsV2Output{
					Contents:    []types.Object{{Key: aws.String("bankpulse/chunks/chunk_00001.csv")}},
					IsTruncated: aws.Bool(false),
				}, nil
			}),
	)

	keys, err := NewS3Store(client, "bank-bucket").List(context.Background(), "bankpulse/chunks")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"bankpulse/chunks/chunk_00000.csv",
		"bankpulse/chunks/chunk_00001.csv",
	}, keys)
}

func TestS3Store_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := blobstore_mocks.NewMockS3API(ctrl)

	client.EXPECT().ListObjectsV2(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("throttled"))

	_, err := NewS3Store(client, "bank-bucket").List(context.Background(), "bankpulse/chunks")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestS3Store_GetMapsNoSuchKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := blobstore_mocks.NewMockS3API(ctrl)

	client.EXPECT().GetObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &types.NoSuchKey{})

	_, err := NewS3Store(client, "bank-bucket").Get(context.Background(), "missing.csv")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3Store_GetReturnsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := blobstore_mocks.NewMockS3API(ctrl)

	client.EXPECT().GetObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("payload"))}, nil)

	rc, err := NewS3Store(client, "bank-bucket").Get(context.Background(), "chunk.csv")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
}

func TestS3Store_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := blobstore_mocks.NewMockS3API(ctrl)

	client.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			assert.Equal(t, "bankpulse/detections/detection_0.csv", aws.ToString(in.Key))
			assert.Equal(t, "text/csv", aws.ToString(in.ContentType))
			return &s3.PutObjectOutput{}, nil
		})

	err := NewS3Store(client, "bank-bucket").Put(context.Background(), "bankpulse/detections/detection_0.csv", strings.NewReader("x"))

	assert.NoError(t, err)
}
