// Copyright 2026 The onramp-go Authors
// This file is part of the onramp-go library.
//
// The onramp-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The onramp-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the onramp-go library. If not, see <http://www.gnu.org/licenses/>.

package sink

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Sink writes objects to a single bucket and key prefix.
type S3Sink struct {
	client *s3.Client
	bucket string
	prefix string
}

func newS3Sink(ctx context.Context, address string) (*S3Sink, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("sink: parsing s3 address %s: %w", address, err)
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("sink: loading aws config: %w", err)
	}
	return &S3Sink{
		client: s3.NewFromConfig(cfg),
		bucket: u.Host,
		prefix: path.Dir(strings.TrimPrefix(u.Path, "/")),
	}, nil
}

// Write uploads data (optionally gzipped) to bucket/prefix/ref,
// setting Content-Type and, when compressed, Content-Encoding.
func (s *S3Sink) Write(ctx context.Context, ref string, data []byte) error {
	key := path.Join(s.prefix, ref)
	payload, err := maybeGzip(ref, data)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("text/xml"),
	}
	if strings.HasSuffix(ref, ".gz") {
		input.ContentEncoding = aws.String("gzip")
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("sink: s3 put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
