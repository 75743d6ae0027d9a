// Package storage provides an abstraction layer for the object store holding
// durable CSV snapshots.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the checkpoint flow needs: after every manual mapping
// assignment the current mapping table is uploaded as a CSV object, and
// inventory exports can be checkpointed the same way. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: startup bucket provisioning.
//   - PutObject: upload a snapshot CSV.
//   - GetObject: retrieve a snapshot as a stream.
//   - ListObjects: list snapshots (supports prefix/recursive).
//   - RemoveObject: delete a snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	err = storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
package storage
