package blobstore_mocks

//go:generate mockgen -source=../store.go -destination=store_mocks.go -package=blobstore_mocks
//go:generate mockgen -source=../s3_store.go -destination=s3_mocks.go -package=blobstore_mocks
