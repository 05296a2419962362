package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage = "image/"

	// MaxAvatarSize caps avatar uploads at 2 MiB.
	MaxAvatarSize = 2 << 20
)
