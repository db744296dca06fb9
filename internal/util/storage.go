// Package util holds small helpers shared by the use cases.
package util

import (
	"net/url"
	"strings"
)

const firebaseStorageHost = "https://firebasestorage.googleapis.com/v0/b/"

// bucketPrefixes are stripped, case-insensitively, before a bucket name is validated.
//
//nolint:gochecknoglobals
var bucketPrefixes = []string{
	"gs://",
	"https://firebasestorage.googleapis.com/v0/b/",
	"http://firebasestorage.googleapis.com/v0/b/",
	"https://storage.googleapis.com/",
	"http://storage.googleapis.com/",
}

// NormalizeStorageBucket reduces a configured bucket (bare name, gs:// URL or storage URL)
// to the bucket name. Anything after the first "/" or "?" is dropped.
func NormalizeStorageBucket(raw string) string {
	bucket := strings.TrimSpace(raw)
	for _, prefix := range bucketPrefixes {
		if len(bucket) >= len(prefix) && strings.EqualFold(bucket[:len(prefix)], prefix) {
			bucket = bucket[len(prefix):]

			break
		}
	}
	bucket = strings.TrimLeft(bucket, "/")

	if i := strings.IndexAny(bucket, "/?"); i >= 0 {
		bucket = bucket[:i]
	}

	return bucket
}

// IsValidStorageBucket accepts letters, digits, dots and dashes, starting and ending
// with a letter or digit, and never two dots in a row.
func IsValidStorageBucket(bucket string) bool {
	if bucket == "" || strings.Contains(bucket, "..") {
		return false
	}

	for i, r := range strings.ToLower(bucket) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if i == 0 || i == len(bucket)-1 {
			if !alnum {
				return false
			}

			continue
		}
		if !alnum && r != '.' && r != '-' {
			return false
		}
	}

	return true
}

// BuildStorageDownloadURL returns the public media URL of an object in a Firebase Storage bucket.
func BuildStorageDownloadURL(bucket, objectPath string) string {
	return firebaseStorageHost + bucket + "/o/" + encodeURIComponent(strings.TrimLeft(objectPath, "/")) + "?alt=media"
}

// IsSafeHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsSafeHTTPURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)

	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// encodeURIComponent escapes every reserved character, "/" included.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
