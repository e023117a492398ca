package helper

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   OSS client (env-driven)

   OSS_ENDPOINT / OSS_ACCESS_KEY / OSS_SECRET_KEY / OSS_BUCKET /
   OSS_PUBLIC_BASE_URL (optional CDN prefix)
======================================================================= */

var (
	ossOnce   sync.Once
	ossBucket *oss.Bucket
	ossErr    error
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func bucket() (*oss.Bucket, error) {
	ossOnce.Do(func() {
		endpoint := getEnv("OSS_ENDPOINT")
		keyID := getEnv("OSS_ACCESS_KEY")
		keySecret := getEnv("OSS_SECRET_KEY")
		name := getEnv("OSS_BUCKET")
		if endpoint == "" || keyID == "" || keySecret == "" || name == "" {
			ossErr = fmt.Errorf("oss: missing OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET")
			return
		}
		client, err := oss.New(endpoint, keyID, keySecret)
		if err != nil {
			ossErr = err
			return
		}
		ossBucket, ossErr = client.Bucket(name)
	})
	return ossBucket, ossErr
}

// publicURL builds the URL handed back to clients. The rest of the app
// only ever stores this string, never bytes.
func publicURL(key string) string {
	if base := getEnv("OSS_PUBLIC_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", getEnv("OSS_BUCKET"), getEnv("OSS_ENDPOINT"), key)
}
