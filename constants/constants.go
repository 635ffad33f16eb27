package constants

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/util"
)

const MaxFrets = fretboard.MaxFrets

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("FRETDEX_PORT", "8080")
}

// GetStoreBackend is one of "file", "dynamo" or "memory".
func GetStoreBackend() string {
	return getEnv("FRETDEX_STORE", "file")
}

func GetStatePath() string {
	return getEnv("FRETDEX_STATE_PATH", "./out/selections.dat")
}

func GetDynamoTable() string {
	return getEnv("FRETDEX_DYNAMO_TABLE", "fretdex-selections")
}

// GetDynamoEndpoint defaults to DynamoDB local. Set it to "aws" to use the
// regional endpoint.
func GetDynamoEndpoint() string {
	endpoint := getEnv("FRETDEX_DYNAMO_ENDPOINT", "http://localhost:8000")
	if endpoint == "aws" {
		return ""
	}
	return endpoint
}

func GetDynamoRegion() string {
	return getEnv("FRETDEX_DYNAMO_REGION", "localhost")
}

func GetAllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(getEnv("FRETDEX_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetFrets() int {
	n, err := strconv.Atoi(getEnv("FRETDEX_FRETS", ""))
	if err != nil || n <= 0 {
		return fretboard.DefaultFrets
	}
	return util.Min(n, MaxFrets)
}

func GetSaveDebounce() time.Duration {
	d, err := time.ParseDuration(getEnv("FRETDEX_SAVE_DEBOUNCE", "500ms"))
	if err != nil || d < 0 {
		return 500 * time.Millisecond
	}
	return d
}
