package options

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "SWIMBOARD_"

// envNamingConvention maps flag name to ENV variable name,
// eg. "api-host" -> "SWIMBOARD_API_HOST".
type envNamingConvention struct{}

func (*envNamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(errors.New("flag name cannot be empty"))
	}

	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// loadDotEnv loads envs from ".env" file in the dir, if the file exists.
// Existing ENV variables take precedence.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if stat, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	} else if stat.IsDir() {
		return nil
	}

	return godotenv.Load(path)
}
