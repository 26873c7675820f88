package resource

import (
	"bytes"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-view/configs"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from PROPERTIES_FILE_PATH, or from the embedded defaults
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
		return
	}
	if err := Load(bytes.NewReader(configs.ApplicationYAML)); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath
func Init(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	defer func() { _ = file.Close() }()

	if err := Load(file); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Load reads YAML properties and resolves ${ENV:default} placeholders
func Load(reader io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(reader); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	if err := v.MergeConfigMap(resolved); err != nil {
		return err
	}

	properties = v
	return nil
}

// Set overrides a single property, mostly useful in tests
func Set(key string, value any) {
	properties.Set(key, value)
}

// parsePropertiesMap flattens the YAML tree, resolving placeholders on string leaves
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
