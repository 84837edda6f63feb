package msg

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads the message catalog. A missing file is not fatal: the
// compiled-in defaults keep the application usable without any config.
func init() {
	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	Init(value)
}

func Init(filepath string) {
	messages = make(map[string]string, len(defaults))
	for key, value := range defaults {
		messages[key] = value
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return
	}

	parseMessageMap("", v.AllSettings(), messages)
}

// parseMessageMap reads the yml tree recursively into flat dotted keys
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns a message by key, substituting {0}, {1}, ... placeholders
func GetMessage(key string, args ...interface{}) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}

	switch v := arg.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case error:
		return v.Error()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%v", v)
	}

	kind := reflect.ValueOf(arg).Kind()
	if kind == reflect.Struct || kind == reflect.Map || kind == reflect.Slice || kind == reflect.Ptr {
		if encoded, err := json.Marshal(arg); err == nil {
			return string(encoded)
		}
	}

	return fmt.Sprintf("%v", arg)
}
