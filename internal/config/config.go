package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		fs := root.PersistentFlags()
		_ = viper.BindPFlags(fs)
		_ = viper.BindPFlag(KeyAPIBaseURL, fs.Lookup("wds-api-base-url"))
		_ = viper.BindPFlag(KeyRequestTimeout, fs.Lookup("wds-request-timeout"))
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIBaseURL, "https://search.worldbank.org/api/v3/wds")
	viper.SetDefault(KeyRequestTimeout, 30)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
}

func APIBaseURL() string { return viper.GetString(KeyAPIBaseURL) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
func Transport() string  { return viper.GetString(KeyTransport) }

// RequestTimeout returns the outbound request deadline, configured in whole
// seconds.
func RequestTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyRequestTimeout)) * time.Second
}
