package config

const (
	KeyAPIBaseURL     = "wds_api_base_url"
	KeyRequestTimeout = "wds_request_timeout"
	KeyLogLevel       = "log_level"
	KeyTransport      = "transport"
)
