// Package config provides the FeedbackHub client configuration.
//
// A Config is built once at startup and injected into the gateway, the
// logging setup and the discovery step. Sources are layered, lowest
// precedence first:
//
//  1. Built-in defaults (api_url http://localhost:8081, no request timeout)
//  2. The YAML file at GetConfigPath()
//  3. A .env file in the working directory
//  4. FEEDBACKHUB_API_URL, FEEDBACKHUB_TIMEOUT, FEEDBACKHUB_LOG_LEVEL and
//     FEEDBACKHUB_LOG_FILE from the environment
//  5. Command-line flags, applied by the caller
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/feedbackhub/config.yaml or $HOME/.config/feedbackhub/config.yaml
//   - macOS: $HOME/.config/feedbackhub/config.yaml
//   - Windows: %LOCALAPPDATA%\feedbackhub\config.yaml
//
// # File Format
//
//	version: 1
//	api_url: http://localhost:8081
//	timeout: 10s
//	log_level: debug
//	log_file: /tmp/feedbackhub.log
//	discovery:
//	    enabled: true
//	    timeout: 5s
//
// # Usage Example
//
//	cfg, err := config.Load(config.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	client := gateway.NewClient(cfg.APIURL)
//
// Save writes to a temporary file and renames it into place so a crash
// never leaves a truncated config behind.
package config
