// Package config resolves depscope's runtime configuration.
//
// Values come from, in increasing precedence: built-in defaults, a TOML file
// (--config, or ~/.config/depscope/config.toml when present), a .env file in
// the working directory, and the process environment:
//
//	github_token   = "ghp_..."        # DEPSCOPE_GITHUB_TOKEN or GITHUB_TOKEN
//	gemini_api_key = "..."            # DEPSCOPE_GEMINI_API_KEY or GEMINI_API_KEY
//	gemini_model   = "gemini-1.5-flash"
//	github_api_url = "https://api.github.com"
//	addr           = ":8080"          # DEPSCOPE_ADDR
//	http_timeout   = "10s"            # DEPSCOPE_HTTP_TIMEOUT
//
// The .env file is read without modifying the process environment.
package config
