package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		host := req.URL.Hostname()
		for _, skip := range strings.Split(noProxy, ",") {
			skip = strings.TrimSpace(skip)
			if skip != "" && (host == skip || strings.HasSuffix(host, "."+skip)) {
				return nil, nil
			}
		}

		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if req.URL.Scheme == "http" && httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return nil, nil
	}
}
