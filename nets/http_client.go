package nets

import (
	"net/http"
	"net/url"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getURL()
				if err != nil {
					return nil, err
				}
				if u == nil || !isHTTPProxy(u) {
					return nil, nil
				}
				return u, nil
			},
		},
	}
}
