package transport

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitedRoundTripper bounds the request rate of an HTTP client.
// It belongs on the http.Client handed to NewHTTP; the operations
// built on top never see rate limiting.
func RateLimitedRoundTripper(rt http.RoundTripper, rps float64, burst int) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &rateLimitedRoundTripper{
		rl: rate.NewLimiter(rate.Limit(rps), burst),
		tx: rt,
	}
}

type rateLimitedRoundTripper struct {
	rl *rate.Limiter
	tx http.RoundTripper
}

func (t *rateLimitedRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	// Wait errors out if the request cannot be processed within the
	// deadline, instead of waiting the entire duration.
	if err := t.rl.Wait(r.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limited")
	}
	return t.tx.RoundTrip(r)
}
